package repository

import (
	"sync"

	"national-connect-backend/internal/models"
)

// MessageRepository holds the in-memory messages collection in send order.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []models.Message
}

// NewMessageRepository creates a new message repository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// Create appends a new message
func (r *MessageRepository) Create(msg models.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// ListByUser returns every message the user sent or received, in send
// order. A non-empty withUserID restricts the result to the exact pair,
// in either direction.
func (r *MessageRepository) ListByUser(userID, withUserID string) []models.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Message{}
	for _, m := range r.messages {
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		if withUserID != "" {
			pair := (m.SenderID == userID && m.ReceiverID == withUserID) ||
				(m.SenderID == withUserID && m.ReceiverID == userID)
			if !pair {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// Count returns the number of messages
func (r *MessageRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}
