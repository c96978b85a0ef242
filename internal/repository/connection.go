package repository

import (
	"sync"

	"national-connect-backend/internal/models"
)

// ConnectionRepository holds the in-memory connections collection.
// Connections are append-only; nothing ever mutates or deletes one.
type ConnectionRepository struct {
	mu          sync.RWMutex
	connections []models.Connection
}

// NewConnectionRepository creates a new connection repository
func NewConnectionRepository() *ConnectionRepository {
	return &ConnectionRepository{}
}

// Create appends a new connection
func (r *ConnectionRepository) Create(conn models.Connection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connections = append(r.connections, conn)
}

// ListByUser returns every connection where the user is either endpoint,
// in insertion order.
func (r *ConnectionRepository) ListByUser(userID string) []models.Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Connection{}
	for _, c := range r.connections {
		if c.User1 == userID || c.User2 == userID {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of connections
func (r *ConnectionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}
