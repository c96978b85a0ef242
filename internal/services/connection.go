package services

import (
	"time"

	"national-connect-backend/internal/apperrors"
	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
)

// ConnectionService handles frequency matching and connection listing
type ConnectionService struct {
	connRepo *repository.ConnectionRepository
	userRepo *repository.UserRepository
	ids      IDGenerator
}

// NewConnectionService creates a new connection service
func NewConnectionService(connRepo *repository.ConnectionRepository, userRepo *repository.UserRepository, ids IDGenerator) *ConnectionService {
	return &ConnectionService{
		connRepo: connRepo,
		userRepo: userRepo,
		ids:      ids,
	}
}

// ConnectResult is the outcome of a frequency match attempt. A miss is a
// normal result, not an error: Matched is false and the other fields nil.
type ConnectResult struct {
	Matched    bool
	Connection *models.Connection
	User       *models.User
}

// Connect scans the directory for the first user broadcasting on the
// target frequency and records a connection to them. Frequencies compare
// as exact strings. The requester's own record is not excluded, so a
// user can match their own broadcast.
func (s *ConnectionService) Connect(userID, targetFrequency string) (*ConnectResult, error) {
	if userID == "" || targetFrequency == "" {
		return nil, apperrors.Validation("userId and targetFrequency are required")
	}

	if _, ok := s.userRepo.GetByID(userID); !ok {
		return nil, apperrors.NotFound("User not found")
	}

	target, ok := s.userRepo.FirstByFrequency(targetFrequency)
	if !ok {
		return &ConnectResult{}, nil
	}

	conn := models.Connection{
		ID:        s.ids.NewID(),
		User1:     userID,
		User2:     target.ID,
		Frequency: targetFrequency,
		Status:    models.ConnectionStatusActive,
		CreatedAt: time.Now(),
	}
	s.connRepo.Create(conn)

	return &ConnectResult{
		Matched:    true,
		Connection: &conn,
		User:       &target,
	}, nil
}

// ConnectionWithUser pairs a connection with the other party's current
// user record, resolved at read time.
type ConnectionWithUser struct {
	Connection models.Connection `json:"connection"`
	User       *models.User      `json:"user"`
}

// ListForUser returns every connection the user participates in, each
// joined with the live record of the other endpoint. If the other id no
// longer resolves the user field is null rather than failing the listing.
func (s *ConnectionService) ListForUser(userID string) []ConnectionWithUser {
	conns := s.connRepo.ListByUser(userID)
	out := make([]ConnectionWithUser, 0, len(conns))
	for _, c := range conns {
		otherID := c.User2
		if c.User1 != userID {
			otherID = c.User1
		}
		entry := ConnectionWithUser{Connection: c}
		if other, ok := s.userRepo.GetByID(otherID); ok {
			entry.User = &other
		}
		out = append(out, entry)
	}
	return out
}
