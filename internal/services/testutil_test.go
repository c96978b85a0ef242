package services

import (
	"fmt"
	"time"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
)

// seqIDs is a deterministic IDGenerator for tests
type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type fixture struct {
	users  *repository.UserRepository
	conns  *repository.ConnectionRepository
	photos *repository.PhotoRepository
	msgs   *repository.MessageRepository
	ids    *seqIDs
}

func newFixture() *fixture {
	return &fixture{
		users:  repository.NewUserRepository(),
		conns:  repository.NewConnectionRepository(),
		photos: repository.NewPhotoRepository(),
		msgs:   repository.NewMessageRepository(),
		ids:    &seqIDs{},
	}
}

// addUser seeds a user directly, bypassing the random frequency draw so
// tests can control who shares a frequency with whom.
func (f *fixture) addUser(id, name, frequency string) models.User {
	user := models.User{
		ID:        id,
		Name:      name,
		State:     "CA",
		City:      "LA",
		Phone:     "555-0100",
		Frequency: frequency,
		Status:    models.StatusOnline,
		CreatedAt: time.Now(),
	}
	f.users.Create(user)
	return user
}
