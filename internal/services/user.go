package services

import (
	"fmt"
	"math/rand"
	"time"

	"national-connect-backend/internal/apperrors"
	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
)

// UserService handles registration and directory queries
type UserService struct {
	userRepo *repository.UserRepository
	ids      IDGenerator
}

// NewUserService creates a new user service
func NewUserService(userRepo *repository.UserRepository, ids IDGenerator) *UserService {
	return &UserService{
		userRepo: userRepo,
		ids:      ids,
	}
}

// RegisterRequest represents the fields required to register
type RegisterRequest struct {
	Name  string `json:"name"`
	State string `json:"state"`
	City  string `json:"city"`
	Phone string `json:"phone"`
}

// GenerateFrequency draws a uniform random frequency in [100.000, 1000.000)
// with exactly three fractional digits. Drawing the thousandths as an
// integer keeps rounding from ever producing 1000.000.
func GenerateFrequency() string {
	n := 100000 + rand.Intn(900000)
	return fmt.Sprintf("%d.%03d", n/1000, n%1000)
}

// Register creates a new user with a freshly drawn frequency. Frequency
// uniqueness is deliberately not enforced; collisions are what the
// matching operation exists to find.
func (s *UserService) Register(req RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.State == "" || req.City == "" || req.Phone == "" {
		return nil, apperrors.Validation("All fields are required")
	}

	user := models.User{
		ID:        s.ids.NewID(),
		Name:      req.Name,
		State:     req.State,
		City:      req.City,
		Phone:     req.Phone,
		Frequency: GenerateFrequency(),
		Status:    models.StatusOnline,
		CreatedAt: time.Now(),
	}

	s.userRepo.Create(user)
	return &user, nil
}

// GetUser retrieves a user by id
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, ok := s.userRepo.GetByID(id)
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	return &user, nil
}

// ListUsers returns users matching the filter in registration order
func (s *UserService) ListUsers(filter repository.UserFilter) []models.User {
	return s.userRepo.List(filter)
}
