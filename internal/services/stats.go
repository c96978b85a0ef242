package services

import (
	"time"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/repository"
)

// StatsService computes collection counters
type StatsService struct {
	userRepo  *repository.UserRepository
	connRepo  *repository.ConnectionRepository
	photoRepo *repository.PhotoRepository
	msgRepo   *repository.MessageRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	userRepo *repository.UserRepository,
	connRepo *repository.ConnectionRepository,
	photoRepo *repository.PhotoRepository,
	msgRepo *repository.MessageRepository,
) *StatsService {
	return &StatsService{
		userRepo:  userRepo,
		connRepo:  connRepo,
		photoRepo: photoRepo,
		msgRepo:   msgRepo,
	}
}

// Snapshot recomputes every counter from the live collections. Nothing
// is cached; the dataset is small enough to scan on every call.
func (s *StatsService) Snapshot() models.Stats {
	return models.Stats{
		TotalUsers:       s.userRepo.Count(),
		ActiveUsers:      s.userRepo.CountByStatus(models.StatusOnline),
		TotalConnections: s.connRepo.Count(),
		TotalPhotos:      s.photoRepo.Count(),
		TotalMessages:    s.msgRepo.Count(),
		Timestamp:        time.Now(),
	}
}
