package service

import (
	"context"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"
)

// statusCheckListLimit caps GET /status.
const statusCheckListLimit = 1000

// StatusService records and lists client health checks.
type StatusService interface {
	RecordCheck(ctx context.Context, clientName string) (*domain.StatusCheck, error)
	ListChecks(ctx context.Context) ([]domain.StatusCheck, error)
}

// statusService implements the StatusService interface.
type statusService struct {
	statusRepo repository.StatusCheckRepository
}

// NewStatusService creates a new instance of statusService.
func NewStatusService(statusRepo repository.StatusCheckRepository) StatusService {
	return &statusService{
		statusRepo: statusRepo,
	}
}

// RecordCheck appends a timestamped status check.
func (s *statusService) RecordCheck(ctx context.Context, clientName string) (*domain.StatusCheck, error) {
	if clientName == "" {
		return nil, ErrValidationFailed
	}

	check := domain.NewStatusCheck(clientName)
	if err := s.statusRepo.Insert(ctx, check); err != nil {
		return nil, err
	}
	return &check, nil
}

// ListChecks returns the recorded checks, capped at 1000.
func (s *statusService) ListChecks(ctx context.Context) ([]domain.StatusCheck, error) {
	return s.statusRepo.List(ctx, statusCheckListLimit)
}
