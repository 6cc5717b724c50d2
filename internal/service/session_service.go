package service

import (
	"context"
	"errors"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"
)

var ErrSessionNotFound = errors.New("session not found")

// defaultSessionLimit caps GET /sessions when no limit is supplied.
const defaultSessionLimit = 10

// SessionService manages workout session records and their statistics.
type SessionService interface {
	// StartSession inserts an active session embedding the supplied
	// exercise and settings snapshots as-is.
	StartSession(ctx context.Context, userID string, exercises []domain.Exercise, settings domain.WorkoutSettings) (*domain.WorkoutSession, error)
	// ListSessions returns the user's most recent sessions, newest first.
	ListSessions(ctx context.Context, userID string, limit int64) ([]domain.WorkoutSession, error)
	// CompleteSession marks a session completed with the given counters.
	CompleteSession(ctx context.Context, id string, completedSets, completedCircuits int) error
	// GetStats aggregates the user's completed sessions.
	GetStats(ctx context.Context, userID string) (*domain.WorkoutStats, error)
}

// sessionService implements the SessionService interface.
type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
	}
}

// StartSession snapshots the client-supplied exercises and settings into a
// new active session. The snapshots are trusted, not re-fetched; later
// edits to the library or the settings do not touch this record.
func (s *sessionService) StartSession(ctx context.Context, userID string, exercises []domain.Exercise, settings domain.WorkoutSettings) (*domain.WorkoutSession, error) {
	if exercises == nil {
		return nil, ErrValidationFailed
	}

	session := domain.NewWorkoutSession(resolveUserID(userID), exercises, settings)
	if err := s.sessionRepo.Insert(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions returns up to limit sessions, most recently started first.
func (s *sessionService) ListSessions(ctx context.Context, userID string, limit int64) ([]domain.WorkoutSession, error) {
	if limit <= 0 {
		limit = defaultSessionLimit
	}
	return s.sessionRepo.ListByUser(ctx, resolveUserID(userID), limit)
}

// CompleteSession transitions the session to completed. Repeating the call
// silently overwrites the counters and recomputes the duration.
func (s *sessionService) CompleteSession(ctx context.Context, id string, completedSets, completedCircuits int) error {
	err := s.sessionRepo.Complete(ctx, id, completedSets, completedCircuits)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	return nil
}

// GetStats aggregates completed sessions; all-zero when the user has none.
func (s *sessionService) GetStats(ctx context.Context, userID string) (*domain.WorkoutStats, error) {
	return s.sessionRepo.Stats(ctx, resolveUserID(userID))
}
