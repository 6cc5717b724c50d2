package service

import (
	"context"
	"errors"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsService manages per-user timer configuration.
type SettingsService interface {
	// GetSettings returns the user's settings, creating an all-default
	// record on first access. An empty userID means the default user.
	GetSettings(ctx context.Context, userID string) (*domain.WorkoutSettings, error)
	// UpsertSettings merges the patch into the user's record, creating it
	// when absent. Keyed on userId, not on id.
	UpsertSettings(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error)
	// UpdateSettings applies a partial update to an existing record only.
	UpdateSettings(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error)
}

// settingsService implements the SettingsService interface.
type settingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new instance of settingsService.
func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
	}
}

func resolveUserID(userID string) string {
	if userID == "" {
		return domain.DefaultUserID
	}
	return userID
}

// GetSettings is read-and-possibly-write: the first access for a user
// persists a default record and returns it.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.WorkoutSettings, error) {
	return s.settingsRepo.GetOrCreate(ctx, resolveUserID(userID))
}

// UpsertSettings creates or updates the user's record in one write.
func (s *settingsService) UpsertSettings(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error) {
	return s.settingsRepo.Upsert(ctx, resolveUserID(userID), patch)
}

// UpdateSettings applies a partial update, rejecting empty patches and
// unknown users.
func (s *settingsService) UpdateSettings(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error) {
	if patch.IsZero() {
		return nil, ErrEmptyUpdate
	}

	settings, err := s.settingsRepo.Update(ctx, resolveUserID(userID), patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return settings, nil
}
