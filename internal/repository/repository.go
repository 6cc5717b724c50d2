package repository

import (
	"context"

	"github.com/abbasalialoc/HIIT/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors from driver errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ExerciseRepository defines the interface for interacting with the
// exercise library.
type ExerciseRepository interface {
	Insert(ctx context.Context, exercise domain.Exercise) error
	List(ctx context.Context) ([]domain.Exercise, error)
	// Update applies the non-nil patch fields and returns the updated
	// document, or ErrNotFound if no exercise matches the id.
	Update(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository defines the interface for per-user workout settings.
// All lookups are keyed on the userId field, not on id.
type SettingsRepository interface {
	// GetOrCreate returns the settings for the user, inserting an
	// all-default record first if none exists. The insert is a single
	// conditional write, so concurrent first reads cannot duplicate.
	GetOrCreate(ctx context.Context, userID string) (*domain.WorkoutSettings, error)
	// Upsert merges the non-nil patch fields into the user's record,
	// creating it from defaults when absent, and returns the result.
	Upsert(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error)
	// Update applies the non-nil patch fields to an existing record and
	// returns it, or ErrNotFound if the user has no settings yet.
	Update(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error)
}

// SessionRepository defines the interface for workout session documents and
// their aggregate statistics.
type SessionRepository interface {
	Insert(ctx context.Context, session domain.WorkoutSession) error
	// ListByUser returns at most limit sessions for the user, most
	// recently started first.
	ListByUser(ctx context.Context, userID string, limit int64) ([]domain.WorkoutSession, error)
	// Complete marks the session completed, records the counters and
	// computes totalDuration from startedAt in one atomic write.
	Complete(ctx context.Context, id string, completedSets, completedCircuits int) error
	// Stats aggregates completed sessions for the user; all-zero when
	// none match.
	Stats(ctx context.Context, userID string) (*domain.WorkoutStats, error)
}

// StatusCheckRepository defines the interface for the append-only status
// check log.
type StatusCheckRepository interface {
	Insert(ctx context.Context, check domain.StatusCheck) error
	List(ctx context.Context, limit int64) ([]domain.StatusCheck, error)
}
