package service

import (
	"context"
	"sort"
	"time"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"
)

// In-memory repository fakes. They mirror the semantics the mongo
// implementations get from the store: id/userId keyed lookups, newest-first
// session listing and server-side duration on completion.

type fakeExerciseRepo struct {
	exercises []domain.Exercise
}

func (r *fakeExerciseRepo) Insert(_ context.Context, exercise domain.Exercise) error {
	r.exercises = append(r.exercises, exercise)
	return nil
}

func (r *fakeExerciseRepo) List(_ context.Context) ([]domain.Exercise, error) {
	out := make([]domain.Exercise, len(r.exercises))
	copy(out, r.exercises)
	return out, nil
}

func (r *fakeExerciseRepo) Update(_ context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	for i := range r.exercises {
		if r.exercises[i].ID != id {
			continue
		}
		if patch.Name != nil {
			r.exercises[i].Name = *patch.Name
		}
		if patch.Description != nil {
			r.exercises[i].Description = *patch.Description
		}
		if patch.IsActive != nil {
			r.exercises[i].IsActive = *patch.IsActive
		}
		updated := r.exercises[i]
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) Delete(_ context.Context, id string) error {
	for i := range r.exercises {
		if r.exercises[i].ID == id {
			r.exercises = append(r.exercises[:i], r.exercises[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeSettingsRepo struct {
	records map[string]domain.WorkoutSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{records: make(map[string]domain.WorkoutSettings)}
}

func applySettingsPatch(settings *domain.WorkoutSettings, patch domain.WorkoutSettingsPatch) {
	if patch.WorkTime != nil {
		settings.WorkTime = *patch.WorkTime
	}
	if patch.RestTime != nil {
		settings.RestTime = *patch.RestTime
	}
	if patch.SetsPerExercise != nil {
		settings.SetsPerExercise = *patch.SetsPerExercise
	}
	if patch.Circuits != nil {
		settings.Circuits = *patch.Circuits
	}
	if patch.ExerciseOrder != nil {
		settings.ExerciseOrder = *patch.ExerciseOrder
	}
	settings.UpdatedAt = time.Now().UTC()
}

func (r *fakeSettingsRepo) GetOrCreate(_ context.Context, userID string) (*domain.WorkoutSettings, error) {
	if existing, ok := r.records[userID]; ok {
		return &existing, nil
	}
	created := domain.NewWorkoutSettings(userID)
	r.records[userID] = created
	return &created, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error) {
	settings, ok := r.records[userID]
	if !ok {
		settings = domain.NewWorkoutSettings(userID)
	}
	applySettingsPatch(&settings, patch)
	r.records[userID] = settings
	return &settings, nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error) {
	settings, ok := r.records[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	applySettingsPatch(&settings, patch)
	r.records[userID] = settings
	return &settings, nil
}

type fakeSessionRepo struct {
	sessions []domain.WorkoutSession
}

func (r *fakeSessionRepo) Insert(_ context.Context, session domain.WorkoutSession) error {
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) ListByUser(_ context.Context, userID string, limit int64) ([]domain.WorkoutSession, error) {
	var out []domain.WorkoutSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeSessionRepo) Complete(_ context.Context, id string, completedSets, completedCircuits int) error {
	for i := range r.sessions {
		if r.sessions[i].ID != id {
			continue
		}
		now := time.Now().UTC()
		duration := int(now.Sub(r.sessions[i].StartedAt).Seconds())
		r.sessions[i].Status = domain.SessionCompleted
		r.sessions[i].CompletedAt = &now
		r.sessions[i].TotalDuration = &duration
		r.sessions[i].CompletedSets = completedSets
		r.sessions[i].CompletedCircuits = completedCircuits
		return nil
	}
	return repository.ErrNotFound
}

func (r *fakeSessionRepo) Stats(_ context.Context, userID string) (*domain.WorkoutStats, error) {
	stats := domain.WorkoutStats{}
	for _, s := range r.sessions {
		if s.UserID != userID || s.Status != domain.SessionCompleted {
			continue
		}
		stats.TotalSessions++
		if s.TotalDuration != nil {
			stats.TotalDuration += *s.TotalDuration
		}
		stats.TotalSets += s.CompletedSets
		stats.TotalCircuits += s.CompletedCircuits
	}
	if stats.TotalSessions > 0 {
		stats.AvgDuration = float64(stats.TotalDuration) / float64(stats.TotalSessions)
	}
	return &stats, nil
}

type fakeStatusRepo struct {
	checks []domain.StatusCheck
}

func (r *fakeStatusRepo) Insert(_ context.Context, check domain.StatusCheck) error {
	r.checks = append(r.checks, check)
	return nil
}

func (r *fakeStatusRepo) List(_ context.Context, limit int64) ([]domain.StatusCheck, error) {
	out := r.checks
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	result := make([]domain.StatusCheck, len(out))
	copy(result, out)
	return result, nil
}
