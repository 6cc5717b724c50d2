package service

import (
	"context"
	"errors"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrEmptyUpdate      = errors.New("no update data provided")
)

// defaultExercises seeds the library the first time it is listed empty.
var defaultExercises = []struct {
	name        string
	description string
}{
	{"Push-ups", "Standard push-ups"},
	{"Squats", "Bodyweight squats"},
	{"Jumping Jacks", "Full body cardio"},
	{"Mountain Climbers", "Core and cardio"},
}

// ExerciseService manages the exercise library.
type ExerciseService interface {
	// ListExercises returns all exercises, seeding the four defaults when
	// the collection is empty.
	ListExercises(ctx context.Context) ([]domain.Exercise, error)
	CreateExercise(ctx context.Context, name, description string, isActive bool) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// ListExercises returns the whole library. An empty collection is seeded
// with the defaults first; once anything exists, even a single non-default
// exercise, seeding never runs again.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(exercises) > 0 {
		return exercises, nil
	}

	seeded := make([]domain.Exercise, 0, len(defaultExercises))
	for _, def := range defaultExercises {
		exercise := domain.NewExercise(def.name, def.description, true)
		if err := s.exerciseRepo.Insert(ctx, exercise); err != nil {
			return nil, err
		}
		seeded = append(seeded, exercise)
	}
	return seeded, nil
}

// CreateExercise validates and inserts a new exercise.
func (s *exerciseService) CreateExercise(ctx context.Context, name, description string, isActive bool) (*domain.Exercise, error) {
	if name == "" || description == "" {
		return nil, ErrValidationFailed
	}

	exercise := domain.NewExercise(name, description, isActive)
	if err := s.exerciseRepo.Insert(ctx, exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// UpdateExercise applies a partial update, rejecting empty patches.
func (s *exerciseService) UpdateExercise(ctx context.Context, id string, patch domain.ExercisePatch) (*domain.Exercise, error) {
	if patch.IsZero() {
		return nil, ErrEmptyUpdate
	}

	updated, err := s.exerciseRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return updated, nil
}

// DeleteExercise removes an exercise by id.
func (s *exerciseService) DeleteExercise(ctx context.Context, id string) error {
	err := s.exerciseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
