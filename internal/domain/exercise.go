package domain

import (
	"github.com/google/uuid"
)

// Exercise represents a single exercise definition in the timer's library.
// The id is an application-assigned UUID stored in its own field; the
// mongo-native _id is not used for addressing.
type Exercise struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	IsActive    bool   `bson:"isActive" json:"isActive"`
}

// ExercisePatch is a partial update: nil fields are left untouched.
type ExercisePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// IsZero reports whether the patch carries no fields at all.
func (p ExercisePatch) IsZero() bool {
	return p.Name == nil && p.Description == nil && p.IsActive == nil
}

// NewExercise builds an Exercise with a freshly generated id.
func NewExercise(name, description string, isActive bool) Exercise {
	return Exercise{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    isActive,
	}
}
