package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserID is used whenever a request does not name a user.
const DefaultUserID = "default"

// Default timer values, in seconds where applicable.
const (
	DefaultWorkTime        = 40
	DefaultRestTime        = 20
	DefaultSetsPerExercise = 3
	DefaultCircuits        = 2
)

// WorkoutSettings holds the timer configuration for one user. There is one
// logical record per userId; the upsert path keys on that field, not on id.
type WorkoutSettings struct {
	ID              string    `bson:"id" json:"id"`
	WorkTime        int       `bson:"workTime" json:"workTime"`
	RestTime        int       `bson:"restTime" json:"restTime"`
	SetsPerExercise int       `bson:"setsPerExercise" json:"setsPerExercise"`
	Circuits        int       `bson:"circuits" json:"circuits"`
	ExerciseOrder   []string  `bson:"exerciseOrder" json:"exerciseOrder"`
	UserID          string    `bson:"userId" json:"userId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// WorkoutSettingsPatch is a partial update of the timer configuration. Nil
// fields are left untouched; a non-nil empty ExerciseOrder clears the order.
type WorkoutSettingsPatch struct {
	WorkTime        *int      `json:"workTime"`
	RestTime        *int      `json:"restTime"`
	SetsPerExercise *int      `json:"setsPerExercise"`
	Circuits        *int      `json:"circuits"`
	ExerciseOrder   *[]string `json:"exerciseOrder"`
}

// IsZero reports whether the patch carries no fields at all.
func (p WorkoutSettingsPatch) IsZero() bool {
	return p.WorkTime == nil && p.RestTime == nil && p.SetsPerExercise == nil &&
		p.Circuits == nil && p.ExerciseOrder == nil
}

// NewWorkoutSettings builds a settings record with all default values for
// the given user.
func NewWorkoutSettings(userID string) WorkoutSettings {
	if userID == "" {
		userID = DefaultUserID
	}
	now := time.Now().UTC()
	return WorkoutSettings{
		ID:              uuid.NewString(),
		WorkTime:        DefaultWorkTime,
		RestTime:        DefaultRestTime,
		SetsPerExercise: DefaultSetsPerExercise,
		Circuits:        DefaultCircuits,
		ExerciseOrder:   []string{},
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
