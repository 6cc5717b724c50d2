package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus enumerates the lifecycle states of a workout session.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// WorkoutSession records one run of the timer. Exercises and Settings are
// full snapshots taken at session start; later edits to the library or to
// the user's settings do not affect past sessions.
type WorkoutSession struct {
	ID                string          `bson:"id" json:"id"`
	UserID            string          `bson:"userId" json:"userId"`
	Exercises         []Exercise      `bson:"exercises" json:"exercises"`
	Settings          WorkoutSettings `bson:"settings" json:"settings"`
	StartedAt         time.Time       `bson:"startedAt" json:"startedAt"`
	CompletedAt       *time.Time      `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	TotalDuration     *int            `bson:"totalDuration,omitempty" json:"totalDuration,omitempty"`
	CompletedSets     int             `bson:"completedSets" json:"completedSets"`
	CompletedCircuits int             `bson:"completedCircuits" json:"completedCircuits"`
	Status            SessionStatus   `bson:"status" json:"status"`
}

// NewWorkoutSession starts a session for the given user, embedding the
// supplied snapshots and zeroed progress counters.
func NewWorkoutSession(userID string, exercises []Exercise, settings WorkoutSettings) WorkoutSession {
	if userID == "" {
		userID = DefaultUserID
	}
	return WorkoutSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Exercises: exercises,
		Settings:  settings,
		StartedAt: time.Now().UTC(),
		Status:    SessionActive,
	}
}

// WorkoutStats aggregates completed sessions for one user. All fields are
// zero when the user has no completed sessions.
type WorkoutStats struct {
	TotalSessions int     `bson:"totalSessions" json:"totalSessions"`
	TotalDuration int     `bson:"totalDuration" json:"totalDuration"`
	AvgDuration   float64 `bson:"avgDuration" json:"avgDuration"`
	TotalSets     int     `bson:"totalSets" json:"totalSets"`
	TotalCircuits int     `bson:"totalCircuits" json:"totalCircuits"`
}
