package mongo

import (
	"context"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "workout_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new WorkoutSession repository backed by MongoDB.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Insert adds a new session document.
func (r *mongoSessionRepository) Insert(ctx context.Context, session domain.WorkoutSession) error {
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

// ListByUser returns at most limit sessions for the user, most recently
// started first.
func (r *mongoSessionRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]domain.WorkoutSession, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "startedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []domain.WorkoutSession
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Complete marks the session completed in a single pipeline update: the
// server computes totalDuration from $$NOW and the stored startedAt, so
// there is no read-then-write window to race against.
func (r *mongoSessionRepository) Complete(ctx context.Context, id string, completedSets, completedCircuits int) error {
	update := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: string(domain.SessionCompleted)},
			{Key: "completedAt", Value: "$$NOW"},
			{Key: "completedSets", Value: completedSets},
			{Key: "completedCircuits", Value: completedCircuits},
			{Key: "totalDuration", Value: bson.D{{Key: "$toInt", Value: bson.D{{Key: "$divide", Value: bson.A{
				bson.D{{Key: "$subtract", Value: bson.A{"$$NOW", "$startedAt"}}},
				1000,
			}}}}}},
		}}},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Stats aggregates the user's completed sessions. A user with no completed
// sessions gets the zero value, never a missing result.
func (r *mongoSessionRepository) Stats(ctx context.Context, userID string) (*domain.WorkoutStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "userId", Value: userID},
			{Key: "status", Value: string(domain.SessionCompleted)},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalDuration", Value: bson.D{{Key: "$sum", Value: "$totalDuration"}}},
			{Key: "avgDuration", Value: bson.D{{Key: "$avg", Value: "$totalDuration"}}},
			{Key: "totalSets", Value: bson.D{{Key: "$sum", Value: "$completedSets"}}},
			{Key: "totalCircuits", Value: bson.D{{Key: "$sum", Value: "$completedCircuits"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []domain.WorkoutStats
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.WorkoutStats{}, nil
	}
	return &results[0], nil
}

// EnsureSessionIndexes creates necessary indexes for the workout_sessions
// collection.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Session lookup by application id (completion endpoint)
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			// Recent-sessions listing and the stats $match
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "startedAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
