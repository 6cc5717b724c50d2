package mongo

import (
	"context"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statusCollectionName = "status_checks"

// mongoStatusCheckRepository implements repository.StatusCheckRepository
type mongoStatusCheckRepository struct {
	collection *mongo.Collection
}

// NewMongoStatusCheckRepository creates a new StatusCheck repository backed by MongoDB.
func NewMongoStatusCheckRepository(db *mongo.Database) repository.StatusCheckRepository {
	return &mongoStatusCheckRepository{
		collection: db.Collection(statusCollectionName),
	}
}

// Insert appends a status check record.
func (r *mongoStatusCheckRepository) Insert(ctx context.Context, check domain.StatusCheck) error {
	_, err := r.collection.InsertOne(ctx, check)
	return err
}

// List returns up to limit status checks in store default order.
func (r *mongoStatusCheckRepository) List(ctx context.Context, limit int64) ([]domain.StatusCheck, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checks []domain.StatusCheck
	if err = cursor.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
