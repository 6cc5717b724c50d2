package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/abbasalialoc/HIIT/internal/domain"
	"github.com/abbasalialoc/HIIT/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsCollectionName = "workout_settings"

// mongoSettingsRepository implements repository.SettingsRepository
type mongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewMongoSettingsRepository creates a new WorkoutSettings repository backed by MongoDB.
func NewMongoSettingsRepository(db *mongo.Database) repository.SettingsRepository {
	return &mongoSettingsRepository{
		collection: db.Collection(settingsCollectionName),
	}
}

// settingsPatchToSet maps the non-nil patch fields to a $set document.
func settingsPatchToSet(patch domain.WorkoutSettingsPatch) bson.M {
	set := bson.M{}
	if patch.WorkTime != nil {
		set["workTime"] = *patch.WorkTime
	}
	if patch.RestTime != nil {
		set["restTime"] = *patch.RestTime
	}
	if patch.SetsPerExercise != nil {
		set["setsPerExercise"] = *patch.SetsPerExercise
	}
	if patch.Circuits != nil {
		set["circuits"] = *patch.Circuits
	}
	if patch.ExerciseOrder != nil {
		set["exerciseOrder"] = *patch.ExerciseOrder
	}
	return set
}

// GetOrCreate returns the settings record for the user, inserting an
// all-default one in the same conditional write when none exists yet.
func (r *mongoSettingsRepository) GetOrCreate(ctx context.Context, userID string) (*domain.WorkoutSettings, error) {
	defaults := domain.NewWorkoutSettings(userID)
	update := bson.M{"$setOnInsert": defaults}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings domain.WorkoutSettings
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert merges the non-nil patch fields into the user's record, creating it
// with defaults for the unsupplied fields when absent. Keyed on userId; a
// single conditional write, so two racing first calls cannot both insert.
func (r *mongoSettingsRepository) Upsert(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error) {
	set := settingsPatchToSet(patch)
	set["updatedAt"] = time.Now().UTC()

	defaults := domain.NewWorkoutSettings(userID)
	insertDefaults := bson.M{
		"id":              defaults.ID,
		"userId":          defaults.UserID,
		"createdAt":       defaults.CreatedAt,
		"workTime":        defaults.WorkTime,
		"restTime":        defaults.RestTime,
		"setsPerExercise": defaults.SetsPerExercise,
		"circuits":        defaults.Circuits,
		"exerciseOrder":   defaults.ExerciseOrder,
	}
	// Fields carried by the patch are written via $set; they must not
	// appear in $setOnInsert as well.
	for field := range set {
		delete(insertDefaults, field)
	}

	update := bson.M{"$set": set, "$setOnInsert": insertDefaults}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var settings domain.WorkoutSettings
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, update, opts).Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update applies the non-nil patch fields to an existing record and stamps
// updatedAt. Returns ErrNotFound when the user has no settings.
func (r *mongoSettingsRepository) Update(ctx context.Context, userID string, patch domain.WorkoutSettingsPatch) (*domain.WorkoutSettings, error) {
	set := settingsPatchToSet(patch)
	set["updatedAt"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var settings domain.WorkoutSettings
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"userId": userID}, bson.M{"$set": set}, opts).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// EnsureSettingsIndexes creates necessary indexes for the workout_settings
// collection. The unique userId index makes one-record-per-user a database
// invariant, not just a convention of the upsert path.
func EnsureSettingsIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
