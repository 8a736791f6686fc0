package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"betonfit/coach-app/internal/domain"
	"betonfit/coach-app/internal/repository"
)

const intakeCollectionName = "intakes"

// mongoIntakeRepository implements repository.IntakeRepository.
type mongoIntakeRepository struct {
	collection *mongo.Collection
}

// NewMongoIntakeRepository creates a new intake repository backed by MongoDB.
func NewMongoIntakeRepository(db *mongo.Database) repository.IntakeRepository {
	return &mongoIntakeRepository{
		collection: db.Collection(intakeCollectionName),
	}
}

// Upsert inserts or replaces the stored answers for the intake's email.
func (r *mongoIntakeRepository) Upsert(ctx context.Context, intake *domain.Intake) error {
	if intake.Email == "" {
		return errors.New("intake email is required")
	}

	now := time.Now().UTC()
	intake.UpdatedAt = now
	if intake.CreatedAt.IsZero() {
		intake.CreatedAt = now
	}

	filter := bson.M{"_id": intake.Email}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, intake, opts); err != nil {
		return err
	}
	return nil
}

// GetByEmail retrieves the stored answers for an email.
func (r *mongoIntakeRepository) GetByEmail(ctx context.Context, email string) (*domain.Intake, error) {
	var intake domain.Intake
	err := r.collection.FindOne(ctx, bson.M{"_id": email}).Decode(&intake)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &intake, nil
}

// EnsureIntakeIndexes creates the indexes for the intakes collection.
// Call once during application startup.
func EnsureIntakeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "updatedAt", Value: -1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
