package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"betonfit/coach-app/internal/domain"
	"betonfit/coach-app/internal/repository"
)

const programmeCollectionName = "programmes"

// mongoProgrammeRepository implements repository.ProgrammeRepository.
type mongoProgrammeRepository struct {
	collection *mongo.Collection
}

// NewMongoProgrammeRepository creates a new programme repository backed by
// MongoDB.
func NewMongoProgrammeRepository(db *mongo.Database) repository.ProgrammeRepository {
	return &mongoProgrammeRepository{
		collection: db.Collection(programmeCollectionName),
	}
}

// Create inserts a new programme and returns its generated ID.
func (r *mongoProgrammeRepository) Create(ctx context.Context, programme *domain.Programme) (string, error) {
	if programme.Email == "" {
		return "", errors.New("programme email is required")
	}

	programme.ID = "prog-" + uuid.NewString()
	programme.CreatedAt = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, programme); err != nil {
		return "", err
	}
	return programme.ID, nil
}

// GetByID retrieves one programme by its ID.
func (r *mongoProgrammeRepository) GetByID(ctx context.Context, id string) (*domain.Programme, error) {
	var programme domain.Programme
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&programme)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &programme, nil
}

// GetLatestByEmail retrieves the most recently generated programme for an
// email.
func (r *mongoProgrammeRepository) GetLatestByEmail(ctx context.Context, email string) (*domain.Programme, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var programme domain.Programme
	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&programme)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &programme, nil
}

// EnsureProgrammeIndexes creates the indexes for the programmes collection.
// Call once during application startup.
func EnsureProgrammeIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
