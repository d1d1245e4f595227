package commitmentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"worklink/database"
	"worklink/models"
	"worklink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoCommitmentRepo implements CommitmentRepository using MongoDB.
type MongoCommitmentRepo struct {
	coll *mongo.Collection
}

// NewMongoCommitmentRepo constructs a new instance of MongoCommitmentRepo.
func NewMongoCommitmentRepo() CommitmentRepository {
	db := database.MongoClient.Database("worklink")
	repo := &MongoCommitmentRepo{
		coll: db.Collection("commitments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure commitment indexes", zap.Error(err))
	}
	return repo
}

func (repo *MongoCommitmentRepo) Insert(ctx context.Context, commitment *models.Commitment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, commitment); err != nil {
		return fmt.Errorf("error inserting commitment: %w", err)
	}
	return nil
}

func (repo *MongoCommitmentRepo) GetByID(ctx context.Context, id string) (*models.Commitment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var commitment models.Commitment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&commitment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("commitment with id %s not found", id)
		}
		return nil, fmt.Errorf("error fetching commitment %s: %w", id, err)
	}
	return &commitment, nil
}

// FindOverlapping applies the half-open overlap test in the query itself:
// start_time < windowEnd AND end_time > windowStart.
func (repo *MongoCommitmentRepo) FindOverlapping(ctx context.Context, professionalID string, windowStart, windowEnd time.Time) ([]models.Commitment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"status":          models.CommitmentActive,
		"start_time":      bson.M{"$lt": windowEnd},
		"end_time":        bson.M{"$gt": windowStart},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding overlapping commitments: %w", err)
	}
	defer cursor.Close(ctx)

	var commitments []models.Commitment
	if err := cursor.All(ctx, &commitments); err != nil {
		return nil, fmt.Errorf("error decoding commitments: %w", err)
	}
	return commitments, nil
}

func (repo *MongoCommitmentRepo) CountActiveOnDate(ctx context.Context, professionalID, date string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            date,
		"status":          models.CommitmentActive,
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting commitments for %s on %s: %w", professionalID, date, err)
	}
	return int(count), nil
}

func (repo *MongoCommitmentRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	filter := bson.M{"id": id, "status": models.CommitmentActive}
	update := bson.M{"$set": bson.M{
		"status":       models.CommitmentCancelled,
		"cancelled_at": now,
	}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling commitment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("commitment %s is not active", id)
	}
	return nil
}

func (repo *MongoCommitmentRepo) ListWindow(ctx context.Context, professionalID string, windowStart, windowEnd time.Time) ([]models.Commitment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"start_time":      bson.M{"$lt": windowEnd},
		"end_time":        bson.M{"$gt": windowStart},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_time", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing commitments: %w", err)
	}
	defer cursor.Close(ctx)

	var commitments []models.Commitment
	if err := cursor.All(ctx, &commitments); err != nil {
		return nil, fmt.Errorf("error decoding commitments: %w", err)
	}
	return commitments, nil
}
