package commitmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the commitments collection.
func (repo *MongoCommitmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on commitment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary overlap-query pattern: professional + status + start_time
		{
			Keys:    bson.D{{Key: "professional_id", Value: 1}, {Key: "status", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("professional_status_start_idx"),
		},
		// Daily-cap counting: professional + date + status
		{
			Keys:    bson.D{{Key: "professional_id", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("professional_date_status_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create commitment indexes: %w", err)
	}
	return nil
}
