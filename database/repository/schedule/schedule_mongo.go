package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"worklink/database"
	"worklink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("worklink")
	return &MongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
}

func (repo *MongoScheduleRepo) Get(ctx context.Context, professionalID string) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	filter := bson.M{"professional_id": professionalID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching schedule for professional %s: %w", professionalID, err)
	}
	return &schedule, nil
}

func (repo *MongoScheduleRepo) Replace(ctx context.Context, schedule *models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	filter := bson.M{"professional_id": schedule.ProfessionalID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.coll.ReplaceOne(ctx, filter, schedule, opts); err != nil {
		return fmt.Errorf("error replacing schedule for professional %s: %w", schedule.ProfessionalID, err)
	}
	return nil
}
