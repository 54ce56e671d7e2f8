package repository

import (
	"context"
	"time"

	"github.com/HugoDataAnalyst/TravelTide/internal/domain/entity"
	"github.com/HugoDataAnalyst/TravelTide/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFeatureSnapshotRepository implements FeatureSnapshotRepository
type MongoFeatureSnapshotRepository struct {
	collection *mongo.Collection
}

// featureSnapshotDoc wraps one feature record with run bookkeeping
type featureSnapshotDoc struct {
	RunID     string                   `bson:"runId"`
	UserID    int64                    `bson:"userId"`
	Features  entity.UserFeatureRecord `bson:"features"`
	CreatedAt time.Time                `bson:"createdAt"`
}

// NewMongoFeatureSnapshotRepository creates a new feature snapshot repository
func NewMongoFeatureSnapshotRepository(db *mongo.Database) repository.FeatureSnapshotRepository {
	collection := db.Collection("feature_snapshots")

	// Create unique index on (runId, userId)
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "runId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	return &MongoFeatureSnapshotRepository{
		collection: collection,
	}
}

// SaveRun bulk-inserts the feature vectors of one pipeline run
func (r *MongoFeatureSnapshotRepository) SaveRun(ctx context.Context, runID string, records []entity.UserFeatureRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(records))
	for _, record := range records {
		docs = append(docs, featureSnapshotDoc{
			RunID:     runID,
			UserID:    record.UserID,
			Features:  record,
			CreatedAt: now,
		})
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
