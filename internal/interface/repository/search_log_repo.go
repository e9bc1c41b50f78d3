package repository

import (
	"context"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSearchLogRepository implements SearchLogRepository
type MongoSearchLogRepository struct {
	collection *mongo.Collection
}

// NewMongoSearchLogRepository creates a new search log repository
func NewMongoSearchLogRepository(db *mongo.Database) repository.SearchLogRepository {
	collection := db.Collection("search_logs")

	// Create indexes for route popularity and recency queries
	ctx := context.Background()
	routeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "origin", Value: 1},
			{Key: "destination", Value: 1},
		},
	}
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{routeIndex, createdAtIndex})

	return &MongoSearchLogRepository{
		collection: collection,
	}
}

// Save inserts a search log, assigning an id and timestamp when missing
func (r *MongoSearchLogRepository) Save(ctx context.Context, log *entity.SearchLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	_, err := r.collection.InsertOne(ctx, log)
	return err
}
