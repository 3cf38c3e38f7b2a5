package repository

import (
	"context"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepository interface {
	CountCollection(ctx context.Context, name string) (int64, error)
	CountDestinationsBy(ctx context.Context, field string) (map[string]int64, error)
	GetRecentDestinations(ctx context.Context, limit int) ([]models.Destination, error)
	GetRecentBlogs(ctx context.Context, limit int) ([]models.Blog, error)
}

type statsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountCollection(ctx context.Context, name string) (int64, error) {
	n, err := r.db.Collection(name).EstimatedDocumentCount(ctx)
	return n, translateError(err, "failed to count "+name)
}

// CountDestinationsBy groups destinations on field and counts each group.
// Documents without the field are not counted.
func (r *statsRepository) CountDestinationsBy(ctx context.Context, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: field, Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.db.Collection("destinations").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, translateError(err, "failed to aggregate destinations")
	}
	defer cur.Close(ctx)

	var results []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &results); err != nil {
		return nil, translateError(err, "failed to decode destination counts")
	}

	counts := make(map[string]int64, len(results))
	for _, result := range results {
		counts[result.Key] = result.Count
	}
	return counts, nil
}

func (r *statsRepository) GetRecentDestinations(ctx context.Context, limit int) ([]models.Destination, error) {
	coll := collection[models.Destination]{c: r.db.Collection("destinations")}
	return coll.find(ctx, bson.M{}, options.Find().SetSort(newestFirst).SetLimit(int64(limit)))
}

func (r *statsRepository) GetRecentBlogs(ctx context.Context, limit int) ([]models.Blog, error) {
	coll := collection[models.Blog]{c: r.db.Collection("blogs")}
	return coll.find(ctx, bson.M{}, options.Find().SetSort(newestFirst).SetLimit(int64(limit)))
}
