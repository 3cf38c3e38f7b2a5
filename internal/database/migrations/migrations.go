package migrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-api/internal/logger"
	"travel-api/internal/models"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordsCollection = "schema_migrations"

type Migration struct {
	Name string
	Run  func(ctx context.Context, db *mongo.Database) error
}

// GetMigrations returns every migration in the order it must be applied.
// Names are recorded once applied, so existing entries must never be renamed.
func GetMigrations() []Migration {
	return []Migration{
		{
			Name: "0001_destination_indexes",
			Run: createIndexes("destinations",
				mongo.IndexModel{Keys: bson.D{{Key: "country", Value: 1}}},
				mongo.IndexModel{Keys: bson.D{{Key: "continent", Value: 1}}},
				mongo.IndexModel{Keys: bson.D{{Key: "types", Value: 1}}},
				mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			),
		},
		{
			Name: "0002_blog_indexes",
			Run: createIndexes("blogs",
				mongo.IndexModel{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
				mongo.IndexModel{Keys: bson.D{{Key: "tags", Value: 1}}},
				mongo.IndexModel{Keys: bson.D{{Key: "publishedAt", Value: -1}}},
			),
		},
		{
			Name: "0003_country_indexes",
			Run: createIndexes("countries",
				mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
				mongo.IndexModel{Keys: bson.D{{Key: "continent", Value: 1}}},
			),
		},
		{
			Name: "0004_feedback_indexes",
			Run: createIndexes("feedback",
				mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			),
		},
		{
			Name: "0005_subscriber_indexes",
			Run: createIndexes("subscribers",
				mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			),
		},
		{
			Name: "0006_user_indexes",
			Run: createIndexes("users",
				mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			),
		},
	}
}

// Run applies every migration that has no record yet.
func Run(ctx context.Context, db *mongo.Database) error {
	records := db.Collection(recordsCollection)

	for _, migration := range GetMigrations() {
		var record models.MigrationRecord
		err := records.FindOne(ctx, bson.M{"_id": migration.Name}).Decode(&record)
		if err == nil {
			continue
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("failed to check migration status: %w", err)
		}

		logger.LogEvent(logrus.InfoLevel, "Running migration", logrus.Fields{"migration": migration.Name})
		if err := migration.Run(ctx, db); err != nil {
			return fmt.Errorf("migration '%s' failed: %w", migration.Name, err)
		}

		record = models.MigrationRecord{Name: migration.Name, AppliedAt: time.Now().UTC()}
		if _, err := records.InsertOne(ctx, record); err != nil {
			return fmt.Errorf("failed to record migration '%s': %w", migration.Name, err)
		}
	}
	return nil
}

func createIndexes(collection string, indexes ...mongo.IndexModel) func(context.Context, *mongo.Database) error {
	return func(ctx context.Context, db *mongo.Database) error {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		return err
	}
}
