package repository

import (
	"context"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	List(ctx context.Context, p models.Pagination) ([]models.Subscriber, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByEmail(ctx context.Context, email string) error
}

type subscriberRepository struct {
	coll collection[models.Subscriber]
}

func NewSubscriberRepository(db *mongo.Database) SubscriberRepository {
	return &subscriberRepository{coll: collection[models.Subscriber]{c: db.Collection("subscribers")}}
}

// Create inserts the subscriber. A duplicate email surfaces as
// errors.ErrAlreadyExists through the unique index.
func (r *subscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	return r.coll.insert(ctx, subscriber)
}

func (r *subscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return r.coll.findOne(ctx, bson.M{"email": email})
}

func (r *subscriberRepository) List(ctx context.Context, p models.Pagination) ([]models.Subscriber, int64, error) {
	limit, offset := pageArgs(p)
	return r.coll.list(ctx, bson.M{}, newestFirst, limit, offset)
}

func (r *subscriberRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.deleteByID(ctx, id)
}

func (r *subscriberRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.coll.deleteOne(ctx, bson.M{"email": email})
}
