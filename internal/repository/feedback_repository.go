package repository

import (
	"context"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error)
	List(ctx context.Context, p models.Pagination) ([]models.Feedback, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type feedbackRepository struct {
	coll collection[models.Feedback]
}

func NewFeedbackRepository(db *mongo.Database) FeedbackRepository {
	return &feedbackRepository{coll: collection[models.Feedback]{c: db.Collection("feedback")}}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.coll.insert(ctx, feedback)
}

func (r *feedbackRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	return r.coll.findByID(ctx, id)
}

func (r *feedbackRepository) List(ctx context.Context, p models.Pagination) ([]models.Feedback, int64, error) {
	limit, offset := pageArgs(p)
	return r.coll.list(ctx, bson.M{}, newestFirst, limit, offset)
}

func (r *feedbackRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.deleteByID(ctx, id)
}
