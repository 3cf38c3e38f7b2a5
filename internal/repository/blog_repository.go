package repository

import (
	"context"
	"time"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlogRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	GetBySlug(ctx context.Context, slug string) (*models.Blog, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, filter models.BlogFilter, p models.Pagination) ([]models.Blog, int64, error)
	Create(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, id primitive.ObjectID, update *models.BlogUpdate) (*models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type blogRepository struct {
	coll collection[models.Blog]
}

func NewBlogRepository(db *mongo.Database) BlogRepository {
	return &blogRepository{coll: collection[models.Blog]{c: db.Collection("blogs")}}
}

func (r *blogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.coll.findByID(ctx, id)
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	return r.coll.findOne(ctx, bson.M{"slug": slug})
}

func (r *blogRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	n, err := r.coll.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, translateError(err, "failed to check blog slug")
	}
	return n > 0, nil
}

func (r *blogRepository) List(ctx context.Context, filter models.BlogFilter, p models.Pagination) ([]models.Blog, int64, error) {
	q := bson.M{}
	if filter.Search != "" {
		q["$or"] = bson.A{
			bson.M{"title": containsFold(filter.Search)},
			bson.M{"summary": containsFold(filter.Search)},
		}
	}
	if filter.Tag != "" {
		q["tags"] = equalFold(filter.Tag)
	}

	limit, offset := pageArgs(p)
	return r.coll.list(ctx, q, bson.D{{Key: "publishedAt", Value: -1}}, limit, offset)
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return r.coll.insert(ctx, blog)
}

func (r *blogRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.BlogUpdate) (*models.Blog, error) {
	update.UpdatedAt = time.Now().UTC()
	return r.coll.updateByID(ctx, id, update)
}

func (r *blogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.deleteByID(ctx, id)
}
