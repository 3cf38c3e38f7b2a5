package repository

import (
	"context"
	"errors"
	"regexp"
	"sort"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = bson.D{{Key: "createdAt", Value: -1}}

// translateError maps driver errors onto the application taxonomy.
func translateError(err error, message string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return apperrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return apperrors.ErrAlreadyExists
	default:
		return apperrors.Wrap(err, message)
	}
}

// containsFold matches values containing term, ignoring case.
func containsFold(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// equalFold matches values equal to term, ignoring case.
func equalFold(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term) + "$", Options: "i"}
}

// collection holds the CRUD calls shared by every content repository.
type collection[T any] struct {
	c *mongo.Collection
}

func (c collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	if err := c.c.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateError(err, "failed to find document")
	}
	return &doc, nil
}

func (c collection[T]) findByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.findOne(ctx, bson.M{"_id": id})
}

func (c collection[T]) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]T, error) {
	cur, err := c.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, translateError(err, "failed to query documents")
	}
	defer cur.Close(ctx)

	var docs []T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateError(err, "failed to decode documents")
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

// list returns one page of documents matching filter plus the total count.
func (c collection[T]) list(ctx context.Context, filter bson.M, sort bson.D, limit, offset int) ([]T, int64, error) {
	total, err := c.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translateError(err, "failed to count documents")
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	docs, err := c.find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (c collection[T]) insert(ctx context.Context, doc interface{}) error {
	_, err := c.c.InsertOne(ctx, doc)
	return translateError(err, "failed to insert document")
}

// updateByID applies set and returns the document as it is after the update.
func (c collection[T]) updateByID(ctx context.Context, id primitive.ObjectID, set interface{}) (*T, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := c.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return nil, translateError(err, "failed to update document")
	}
	return &doc, nil
}

func (c collection[T]) deleteOne(ctx context.Context, filter bson.M) error {
	result, err := c.c.DeleteOne(ctx, filter)
	if err != nil {
		return translateError(err, "failed to delete document")
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (c collection[T]) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	return c.deleteOne(ctx, bson.M{"_id": id})
}

// distinctStrings returns the sorted distinct string values of field.
func (c collection[T]) distinctStrings(ctx context.Context, field string, filter bson.M) ([]string, error) {
	values, err := c.c.Distinct(ctx, field, filter)
	if err != nil {
		return nil, translateError(err, "failed to list distinct values")
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// pageArgs clamps a pagination request into limit/offset.
func pageArgs(p models.Pagination) (limit, offset int) {
	if p.PerPage <= 0 {
		p.PerPage = models.DefaultPerPage
	}
	if p.PerPage > models.MaxPerPage {
		p.PerPage = models.MaxPerPage
	}
	return p.PerPage, p.Offset()
}
