package repository

import (
	"context"
	"time"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DestinationRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)
	List(ctx context.Context, filter models.DestinationFilter, p models.Pagination) ([]models.Destination, int64, error)
	Create(ctx context.Context, destination *models.Destination) error
	Update(ctx context.Context, id primitive.ObjectID, update *models.DestinationUpdate) (*models.Destination, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListTypes(ctx context.Context) ([]string, error)
	FindNames(ctx context.Context, term string, limit int) ([]string, error)
}

type destinationRepository struct {
	coll collection[models.Destination]
}

func NewDestinationRepository(db *mongo.Database) DestinationRepository {
	return &destinationRepository{coll: collection[models.Destination]{c: db.Collection("destinations")}}
}

func (r *destinationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	return r.coll.findByID(ctx, id)
}

func (r *destinationRepository) List(ctx context.Context, filter models.DestinationFilter, p models.Pagination) ([]models.Destination, int64, error) {
	limit, offset := pageArgs(p)
	return r.coll.list(ctx, destinationQuery(filter), newestFirst, limit, offset)
}

func destinationQuery(filter models.DestinationFilter) bson.M {
	q := bson.M{}
	if filter.Search != "" {
		q["$or"] = bson.A{
			bson.M{"name": containsFold(filter.Search)},
			bson.M{"description": containsFold(filter.Search)},
		}
	}
	if filter.Country != "" {
		q["country"] = equalFold(filter.Country)
	}
	if filter.Continent != "" {
		q["continent"] = equalFold(filter.Continent)
	}
	if filter.Type != "" {
		q["types"] = equalFold(filter.Type)
	}
	return q
}

func (r *destinationRepository) Create(ctx context.Context, destination *models.Destination) error {
	return r.coll.insert(ctx, destination)
}

func (r *destinationRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.DestinationUpdate) (*models.Destination, error) {
	update.UpdatedAt = time.Now().UTC()
	return r.coll.updateByID(ctx, id, update)
}

func (r *destinationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.deleteByID(ctx, id)
}

// ListTypes returns every distinct destination type, e.g. "beach".
func (r *destinationRepository) ListTypes(ctx context.Context) ([]string, error) {
	return r.coll.distinctStrings(ctx, "types", bson.M{})
}

// FindNames returns up to limit distinct destination names containing term.
func (r *destinationRepository) FindNames(ctx context.Context, term string, limit int) ([]string, error) {
	names, err := r.coll.distinctStrings(ctx, "name", bson.M{"name": containsFold(term)})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
