package repository

import (
	"context"
	"time"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CountryRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error)
	List(ctx context.Context, filter models.CountryFilter, p models.Pagination) ([]models.Country, int64, error)
	Create(ctx context.Context, country *models.Country) error
	Update(ctx context.Context, id primitive.ObjectID, update *models.CountryUpdate) (*models.Country, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type countryRepository struct {
	coll collection[models.Country]
}

func NewCountryRepository(db *mongo.Database) CountryRepository {
	return &countryRepository{coll: collection[models.Country]{c: db.Collection("countries")}}
}

func (r *countryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	return r.coll.findByID(ctx, id)
}

// List orders countries alphabetically, the way the country picker shows them.
func (r *countryRepository) List(ctx context.Context, filter models.CountryFilter, p models.Pagination) ([]models.Country, int64, error) {
	q := bson.M{}
	if filter.Search != "" {
		q["name"] = containsFold(filter.Search)
	}
	if filter.Continent != "" {
		q["continent"] = equalFold(filter.Continent)
	}

	limit, offset := pageArgs(p)
	return r.coll.list(ctx, q, bson.D{{Key: "name", Value: 1}}, limit, offset)
}

func (r *countryRepository) Create(ctx context.Context, country *models.Country) error {
	return r.coll.insert(ctx, country)
}

func (r *countryRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.CountryUpdate) (*models.Country, error) {
	update.UpdatedAt = time.Now().UTC()
	return r.coll.updateByID(ctx, id, update)
}

func (r *countryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.coll.deleteByID(ctx, id)
}
