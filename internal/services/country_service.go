package services

import (
	"context"
	"time"

	"travel-api/internal/models"
	"travel-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const countriesCachePrefix = "countries"

type CountryService interface {
	GetCountry(ctx context.Context, id primitive.ObjectID) (*models.Country, error)
	ListCountries(ctx context.Context, filter models.CountryFilter, p models.Pagination) ([]models.Country, int64, error)
	CreateCountry(ctx context.Context, country *models.Country) error
	UpdateCountry(ctx context.Context, id primitive.ObjectID, update *models.CountryUpdate) (*models.Country, error)
	DeleteCountry(ctx context.Context, id primitive.ObjectID) error
	ListDestinations(ctx context.Context, id primitive.ObjectID, p models.Pagination) ([]models.Destination, int64, error)
}

type countryService struct {
	countryRepo     repository.CountryRepository
	destinationRepo repository.DestinationRepository
	cache           CacheService
	audit           AuditLogService
	cacheTTL        time.Duration
}

func NewCountryService(countryRepo repository.CountryRepository, destinationRepo repository.DestinationRepository, cache CacheService, audit AuditLogService, cacheTTL time.Duration) CountryService {
	return &countryService{
		countryRepo:     countryRepo,
		destinationRepo: destinationRepo,
		cache:           cache,
		audit:           audit,
		cacheTTL:        cacheTTL,
	}
}

func (s *countryService) GetCountry(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	key := buildCacheKey(countriesCachePrefix, "id", id.Hex())

	var cached models.Country
	if cacheLookup(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	country, err := s.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheStore(ctx, s.cache, key, country, s.cacheTTL)
	return country, nil
}

func (s *countryService) ListCountries(ctx context.Context, filter models.CountryFilter, p models.Pagination) ([]models.Country, int64, error) {
	key := buildCacheKey(countriesCachePrefix, "list", filter.Search, filter.Continent, p.Page, p.PerPage)

	var cached cachedPage[models.Country]
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	items, total, err := s.countryRepo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, err
	}
	cacheStore(ctx, s.cache, key, cachedPage[models.Country]{Items: items, Total: total}, s.cacheTTL)
	return items, total, nil
}

func (s *countryService) CreateCountry(ctx context.Context, country *models.Country) error {
	now := time.Now().UTC()
	country.ID = primitive.NewObjectID()
	country.CreatedAt = now
	country.UpdatedAt = now

	if err := s.countryRepo.Create(ctx, country); err != nil {
		return err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionCreate, "country", country.ID.Hex(), models.JSON{"name": country.Name})
	return nil
}

func (s *countryService) UpdateCountry(ctx context.Context, id primitive.ObjectID, update *models.CountryUpdate) (*models.Country, error) {
	country, err := s.countryRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionUpdate, "country", id.Hex(), models.JSON{"name": country.Name})
	return country, nil
}

func (s *countryService) DeleteCountry(ctx context.Context, id primitive.ObjectID) error {
	if err := s.countryRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionDelete, "country", id.Hex(), nil)
	return nil
}

// ListDestinations returns the destinations whose country matches the name of
// the country with the given id.
func (s *countryService) ListDestinations(ctx context.Context, id primitive.ObjectID, p models.Pagination) ([]models.Destination, int64, error) {
	key := buildCacheKey(destinationsCachePrefix, "country", id.Hex(), p.Page, p.PerPage)

	var cached cachedPage[models.Destination]
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	country, err := s.GetCountry(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.destinationRepo.List(ctx, models.DestinationFilter{Country: country.Name}, p)
	if err != nil {
		return nil, 0, err
	}
	cacheStore(ctx, s.cache, key, cachedPage[models.Destination]{Items: items, Total: total}, s.cacheTTL)
	return items, total, nil
}

func (s *countryService) invalidate(ctx context.Context) {
	cacheInvalidate(ctx, s.cache, countriesCachePrefix, destinationsCachePrefix+":country", statsCachePrefix)
}
