package services

import (
	"context"
	"strings"
	"time"

	"travel-api/internal/models"
	"travel-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	destinationsCachePrefix = "destinations"
	statsCachePrefix        = "stats"
	maxSuggestions          = 10
)

type DestinationService interface {
	GetDestination(ctx context.Context, id primitive.ObjectID) (*models.Destination, error)
	ListDestinations(ctx context.Context, filter models.DestinationFilter, p models.Pagination) ([]models.Destination, int64, error)
	CreateDestination(ctx context.Context, destination *models.Destination) error
	UpdateDestination(ctx context.Context, id primitive.ObjectID, update *models.DestinationUpdate) (*models.Destination, error)
	DeleteDestination(ctx context.Context, id primitive.ObjectID) error
	ListTypes(ctx context.Context) ([]string, error)
	Suggest(ctx context.Context, term string) ([]string, error)
}

type destinationService struct {
	destinationRepo repository.DestinationRepository
	cache           CacheService
	audit           AuditLogService
	cacheTTL        time.Duration
}

func NewDestinationService(destinationRepo repository.DestinationRepository, cache CacheService, audit AuditLogService, cacheTTL time.Duration) DestinationService {
	return &destinationService{
		destinationRepo: destinationRepo,
		cache:           cache,
		audit:           audit,
		cacheTTL:        cacheTTL,
	}
}

func (s *destinationService) GetDestination(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	key := buildCacheKey(destinationsCachePrefix, "id", id.Hex())

	var cached models.Destination
	if cacheLookup(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	destination, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheStore(ctx, s.cache, key, destination, s.cacheTTL)
	return destination, nil
}

func (s *destinationService) ListDestinations(ctx context.Context, filter models.DestinationFilter, p models.Pagination) ([]models.Destination, int64, error) {
	key := buildCacheKey(destinationsCachePrefix, "list",
		filter.Search, filter.Country, filter.Continent, filter.Type, p.Page, p.PerPage)

	var cached cachedPage[models.Destination]
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached.Items, cached.Total, nil
	}

	items, total, err := s.destinationRepo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, err
	}
	cacheStore(ctx, s.cache, key, cachedPage[models.Destination]{Items: items, Total: total}, s.cacheTTL)
	return items, total, nil
}

func (s *destinationService) CreateDestination(ctx context.Context, destination *models.Destination) error {
	now := time.Now().UTC()
	destination.ID = primitive.NewObjectID()
	destination.CreatedAt = now
	destination.UpdatedAt = now

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		return err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionCreate, "destination", destination.ID.Hex(),
		models.JSON{"name": destination.Name, "country": destination.Country})
	return nil
}

func (s *destinationService) UpdateDestination(ctx context.Context, id primitive.ObjectID, update *models.DestinationUpdate) (*models.Destination, error) {
	destination, err := s.destinationRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionUpdate, "destination", id.Hex(),
		models.JSON{"name": destination.Name})
	return destination, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, id primitive.ObjectID) error {
	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	recordAudit(ctx, s.audit, models.AuditActionDelete, "destination", id.Hex(), nil)
	return nil
}

func (s *destinationService) ListTypes(ctx context.Context) ([]string, error) {
	key := buildCacheKey(destinationsCachePrefix, "types")

	var cached []string
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	types, err := s.destinationRepo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	cacheStore(ctx, s.cache, key, types, s.cacheTTL)
	return types, nil
}

// Suggest returns destination names containing term, for search-as-you-type.
func (s *destinationService) Suggest(ctx context.Context, term string) ([]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []string{}, nil
	}

	key := buildCacheKey(destinationsCachePrefix, "suggest", strings.ToLower(term))

	var cached []string
	if cacheLookup(ctx, s.cache, key, &cached) {
		return cached, nil
	}

	names, err := s.destinationRepo.FindNames(ctx, term, maxSuggestions)
	if err != nil {
		return nil, err
	}
	cacheStore(ctx, s.cache, key, names, s.cacheTTL)
	return names, nil
}

func (s *destinationService) invalidate(ctx context.Context) {
	cacheInvalidate(ctx, s.cache, destinationsCachePrefix, statsCachePrefix)
}
