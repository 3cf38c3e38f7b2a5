package services

import (
	"context"
	"time"

	"travel-api/internal/models"
	"travel-api/internal/repository"
)

const recentItemsLimit = 5

type StatsService interface {
	GetContentStats(ctx context.Context) (*models.ContentStats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	cache     CacheService
	cacheTTL  time.Duration
}

func NewStatsService(statsRepo repository.StatsRepository, cache CacheService, cacheTTL time.Duration) StatsService {
	return &statsService{
		statsRepo: statsRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

func (s *statsService) GetContentStats(ctx context.Context) (*models.ContentStats, error) {
	key := buildCacheKey(statsCachePrefix, "content")

	var cached models.ContentStats
	if cacheLookup(ctx, s.cache, key, &cached) {
		return &cached, nil
	}

	stats := &models.ContentStats{}
	totals := []struct {
		collection string
		dest       *int64
	}{
		{"destinations", &stats.TotalDestinations},
		{"blogs", &stats.TotalBlogs},
		{"countries", &stats.TotalCountries},
		{"subscribers", &stats.TotalSubscribers},
		{"feedback", &stats.TotalFeedback},
	}
	for _, t := range totals {
		n, err := s.statsRepo.CountCollection(ctx, t.collection)
		if err != nil {
			return nil, err
		}
		*t.dest = n
	}

	var err error
	if stats.DestinationsByCountry, err = s.statsRepo.CountDestinationsBy(ctx, "country"); err != nil {
		return nil, err
	}
	if stats.DestinationsByContinent, err = s.statsRepo.CountDestinationsBy(ctx, "continent"); err != nil {
		return nil, err
	}
	if stats.RecentDestinations, err = s.statsRepo.GetRecentDestinations(ctx, recentItemsLimit); err != nil {
		return nil, err
	}
	if stats.RecentBlogs, err = s.statsRepo.GetRecentBlogs(ctx, recentItemsLimit); err != nil {
		return nil, err
	}

	cacheStore(ctx, s.cache, key, stats, s.cacheTTL)
	return stats, nil
}
