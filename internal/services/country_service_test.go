package services

import (
	"context"
	"testing"
	"time"

	"travel-api/internal/models"
	apperrors "travel-api/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockCountryRepo struct{ mock.Mock }

func (m *mockCountryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Country)
	return c, args.Error(1)
}

func (m *mockCountryRepo) List(ctx context.Context, filter models.CountryFilter, p models.Pagination) ([]models.Country, int64, error) {
	args := m.Called(ctx, filter, p)
	items, _ := args.Get(0).([]models.Country)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockCountryRepo) Create(ctx context.Context, country *models.Country) error {
	return m.Called(ctx, country).Error(0)
}

func (m *mockCountryRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.CountryUpdate) (*models.Country, error) {
	args := m.Called(ctx, id, update)
	c, _ := args.Get(0).(*models.Country)
	return c, args.Error(1)
}

func (m *mockCountryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func TestCountryListDestinations_FiltersByCountryName(t *testing.T) {
	cache, _ := newTestCache(t)
	id := primitive.NewObjectID()
	p := models.Pagination{Page: 1, PerPage: 10}

	countries := new(mockCountryRepo)
	countries.On("GetByID", mock.Anything, id).Return(&models.Country{ID: id, Name: "Japan"}, nil).Once()
	destinations := new(mockDestinationRepo)
	destinations.On("List", mock.Anything, models.DestinationFilter{Country: "Japan"}, p).
		Return([]models.Destination{{Name: "Kyoto", Country: "Japan"}}, int64(1), nil).Once()

	svc := NewCountryService(countries, destinations, cache, NewAuditLogService(nil), time.Minute)

	for i := 0; i < 2; i++ {
		items, total, err := svc.ListDestinations(context.Background(), id, p)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Kyoto", items[0].Name)
	}
	countries.AssertExpectations(t)
	destinations.AssertExpectations(t)
}

func TestCountryListDestinations_UnknownCountry(t *testing.T) {
	id := primitive.NewObjectID()
	countries := new(mockCountryRepo)
	countries.On("GetByID", mock.Anything, id).Return(nil, apperrors.NotFound("country not found"))

	svc := NewCountryService(countries, new(mockDestinationRepo), NopCacheService{}, NewAuditLogService(nil), time.Minute)

	_, _, err := svc.ListDestinations(context.Background(), id, models.Pagination{Page: 1, PerPage: 10})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateCountry_InvalidatesCountryDestinations(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()
	id := primitive.NewObjectID()
	require.NoError(t, cache.Set(ctx, buildCacheKey(destinationsCachePrefix, "country", id.Hex(), 1, 10), "{}", 0))
	require.NoError(t, cache.Set(ctx, buildCacheKey(countriesCachePrefix, "id", id.Hex()), "{}", 0))
	require.NoError(t, cache.Set(ctx, buildCacheKey(destinationsCachePrefix, "id", "other"), "{}", 0))

	name := "Nippon"
	update := &models.CountryUpdate{Name: &name}
	countries := new(mockCountryRepo)
	countries.On("Update", mock.Anything, id, update).Return(&models.Country{ID: id, Name: name}, nil)

	svc := NewCountryService(countries, new(mockDestinationRepo), cache, NewAuditLogService(nil), time.Minute)

	_, err := svc.UpdateCountry(ctx, id, update)
	require.NoError(t, err)

	assert.Equal(t, []string{buildCacheKey(destinationsCachePrefix, "id", "other")}, mr.Keys())
}
