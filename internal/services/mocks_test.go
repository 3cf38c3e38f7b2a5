package services

import (
	"context"
	"testing"

	"travel-api/internal/config"
	"travel-api/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestCache(t *testing.T) (*RedisCacheService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache, err := NewRedisCacheService(&config.CacheConfig{RedisHost: mr.Host(), RedisPort: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache, mr
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockDestinationRepo struct{ mock.Mock }

func (m *mockDestinationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.Destination)
	return d, args.Error(1)
}

func (m *mockDestinationRepo) List(ctx context.Context, filter models.DestinationFilter, p models.Pagination) ([]models.Destination, int64, error) {
	args := m.Called(ctx, filter, p)
	items, _ := args.Get(0).([]models.Destination)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockDestinationRepo) Create(ctx context.Context, d *models.Destination) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDestinationRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.DestinationUpdate) (*models.Destination, error) {
	args := m.Called(ctx, id, update)
	d, _ := args.Get(0).(*models.Destination)
	return d, args.Error(1)
}

func (m *mockDestinationRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDestinationRepo) ListTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]string)
	return types, args.Error(1)
}

func (m *mockDestinationRepo) FindNames(ctx context.Context, term string, limit int) ([]string, error) {
	args := m.Called(ctx, term, limit)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

type mockBlogRepo struct{ mock.Mock }

func (m *mockBlogRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	args := m.Called(ctx, slug)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockBlogRepo) List(ctx context.Context, filter models.BlogFilter, p models.Pagination) ([]models.Blog, int64, error) {
	args := m.Called(ctx, filter, p)
	items, _ := args.Get(0).([]models.Blog)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogRepo) Create(ctx context.Context, blog *models.Blog) error {
	return m.Called(ctx, blog).Error(0)
}

func (m *mockBlogRepo) Update(ctx context.Context, id primitive.ObjectID, update *models.BlogUpdate) (*models.Blog, error) {
	args := m.Called(ctx, id, update)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSubscriberRepo struct{ mock.Mock }

func (m *mockSubscriberRepo) Create(ctx context.Context, s *models.Subscriber) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSubscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(*models.Subscriber)
	return s, args.Error(1)
}

func (m *mockSubscriberRepo) List(ctx context.Context, p models.Pagination) ([]models.Subscriber, int64, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]models.Subscriber)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriberRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSubscriberRepo) DeleteByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockAuditLogRepo struct{ mock.Mock }

func (m *mockAuditLogRepo) ListAuditLogs(ctx context.Context, entityType string, page, pageSize int) ([]models.AuditLog, int64, error) {
	args := m.Called(ctx, entityType, page, pageSize)
	items, _ := args.Get(0).([]models.AuditLog)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockAuditLogRepo) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) Send(ctx context.Context, msg EmailMessage) error {
	return m.Called(ctx, msg).Error(0)
}
