package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"travel-api/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockDestinationService struct{ mock.Mock }

func (m *mockDestinationService) GetDestination(ctx context.Context, id primitive.ObjectID) (*models.Destination, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.Destination)
	return d, args.Error(1)
}

func (m *mockDestinationService) ListDestinations(ctx context.Context, filter models.DestinationFilter, p models.Pagination) ([]models.Destination, int64, error) {
	args := m.Called(ctx, filter, p)
	ds, _ := args.Get(0).([]models.Destination)
	return ds, args.Get(1).(int64), args.Error(2)
}

func (m *mockDestinationService) CreateDestination(ctx context.Context, destination *models.Destination) error {
	args := m.Called(ctx, destination)
	if args.Error(0) == nil {
		destination.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockDestinationService) UpdateDestination(ctx context.Context, id primitive.ObjectID, update *models.DestinationUpdate) (*models.Destination, error) {
	args := m.Called(ctx, id, update)
	d, _ := args.Get(0).(*models.Destination)
	return d, args.Error(1)
}

func (m *mockDestinationService) DeleteDestination(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDestinationService) ListTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]string)
	return types, args.Error(1)
}

func (m *mockDestinationService) Suggest(ctx context.Context, term string) ([]string, error) {
	args := m.Called(ctx, term)
	results, _ := args.Get(0).([]string)
	return results, args.Error(1)
}

type mockSubscriptionService struct{ mock.Mock }

func (m *mockSubscriptionService) Subscribe(ctx context.Context, email, name string) (*models.Subscriber, error) {
	args := m.Called(ctx, email, name)
	s, _ := args.Get(0).(*models.Subscriber)
	return s, args.Error(1)
}

func (m *mockSubscriptionService) ListSubscribers(ctx context.Context, p models.Pagination) ([]models.Subscriber, int64, error) {
	args := m.Called(ctx, p)
	subs, _ := args.Get(0).([]models.Subscriber)
	return subs, args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionService) Unsubscribe(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSubscriptionService) UnsubscribeByEmail(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

type mockBlogService struct{ mock.Mock }

func (m *mockBlogService) GetBlog(ctx context.Context, idOrSlug string) (*models.Blog, error) {
	args := m.Called(ctx, idOrSlug)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogService) ListBlogs(ctx context.Context, filter models.BlogFilter, p models.Pagination) ([]models.Blog, int64, error) {
	args := m.Called(ctx, filter, p)
	items, _ := args.Get(0).([]models.Blog)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockBlogService) CreateBlog(ctx context.Context, blog *models.Blog) error {
	args := m.Called(ctx, blog)
	if args.Error(0) == nil {
		blog.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockBlogService) UpdateBlog(ctx context.Context, id primitive.ObjectID, update *models.BlogUpdate) (*models.Blog, error) {
	args := m.Called(ctx, id, update)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCountryService struct{ mock.Mock }

func (m *mockCountryService) GetCountry(ctx context.Context, id primitive.ObjectID) (*models.Country, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Country)
	return c, args.Error(1)
}

func (m *mockCountryService) ListCountries(ctx context.Context, filter models.CountryFilter, p models.Pagination) ([]models.Country, int64, error) {
	args := m.Called(ctx, filter, p)
	items, _ := args.Get(0).([]models.Country)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockCountryService) CreateCountry(ctx context.Context, country *models.Country) error {
	args := m.Called(ctx, country)
	if args.Error(0) == nil {
		country.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockCountryService) UpdateCountry(ctx context.Context, id primitive.ObjectID, update *models.CountryUpdate) (*models.Country, error) {
	args := m.Called(ctx, id, update)
	c, _ := args.Get(0).(*models.Country)
	return c, args.Error(1)
}

func (m *mockCountryService) DeleteCountry(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCountryService) ListDestinations(ctx context.Context, id primitive.ObjectID, p models.Pagination) ([]models.Destination, int64, error) {
	args := m.Called(ctx, id, p)
	items, _ := args.Get(0).([]models.Destination)
	return items, args.Get(1).(int64), args.Error(2)
}

type mockFeedbackService struct{ mock.Mock }

func (m *mockFeedbackService) SubmitFeedback(ctx context.Context, feedback *models.Feedback) error {
	args := m.Called(ctx, feedback)
	if args.Error(0) == nil {
		feedback.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockFeedbackService) GetFeedback(ctx context.Context, id primitive.ObjectID) (*models.Feedback, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*models.Feedback)
	return f, args.Error(1)
}

func (m *mockFeedbackService) ListFeedback(ctx context.Context, p models.Pagination) ([]models.Feedback, int64, error) {
	args := m.Called(ctx, p)
	items, _ := args.Get(0).([]models.Feedback)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockFeedbackService) DeleteFeedback(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) UploadImage(ctx context.Context, filename, contentType string, body io.ReadSeeker) (string, error) {
	args := m.Called(ctx, filename, contentType)
	return args.String(0), args.Error(1)
}

// serve routes one request through a chi router so URL params resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
