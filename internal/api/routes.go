package api

import (
	"encoding/json"
	"net/http"
	"net/netip"
	"time"

	"travel-api/internal/api/handlers"
	"travel-api/internal/middleware"
	"travel-api/internal/services"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Auth          *handlers.AuthHandler
	Destinations  *handlers.DestinationHandler
	Blogs         *handlers.BlogHandler
	Countries     *handlers.CountryHandler
	Feedback      *handlers.FeedbackHandler
	Subscriptions *handlers.SubscriptionHandler
	Uploads       *handlers.UploadHandler
	Stats         *handlers.StatsHandler
	AuditLogs     *handlers.AuditLogHandler
	RequestLogs   *handlers.RequestLogHandler
	Health        http.Handler
}

type RouterConfig struct {
	AuthService    services.AuthService
	RateLimiter    *middleware.IPRateLimiter
	RequestLogger  *middleware.RequestLogger
	TrustedProxies []netip.Prefix
	CacheStale     time.Duration
	CacheTTL       time.Duration
}

func SetupRoutes(h Handlers, cfg RouterConfig) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.TrustedRealIP(cfg.TrustedProxies))
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.Recoverer)
	router.Use(cfg.RequestLogger.LogRequest)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	router.Method(http.MethodGet, "/health", h.Health)

	auth := middleware.AuthMiddleware(cfg.AuthService)
	admin := middleware.AdminMiddleware(cfg.AuthService)
	cached := middleware.CacheControl(cfg.CacheStale, cfg.CacheTTL)
	limited := cfg.RateLimiter.RateLimit

	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.With(limited).Post("/login", h.Auth.Login)
			r.With(auth).Get("/me", h.Auth.Me)
		})

		r.Route("/destinations", func(r chi.Router) {
			r.With(cached).Get("/", h.Destinations.ListDestinations)
			r.With(cached).Get("/types", h.Destinations.ListTypes)
			r.With(cached).Get("/suggestions", h.Destinations.GetSuggestions)
			r.With(cached).Get("/{id}", h.Destinations.GetDestination)
			r.With(admin).Post("/", h.Destinations.CreateDestination)
			r.With(admin).Put("/{id}", h.Destinations.UpdateDestination)
			r.With(admin).Delete("/{id}", h.Destinations.DeleteDestination)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.With(cached).Get("/", h.Blogs.ListBlogs)
			r.With(cached).Get("/{id}", h.Blogs.GetBlog)
			r.With(admin).Post("/", h.Blogs.CreateBlog)
			r.With(admin).Put("/{id}", h.Blogs.UpdateBlog)
			r.With(admin).Delete("/{id}", h.Blogs.DeleteBlog)
		})

		r.Route("/countries", func(r chi.Router) {
			r.With(cached).Get("/", h.Countries.ListCountries)
			r.With(cached).Get("/{id}", h.Countries.GetCountry)
			r.With(cached).Get("/{id}/destinations", h.Countries.ListDestinations)
			r.With(admin).Post("/", h.Countries.CreateCountry)
			r.With(admin).Put("/{id}", h.Countries.UpdateCountry)
			r.With(admin).Delete("/{id}", h.Countries.DeleteCountry)
		})

		r.Route("/feedback", func(r chi.Router) {
			r.With(limited).Post("/", h.Feedback.SubmitFeedback)
			r.With(admin).Get("/", h.Feedback.ListFeedback)
			r.With(admin).Get("/{id}", h.Feedback.GetFeedback)
			r.With(admin).Delete("/{id}", h.Feedback.DeleteFeedback)
		})

		r.Route("/subscribe", func(r chi.Router) {
			r.With(limited).Post("/", h.Subscriptions.Subscribe)
			r.With(limited).Delete("/", h.Subscriptions.Unsubscribe)
			r.With(admin).Get("/", h.Subscriptions.ListSubscribers)
			r.With(admin).Delete("/{id}", h.Subscriptions.DeleteSubscriber)
		})

		r.With(admin).Post("/uploads", h.Uploads.Upload)
		r.With(cached).Get("/stats", h.Stats.GetStats)

		r.Route("/admin", func(r chi.Router) {
			r.Use(admin)
			r.Get("/audit-logs", h.AuditLogs.ListAuditLogs)
			r.Get("/request-logs", h.RequestLogs.ListRequestLogs)
		})
	})

	return router
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
