package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/launchlist/launchlist/internal/companies"
	"github.com/launchlist/launchlist/internal/extraction"
	httpmiddleware "github.com/launchlist/launchlist/internal/http/middleware"
	"github.com/launchlist/launchlist/internal/logos"
	"github.com/launchlist/launchlist/internal/submissions"
	"github.com/launchlist/launchlist/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	CompaniesHandler   *companies.Handler
	SubmissionsHandler *submissions.Handler
	ExtractionHandler  *extraction.Handler
	LogosHandler       *logos.Handler
	MetricsHandler     http.Handler
	AdminAuthSecret    string
	CORSAllowedOrigins []string

	// Requests/sec and burst for the extraction endpoint. Zero means
	// no rate limit.
	ExtractRate  float64
	ExtractBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Public directory reads
	if cfg.CompaniesHandler != nil {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", cfg.CompaniesHandler.List)
			r.Get("/stats", cfg.CompaniesHandler.GetStats)
			r.Get("/{companyID}", cfg.CompaniesHandler.Get)
		})
	}

	// Submission intake
	if cfg.SubmissionsHandler != nil {
		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", cfg.SubmissionsHandler.Create)
			r.Get("/check", cfg.SubmissionsHandler.CheckDuplicate)
		})
	}

	// AI-assisted form prefill
	if cfg.ExtractionHandler != nil {
		extract := r.Group(nil)
		if cfg.ExtractRate > 0 {
			extract.Use(httpmiddleware.RateLimit(cfg.ExtractRate, cfg.ExtractBurst))
		}
		extract.Post("/extract", cfg.ExtractionHandler.Extract)
	}

	if cfg.LogosHandler != nil {
		r.Post("/uploads/logo", cfg.LogosHandler.Upload)
	}

	// Admin routes (protected by JWT)
	if cfg.AdminAuthSecret != "" && cfg.SubmissionsHandler != nil {
		r.Route("/admin", func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
			admin.Get("/submissions", cfg.SubmissionsHandler.List)
		})
	}

	return r
}
