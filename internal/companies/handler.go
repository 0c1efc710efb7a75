package companies

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/launchlist/launchlist/internal/founders"
	"github.com/launchlist/launchlist/pkg/logging"
)

// Handler serves the public directory read API.
type Handler struct {
	repo     Repository
	founders founders.Repository
	stats    StatsSource
	logger   *logging.Logger
}

// NewHandler creates a directory handler.
func NewHandler(repo Repository, foundersRepo founders.Repository, stats StatsSource, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{repo: repo, founders: foundersRepo, stats: stats, logger: logger}
}

// ListResponse is the body for GET /companies.
type ListResponse struct {
	Companies []Company `json:"companies"`
	Count     int       `json:"count"`
}

// List handles GET /companies with optional industry/is_top/hiring/search filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := Filter{
		Industry: q.Get("industry"),
		IsTop:    q.Get("is_top") == "true",
		Hiring:   q.Get("hiring") == "true",
		Search:   q.Get("search"),
	}

	list, err := h.repo.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to list companies", "error", err)
		http.Error(w, "failed to list companies", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []Company{}
	}

	writeJSON(w, http.StatusOK, ListResponse{Companies: list, Count: len(list)})
}

// DetailResponse is a company with its related records.
type DetailResponse struct {
	Company
	Founders []founders.Founder `json:"founders"`
}

// Get handles GET /companies/{companyID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "companyID")
	if id == "" {
		http.Error(w, "missing company id", http.StatusBadRequest)
		return
	}

	company, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "company not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to load company", "error", err, "company_id", id)
		http.Error(w, "failed to load company", http.StatusInternalServerError)
		return
	}

	detail := DetailResponse{Company: *company, Founders: []founders.Founder{}}
	if h.founders != nil {
		// related records are best-effort on the read path
		if people, err := h.founders.ListByCompany(r.Context(), id); err != nil {
			h.logger.Warn("failed to load founders", "error", err, "company_id", id)
		} else if people != nil {
			detail.Founders = people
		}
	}

	writeJSON(w, http.StatusOK, detail)
}

// GetStats handles GET /companies/stats.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context())
	if err != nil {
		h.logger.Error("failed to compute stats", "error", err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
