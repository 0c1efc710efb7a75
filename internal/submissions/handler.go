package submissions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/launchlist/launchlist/pkg/logging"
)

// Handler serves the submission endpoints.
type Handler struct {
	svc    *Service
	logger *logging.Logger
}

// NewHandler creates a submissions handler.
func NewHandler(svc *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Create handles POST /submissions.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var draft Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sub, err := h.svc.Create(r.Context(), draft)
	if err != nil {
		var dup *DuplicateError
		switch {
		case errors.As(err, &dup):
			writeJSON(w, http.StatusConflict, errorResponse{Error: dup.Message})
		case errors.Is(err, ErrMissingCompanyName),
			errors.Is(err, ErrMissingDescription),
			errors.Is(err, ErrInvalidEmail),
			errors.Is(err, ErrInvalidWebsite):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		default:
			h.logger.Error("submission create failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to create submission"})
		}
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

// CheckDuplicate handles GET /submissions/check?company_name=&website=.
func (h *Handler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("company_name"))
	if name == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "company_name is required"})
		return
	}
	website := strings.TrimSpace(r.URL.Query().Get("website"))

	decision := h.svc.CheckDuplicate(r.Context(), name, website)
	writeJSON(w, http.StatusOK, decision)
}

// ListResponse is the body for the admin submissions listing.
type ListResponse struct {
	Submissions []Submission `json:"submissions"`
	Count       int          `json:"count"`
}

// List handles GET /admin/submissions?status=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	subs, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		h.logger.Error("failed to list submissions", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list submissions"})
		return
	}
	if subs == nil {
		subs = []Submission{}
	}

	writeJSON(w, http.StatusOK, ListResponse{Submissions: subs, Count: len(subs)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
