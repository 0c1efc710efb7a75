package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/launchlist/launchlist/pkg/logging"
)

// Extractor is the subset of Service the handler depends on.
type Extractor interface {
	Extract(ctx context.Context, req Request) (*Result, error)
}

// Handler exposes the extraction pipeline over HTTP.
type Handler struct {
	svc    Extractor
	logger *logging.Logger
}

// NewHandler creates an extraction HTTP handler.
func NewHandler(svc Extractor, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// ExtractRequest is the JSON body for POST /extract.
type ExtractRequest struct {
	Text       string `json:"text"`
	WebsiteURL string `json:"website_url"`
	Model      string `json:"model"`
	Search     bool   `json:"search"`
}

// ExtractResponse wraps a successful extraction.
type ExtractResponse struct {
	Parsed *Result `json:"parsed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Extract handles POST /extract.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Text is required"})
		return
	}

	result, err := h.svc.Extract(r.Context(), Request{
		Text:      req.Text,
		HintedURL: req.WebsiteURL,
		Model:     req.Model,
		UseSearch: req.Search,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Text is required"})
		case errors.Is(err, ErrMalformedResponse):
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Invalid JSON response from AI"})
		case errors.Is(err, ErrInference):
			h.logger.Error("extraction upstream failure", "error", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		default:
			h.logger.Error("extraction failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{Parsed: result})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
