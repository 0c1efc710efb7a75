package logos

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/launchlist/launchlist/pkg/logging"
)

// maxUploadBytes caps logo uploads at 5 MiB.
const maxUploadBytes = 5 << 20

// Handler serves logo uploads.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

// NewHandler creates a logo upload handler.
func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{store: store, logger: logger}
}

// UploadResponse is the body for a successful upload.
type UploadResponse struct {
	LogoURL string `json:"logo_url"`
}

// Upload handles POST /uploads/logo with a multipart "logo" file field.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.store.Enabled() {
		http.Error(w, "logo uploads are not configured", http.StatusServiceUnavailable)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "file too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		http.Error(w, "missing logo file", http.StatusBadRequest)
		return
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		http.Error(w, "logo must be an image", http.StatusBadRequest)
		return
	}

	url, err := h.store.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		h.logger.Error("logo upload failed", "error", err)
		http.Error(w, "failed to store logo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(UploadResponse{LogoURL: url})
}
