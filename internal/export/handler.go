package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vectorforge/vectorforge/internal/auth"
	"github.com/vectorforge/vectorforge/internal/document"
	"github.com/vectorforge/vectorforge/internal/project"
	"github.com/vectorforge/vectorforge/internal/render"
)

const maxDocumentSize = 4 << 20 // 4MB

// Handler renders documents to SVG markup over HTTP.
type Handler struct {
	projects *project.Service
}

func NewHandler(projects *project.Service) *Handler {
	return &Handler{projects: projects}
}

// Render handles POST /render: a stateless document-to-SVG conversion.
// The request body is a document; the response is the rendered markup.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDocumentSize)

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
		return
	}

	doc, err := document.Parse(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	markup, err := render.Document(doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeSVG(w, r, markup)
}

// RenderProject handles GET /api/projects/{projectId}/render: renders the
// latest saved snapshot of the project.
func (h *Handler) RenderProject(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	projectID := mux.Vars(r)["projectId"]

	raw, err := h.projects.GetLatestDocument(r.Context(), projectID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	doc, err := document.Parse(raw)
	if err != nil {
		slog.Error("stored document invalid", "project", projectID, "error", err)
		http.Error(w, "stored document is invalid", http.StatusInternalServerError)
		return
	}

	markup, err := render.Document(doc)
	if err != nil {
		slog.Error("render project failed", "project", projectID, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	writeSVG(w, r, markup)
}

func writeSVG(w http.ResponseWriter, r *http.Request, markup string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Length", strconv.Itoa(len(markup)))

	if r.URL.Query().Get("download") == "1" {
		name := r.URL.Query().Get("name")
		if name == "" {
			name = "drawing"
		}
		// Sanitize filename
		name = strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
				return r
			}
			return '-'
		}, name)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.svg"`, name))
	}

	w.WriteHeader(http.StatusOK)
	io.WriteString(w, markup)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not found")
	case errors.Is(err, project.ErrForbidden):
		writeJSONError(w, http.StatusForbidden, "forbidden")
	default:
		slog.Error("service error", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
