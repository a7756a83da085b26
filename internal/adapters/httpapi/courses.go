package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Guilhem-Bonnet/courseinfo/internal/app"
	"github.com/Guilhem-Bonnet/courseinfo/internal/domain"
	"github.com/Guilhem-Bonnet/courseinfo/internal/httpjson"
	"github.com/Guilhem-Bonnet/courseinfo/internal/ports"
)

type CoursesHandler struct {
	catalog *app.CourseCatalogService
}

func NewCoursesHandler(catalog *app.CourseCatalogService) *CoursesHandler {
	return &CoursesHandler{catalog: catalog}
}

func (h *CoursesHandler) Routes(r chi.Router) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.list)
		r.Put("/{id}/notes", h.putNotes)
	})
	r.Post("/sync/{authorId}", h.sync)
}

type courseResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Length int64   `json:"length"`
	URL    string  `json:"url"`
	Notes  *string `json:"notes,omitempty"`
}

func toCourseResponse(c domain.Course) courseResponse {
	return courseResponse{ID: c.ID, Name: c.Name, Length: c.Length, URL: c.URL, Notes: c.Notes}
}

func (h *CoursesHandler) list(w http.ResponseWriter, r *http.Request) {
	courses, err := h.catalog.List(r.Context())
	if err != nil {
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]courseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseResponse(c))
	}
	httpjson.Write(w, http.StatusOK, out)
}

type putNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *CoursesHandler) putNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req putNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	err := h.catalog.AddNotes(r.Context(), id, req.Notes)
	switch {
	case err == nil:
		httpjson.Write(w, http.StatusOK, map[string]string{"status": "updated"})
	case errors.Is(err, ports.ErrNotFound):
		httpjson.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidCourse):
		httpjson.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *CoursesHandler) sync(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "authorId")
	stored, err := h.catalog.Sync(r.Context(), authorID)
	if err != nil {
		var re *app.RetrievalError
		if errors.As(err, &re) {
			httpjson.WriteError(w, http.StatusBadGateway, err.Error())
			return
		}
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"authorId": authorID, "stored": stored})
}
