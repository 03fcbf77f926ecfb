package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cherrera-dev/portfolio-api/internal/projects"
)

// ListProjectsHandler returns the catalog, filtered and sorted by the
// optional query parameters. With no parameters the defaults apply:
// everything visible, newest first.
func (h *APIHandler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	state := filterStateFromQuery(r)
	result := projects.Filter(h.projectStore.List(), state)
	json.NewEncoder(w).Encode(result)
}

func filterStateFromQuery(r *http.Request) projects.FilterState {
	q := r.URL.Query()
	state := projects.DefaultFilterState()

	state.SearchQuery = q.Get("search")
	state.Categories = splitParam(q.Get("categories"))
	state.Tiers = splitParam(q.Get("tiers"))
	state.ProjectTypes = splitParam(q.Get("types"))

	if min, err := strconv.Atoi(q.Get("difficultyMin")); err == nil {
		state.DifficultyRange[0] = min
	}
	if max, err := strconv.Atoi(q.Get("difficultyMax")); err == nil {
		state.DifficultyRange[1] = max
	}
	if q.Get("featured") == "true" {
		state.ShowFeaturedOnly = true
	}
	if q.Get("new") == "true" {
		state.ShowNewOnly = true
	}
	if sortBy := q.Get("sortBy"); sortBy != "" {
		state.SortBy = projects.SortOrder(sortBy)
	}
	return state
}

func splitParam(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (h *APIHandler) GetProjectHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	project := h.projectStore.Get(projectID)
	if project == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(project)
}

func (h *APIHandler) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	var project projects.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if project.Title == "" || project.Slug == "" {
		http.Error(w, "Title and slug are required", http.StatusBadRequest)
		return
	}

	created, err := h.projectStore.Create(project)
	if err != nil {
		h.logger.Error("failed to create project", zap.String("slug", project.Slug), zap.Error(err))
		http.Error(w, "Failed to save project", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *APIHandler) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	var project projects.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.projectStore.Update(projectID, project)
	if err != nil {
		h.logger.Error("failed to update project", zap.String("id", projectID), zap.Error(err))
		http.Error(w, "Failed to update project", http.StatusInternalServerError)
		return
	}
	if updated == nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(updated)
}

func (h *APIHandler) DeleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectID")

	deleted, err := h.projectStore.Delete(projectID)
	if err != nil {
		h.logger.Error("failed to delete project", zap.String("id", projectID), zap.Error(err))
		http.Error(w, "Failed to delete project", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
