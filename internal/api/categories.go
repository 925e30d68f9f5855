package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// CategoriesHandler handles category endpoints.
type CategoriesHandler struct {
	DB *sql.DB
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := store.ListCategories(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list categories")
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}

// Create handles POST /api/categories.
func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := store.CreateCategory(r.Context(), h.DB, req.Name)
	if err != nil {
		storeError(w, err, "failed to create category")
		return
	}

	slog.Info("category created", "id", c.ID, "name", c.Name)
	jsonResponse(w, http.StatusCreated, c)
}

// Rename handles PUT /api/categories/{id}.
func (h *CategoriesHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.RenameCategory(r.Context(), h.DB, id, req.Name); err != nil {
		storeError(w, err, "failed to rename category")
		return
	}

	c, err := store.GetCategory(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get category")
		return
	}
	jsonResponse(w, http.StatusOK, c)
}

// Delete handles DELETE /api/categories/{id}.
func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.DeleteCategory(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "failed to delete category")
		return
	}

	slog.Info("category deleted", "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "category deleted"})
}
