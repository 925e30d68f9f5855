package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

type nameRequest struct {
	Name string `json:"name"`
}

// SuppliersHandler handles supplier endpoints.
type SuppliersHandler struct {
	DB *sql.DB
}

// List handles GET /api/suppliers.
func (h *SuppliersHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := store.ListSuppliers(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list suppliers")
		return
	}
	if suppliers == nil {
		suppliers = []model.Supplier{}
	}
	jsonResponse(w, http.StatusOK, suppliers)
}

// Create handles POST /api/suppliers.
func (h *SuppliersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s, err := store.CreateSupplier(r.Context(), h.DB, req.Name)
	if err != nil {
		storeError(w, err, "failed to create supplier")
		return
	}

	slog.Info("supplier created", "id", s.ID, "name", s.Name)
	jsonResponse(w, http.StatusCreated, s)
}

// Rename handles PUT /api/suppliers/{id}.
func (h *SuppliersHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.RenameSupplier(r.Context(), h.DB, id, req.Name); err != nil {
		storeError(w, err, "failed to rename supplier")
		return
	}

	s, err := store.GetSupplier(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "failed to get supplier")
		return
	}
	jsonResponse(w, http.StatusOK, s)
}

// Delete handles DELETE /api/suppliers/{id}.
func (h *SuppliersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.DeleteSupplier(r.Context(), h.DB, id); err != nil {
		storeError(w, err, "failed to delete supplier")
		return
	}

	slog.Info("supplier deleted", "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "supplier deleted"})
}
