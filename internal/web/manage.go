package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

type manageView struct {
	PageData
	Items      []model.Item
	Suppliers  []model.Supplier
	Categories []model.Category
}

// ManagePage handles GET /manage.
func (s *Server) ManagePage(w http.ResponseWriter, r *http.Request) {
	s.renderManage(w, r, http.StatusOK, PageData{Success: flash(r)})
}

func (s *Server) renderManage(w http.ResponseWriter, r *http.Request, status int, page PageData) {
	page.Title = "Manage"
	page.Nav = "manage"
	view := &manageView{}

	var err error
	if view.Items, err = store.ListItems(r.Context(), s.DB, true); err == nil {
		if view.Suppliers, err = store.ListSuppliers(r.Context(), s.DB); err == nil {
			view.Categories, err = store.ListCategories(r.Context(), s.DB)
		}
	}
	if err != nil {
		slog.Error("failed to load manage page", "error", err)
		page.Error = "Could not load records: " + err.Error()
		page.Success = ""
		status = http.StatusInternalServerError
		view.Items, view.Suppliers, view.Categories = nil, nil, nil
	}

	view.PageData = page
	s.Templates.RenderStatus(w, status, "manage.html", view)
}

// manageFailed re-renders the manage page with err.
func (s *Server) manageFailed(w http.ResponseWriter, r *http.Request, what string, err error) {
	status, msg := storeFailure(err)
	if status == http.StatusInternalServerError {
		slog.Error("failed to save "+what, "error", err)
	}
	s.renderManage(w, r, status, PageData{Error: "Could not save " + what + ": " + msg})
}

// ItemCreateSubmit handles POST /manage/items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	in, err := itemInput(r)
	if err != nil {
		s.renderManage(w, r, http.StatusBadRequest, PageData{Error: "Could not save item: " + err.Error()})
		return
	}

	item, err := store.CreateItem(r.Context(), s.DB, in)
	if err != nil {
		s.manageFailed(w, r, "item", err)
		return
	}

	slog.Info("item created", "id", item.ID, "name", item.Name)
	redirect(w, r, "/manage", "", "item")
}

// SupplierCreateSubmit handles POST /manage/suppliers.
func (s *Server) SupplierCreateSubmit(w http.ResponseWriter, r *http.Request) {
	sup, err := store.CreateSupplier(r.Context(), s.DB, r.FormValue("name"))
	if err != nil {
		s.manageFailed(w, r, "supplier", err)
		return
	}
	slog.Info("supplier created", "id", sup.ID, "name", sup.Name)
	redirect(w, r, "/manage", "", "supplier")
}

// SupplierRenameSubmit handles POST /manage/suppliers/{id}.
func (s *Server) SupplierRenameSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.RenameSupplier(r.Context(), s.DB, id, r.FormValue("name")); err != nil {
		s.manageFailed(w, r, "supplier", err)
		return
	}
	slog.Info("supplier renamed", "id", id)
	redirect(w, r, "/manage", "", "supplier")
}

// SupplierDeleteSubmit handles POST /manage/suppliers/{id}/delete.
func (s *Server) SupplierDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.DeleteSupplier(r.Context(), s.DB, id); err != nil {
		s.manageFailed(w, r, "supplier", err)
		return
	}
	slog.Info("supplier deleted", "id", id)
	redirect(w, r, "/manage", "", "deleted")
}

// CategoryCreateSubmit handles POST /manage/categories.
func (s *Server) CategoryCreateSubmit(w http.ResponseWriter, r *http.Request) {
	c, err := store.CreateCategory(r.Context(), s.DB, r.FormValue("name"))
	if err != nil {
		s.manageFailed(w, r, "category", err)
		return
	}
	slog.Info("category created", "id", c.ID, "name", c.Name)
	redirect(w, r, "/manage", "", "category")
}

// CategoryRenameSubmit handles POST /manage/categories/{id}.
func (s *Server) CategoryRenameSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.RenameCategory(r.Context(), s.DB, id, r.FormValue("name")); err != nil {
		s.manageFailed(w, r, "category", err)
		return
	}
	slog.Info("category renamed", "id", id)
	redirect(w, r, "/manage", "", "category")
}

// CategoryDeleteSubmit handles POST /manage/categories/{id}/delete.
func (s *Server) CategoryDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := store.DeleteCategory(r.Context(), s.DB, id); err != nil {
		s.manageFailed(w, r, "category", err)
		return
	}
	slog.Info("category deleted", "id", id)
	redirect(w, r, "/manage", "", "deleted")
}
