package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/zaloga/internal/imaging"
	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// historyLimit is how many counts the item page shows.
const historyLimit = 50

type itemView struct {
	PageData
	Item       *model.Item
	History    []model.StockCount
	Suppliers  []model.Supplier
	Categories []model.Category
}

// ItemDetailPage handles GET /items/{id}.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	s.renderItem(w, r, http.StatusOK, PageData{Success: flash(r)})
}

func (s *Server) renderItem(w http.ResponseWriter, r *http.Request, status int, page PageData) {
	id := r.PathValue("id")

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	view := &itemView{Item: item}
	if view.History, err = store.ListCounts(r.Context(), s.DB, id, historyLimit); err == nil {
		if view.Suppliers, err = store.ListSuppliers(r.Context(), s.DB); err == nil {
			view.Categories, err = store.ListCategories(r.Context(), s.DB)
		}
	}
	if err != nil {
		slog.Error("failed to load item page", "error", err)
		page.Error = "Could not load item history: " + err.Error()
		page.Success = ""
		status = http.StatusInternalServerError
		view.History = nil
	}

	page.Title = item.Name
	page.Nav = "manage"
	view.PageData = page
	s.Templates.RenderStatus(w, status, "item_detail.html", view)
}

func (s *Server) itemFailed(w http.ResponseWriter, r *http.Request, prefix string, err error) {
	status, msg := storeFailure(err)
	if status == http.StatusNotFound {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if status == http.StatusInternalServerError {
		slog.Error("item update failed", "id", r.PathValue("id"), "error", err)
	}
	s.renderItem(w, r, status, PageData{Error: prefix + msg})
}

// ItemUpdateSubmit handles POST /items/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	in, err := itemInput(r)
	if err != nil {
		s.renderItem(w, r, http.StatusBadRequest, PageData{Error: "Item not saved: " + err.Error()})
		return
	}
	if err := store.UpdateItem(r.Context(), s.DB, id, in); err != nil {
		s.itemFailed(w, r, "Item not saved: ", err)
		return
	}

	slog.Info("item updated", "id", id, "name", in.Name)
	redirect(w, r, "/items/"+id, "", "item")
}

// ItemCountSubmit handles POST /items/{id}/counts.
func (s *Server) ItemCountSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	qty, err := parseQty(r.FormValue("qty"))
	if err != nil {
		s.renderItem(w, r, http.StatusBadRequest, PageData{Error: "Count not saved: " + err.Error()})
		return
	}
	if _, err := store.AddCount(r.Context(), s.DB, id, qty, r.FormValue("note")); err != nil {
		s.itemFailed(w, r, "Count not saved: ", err)
		return
	}

	slog.Info("count recorded", "item_id", id, "qty", qty.String())
	redirect(w, r, "/items/"+id, "", "count")
}

// ItemDeactivateSubmit handles POST /items/{id}/deactivate.
func (s *Server) ItemDeactivateSubmit(w http.ResponseWriter, r *http.Request) {
	s.setActive(w, r, false)
}

// ItemActivateSubmit handles POST /items/{id}/activate.
func (s *Server) ItemActivateSubmit(w http.ResponseWriter, r *http.Request) {
	s.setActive(w, r, true)
}

func (s *Server) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id := r.PathValue("id")
	if err := store.SetItemActive(r.Context(), s.DB, id, active); err != nil {
		s.itemFailed(w, r, "Status not changed: ", err)
		return
	}
	slog.Info("item active changed", "id", id, "active", active)
	redirect(w, r, "/items/"+id, "", "active")
}

// ItemImageSubmit handles POST /items/{id}/image.
func (s *Server) ItemImageSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUpload)
	if err := r.ParseMultipartForm(imaging.MaxUpload); err != nil {
		s.renderItem(w, r, http.StatusBadRequest, PageData{Error: "Photo too large or invalid upload."})
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		s.renderItem(w, r, http.StatusBadRequest, PageData{Error: "Choose a photo to upload."})
		return
	}
	defer file.Close()

	photo, err := imaging.Normalize(file)
	if err != nil {
		s.renderItem(w, r, http.StatusBadRequest, PageData{Error: "Photo not saved: " + err.Error()})
		return
	}

	if err := store.SetItemImage(r.Context(), s.DB, id, photo.Data, photo.MIME); err != nil {
		s.itemFailed(w, r, "Photo not saved: ", err)
		return
	}

	slog.Info("item photo uploaded", "id", id, "bytes", len(photo.Data))
	redirect(w, r, "/items/"+id, "", "photo")
}

// ItemImageGet handles GET /items/{id}/image.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetItemImage(r.Context(), s.DB, r.PathValue("id"))
	if err != nil {
		slog.Error("failed to get image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
