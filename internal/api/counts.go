package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/model"
	"github.com/erazemk/zaloga/internal/store"
)

// CountsHandler records stock counts.
type CountsHandler struct {
	DB *sql.DB
}

type createCountRequest struct {
	ItemID string          `json:"item_id"`
	Qty    json.RawMessage `json:"qty"`
	Note   string          `json:"note"`
}

var errQty = errors.New("qty must be a number")

// parseQty accepts a JSON number or a numeric string.
func parseQty(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Decimal{}, errQty
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return decimal.Decimal{}, errQty
		}
		s = str
	}
	d, err := model.ParseQuantity(s)
	if errors.Is(err, model.ErrQuantityRange) {
		return decimal.Decimal{}, err
	}
	if err != nil {
		return decimal.Decimal{}, errQty
	}
	return d, nil
}

// Create handles POST /api/counts.
func (h *CountsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCountRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ItemID == "" {
		jsonError(w, http.StatusBadRequest, "item_id required")
		return
	}

	qty, err := parseQty(req.Qty)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := store.AddCount(r.Context(), h.DB, req.ItemID, qty, req.Note)
	if err != nil {
		storeError(w, err, "failed to record count")
		return
	}

	slog.Info("count recorded", "item_id", count.ItemID, "qty", count.Qty.String())
	jsonResponse(w, http.StatusCreated, count)
}
