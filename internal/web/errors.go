package web

import (
	"errors"
	"net/http"

	"github.com/erazemk/zaloga/internal/store"
)

// storeFailure maps a store error to a status code and a message fit for
// the page.
func storeFailure(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrInvalid):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "no such item"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
