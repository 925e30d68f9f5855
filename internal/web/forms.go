package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/erazemk/zaloga/internal/model"
)

// parseQty parses a counted quantity typed into a form.
func parseQty(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, errors.New("quantity required")
	}
	d, err := parseDecimal(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%q is negative", strings.TrimSpace(s))
	}
	return d, nil
}

// parseDecimal wraps model.ParseQuantity with messages fit for a form.
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := model.ParseQuantity(s)
	switch {
	case errors.Is(err, model.ErrQuantityRange):
		return decimal.Decimal{}, errors.New("quantity out of range")
	case err != nil:
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	return d, nil
}

// itemInput reads the item form. Threshold is required, target is optional.
func itemInput(r *http.Request) (model.ItemInput, error) {
	in := model.ItemInput{
		Name:       r.FormValue("name"),
		Unit:       r.FormValue("unit"),
		Note:       r.FormValue("note"),
		SupplierID: r.FormValue("supplier_id"),
		CategoryID: r.FormValue("category_id"),
	}

	threshold, err := parseDecimal(r.FormValue("threshold"))
	if err != nil {
		return in, fmt.Errorf("threshold: %w", err)
	}
	in.Threshold = threshold

	if s := strings.TrimSpace(r.FormValue("target_qty")); s != "" {
		target, err := parseDecimal(s)
		if err != nil {
			return in, fmt.Errorf("target quantity: %w", err)
		}
		in.TargetQty = decimal.NewNullDecimal(target)
	}
	return in, nil
}

// statusQuery rebuilds the status page filter for redirects.
func statusQuery(search string, reorderOnly bool) string {
	v := url.Values{}
	if search != "" {
		v.Set("q", search)
	}
	if reorderOnly {
		v.Set("reorder", "1")
	}
	return v.Encode()
}

// redirect sends a post-redirect-get to path with ok as the flash key.
func redirect(w http.ResponseWriter, r *http.Request, path, query, ok string) {
	v, _ := url.ParseQuery(query)
	if v == nil {
		v = url.Values{}
	}
	v.Set("ok", ok)
	http.Redirect(w, r, path+"?"+v.Encode(), http.StatusSeeOther)
}
