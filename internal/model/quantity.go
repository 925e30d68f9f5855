package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxScale is the most decimal places a quantity may carry.
	MaxScale = 6

	// maxQtyText bounds the input handed to the decimal parser.
	maxQtyText = 32
)

// MaxQuantity is the largest count, threshold or target accepted.
var MaxQuantity = decimal.New(1, 12)

var (
	// ErrNotNumber marks text that does not parse as a decimal.
	ErrNotNumber = errors.New("not a number")
	// ErrQuantityRange marks a quantity that is too large or too precise.
	ErrQuantityRange = errors.New("quantity out of range")
)

// CheckQuantity rejects quantities whose stored text would be unbounded.
// The exponent is checked before anything that expands the coefficient.
func CheckQuantity(d decimal.Decimal) error {
	exp := d.Exponent()
	if exp < -MaxScale || exp > 12 {
		return ErrQuantityRange
	}
	if d.NumDigits() > 18+MaxScale {
		return ErrQuantityRange
	}
	if d.Abs().GreaterThan(MaxQuantity) {
		return ErrQuantityRange
	}
	return nil
}

// ParseQuantity parses user-entered text into a bounded decimal. Sign is
// not checked here.
func ParseQuantity(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrNotNumber
	}
	if len(s) > maxQtyText {
		return decimal.Decimal{}, ErrQuantityRange
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrNotNumber
	}
	if err := CheckQuantity(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}
