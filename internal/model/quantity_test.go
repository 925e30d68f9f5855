package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"4", "4", nil},
		{" 2.5 ", "2.5", nil},
		{"0.000001", "0.000001", nil},
		{"1e3", "1000", nil},
		{"-3", "-3", nil},
		{"1000000000000", "1000000000000", nil},
		{"", "", ErrNotNumber},
		{"abc", "", ErrNotNumber},
		{"4 L", "", ErrNotNumber},
		{"1e20000000", "", ErrQuantityRange},
		{"1e-20000000", "", ErrQuantityRange},
		{"1e13", "", ErrQuantityRange},
		{"1000000000001", "", ErrQuantityRange},
		{"0.0000001", "", ErrQuantityRange},
		{"123456789012345678901234567890123", "", ErrQuantityRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuantity(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseQuantity(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if tt.err == nil && got.String() != tt.want {
				t.Errorf("ParseQuantity(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckQuantityHugeExponent(t *testing.T) {
	// Values built without parsing, as JSON decoding does.
	for _, d := range []decimal.Decimal{
		decimal.New(1, 20000000),
		decimal.New(1, -20000000),
		decimal.New(5, 13),
	} {
		if err := CheckQuantity(d); !errors.Is(err, ErrQuantityRange) {
			t.Errorf("CheckQuantity(1e%d) = %v, want range error", d.Exponent(), err)
		}
	}
	if err := CheckQuantity(decimal.New(25, -1)); err != nil {
		t.Errorf("CheckQuantity(2.5) = %v", err)
	}
}
