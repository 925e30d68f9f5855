// Package share signs and verifies expiring links to the reorder report.
// A link grants read access to the report text only.
package share

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject identifies report share tokens.
const Subject = "reorder-report"

// DefaultTTL is the lifetime of a share link when none is configured.
const DefaultTTL = 72 * time.Hour

// ErrInvalidToken is returned for tokens that are malformed, expired, signed
// with another key, or not share tokens.
var ErrInvalidToken = errors.New("invalid share token")

// Claims are the claims of a share token.
type Claims struct {
	Lang string `json:"lang,omitempty"`
	jwt.RegisteredClaims
}

// Link is a signed token and its expiry.
type Link struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewToken signs a share token for the report in lang, valid for ttl from now.
func NewToken(secret, lang string, ttl time.Duration, now time.Time) (*Link, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	jti, err := randomID()
	if err != nil {
		return nil, fmt.Errorf("generating token id: %w", err)
	}

	expires := now.Add(ttl)
	claims := Claims{
		Lang: lang,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &Link{Token: signed, ExpiresAt: expires.Truncate(time.Second)}, nil
}

// Verify checks a share token and returns its claims.
func Verify(secret, token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(Subject),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func randomID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
