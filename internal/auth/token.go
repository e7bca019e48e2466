package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL bounds how long a sealed token is honored locally, independent
// of the upstream token's own lifetime.
const SessionTTL = 7 * 24 * time.Hour

var ErrBadToken = errors.New("invalid session token")

// Sealer wraps the upstream bearer token in a signed, expiring JWT before
// it goes into a cookie. A tampered or stale cookie is rejected here
// without an upstream round-trip; the raw bearer token never leaves the
// server unsigned.
type Sealer struct {
	secret []byte
}

func NewSealer(secret string) *Sealer {
	return &Sealer{secret: []byte(secret)}
}

func (s *Sealer) Seal(bearer string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"tok": bearer,
		"typ": "session",
		"exp": time.Now().Add(SessionTTL).Unix(),
	})
	return t.SignedString(s.secret)
}

// Open returns the bearer token sealed inside the cookie value.
func (s *Sealer) Open(sealed string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(sealed, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrBadToken
	}
	if claims["typ"] != "session" {
		return "", ErrBadToken
	}
	bearer, ok := claims["tok"].(string)
	if !ok || bearer == "" {
		return "", ErrBadToken
	}
	return bearer, nil
}
