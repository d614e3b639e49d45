// Package auth implements the shared-password login gate. Access is proven
// by a short-lived signed token; no session state is held server-side, so a
// token stays valid for its full window once issued.
package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wenlaunch/proposal-backend/internal/apperrors"
)

// Service issues and verifies access tokens.
type Service struct {
	password string
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

// NewService builds the token service. ttl is the validity window of issued
// tokens (24h in production).
func NewService(password, secret string, ttl time.Duration) *Service {
	return &Service{
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue compares the supplied password against the shared secret and
// returns a signed token on match.
func (s *Service) Issue(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", apperrors.NewInvalidCredentials()
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, "sign token", err)
	}
	return token, nil
}

// Verify reports whether the token is well-formed, correctly signed, and
// unexpired. It never returns an error; any failure reads as "not
// authenticated".
func (s *Service) Verify(tokenString string) bool {
	if tokenString == "" {
		return false
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))

	return err == nil && token.Valid
}
