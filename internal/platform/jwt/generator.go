// Package jwtmw provides JWT session token generation, parsing and the
// cookie-based authentication middleware.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// Generator defines the interface for session token generation.
type Generator interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(userID uint) (string, error)
}

// Parser defines the interface for session token validation.
type Parser interface {
	// ParseToken verifies a session token and returns the user ID claim.
	ParseToken(token string) (uint, error)
}

// Manager implements Generator and Parser with HMAC-SHA256 signatures.
type Manager struct {
	secret     []byte
	expiration time.Duration
}

// NewManager creates a token manager with the provided secret and token
// lifetime.
func NewManager(secret string, expiration time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed token carrying the user ID as its sub
// claim.
func (m *Manager) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(m.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry of a token and extracts
// the user ID. Any malformed, tampered or expired token yields an error;
// callers treat that as unauthenticated, never as a crash.
func (m *Manager) ParseToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is allowed; reject alg-substitution tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok || sub <= 0 {
		return 0, errors.New("missing subject claim")
	}

	return uint(sub), nil
}
