// Package servicekey validates the privileged store credential used by
// server-side write paths. The key is trusted configuration; the check
// only guards against wiring the wrong key, so the token signature is
// not verified here.
package servicekey

import (
	"errors"
	"fmt"
	"log"

	"github.com/golang-jwt/jwt/v5"
)

const requiredRole = "service_role"

var (
	ErrMissing   = errors.New("service role key is missing")
	ErrWrongRole = errors.New("service role key does not carry the service_role claim")
)

// Verify decodes the key's JWT payload and requires its role claim to
// equal "service_role". Any other outcome is a configuration failure.
func Verify(key string) error {
	if key == "" {
		return ErrMissing
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(key, claims); err != nil {
		return fmt.Errorf("service role key is not a valid JWT: %w", err)
	}

	role, _ := claims["role"].(string)
	if role != requiredRole {
		return ErrWrongRole
	}

	return nil
}

// MustVerify fails hard on a bad key. A misconfigured privileged
// credential must never be downgraded to a softer error.
func MustVerify(key string) {
	if err := Verify(key); err != nil {
		log.Fatalf("service role key check failed: %v", err)
	}
}
