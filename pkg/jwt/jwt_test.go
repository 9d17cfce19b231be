package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Role: "psicologo",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana@example.com",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestInspect(t *testing.T) {
	s := NewJWTService(0)
	token := signToken(t, time.Now().Add(time.Hour))

	claims, err := s.Inspect(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "ana@example.com" {
		t.Errorf("expected subject ana@example.com, got %s", claims.Subject)
	}
	if claims.Role != "psicologo" {
		t.Errorf("expected role psicologo, got %s", claims.Role)
	}
}

func TestInspect_Malformed(t *testing.T) {
	s := NewJWTService(0)
	if _, err := s.Inspect("not.a.token"); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestCheckExpiry(t *testing.T) {
	s := NewJWTService(30 * time.Second)
	now := time.Now()

	if _, err := s.CheckExpiry(signToken(t, now.Add(time.Minute)), now); err != nil {
		t.Errorf("expected valid token, got %v", err)
	}
	if _, err := s.CheckExpiry(signToken(t, now.Add(-10*time.Second)), now); err != nil {
		t.Errorf("expected leeway to accept token, got %v", err)
	}
	if _, err := s.CheckExpiry(signToken(t, now.Add(-time.Hour)), now); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
