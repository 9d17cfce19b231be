package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

type memorySessionRepo struct {
	session *entity.Session
	loads   int
	cleared bool
}

func (r *memorySessionRepo) Load(ctx context.Context) (*entity.Session, error) {
	r.loads++
	return r.session, nil
}

func (r *memorySessionRepo) Save(ctx context.Context, s *entity.Session) error {
	r.session = s
	return nil
}

func (r *memorySessionRepo) Clear(ctx context.Context) error {
	r.session = nil
	r.cleared = true
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func tokenExpiring(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := gojwt.RegisteredClaims{Subject: "ana@example.com", ExpiresAt: gojwt.NewNumericDate(exp)}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestSessionManager_NotLoggedIn(t *testing.T) {
	m := NewSessionManager(quietLogger(), &memorySessionRepo{}, jwt.NewJWTService(0))

	if _, err := m.Load(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
	if _, err := m.AccessToken(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn from AccessToken, got %v", err)
	}
}

func TestSessionManager_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	repo := &memorySessionRepo{}
	m := NewSessionManager(quietLogger(), repo, jwt.NewJWTService(0))

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	session := &entity.Session{Token: tokenExpiring(t, exp), Role: entity.RolePatient, UserID: 9}
	if err := m.Save(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !session.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry from token %s, got %s", exp, session.ExpiresAt)
	}
	if m.Current() != session {
		t.Error("expected saved session to be current")
	}

	token, err := m.AccessToken(ctx)
	if err != nil || token != session.Token {
		t.Fatalf("unexpected token %q, %v", token, err)
	}
	if repo.loads != 0 {
		t.Errorf("expected cached session, store was read %d times", repo.loads)
	}

	if err := m.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if !repo.cleared || m.Current() != nil {
		t.Error("expected session cleared")
	}
	if _, err := m.Load(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("expected ErrNotLoggedIn after clear, got %v", err)
	}
}

func TestSessionManager_ExpiredToken(t *testing.T) {
	repo := &memorySessionRepo{session: &entity.Session{
		Token:  tokenExpiring(t, time.Now().Add(-time.Hour)),
		Role:   entity.RoleAdmin,
		UserID: 1,
	}}
	m := NewSessionManager(quietLogger(), repo, jwt.NewJWTService(0))

	if _, err := m.Load(context.Background()); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if !repo.cleared {
		t.Error("expected expired session to be cleared from the store")
	}
}

func TestSessionManager_OpaqueTokenUsesStoredExpiry(t *testing.T) {
	repo := &memorySessionRepo{session: &entity.Session{
		Token:     "opaque-token",
		Role:      entity.RolePatient,
		ExpiresAt: time.Now().Add(-time.Minute),
	}}
	m := NewSessionManager(quietLogger(), repo, jwt.NewJWTService(0))

	if _, err := m.Load(context.Background()); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}

	repo.session = &entity.Session{Token: "opaque-token", Role: entity.RolePatient}
	m = NewSessionManager(quietLogger(), repo, jwt.NewJWTService(0))
	if _, err := m.Load(context.Background()); err != nil {
		t.Errorf("expected opaque token without expiry to load, got %v", err)
	}
}
