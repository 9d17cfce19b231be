package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wellbeing-client/internal/domain/entity"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
)

func fakeSession() *entity.Session {
	return &entity.Session{
		Token:       gofakeit.UUID(),
		Role:        entity.RolePsychologist,
		UserID:      int64(gofakeit.Number(1, 1000)),
		DisplayName: gofakeit.Name(),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestFileSessionRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo := NewFileSessionRepository(path)

	got, err := repo.Load(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected nil session before save, got %+v, %v", got, err)
	}

	want := fakeSession()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}

	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Token != want.Token || got.Role != want.Role || got.DisplayName != want.DisplayName {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Errorf("clearing twice should not fail: %v", err)
	}
	if got, _ := repo.Load(ctx); got != nil {
		t.Errorf("expected nil after clear, got %+v", got)
	}
}

func TestFileSessionRepository_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileSessionRepository(path).Load(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

type stubRedis struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
}

func newStubRedis() *stubRedis {
	return &stubRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *stubRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if s.failGet != nil {
		return redis.NewStringResult("", s.failGet)
	}
	v, ok := s.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (s *stubRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		s.values[key] = string(v)
	case string:
		s.values[key] = v
	}
	s.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (s *stubRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := s.values[k]; ok {
			delete(s.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisSessionRepository(t *testing.T) {
	ctx := context.Background()
	stub := newStubRedis()
	repo := newRedisSessionRepository(stub, "clinic-laptop", 12*time.Hour)
	key := SessionKeyPrefix + "clinic-laptop"

	if got, err := repo.Load(ctx); err != nil || got != nil {
		t.Fatalf("expected nil session for missing key, got %+v, %v", got, err)
	}

	want := fakeSession()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if stub.ttls[key] != 12*time.Hour {
		t.Errorf("expected 12h ttl, got %s", stub.ttls[key])
	}

	var stored entity.Session
	if err := json.Unmarshal([]byte(stub.values[key]), &stored); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if stored.Token != want.Token {
		t.Errorf("expected token %s, got %s", want.Token, stored.Token)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.UserID != want.UserID {
		t.Errorf("expected user %d, got %d", want.UserID, got.UserID)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := stub.values[key]; ok {
		t.Error("expected key to be deleted")
	}
}

func TestRedisSessionRepository_TTLCappedByTokenExpiry(t *testing.T) {
	stub := newStubRedis()
	repo := newRedisSessionRepository(stub, "default", 12*time.Hour)

	s := fakeSession()
	s.ExpiresAt = time.Now().Add(time.Hour)
	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("save: %v", err)
	}

	ttl := stub.ttls[SessionKeyPrefix+"default"]
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("expected ttl capped at token expiry, got %s", ttl)
	}
}

func TestRedisSessionRepository_LoadError(t *testing.T) {
	stub := newStubRedis()
	stub.failGet = errors.New("connection reset")
	repo := newRedisSessionRepository(stub, "default", 0)

	if _, err := repo.Load(context.Background()); err == nil {
		t.Error("expected error to surface")
	}
}
