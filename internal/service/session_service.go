package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"wellbeing-client/internal/domain/entity"
	"wellbeing-client/internal/domain/repository"
	"wellbeing-client/pkg/jwt"
	"wellbeing-client/pkg/response"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotLoggedIn    = errors.New("not logged in, run `wellbeing login` first")
	ErrSessionExpired = response.ErrSessionExpired
)

// SessionManager owns the client's identity for the lifetime of a command.
// It is the only component that touches the session store; everything else
// receives it explicitly.
type SessionManager struct {
	log  *logrus.Logger
	repo repository.SessionRepository
	jwt  *jwt.JWTService
	now  func() time.Time

	mu      sync.RWMutex
	current *entity.Session
	loaded  bool
}

func NewSessionManager(log *logrus.Logger, repo repository.SessionRepository, jwtService *jwt.JWTService) *SessionManager {
	return &SessionManager{
		log:  log,
		repo: repo,
		jwt:  jwtService,
		now:  time.Now,
	}
}

// Load reads the stored session once and caches it. It returns
// ErrNotLoggedIn when nothing is stored, and clears the store and returns
// ErrSessionExpired when the token has expired.
func (m *SessionManager) Load(ctx context.Context) (*entity.Session, error) {
	m.mu.RLock()
	if m.loaded {
		current := m.current
		m.mu.RUnlock()
		if current == nil {
			return nil, ErrNotLoggedIn
		}
		return current, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	session, err := m.repo.Load(ctx)
	if err != nil {
		m.log.Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	m.loaded = true
	if session == nil {
		return nil, ErrNotLoggedIn
	}

	if _, err := m.jwt.CheckExpiry(session.Token, m.now()); errors.Is(err, jwt.ErrTokenExpired) || session.IsExpired(m.now()) {
		m.log.Infof("Session for user %d has expired", session.UserID)
		if err := m.repo.Clear(ctx); err != nil {
			m.log.Warnf("Failed to clear expired session: %+v", err)
		}
		return nil, ErrSessionExpired
	}

	m.current = session
	return session, nil
}

// Save stores a new session, filling ExpiresAt from the token when missing.
func (m *SessionManager) Save(ctx context.Context, session *entity.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = m.now()
	}
	if session.ExpiresAt.IsZero() {
		session.ExpiresAt = m.jwt.ExpiresAt(session.Token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.repo.Save(ctx, session); err != nil {
		m.log.Warnf("Failed to save session: %+v", err)
		return err
	}
	m.current = session
	m.loaded = true
	return nil
}

// Clear forgets the session both in memory and in the store.
func (m *SessionManager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	m.loaded = true
	if err := m.repo.Clear(ctx); err != nil {
		m.log.Warnf("Failed to clear session: %+v", err)
		return err
	}
	return nil
}

// Current returns the cached session without touching the store.
func (m *SessionManager) Current() *entity.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// AccessToken returns the bearer token for authenticated requests.
func (m *SessionManager) AccessToken(ctx context.Context) (string, error) {
	session, err := m.Load(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

// Invalidate is called when the backend rejects the token.
func (m *SessionManager) Invalidate(ctx context.Context) error {
	return m.Clear(ctx)
}
