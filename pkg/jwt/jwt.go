package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed access token")
	ErrTokenExpired   = errors.New("access token has expired")
)

// Claims are the fields the backend puts in its access tokens. The client
// never holds the signing secret, so these are read without verification and
// used only to avoid sending requests with a token that has already expired.
type Claims struct {
	Role   string `json:"role,omitempty"`
	UserID int64  `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	parser *jwt.Parser
	leeway time.Duration
}

func NewJWTService(leeway time.Duration) *JWTService {
	return &JWTService{
		parser: jwt.NewParser(),
		leeway: leeway,
	}
}

// Inspect decodes the claims of tokenString without checking its signature.
func (s *JWTService) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := s.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// CheckExpiry returns ErrTokenExpired when the token's exp claim is before now.
// Tokens without exp never expire client side.
func (s *JWTService) CheckExpiry(tokenString string, now time.Time) (*Claims, error) {
	claims, err := s.Inspect(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time.Add(s.leeway)) {
		return claims, ErrTokenExpired
	}
	return claims, nil
}

// ExpiresAt returns the token expiry, or the zero time when absent.
func (s *JWTService) ExpiresAt(tokenString string) time.Time {
	claims, err := s.Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
