// Package session issues and verifies admin login sessions.
//
// A session is an HS256 JWT carried in an HttpOnly cookie (or a Bearer
// header). When a Store is configured every token's id is also recorded
// there, so logout revokes the token server-side; without a Store tokens are
// valid until they expire.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalid = errors.New("invalid session")
	ErrRevoked = errors.New("session revoked")
)

type Store interface {
	Save(ctx context.Context, sessionID, adminID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type Claims struct {
	jwt.RegisteredClaims
}

func (c Claims) AdminID() string   { return c.Subject }
func (c Claims) SessionID() string { return c.ID }

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

// NewManager builds a manager; store may be nil.
func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Issue(ctx context.Context, adminID string) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if m.store != nil {
		if err := m.store.Save(ctx, claims.ID, adminID, m.ttl); err != nil {
			return "", err
		}
	}

	return token, nil
}

func (m *Manager) Verify(ctx context.Context, token string) (*Claims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	if m.store != nil {
		ok, err := m.store.Exists(ctx, claims.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRevoked
		}
	}

	return claims, nil
}

// Revoke forgets the session. Invalid tokens are ignored.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	if m.store == nil || token == "" {
		return nil
	}

	claims, err := m.parse(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return m.secret, nil
		},
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
