package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatelessIssueVerify(t *testing.T) {
	ctx := context.Background()
	m := NewManager("secret", time.Hour, nil)

	token, err := m.Issue(ctx, "admin-1")
	require.NoError(t, err)

	claims, err := m.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID())
	assert.NotEmpty(t, claims.SessionID())

	require.NoError(t, m.Revoke(ctx, token))
	_, err = m.Verify(ctx, token)
	assert.NoError(t, err, "without a store tokens live until expiry")
}

func TestVerifyRejectsForeignAndExpiredTokens(t *testing.T) {
	ctx := context.Background()
	m := NewManager("secret", time.Hour, nil)
	other := NewManager("other-secret", time.Hour, nil)

	token, err := other.Issue(ctx, "admin-1")
	require.NoError(t, err)
	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = m.Verify(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalid)

	token, err = m.Issue(ctx, "admin-1")
	require.NoError(t, err)
	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestRedisStoreRevocation(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	m := NewManager("secret", time.Hour, NewRedisStore(client))

	token, err := m.Issue(ctx, "admin-1")
	require.NoError(t, err)

	claims, err := m.Verify(ctx, token)
	require.NoError(t, err)
	assert.True(t, srv.Exists(keyPrefix+claims.SessionID()))
	assert.Equal(t, time.Hour, srv.TTL(keyPrefix+claims.SessionID()))

	require.NoError(t, m.Revoke(ctx, token))
	_, err = m.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrRevoked)
}

func TestRedisStoreFromURL(t *testing.T) {
	srv := miniredis.RunT(t)

	store, err := NewRedisStoreFromURL(context.Background(), "redis://"+srv.Addr()+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ok, err := store.Exists(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = NewRedisStoreFromURL(context.Background(), "::bad::")
	assert.Error(t, err)
}
