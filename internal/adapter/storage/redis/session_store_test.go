package redis

import (
	"context"
	"testing"
	"time"

	"partner-trust-platform/internal/core/domain"
	"partner-trust-platform/pkg/ids"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(identityID uuid.UUID) *domain.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Session{
		ID:             ids.New(),
		IdentityID:     identityID,
		Role:           domain.RolePlatformAdmin,
		RequiresStepUp: true,
		StepUpVerified: false,
		CreatedAt:      now,
		ExpiresAt:      now.Add(time.Hour),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := newTestSession(uuid.New())
	require.NoError(t, store.Save(ctx, session, time.Hour))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.IdentityID, got.IdentityID)
	assert.True(t, got.RequiresStepUp)
	assert.False(t, got.StepUpVerified)
}

func TestSessionStore_Get_Missing(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	got, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Get_Expired(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := newTestSession(uuid.New())
	require.NoError(t, store.Save(ctx, session, time.Minute))

	s.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_MarkStepUpVerified(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := newTestSession(uuid.New())
	require.NoError(t, store.Save(ctx, session, time.Hour))

	require.NoError(t, store.MarkStepUpVerified(ctx, session.ID))

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.StepUpVerified)

	// Verification must not extend the session lifetime
	ttl := s.TTL("session:" + session.ID)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestSessionStore_MarkStepUpVerified_Missing(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	err := store.MarkStepUpVerified(context.Background(), "no-such-session")
	assert.Error(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	session := newTestSession(uuid.New())
	require.NoError(t, store.Save(ctx, session, time.Hour))

	existed, err := store.Delete(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	got, err := store.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Second delete reports that nothing was there
	existed, err = store.Delete(ctx, session.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestSessionStore_RevokeAll(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)
	ctx := context.Background()

	identityID := uuid.New()
	first := newTestSession(identityID)
	second := newTestSession(identityID)
	other := newTestSession(uuid.New())
	require.NoError(t, store.Save(ctx, first, time.Hour))
	require.NoError(t, store.Save(ctx, second, time.Hour))
	require.NoError(t, store.Save(ctx, other, time.Hour))

	require.NoError(t, store.RevokeAll(ctx, identityID))

	for _, id := range []string{first.ID, second.ID} {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	// Unrelated identity keeps its session
	got, err := store.Get(ctx, other.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestSessionStore_RevokeAll_NoSessions(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewSessionStore(client)

	err := store.RevokeAll(context.Background(), uuid.New())
	assert.NoError(t, err)
}
