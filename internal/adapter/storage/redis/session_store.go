package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"partner-trust-platform/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore on Redis. Each session lives
// under its own key with the login TTL; a per-identity set tracks session IDs
// so RevokeAll can tear down every session of an identity at once.
type SessionStore struct {
	client        *goredis.Client
	prefix        string
	identityIndex string
}

// NewSessionStore creates a new Redis-backed session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client:        client,
		prefix:        "session:",
		identityIndex: "identity_sessions:",
	}
}

func (s *SessionStore) key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *SessionStore) indexKey(identityID uuid.UUID) string {
	return s.identityIndex + identityID.String()
}

// Save stores the session and registers it in the identity's index. The
// index carries the same TTL so it cannot outlive its newest session.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(session.ID), data, ttl)
	pipe.SAdd(ctx, s.indexKey(session.IdentityID), session.ID)
	pipe.Expire(ctx, s.indexKey(session.IdentityID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get fetches a session by ID. Returns (nil, nil) when the session does not
// exist or has expired.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// MarkStepUpVerified flips the step-up flag on the stored session without
// extending its lifetime.
func (s *SessionStore) MarkStepUpVerified(ctx context.Context, sessionID string) error {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session %s not found", sessionID)
	}

	session.StepUpVerified = true
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// KEEPTTL preserves the remaining login window
	if err := s.client.Set(ctx, s.key(sessionID), data, goredis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("mark step-up verified: %w", err)
	}
	return nil
}

// Delete removes the session, reporting whether it existed.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, s.key(sessionID))
	pipe.SRem(ctx, s.indexKey(session.IdentityID), sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return del.Val() > 0, nil
}

// RevokeAll removes every session of the identity. Sessions that already
// expired are skipped silently.
func (s *SessionStore) RevokeAll(ctx context.Context, identityID uuid.UUID) error {
	ids, err := s.client.SMembers(ctx, s.indexKey(identityID)).Result()
	if err != nil {
		return fmt.Errorf("list identity sessions: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.key(id))
	}
	keys = append(keys, s.indexKey(identityID))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
