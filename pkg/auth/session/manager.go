package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/redis"
)

// Session is the server-side record an admin cookie points at. It carries
// identity only, never the password hash.
type Session struct {
	AdminID  uuid.UUID `json:"admin_id"`
	Username string    `json:"username"`
}

// Store persists session records with a TTL.
type Store interface {
	Set(ctx context.Context, id string, sess Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Checker is the read-only surface middleware needs.
type Checker interface {
	Lookup(ctx context.Context, id string) (*Session, error)
}

// Manager issues, resolves, and revokes admin sessions.
type Manager struct {
	store Store
	ttl   time.Duration
}

// NewManager builds a session manager on top of the provided store.
func NewManager(store Store, cfg config.SessionConfig) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{store: store, ttl: ttl}, nil
}

// Issue creates a new session record and returns its opaque identifier.
func (m *Manager) Issue(ctx context.Context, sess Session) (string, error) {
	id := uuid.NewString()
	if err := m.store.Set(ctx, id, sess, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Lookup resolves a session identifier; nil is returned for unknown or
// expired sessions.
func (m *Manager) Lookup(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, nil
	}
	return m.store.Get(ctx, id)
}

// Revoke deletes the session record.
func (m *Manager) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// TTL exposes the configured session lifetime (cookie Max-Age).
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// RedisStore keeps session records in Redis so they survive restarts and are
// shared across instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps the shared redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, id string, sess Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.client.Set(ctx, s.client.SessionKey(id), payload, ttl)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, s.client.SessionKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.client.SessionKey(id))
}
