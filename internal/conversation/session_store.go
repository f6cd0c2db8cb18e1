package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 30 * time.Minute

// RedisSessionStore keeps sessions in Redis as JSON blobs with a TTL,
// so an idle conversation expires back to the greeting.
type RedisSessionStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	if client == nil {
		panic("conversation: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisSessionStore{redis: client, ttl: ttl}
}

func sessionKey(identifier string) string {
	return fmt.Sprintf("session:%s", identifier)
}

func (s *RedisSessionStore) Get(ctx context.Context, identifier string) (*Session, error) {
	data, err := s.redis.Get(ctx, sessionKey(identifier)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("conversation: failed to load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("conversation: failed to decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, identifier string, sess *Session) error {
	sess.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("conversation: failed to marshal session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(identifier), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("conversation: failed to persist session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, identifier string) error {
	if err := s.redis.Del(ctx, sessionKey(identifier)).Err(); err != nil {
		return fmt.Errorf("conversation: failed to delete session: %w", err)
	}
	return nil
}

// MemorySessionStore is an in-process store used in tests and
// single-instance deployments without Redis.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]*Session)}
}

func (s *MemorySessionStore) Get(_ context.Context, identifier string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[identifier]
	if !ok {
		return nil, nil
	}
	// Copy through JSON so callers cannot mutate the stored session.
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("conversation: failed to copy session: %w", err)
	}
	var out Session
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("conversation: failed to copy session: %w", err)
	}
	return &out, nil
}

func (s *MemorySessionStore) Save(_ context.Context, identifier string, sess *Session) error {
	sess.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("conversation: failed to marshal session: %w", err)
	}
	var copied Session
	if err := json.Unmarshal(data, &copied); err != nil {
		return fmt.Errorf("conversation: failed to decode session: %w", err)
	}

	s.mu.Lock()
	s.sessions[identifier] = &copied
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, identifier string) error {
	s.mu.Lock()
	delete(s.sessions, identifier)
	s.mu.Unlock()
	return nil
}
