package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

const (
	Cookie      = "session_id"
	DefaultTTL  = 24 * time.Hour
	RememberTTL = 30 * 24 * time.Hour

	keyPrefix = "session:"
)

// RedisStore keeps sessions as JSON documents in Redis with a TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) port.SessionStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Create(ctx context.Context, sess domain.Session, ttl time.Duration) (string, error) {
	sid := uuid.New().String()

	if err := s.Save(ctx, sid, sess, ttl); err != nil {
		return "", err
	}

	return sid, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (domain.Session, bool, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+sessionID).Result()

	if errors.Is(err, redis.Nil) {
		return domain.Session{}, false, nil
	}

	if err != nil {
		return domain.Session{}, false, fmt.Errorf("session get: %w", err)
	}

	var sess domain.Session

	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return domain.Session{}, false, fmt.Errorf("session decode: %w", err)
	}

	return sess, true, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, sess domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)

	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	if err := s.rdb.Set(ctx, keyPrefix+sessionID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	return nil
}

func (s *RedisStore) SaveKeepTTL(ctx context.Context, sessionID string, sess domain.Session) error {
	payload, err := json.Marshal(sess)

	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}

	// SetXX skips sessions that already expired; KeepTTL leaves the
	// remaining expiry alone.
	if err := s.rdb.SetXX(ctx, keyPrefix+sessionID, payload, redis.KeepTTL).Err(); err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, keyPrefix+sessionID).Err()
}
