package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

// MemoryStore is a go-cache backed session store for tests and local runs
// without Redis. Expiry semantics match the Redis adapter.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() port.SessionStore {
	return &MemoryStore{cache: cache.New(DefaultTTL, 10*time.Minute)}
}

func (s *MemoryStore) Create(ctx context.Context, sess domain.Session, ttl time.Duration) (string, error) {
	sid := uuid.New().String()
	s.cache.Set(keyPrefix+sid, sess, ttl)

	return sid, nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (domain.Session, bool, error) {
	val, ok := s.cache.Get(keyPrefix + sessionID)

	if !ok {
		return domain.Session{}, false, nil
	}

	return val.(domain.Session), true, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, sess domain.Session, ttl time.Duration) error {
	s.cache.Set(keyPrefix+sessionID, sess, ttl)

	return nil
}

func (s *MemoryStore) SaveKeepTTL(ctx context.Context, sessionID string, sess domain.Session) error {
	_, expiry, ok := s.cache.GetWithExpiration(keyPrefix + sessionID)

	if !ok {
		return nil
	}

	s.cache.Set(keyPrefix+sessionID, sess, time.Until(expiry))

	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.cache.Delete(keyPrefix + sessionID)

	return nil
}
