package port

import (
	"context"
	"time"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
)

type SessionStore interface {
	Create(ctx context.Context, sess domain.Session, ttl time.Duration) (string, error)
	// Get reports ok=false when the session is absent or expired.
	Get(ctx context.Context, sessionID string) (domain.Session, bool, error)
	Save(ctx context.Context, sessionID string, sess domain.Session, ttl time.Duration) error
	// SaveKeepTTL writes the session without touching its remaining
	// expiry. A vanished session stays vanished.
	SaveKeepTTL(ctx context.Context, sessionID string, sess domain.Session) error
	Delete(ctx context.Context, sessionID string) error
}
