package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

// UserRepository is a map-backed stand-in for the Mongo users collection,
// used by tests and local development without a database.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() port.UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]

	if !ok {
		return domain.User{}, domain.ErrNotFound
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return domain.User{}, domain.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domain.User{}, domain.ErrDuplicateEmail
		}
	}

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}

	r.users[user.HexID()] = user

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.HexID()]; !ok {
		return domain.User{}, domain.ErrNotFound
	}

	r.users[user.HexID()] = user

	return user, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}

	delete(r.users, id)

	return nil
}
