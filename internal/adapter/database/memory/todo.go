package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

// TodoRepository mirrors the Mongo todos collection in memory. Listing
// preserves insertion order, matching what the document store exhibits.
type TodoRepository struct {
	mu    sync.RWMutex
	todos []domain.Todo
}

func NewTodoRepository() port.TodoRepository {
	return &TodoRepository{}
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, todo := range r.todos {
		if todo.HexID() == id {
			return todo, nil
		}
	}

	return domain.Todo{}, domain.ErrNotFound
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Todo, 0)

	for _, todo := range r.todos {
		if todo.OwnerID.Hex() == ownerID {
			result = append(result, todo)
		}
	}

	return result, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if todo.ID.IsZero() {
		todo.ID = primitive.NewObjectID()
	}

	r.todos = append(r.todos, todo)

	return todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.todos {
		if existing.ID == todo.ID && existing.OwnerID == todo.OwnerID {
			r.todos[i] = todo
			return todo, nil
		}
	}

	return domain.Todo{}, domain.ErrNotFound
}

func (r *TodoRepository) ToggleDone(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, todo := range r.todos {
		if todo.HexID() == id && todo.OwnerID.Hex() == ownerID {
			r.todos[i].Done = !todo.Done
			return nil
		}
	}

	return domain.ErrNotFound
}

func (r *TodoRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, todo := range r.todos {
		if todo.HexID() == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}

	return domain.ErrNotFound
}

func (r *TodoRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.todos[:0]

	for _, todo := range r.todos {
		if todo.OwnerID.Hex() != ownerID {
			kept = append(kept, todo)
		}
	}

	r.todos = kept

	return nil
}
