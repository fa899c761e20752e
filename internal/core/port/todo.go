package port

import (
	"context"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
)

type TodoRepository interface {
	GetByID(ctx context.Context, id string) (domain.Todo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error)
	Create(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	Update(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	// ToggleDone negates the done flag in a single store operation scoped
	// to (id, ownerID). Returns domain.ErrNotFound when nothing matched.
	ToggleDone(ctx context.Context, id, ownerID string) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) error
}

type TodoService interface {
	Create(ctx context.Context, owner domain.Identity, req *request.TodoRequest) (domain.Todo, error)
	List(ctx context.Context, owner domain.Identity) ([]domain.Todo, error)
	Update(ctx context.Context, caller domain.Identity, todoID string, req *request.TodoRequest) (domain.Todo, error)
	ToggleDone(ctx context.Context, caller domain.Identity, todoID string) error
	Delete(ctx context.Context, caller domain.Identity, todoID string) error
}
