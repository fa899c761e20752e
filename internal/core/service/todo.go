package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo}
}

func (ts *TodoService) Create(ctx context.Context, owner domain.Identity, req *request.TodoRequest) (domain.Todo, error) {
	if !owner.IsAuthenticated() {
		return domain.Todo{}, domain.ErrUnauthorized
	}

	ownerID, err := primitive.ObjectIDFromHex(owner.ID())

	if err != nil {
		return domain.Todo{}, domain.ErrUnauthorized
	}

	now := time.Now()

	todo := domain.Todo{
		Content:   req.Content,
		Degree:    req.Degree,
		Done:      false,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	saved, err := ts.repo.Create(ctx, todo)

	if err != nil {
		log.Error().Err(err).Str("owner_id", owner.ID()).Msg("Todo#Create failed")
		return domain.Todo{}, err
	}

	return saved, nil
}

func (ts *TodoService) List(ctx context.Context, owner domain.Identity) ([]domain.Todo, error) {
	if !owner.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	return ts.repo.ListByOwner(ctx, owner.ID())
}

func (ts *TodoService) Update(ctx context.Context, caller domain.Identity, todoID string, req *request.TodoRequest) (domain.Todo, error) {
	todo, err := ts.authorize(ctx, caller, todoID)

	if err != nil {
		return domain.Todo{}, err
	}

	todo.Content = req.Content
	todo.Degree = req.Degree
	todo.UpdatedAt = time.Now()

	return ts.repo.Update(ctx, todo)
}

func (ts *TodoService) ToggleDone(ctx context.Context, caller domain.Identity, todoID string) error {
	if _, err := ts.authorize(ctx, caller, todoID); err != nil {
		return err
	}

	// The repository negates the flag in one store operation, so two
	// concurrent togglers cannot lose an intermediate state.
	return ts.repo.ToggleDone(ctx, todoID, caller.ID())
}

func (ts *TodoService) Delete(ctx context.Context, caller domain.Identity, todoID string) error {
	if _, err := ts.authorize(ctx, caller, todoID); err != nil {
		return err
	}

	return ts.repo.DeleteByID(ctx, todoID)
}

func (ts *TodoService) authorize(ctx context.Context, caller domain.Identity, todoID string) (domain.Todo, error) {
	if !caller.IsAuthenticated() {
		return domain.Todo{}, domain.ErrUnauthorized
	}

	todo, err := ts.repo.GetByID(ctx, todoID)

	if err != nil {
		return domain.Todo{}, err
	}

	if !todo.BelongsTo(caller.ID()) {
		log.Warn().Str("todo_id", todoID).Str("caller_id", caller.ID()).Msg("Todo mutation denied")
		return domain.Todo{}, domain.ErrUnauthorized
	}

	return todo, nil
}
