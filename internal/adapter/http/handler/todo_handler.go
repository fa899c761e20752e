package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	. "github.com/mateusfonseca/dorsetToDo/internal/adapter/http/helper"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/middleware"
	. "github.com/mateusfonseca/dorsetToDo/internal/adapter/http/validation"
	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/response"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
	"github.com/mateusfonseca/dorsetToDo/internal/core/util"
	"github.com/mateusfonseca/dorsetToDo/internal/shared"
)

type TodoHandler struct {
	svc      port.TodoService
	sessions port.SessionStore
	metrics  *shared.AppMetrics
}

func NewTodoHandler(svc port.TodoService, sessions port.SessionStore, metrics *shared.AppMetrics) *TodoHandler {
	return &TodoHandler{
		svc:      svc,
		sessions: sessions,
		metrics:  metrics,
	}
}

// Index lists the caller's todos, or renders the informational page for
// anonymous visitors.
func (t *TodoHandler) Index(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	if !ident.IsAuthenticated() {
		SendPage(c, gin.H{"message": "Log in to manage your to-do list."}, popFlashes(c, t.sessions))
		return
	}

	todos, err := t.svc.List(c.Request.Context(), ident)

	if err != nil {
		log.Error().Err(err).Str("owner_id", ident.ID()).Msg("todo list failed")
		SendInternalError(c, "Error listing todos")
		return
	}

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, response.TodoResponse{
			ID:        todo.HexID(),
			Content:   todo.Content,
			Degree:    todo.Degree,
			Done:      todo.Done,
			CreatedAt: todo.CreatedAt,
			UpdatedAt: todo.UpdatedAt,
		})
	}

	SendPage(c, data, popFlashes(c, t.sessions))
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	if !ident.IsAuthenticated() {
		Redirect(c, "/login")
		return
	}

	params, err := util.ParamsTo[request.TodoRequest](c)

	if err != nil || Validator.Struct(params) != nil {
		Redirect(c, "/")
		return
	}

	if _, err := t.svc.Create(c.Request.Context(), ident, &params); err != nil {
		t.absorb(c, err, "create")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation("create")
	}

	Redirect(c, "/")
}

func (t *TodoHandler) UpdateTodo(c *gin.Context) {
	params, err := util.ParamsTo[request.TodoRequest](c)

	if err != nil || Validator.Struct(params) != nil {
		Redirect(c, "/")
		return
	}

	ident := middleware.CurrentIdentity(c)

	if _, err := t.svc.Update(c.Request.Context(), ident, c.Param("id"), &params); err != nil {
		t.absorb(c, err, "update")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation("update")
	}

	Redirect(c, "/")
}

func (t *TodoHandler) ToggleDone(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	if err := t.svc.ToggleDone(c.Request.Context(), ident, c.Param("id")); err != nil {
		t.absorb(c, err, "toggle")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation("toggle")
	}

	Redirect(c, "/")
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	if err := t.svc.Delete(c.Request.Context(), ident, c.Param("id")); err != nil {
		t.absorb(c, err, "delete")
		return
	}

	if t.metrics != nil {
		t.metrics.RecordTodoOperation("delete")
	}

	Redirect(c, "/")
}

// absorb converts ownership mismatches and vanished records into the same
// redirect a successful call issues; the caller cannot tell them apart.
func (t *TodoHandler) absorb(c *gin.Context, err error, operation string) {
	if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrNotFound) {
		Redirect(c, "/")
		return
	}

	log.Error().Err(err).Str("operation", operation).Msg("todo operation failed")
	SendInternalError(c, "Error processing todo")
}
