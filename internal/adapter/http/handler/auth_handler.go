package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	. "github.com/mateusfonseca/dorsetToDo/internal/adapter/http/helper"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/middleware"
	. "github.com/mateusfonseca/dorsetToDo/internal/adapter/http/validation"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/session"
	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/response"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
	"github.com/mateusfonseca/dorsetToDo/internal/core/util"
	"github.com/mateusfonseca/dorsetToDo/internal/shared"
)

const loginFailedMessage = "Please check your login details and try again."

type AuthHandler struct {
	svc      port.AccountService
	sessions port.SessionStore
	metrics  *shared.AppMetrics
}

func NewAuthHandler(svc port.AccountService, sessions port.SessionStore, metrics *shared.AppMetrics) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
		metrics:  metrics,
	}
}

func (a *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		Redirect(c, "/")
		return
	}

	SendPage(c, gin.H{"page": "login"}, popFlashes(c, a.sessions))
}

func (a *AuthHandler) Login(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		Redirect(c, "/")
		return
	}

	params, err := util.ParamsTo[request.LoginRequest](c)

	if err != nil || Validator.Struct(params) != nil {
		addFlash(c, a.sessions, loginFailedMessage)
		Redirect(c, "/login")
		return
	}

	user, err := a.svc.Authenticate(c.Request.Context(), &params)

	if err != nil {
		addFlash(c, a.sessions, loginFailedMessage)
		Redirect(c, "/login")
		return
	}

	a.startSession(c, user, params.Remember != "")

	if a.metrics != nil {
		a.metrics.RecordSessionOperation("login")
	}

	Redirect(c, "/")
}

func (a *AuthHandler) ShowSignup(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		Redirect(c, "/")
		return
	}

	SendPage(c, gin.H{"page": "signup"}, popFlashes(c, a.sessions))
}

func (a *AuthHandler) Signup(c *gin.Context) {
	if middleware.CurrentIdentity(c).IsAuthenticated() {
		Redirect(c, "/")
		return
	}

	params, err := util.ParamsTo[request.SignUpRequest](c)

	if err != nil {
		addFlash(c, a.sessions, "Invalid signup details")
		Redirect(c, "/signup")
		return
	}

	if err := Validator.Struct(params); err != nil {
		for _, fieldError := range FormatValidationErrors(err) {
			addFlash(c, a.sessions, fieldError.Message)
		}

		Redirect(c, "/signup")
		return
	}

	_, err = a.svc.Register(c.Request.Context(), &params)

	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			addFlash(c, a.sessions, "Email address already exists")
			Redirect(c, "/signup")
			return
		}

		log.Error().Err(err).Msg("signup failed")
		SendInternalError(c, "Error creating account")
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("register")
	}

	Redirect(c, "/login")
}

func (a *AuthHandler) Logout(c *gin.Context) {
	a.endSession(c)

	if a.metrics != nil {
		a.metrics.RecordSessionOperation("logout")
	}

	Redirect(c, "/")
}

func (a *AuthHandler) Profile(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	user, err := a.svc.GetByID(c.Request.Context(), ident.ID())

	if err != nil {
		// Session points at a vanished account.
		a.endSession(c)
		Redirect(c, "/login")
		return
	}

	SendPage(c, response.UserResponse{
		ID:        user.HexID(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, popFlashes(c, a.sessions))
}

func (a *AuthHandler) UpdateProfile(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	params, err := util.ParamsTo[request.ProfileRequest](c)

	if err != nil || Validator.Struct(params) != nil {
		Redirect(c, "/profile")
		return
	}

	_, err = a.svc.UpdateProfile(c.Request.Context(), ident, c.Param("id"), &params)

	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			addFlash(c, a.sessions, "Email address already in use")
		}

		// Ownership mismatches and vanished accounts are absorbed: the
		// caller sees the same redirect either way.
		Redirect(c, "/profile")
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("update_profile")
	}

	Redirect(c, "/profile")
}

func (a *AuthHandler) DeleteAccount(c *gin.Context) {
	ident := middleware.CurrentIdentity(c)

	if err := a.svc.DeleteAccount(c.Request.Context(), ident, c.Param("id")); err != nil {
		Redirect(c, "/profile")
		return
	}

	if a.metrics != nil {
		a.metrics.RecordUserOperation("delete_account")
	}

	a.endSession(c)
	Redirect(c, "/")
}

// startSession rotates the caller's session after a successful login.
func (a *AuthHandler) startSession(c *gin.Context, user *domain.User, remember bool) {
	ctx := c.Request.Context()

	if old := middleware.CurrentSessionID(c); old != "" {
		if err := a.sessions.Delete(ctx, old); err != nil {
			log.Error().Err(err).Msg("stale session delete failed")
		}
	}

	ttl := session.DefaultTTL

	if remember {
		ttl = session.RememberTTL
	}

	sid, err := a.sessions.Create(ctx, domain.Session{UserID: user.HexID()}, ttl)

	if err != nil {
		log.Error().Err(err).Msg("session creation failed")
		return
	}

	middleware.SetSessionCookie(c, sid, ttl)
}

func (a *AuthHandler) endSession(c *gin.Context) {
	if sid := middleware.CurrentSessionID(c); sid != "" {
		if err := a.sessions.Delete(c.Request.Context(), sid); err != nil {
			log.Error().Err(err).Msg("session delete failed")
		}
	}

	middleware.ClearSessionCookie(c)
}
