package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
	"github.com/mateusfonseca/dorsetToDo/internal/core/util"
)

type AccountService struct {
	users port.UserRepository
	todos port.TodoRepository
}

func NewAccountService(users port.UserRepository, todos port.TodoRepository) *AccountService {
	return &AccountService{users: users, todos: todos}
}

func (as *AccountService) Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error) {
	_, err := as.users.GetByEmail(ctx, req.Email)

	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}

	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("account register: %w", err)
	}

	encrypted, err := util.HashPassword(req.Password)

	if err != nil {
		return nil, fmt.Errorf("account register: %w", err)
	}

	now := time.Now()

	user := domain.User{
		Email:             req.Email,
		Name:              req.Name,
		EncryptedPassword: encrypted,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := as.users.Create(ctx, user)

	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Account#Register create failed")
		return nil, err
	}

	log.Info().Str("user_id", saved.HexID()).Msg("Account#Register")

	return &saved, nil
}

func (as *AccountService) Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error) {
	user, err := as.users.GetByEmail(ctx, req.Email)

	if err != nil {
		log.Info().Str("email", req.Email).Msg("Account#Authenticate unknown email")
		return nil, domain.ErrInvalidCredentials
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		log.Info().Str("email", req.Email).Msg("Account#Authenticate password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	return &user, nil
}

func (as *AccountService) GetByID(ctx context.Context, id string) (domain.User, error) {
	return as.users.GetByID(ctx, id)
}

func (as *AccountService) UpdateProfile(ctx context.Context, caller domain.Identity, targetID string, req *request.ProfileRequest) (domain.User, error) {
	if !caller.IsAuthenticated() || caller.ID() != targetID {
		return domain.User{}, domain.ErrUnauthorized
	}

	user, err := as.users.GetByID(ctx, targetID)

	if err != nil {
		return domain.User{}, err
	}

	if req.Email != user.Email {
		other, err := as.users.GetByEmail(ctx, req.Email)

		if err == nil && other.ID != user.ID {
			return domain.User{}, domain.ErrDuplicateEmail
		}

		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("account update: %w", err)
		}
	}

	user.Email = req.Email
	user.Name = req.Name

	// Blank password means "keep the current one".
	if req.Password != "" {
		encrypted, err := util.HashPassword(req.Password)

		if err != nil {
			return domain.User{}, fmt.Errorf("account update: %w", err)
		}

		user.EncryptedPassword = encrypted
	}

	user.UpdatedAt = time.Now()

	saved, err := as.users.Update(ctx, user)

	if err != nil {
		log.Error().Err(err).Str("user_id", targetID).Msg("Account#UpdateProfile failed")
		return domain.User{}, err
	}

	return saved, nil
}

func (as *AccountService) DeleteAccount(ctx context.Context, caller domain.Identity, targetID string) error {
	if !caller.IsAuthenticated() || caller.ID() != targetID {
		return domain.ErrUnauthorized
	}

	if err := as.todos.DeleteByOwner(ctx, targetID); err != nil {
		return fmt.Errorf("account delete: %w", err)
	}

	if err := as.users.DeleteByID(ctx, targetID); err != nil {
		return err
	}

	log.Info().Str("user_id", targetID).Msg("Account#DeleteAccount")

	return nil
}
