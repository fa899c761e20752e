package port

import (
	"context"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}

type AccountService interface {
	Register(ctx context.Context, req *request.SignUpRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req *request.LoginRequest) (*domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, caller domain.Identity, targetID string, req *request.ProfileRequest) (domain.User, error)
	DeleteAccount(ctx context.Context, caller domain.Identity, targetID string) error
}
