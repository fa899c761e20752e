package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/database/memory"
	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/model/request"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
	"github.com/mateusfonseca/dorsetToDo/internal/core/service"
	"github.com/mateusfonseca/dorsetToDo/internal/core/util"
)

type AccountServiceTestSuite struct {
	suite.Suite
	svc   port.AccountService
	users port.UserRepository
	todos port.TodoRepository
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.users = memory.NewUserRepository()
	s.todos = memory.NewTodoRepository()
	s.svc = service.NewAccountService(s.users, s.todos)
}

func TestAccountServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) register(email, name, password string) *domain.User {
	user, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Email:    email,
		Name:     name,
		Password: password,
	})

	assert.NoError(s.T(), err)

	return user
}

func (s *AccountServiceTestSuite) TestRegister_Success() {
	user := s.register("a@x.com", "Alice", "pw1secret")

	assert.Equal(s.T(), "a@x.com", user.Email)
	assert.Equal(s.T(), "Alice", user.Name)
	assert.NotEqual(s.T(), "pw1secret", user.EncryptedPassword)
	assert.False(s.T(), user.ID.IsZero())
}

func (s *AccountServiceTestSuite) TestRegister_DuplicateEmail() {
	s.register("a@x.com", "Alice", "pw1secret")

	_, err := s.svc.Register(context.Background(), &request.SignUpRequest{
		Email:    "a@x.com",
		Name:     "Mallory",
		Password: "pw2secret",
	})

	assert.ErrorIs(s.T(), err, domain.ErrDuplicateEmail)

	// Exactly one user with that email exists, untouched by the second call.
	stored, err := s.users.GetByEmail(context.Background(), "a@x.com")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Alice", stored.Name)
	assert.NoError(s.T(), util.ComparePassword("pw1secret", stored.EncryptedPassword))
}

func (s *AccountServiceTestSuite) TestAuthenticate_Success() {
	created := s.register("a@x.com", "Alice", "pw1secret")

	user, err := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "pw1secret",
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, user.ID)
}

func (s *AccountServiceTestSuite) TestAuthenticate_WrongPassword() {
	s.register("a@x.com", "Alice", "pw1secret")

	_, err := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "a@x.com",
		Password: "not-the-password",
	})

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

func (s *AccountServiceTestSuite) TestAuthenticate_UnknownEmail() {
	_, err := s.svc.Authenticate(context.Background(), &request.LoginRequest{
		Email:    "nobody@x.com",
		Password: "pw1secret",
	})

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

func (s *AccountServiceTestSuite) TestUpdateProfile_Success() {
	user := s.register("a@x.com", "Alice", "pw1secret")

	updated, err := s.svc.UpdateProfile(context.Background(),
		domain.Identity{UserID: user.HexID()}, user.HexID(),
		&request.ProfileRequest{Email: "new@x.com", Name: "Alice B", Password: "newsecret"})

	assert.NoError(s.T(), err)
	Expect(updated.Email).To(Equal("new@x.com"))
	Expect(updated.Name).To(Equal("Alice B"))
	assert.NoError(s.T(), util.ComparePassword("newsecret", updated.EncryptedPassword))
}

func (s *AccountServiceTestSuite) TestUpdateProfile_BlankPasswordKeepsHash() {
	user := s.register("a@x.com", "Alice", "pw1secret")

	updated, err := s.svc.UpdateProfile(context.Background(),
		domain.Identity{UserID: user.HexID()}, user.HexID(),
		&request.ProfileRequest{Email: "a@x.com", Name: "Alice B"})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), user.EncryptedPassword, updated.EncryptedPassword)
	assert.NoError(s.T(), util.ComparePassword("pw1secret", updated.EncryptedPassword))
}

func (s *AccountServiceTestSuite) TestUpdateProfile_CallerMismatch() {
	target := s.register("a@x.com", "Alice", "pw1secret")
	other := s.register("b@x.com", "Bob", "pw2secret")

	_, err := s.svc.UpdateProfile(context.Background(),
		domain.Identity{UserID: other.HexID()}, target.HexID(),
		&request.ProfileRequest{Email: "hacked@x.com", Name: "Hacked", Password: "hacked99"})

	assert.ErrorIs(s.T(), err, domain.ErrUnauthorized)

	// Target document is unchanged.
	stored, _ := s.users.GetByID(context.Background(), target.HexID())
	Expect(stored.Email).To(Equal("a@x.com"))
	Expect(stored.Name).To(Equal("Alice"))
}

func (s *AccountServiceTestSuite) TestUpdateProfile_DuplicateEmail() {
	s.register("taken@x.com", "Bob", "pw2secret")
	user := s.register("a@x.com", "Alice", "pw1secret")

	_, err := s.svc.UpdateProfile(context.Background(),
		domain.Identity{UserID: user.HexID()}, user.HexID(),
		&request.ProfileRequest{Email: "taken@x.com", Name: "Alice"})

	assert.ErrorIs(s.T(), err, domain.ErrDuplicateEmail)
}

func (s *AccountServiceTestSuite) TestUpdateProfile_SameEmailNoCollision() {
	user := s.register("a@x.com", "Alice", "pw1secret")

	_, err := s.svc.UpdateProfile(context.Background(),
		domain.Identity{UserID: user.HexID()}, user.HexID(),
		&request.ProfileRequest{Email: "a@x.com", Name: "Alice Renamed"})

	assert.NoError(s.T(), err)
}

func (s *AccountServiceTestSuite) TestDeleteAccount_CascadesTodos() {
	user := s.register("a@x.com", "Alice", "pw1secret")
	ident := domain.Identity{UserID: user.HexID()}

	todoSvc := service.NewTodoService(s.todos)
	todoSvc.Create(context.Background(), ident, &request.TodoRequest{Content: "buy milk"})
	todoSvc.Create(context.Background(), ident, &request.TodoRequest{Content: "walk dog"})

	err := s.svc.DeleteAccount(context.Background(), ident, user.HexID())

	assert.NoError(s.T(), err)

	_, err = s.users.GetByID(context.Background(), user.HexID())
	assert.ErrorIs(s.T(), err, domain.ErrNotFound)

	remaining, _ := s.todos.ListByOwner(context.Background(), user.HexID())
	Expect(remaining).To(BeEmpty())
}

func (s *AccountServiceTestSuite) TestDeleteAccount_CallerMismatch() {
	target := s.register("a@x.com", "Alice", "pw1secret")
	other := s.register("b@x.com", "Bob", "pw2secret")

	err := s.svc.DeleteAccount(context.Background(), domain.Identity{UserID: other.HexID()}, target.HexID())

	assert.ErrorIs(s.T(), err, domain.ErrUnauthorized)

	_, err = s.users.GetByID(context.Background(), target.HexID())
	assert.NoError(s.T(), err)
}
