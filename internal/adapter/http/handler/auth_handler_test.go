package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	"github.com/mateusfonseca/dorsetToDo/internal/core/model/response"
)

type AuthHandlerSuite struct {
	suite.Suite
	env *testEnv
}

func (s *AuthHandlerSuite) SetupTest() {
	s.env = newTestEnv()
}

func TestAuthHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) TestSignupSuccessRedirectsToLogin() {
	rr := s.env.signup("eu@test.com", "Eu", "12345678")

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/login"))

	_, err := s.env.users.GetByEmail(context.Background(), "eu@test.com")
	Expect(err).NotTo(HaveOccurred())
}

func (s *AuthHandlerSuite) TestSignupDuplicateEmailFlashesAndRedirects() {
	s.env.signup("eu@test.com", "Eu", "12345678")
	rr := s.env.signup("eu@test.com", "Tu", "87654321")

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/signup"))

	// The flash shows up on the next signup page render for that session.
	page := s.env.get("/signup", sessionCookie(rr))

	var body response.PageResponse
	Expect(json.Unmarshal(page.Body.Bytes(), &body)).To(Succeed())
	Expect(body.Flashes).To(ContainElement("Email address already exists"))
}

func (s *AuthHandlerSuite) TestLoginSuccessSetsSessionAndRedirectsHome() {
	s.env.signup("eu@test.com", "Eu", "12345678")

	rr := s.env.postForm("/login", url.Values{
		"email":    {"eu@test.com"},
		"password": {"12345678"},
	}, nil)

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/"))
	Expect(sessionCookie(rr)).NotTo(BeNil())
}

func (s *AuthHandlerSuite) TestLoginWrongPasswordFlashesAndRedirects() {
	s.env.signup("eu@test.com", "Eu", "12345678")

	rr := s.env.postForm("/login", url.Values{
		"email":    {"eu@test.com"},
		"password": {"wrong-password"},
	}, nil)

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/login"))

	page := s.env.get("/login", sessionCookie(rr))

	var body response.PageResponse
	Expect(json.Unmarshal(page.Body.Bytes(), &body)).To(Succeed())
	Expect(body.Flashes).To(ContainElement("Please check your login details and try again."))
}

func (s *AuthHandlerSuite) TestLoginPageRedirectsWhenAuthenticated() {
	s.env.signup("eu@test.com", "Eu", "12345678")
	cookie := s.env.login("eu@test.com", "12345678")

	rr := s.env.get("/login", cookie)

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/"))
}

func (s *AuthHandlerSuite) TestProfileRequiresAuth() {
	rr := s.env.get("/profile", nil)

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/login"))
}

func (s *AuthHandlerSuite) TestProfileShowsAccountDetails() {
	s.env.signup("eu@test.com", "Eu", "12345678")
	cookie := s.env.login("eu@test.com", "12345678")

	rr := s.env.get("/profile", cookie)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var body struct {
		Data response.UserResponse `json:"data"`
	}
	Expect(json.Unmarshal(rr.Body.Bytes(), &body)).To(Succeed())
	Expect(body.Data.Email).To(Equal("eu@test.com"))
	Expect(body.Data.Name).To(Equal("Eu"))
}

func (s *AuthHandlerSuite) TestLogoutEndsSession() {
	s.env.signup("eu@test.com", "Eu", "12345678")
	cookie := s.env.login("eu@test.com", "12345678")

	rr := s.env.get("/logout", cookie)

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/"))

	// The old cookie no longer authenticates.
	rr = s.env.get("/profile", cookie)
	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/login"))
}

func (s *AuthHandlerSuite) TestUpdateProfileForAnotherUserIsAbsorbed() {
	s.env.signup("a@test.com", "Alice", "12345678")
	s.env.signup("b@test.com", "Bob", "12345678")

	target, _ := s.env.users.GetByEmail(context.Background(), "a@test.com")
	cookie := s.env.login("b@test.com", "12345678")

	rr := s.env.postForm("/user/"+target.HexID()+"/update/", url.Values{
		"email":    {"stolen@test.com"},
		"name":     {"Stolen"},
		"password": {"hacked999"},
	}, cookie)

	// Same redirect as success; the target document is untouched.
	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/profile"))

	stored, _ := s.env.users.GetByID(context.Background(), target.HexID())
	Expect(stored.Email).To(Equal("a@test.com"))
	Expect(stored.Name).To(Equal("Alice"))
}

func (s *AuthHandlerSuite) TestDeleteAccountEndsSessionAndRedirectsHome() {
	s.env.signup("eu@test.com", "Eu", "12345678")

	user, _ := s.env.users.GetByEmail(context.Background(), "eu@test.com")
	cookie := s.env.login("eu@test.com", "12345678")

	rr := s.env.postForm("/user/"+user.HexID()+"/delete/", url.Values{}, cookie)

	Expect(rr.Code).To(Equal(http.StatusSeeOther))
	Expect(rr.Header().Get("Location")).To(Equal("/"))

	_, err := s.env.users.GetByID(context.Background(), user.HexID())
	Expect(err).To(HaveOccurred())
}
