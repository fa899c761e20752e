package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/database/memory"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/handler"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/session"
	"github.com/mateusfonseca/dorsetToDo/internal/core/service"
)

func setupAppRouter(rateLimitEnabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	todos := memory.NewTodoRepository()
	sessions := session.NewMemoryStore()

	accountService := service.NewAccountService(users, todos)
	todoService := service.NewTodoService(todos)

	return SetupRouter(HandlersConfig{
		AuthHandler: handler.NewAuthHandler(accountService, sessions, nil),
		TodoHandler: handler.NewTodoHandler(todoService, sessions, nil),
	}, sessions, nil, RouterConfig{RateLimitEnabled: rateLimitEnabled})
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	return rr
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie

	for _, c := range rr.Result().Cookies() {
		if c.Name == session.Cookie && c.Value != "" {
			found = c
		}
	}

	return found
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) *http.Cookie {
	rr := postForm(router, "/signup", url.Values{
		"email":    {email},
		"name":     {"Someone"},
		"password": {"12345678"},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	rr = postForm(router, "/login", url.Values{
		"email":    {email},
		"password": {"12345678"},
	})
	assert.Equal(t, http.StatusSeeOther, rr.Code)

	cookie := sessionCookie(rr)
	assert.NotNil(t, cookie)

	return cookie
}

func TestSetupRouter_RateLimitBucketsPerAuthenticatedUser(t *testing.T) {
	router := setupAppRouter(true)

	cookieA := registerAndLogin(t, router, "a@x.com")
	cookieB := registerAndLogin(t, router, "b@x.com")

	remaining := func(cookie *http.Cookie) string {
		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(cookie)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		return rr.Header().Get("X-RateLimit-Remaining")
	}

	// Two users behind the same address each get a full window.
	assert.Equal(t, "59", remaining(cookieA))
	assert.Equal(t, "59", remaining(cookieB))
}

func TestSetupRouter_HealthDoesNotMintSession(t *testing.T) {
	router := setupAppRouter(false)

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, sessionCookie(rr))
}
