package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/database/memory"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/middleware"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/session"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
	"github.com/mateusfonseca/dorsetToDo/internal/core/service"
)

type testEnv struct {
	router   *gin.Engine
	sessions port.SessionStore
	users    port.UserRepository
	todos    port.TodoRepository
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	todos := memory.NewTodoRepository()
	sessions := session.NewMemoryStore()

	accountService := service.NewAccountService(users, todos)
	todoService := service.NewTodoService(todos)

	authHandler := NewAuthHandler(accountService, sessions, nil)
	todoHandler := NewTodoHandler(todoService, sessions, nil)

	router := gin.New()
	router.Use(middleware.SessionMiddleware(sessions))

	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/signup", authHandler.ShowSignup)
	router.POST("/signup", authHandler.Signup)
	router.GET("/", todoHandler.Index)
	router.POST("/", todoHandler.CreateTodo)

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/logout", authHandler.Logout)
		protected.GET("/profile", authHandler.Profile)
		protected.POST("/user/:id/update/", authHandler.UpdateProfile)
		protected.POST("/user/:id/delete/", authHandler.DeleteAccount)
		protected.POST("/todo/:id/update/", todoHandler.UpdateTodo)
		protected.POST("/todo/:id/done/", todoHandler.ToggleDone)
		protected.POST("/todo/:id/delete/", todoHandler.DeleteTodo)
	}

	return &testEnv{
		router:   router,
		sessions: sessions,
		users:    users,
		todos:    todos,
	}
}

// postForm submits a form-encoded request, carrying the given session
// cookie when present.
func (e *testEnv) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)

	return rr
}

func (e *testEnv) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)

	if cookie != nil {
		req.AddCookie(cookie)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)

	return rr
}

// sessionCookie returns the last session cookie set on the response; a
// login response carries both the anonymous and the rotated cookie.
func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie

	for _, c := range rr.Result().Cookies() {
		if c.Name == session.Cookie && c.Value != "" {
			found = c
		}
	}

	return found
}

func (e *testEnv) signup(email, name, password string) *httptest.ResponseRecorder {
	return e.postForm("/signup", url.Values{
		"email":    {email},
		"name":     {name},
		"password": {password},
	}, nil)
}

// login registers nothing; it authenticates an existing user and returns
// the authenticated session cookie.
func (e *testEnv) login(email, password string) *http.Cookie {
	rr := e.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)

	return sessionCookie(rr)
}
