package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/handler"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/middleware"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
	"github.com/mateusfonseca/dorsetToDo/internal/shared"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
}

type RouterConfig struct {
	RateLimitEnabled bool
	Registry         *prometheus.Registry
}

func SetupRouter(handlers HandlersConfig, store port.SessionStore, metrics *shared.AppMetrics, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	if metrics != nil {
		router.Use(middleware.MetricsMiddleware(metrics))
	}

	// Operational endpoints sit ahead of the session layer so scrapes do
	// not mint anonymous sessions.
	if cfg.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The session layer runs before the rate limiter: the default bucket
	// is keyed by the authenticated user.
	router.Use(middleware.SessionMiddleware(store))

	if cfg.RateLimitEnabled {
		router.Use(middleware.NewRateLimiter(metrics).RateLimitMiddleware())
	}

	setupRoutes(router, handlers)

	return router
}

func setupRoutes(router *gin.Engine, handlers HandlersConfig) {
	auth := handlers.AuthHandler
	todo := handlers.TodoHandler

	public := router.Group("/")
	{
		public.GET("/login", auth.ShowLogin)
		public.POST("/login", auth.Login)
		public.GET("/signup", auth.ShowSignup)
		public.POST("/signup", auth.Signup)
		public.GET("/", todo.Index)
		public.POST("/", todo.CreateTodo)
	}

	protected := router.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/logout", auth.Logout)
		protected.GET("/profile", auth.Profile)
		protected.POST("/user/:id/update/", auth.UpdateProfile)
		protected.POST("/user/:id/delete/", auth.DeleteAccount)
		protected.POST("/todo/:id/update/", todo.UpdateTodo)
		protected.POST("/todo/:id/done/", todo.ToggleDone)
		protected.POST("/todo/:id/delete/", todo.DeleteTodo)
	}
}

// SetupRouterForTests wires the full route table with session handling but
// without metrics or rate limiting.
func SetupRouterForTests(handlers HandlersConfig, store port.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.SessionMiddleware(store))

	setupRoutes(router, handlers)

	return router
}
