package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	mongodb "github.com/mateusfonseca/dorsetToDo/internal/adapter/database/mongo"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/database/mongo/repository"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/handler"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/http/routes"
	"github.com/mateusfonseca/dorsetToDo/internal/adapter/session"
	"github.com/mateusfonseca/dorsetToDo/internal/core/service"
	"github.com/mateusfonseca/dorsetToDo/internal/shared"
	"github.com/mateusfonseca/dorsetToDo/pkg/config"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg)

	ctx := context.Background()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)

	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	sessions := session.NewRedisStore(rdb)

	users := repository.NewUserRepository(db)
	todos := repository.NewTodoRepository(db)

	accountService := service.NewAccountService(users, todos)
	todoService := service.NewTodoService(todos)

	registry := prometheus.NewRegistry()
	metrics := shared.NewAppMetrics(registry)

	authHandler := handler.NewAuthHandler(accountService, sessions, metrics)
	todoHandler := handler.NewTodoHandler(todoService, sessions, metrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: authHandler,
		TodoHandler: todoHandler,
	}, sessions, metrics, routes.RouterConfig{
		RateLimitEnabled: cfg.RateLimitEnabled,
		Registry:         registry,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}
