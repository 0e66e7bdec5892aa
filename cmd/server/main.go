package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/andresavalerio/software-engineering-backend/internal/app/di"
	"github.com/andresavalerio/software-engineering-backend/internal/app/router"
	notebookadapters "github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/adapters"
	notebookhandler "github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/transport/handler"
	notebookusecase "github.com/andresavalerio/software-engineering-backend/internal/feature/notebook/usecase"
	userhandler "github.com/andresavalerio/software-engineering-backend/internal/feature/user/transport/handler"
	userusecase "github.com/andresavalerio/software-engineering-backend/internal/feature/user/usecase"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/config"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/db"
	jwtauth "github.com/andresavalerio/software-engineering-backend/internal/platform/jwt"
	"github.com/andresavalerio/software-engineering-backend/internal/platform/logger"
	infraredis "github.com/andresavalerio/software-engineering-backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	l := logger.New(cfg.App.LogLevel, cfg.IsDevelopment())

	// db
	gdb, err := db.Open(cfg.Database)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to open database")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer func() {
			if err := sqlDB.Close(); err != nil {
				l.Error().Err(err).Msg("failed to close database")
			}
		}()
	}

	// Redis is optional
	var rdb *redisv9.Client
	if cfg.Redis.Addr == "" {
		l.Info().Msg("redis not configured, running without cache")
	} else if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		l.Warn().Err(err).Msg("redis unavailable, running without cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				l.Error().Err(err).Msg("failed to close redis client")
			}
		}()
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, gdb, cfg.Redis.TTL)
	notebookRepo := notebookadapters.NewNotebookGorm(gdb)

	// Usecase
	tokens := jwtauth.NewGenerator(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userUC := userusecase.NewUserUsecase(userRepo, tokens)
	notebookUC := notebookusecase.NewNotebookUsecase(notebookRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	notebookH := notebookhandler.NewNotebookHandler(notebookUC)

	r := router.NewRouter(l, cfg.Server.CORSAllowedOrigins, userH, notebookH)

	srv := &http.Server{
		Addr:         net.JoinHostPort("", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		l.Info().Str("addr", srv.Addr).Str("env", cfg.App.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			l.Error().Err(err).Msg("server failed")
			return
		}
	case <-ctx.Done():
		l.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error().Err(err).Msg("graceful shutdown failed")
	}
}
