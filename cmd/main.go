// Package main wires the HTTP server for the event ticketing service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ANURA4G/event-ticketing-app/internal/transport/http/server/handlers-fiber"
	"github.com/ANURA4G/event-ticketing-app/internal/usecase"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/repository"
	"github.com/ANURA4G/event-ticketing-app/internal/security"
	"github.com/ANURA4G/event-ticketing-app/internal/transport/http/middleware"
	"github.com/ANURA4G/event-ticketing-app/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, cfg.Store.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	tokens := security.NewTokens(cfg.Security.JWTSecret, cfg.Security.TokenTTL)

	timeout := cfg.HTTP.RequestTimeout
	uc, err := usecase.New(log, ctx, repo, cfg, tokens, timeout)
	if err != nil {
		log.Errorw("usecase initialization error", "error", err)
		return
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	h := handlers_fiber.NewHandler(log, uc)
	auth := middleware.NewAuth(log, tokens)
	handlers_fiber.Register(serv, h, auth)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
