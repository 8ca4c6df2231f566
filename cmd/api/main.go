// Package main is the entry point for the ArkadasAI demo API server.
//
// It loads configuration, builds the in-memory stores and the plan catalog,
// wires the HTTP server with the core chassis (middleware, routing, health
// check), and starts listening for requests.
//
// All state lives in process memory and is lost on restart; there is nothing
// to flush on shutdown beyond in-flight requests. Graceful shutdown is
// handled via OS signal interception (SIGINT, SIGTERM).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"arkadasai/internal/api/handlers"
	"arkadasai/internal/billing"
	"arkadasai/internal/config"
	"arkadasai/internal/core"
	"arkadasai/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the startup lifecycle so that main() can cleanly exit on error.
func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Info("arkadasai API starting",
		"environment", cfg.Environment,
		"service", cfg.Service,
		"port", cfg.Server.Port,
	)

	// Process-lifetime state. Constructed once here and passed by shared
	// reference to every handler; nothing is ambient or global.
	users := store.NewUserStore()
	tokens := store.NewTokenStore()
	catalog := billing.NewStaticPlanCatalog()

	srv, err := core.NewServer(cfg, tokens, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	authHandler := handlers.NewAuthHandler(users, tokens, srv.Validator, logger)
	plansHandler := handlers.NewPlansHandler(catalog)
	accountHandler := handlers.NewAccountHandler(users, srv.Validator, logger)
	chatHandler := handlers.NewChatHandler(users, cfg.Chat.ReplyDelay, srv.Validator, logger)

	srv.RouteRegistrars = append(srv.RouteRegistrars, func(r chi.Router) {
		// Public endpoints
		authHandler.RegisterRoutes(r)
		plansHandler.RegisterRoutes(r)

		// Endpoints requiring a resolved bearer token
		r.Group(func(r chi.Router) {
			r.Use(srv.RequireAuth)
			accountHandler.RegisterRoutes(r)
			chatHandler.RegisterRoutes(r)
		})
	})

	srv.MountRoutes()

	return runHTTPServer(srv, cfg, logger)
}

// runHTTPServer starts the server in standard HTTP mode with graceful shutdown.
func runHTTPServer(srv *core.Server, cfg *config.Config, logger *slog.Logger) error {
	addr := ":" + cfg.Server.Port

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("initiating graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped cleanly")
	return nil
}

// newLogger creates a structured slog.Logger configured for the given log level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: false,
	})
	return slog.New(handler)
}
