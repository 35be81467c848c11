package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/admin-panel-service/internal/api/http"
	"github.com/spec-kit/admin-panel-service/internal/api/http/handlers"
	"github.com/spec-kit/admin-panel-service/internal/config"
	"github.com/spec-kit/admin-panel-service/internal/observability"
	"github.com/spec-kit/admin-panel-service/internal/session"
	"github.com/spec-kit/admin-panel-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracer, shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, cfg.App.Name)
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer shutdownTracing(ctx) //nolint:errcheck

	st := store.NewSeeded()
	logger.Info("store seeded",
		zap.Int("users", st.Users.Len()),
		zap.Int("products", st.Products.Len()),
		zap.Int("orders", st.Orders.Len()),
	)

	sessions := session.NewManager(
		session.Credential{Email: cfg.Auth.AdminEmail, Password: cfg.Auth.AdminPassword},
		cfg.Auth.SessionTTL(),
		session.NewFileStorage(cfg.Auth.SessionFile),
	)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, tracer, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(metrics),
		Users:    handlers.NewUsersHandler(st),
		Products: handlers.NewProductsHandler(st),
		Orders:   handlers.NewOrdersHandler(st),
		Auth:     handlers.NewAuthHandler(sessions),
		Stats:    handlers.NewStatsHandler(st),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
