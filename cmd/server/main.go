package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/higholive/party-api/internal/config"
	"github.com/higholive/party-api/internal/database"
	"github.com/higholive/party-api/internal/handler"
	"github.com/higholive/party-api/internal/logger"
	"github.com/higholive/party-api/internal/middleware"
	"github.com/higholive/party-api/internal/notify"
	"github.com/higholive/party-api/internal/queue"
	"github.com/higholive/party-api/internal/repository"
	"github.com/higholive/party-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()
	log := logger.New(cfg.Env, "party-api")
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(schemaCtx, db); err != nil {
		cancelSchema()
		log.Fatal("schema migration failed", zap.Error(err))
	}
	cancelSchema()

	rdb := config.NewRedisClient() // nil when Redis is unreachable; middleware degrades to no-ops

	reservations := repository.NewReservationRepo(db)
	notifications := repository.NewNotificationRepo(db)

	brokerURL := queue.BrokerURL()
	publisher := queue.NewPublisher(brokerURL, log)
	webhook := notify.NewWebhook(cfg.WebhookURL, log)
	consumer := queue.NewConsumer(brokerURL, webhook, notifications, log)
	go consumer.Start()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(log))

	router.RegisterRoutes(e, router.Handlers{
		Auth:        handler.NewAuthHandler(cfg),
		Reservation: handler.NewReservationHandler(reservations, publisher, cfg.MaxPeople, log),
		Payment:     handler.NewPaymentHandler(reservations, cfg.QR, log),
		Admin:       handler.NewAdminHandler(reservations, notifications, publisher, log),
		JWTSecret:   cfg.JWTSecret,
		RateLimit:   middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
		Cache:       middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
	})

	go func() {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}
