package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/config"
	"github.com/petrescue/backend/internal/db"
	"github.com/petrescue/backend/internal/events"
	apphttp "github.com/petrescue/backend/internal/http"
	"github.com/petrescue/backend/internal/http/handlers"
	"github.com/petrescue/backend/internal/repositories"
	"github.com/petrescue/backend/internal/services"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("failed to create upload dir", zap.Error(err))
	}

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	petRepo := repositories.NewPetRepo(pool)
	requestRepo := repositories.NewRequestRepo(pool)
	activityRepo := repositories.NewActivityRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	contactRepo := repositories.NewContactRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	delivery := services.NewDeliveryClient(cfg.DeliveryURL, log)
	reportService := services.NewReportService(pool, petRepo, requestRepo, activityRepo, notificationRepo, publisher, delivery, cfg, log)
	moderationService := services.NewModerationService(pool, requestRepo, petRepo, activityRepo, publisher, log)
	notificationService := services.NewNotificationService(notificationRepo, log)
	searchService := services.NewSearchService(petRepo, log)
	contactService := services.NewContactService(pool, contactRepo, notificationRepo, petRepo, publisher, delivery, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(pool, userRepo, cfg, log)
	reportHandler := handlers.NewReportHandler(reportService, cfg, log)
	searchHandler := handlers.NewSearchHandler(searchService, log)
	contactHandler := handlers.NewContactHandler(contactService, log)
	adminHandler := handlers.NewAdminHandler(moderationService, notificationService, contactService, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxImageBytes) + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, authHandler, reportHandler, searchHandler, contactHandler, adminHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
