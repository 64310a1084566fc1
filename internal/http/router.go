package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/config"
	"github.com/petrescue/backend/internal/http/handlers"
	"github.com/petrescue/backend/internal/middleware"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	reportHandler *handlers.ReportHandler,
	searchHandler *handlers.SearchHandler,
	contactHandler *handlers.ContactHandler,
	adminHandler *handlers.AdminHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Uploaded pet photos
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", authHandler.GetMe)
	protected.Put("/me/profile", authHandler.UpdateProfile)

	// Browsing
	protected.Get("/pets/search", searchHandler.SearchFound)
	protected.Get("/pets/available", searchHandler.ListAvailable)

	// Reports
	protected.Post("/reports/lost", reportHandler.SubmitLost)
	protected.Post("/reports/found", reportHandler.SubmitFound)
	protected.Post("/reports/image", reportHandler.UploadImage)
	protected.Get("/dashboard/requests", reportHandler.MyReports)
	protected.Put("/requests/:id", reportHandler.EditReport)
	protected.Delete("/requests/:id", reportHandler.DeleteReport)
	protected.Get("/requests/:id/history", reportHandler.GetHistory)

	// Contact
	protected.Post("/contact", contactHandler.Submit)

	// Admin
	admin := protected.Group("/admin", middleware.AdminMiddleware())
	admin.Get("/requests", adminHandler.ListRequests)
	admin.Post("/requests/:id/status", adminHandler.UpdateRequestStatus)
	admin.Get("/notifications", adminHandler.ListNotifications)
	admin.Get("/notifications/unread-count", adminHandler.UnreadCount)
	admin.Post("/notifications/:id/mark-read", adminHandler.MarkNotificationRead)
	admin.Post("/notifications/mark-all-read", adminHandler.MarkAllNotificationsRead)
	admin.Get("/contact-submissions", adminHandler.ListContactSubmissions)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
