package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/pickles/internal/config"
	"github.com/example/pickles/internal/handlers"
	"github.com/example/pickles/internal/middleware"
	"github.com/example/pickles/internal/services"
	"github.com/example/pickles/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	records := store.NewRecords(db)
	users := store.NewUsers(db)

	broadcast := services.NewBroadcastChannel(cfg.BroadcastBotToken, cfg.BroadcastChatID, cfg.DispatchTimeout)
	mail := services.NewMailChannel(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.OperatorEmail)
	dispatcher := services.NewDispatcher(broadcast, mail, cfg.DispatchTimeout)

	authHandler := handlers.NewAuthHandler(users, cfg, dispatcher)
	contactHandler := handlers.NewContactHandler(records, dispatcher, cfg)
	orderHandler := handlers.NewOrderHandler(records, dispatcher, cfg)
	systemHandler := handlers.NewSystemHandler(records, dispatcher, cfg)

	app.Get("/health", systemHandler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	api.Post("/contact", contactHandler.Submit)

	system := api.Group("/system")
	system.Get("/info", systemHandler.Info)
	system.Post("/test-message", systemHandler.TestMessage)
	system.Post("/notify", systemHandler.Notify)

	admin := api.Group("/admin")
	admin.Post("/test-user", authHandler.CreateTestUser)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Post("/checkout", orderHandler.Checkout)
}
