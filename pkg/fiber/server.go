package fiber

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggoFiber "github.com/swaggo/fiber-swagger"

	"github.com/aebalz/mindwell-backend/internal/config"
	"github.com/aebalz/mindwell-backend/internal/handler"
	"github.com/aebalz/mindwell-backend/internal/middleware"

	// Import docs for swagger
	_ "github.com/aebalz/mindwell-backend/docs"
)

// NewFiberServer creates and configures a new Fiber application.
func NewFiberServer(cfg *config.AppConfig, apiHandler *handler.APIHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${status} - ${method} ${path} ${latency}\nREQUEST_ID: ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CorsAllowedOrigins[0], // Fiber's CORS AllowOrigins is a string, not a slice. Taking the first one.
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	app.Use(middleware.MetricsMiddlewareFiber())
	app.Use(middleware.RateLimiterFiber(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	// Swagger UI and Prometheus metrics
	app.Get("/swagger/*", swaggoFiber.WrapHandler)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	RegisterRoutes(app, cfg, apiHandler)

	return app
}

// RegisterRoutes wires every API route onto the Fiber app.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, apiHandler *handler.APIHandler) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to " + cfg.AppName + " API! The server is running.")
	})
	if apiHandler.HealthHandler != nil {
		app.Get("/health", apiHandler.HealthHandler.CheckHealthFiber)
	}

	app.Post("/register", apiHandler.RegisterFiber)
	app.Post("/login", apiHandler.LoginFiber)
	app.Post("/logout", apiHandler.LogoutFiber)

	api := app.Group("/api")
	api.Put("/user/profile", apiHandler.UpdateProfileFiber)
	api.Delete("/user/:id", apiHandler.DeleteAccountFiber)
	api.Post("/checkins", apiHandler.CreateCheckInFiber)
	api.Post("/journal", apiHandler.CreateJournalEntryFiber)
	api.Get("/journal/:user_id", apiHandler.ListJournalEntriesFiber)
	api.Get("/progress/:user_id", apiHandler.GetProgressFiber)
	api.Post("/feedback", apiHandler.SubmitFeedbackFiber)
	api.Post("/chat", apiHandler.ChatFiber)
}

// customErrorHandler for Fiber
func customErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Log the error internally
	log.Printf("Fiber Error: %v - Path: %s", err, ctx.Path())

	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// StartFiberServer starts the Fiber server.
func StartFiberServer(app *fiber.App, cfg *config.AppConfig) error {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)
	log.Printf("Starting Fiber server on %s", addr)
	return app.Listen(addr)
}
