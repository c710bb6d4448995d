package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aebalz/mindwell-backend/docs"
	"github.com/aebalz/mindwell-backend/internal/chat"
	"github.com/aebalz/mindwell-backend/internal/config"
	"github.com/aebalz/mindwell-backend/internal/handler"
	"github.com/aebalz/mindwell-backend/internal/repository"
	"github.com/aebalz/mindwell-backend/internal/service"
	"github.com/aebalz/mindwell-backend/pkg/database"
	fiberserver "github.com/aebalz/mindwell-backend/pkg/fiber"
	ginserver "github.com/aebalz/mindwell-backend/pkg/gin"
)

// @title MindWell API
// @version 1.0
// @description CRUD backend for mood check-ins, journaling, progress metrics, feedback and supportive chat.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.SetOutput(os.Stdout)
	log.Printf("Log level set to: %s", cfg.LogLevel)

	// Update Swagger info based on config
	docs.SwaggerInfo.Host = cfg.SwaggerHost
	docs.SwaggerInfo.BasePath = cfg.SwaggerBasePath
	docs.SwaggerInfo.Schemes = cfg.SwaggerSchemes
	docs.SwaggerInfo.Title = cfg.AppName + " API"

	// Connect to database
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Chat completion client. A missing key is degraded mode, not an error:
	// the chat endpoint then always serves the fallback script.
	var completer chat.Completer
	if cfg.OpenAIAPIKey != "" {
		completer = chat.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ChatMaxTokens)
		log.Printf("Chat completion client ready (model %s)", cfg.OpenAIModel)
	} else {
		log.Println("No OPENAI_API_KEY configured; chat will always answer from the fallback script")
	}

	// Initialize dependencies (Repository, Service, Handler)
	userRepo := repository.NewUserRepository(db)
	wellnessRepo := repository.NewWellnessRepository(db)

	userSvc := service.NewUserService(userRepo)
	wellnessSvc := service.NewWellnessService(wellnessRepo)
	chatSvc := service.NewChatService(completer, cfg.ChatTimeout)

	apiHandler := handler.NewAPIHandler(userSvc, wellnessSvc, chatSvc, handler.NewHealthHandler(db))

	// Graceful shutdown channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the selected server
	switch cfg.ServerFramework {
	case "fiber":
		fiberApp := fiberserver.NewFiberServer(cfg, apiHandler)
		go func() {
			if err := fiberserver.StartFiberServer(fiberApp, cfg); err != nil {
				log.Fatalf("Failed to start Fiber server: %v", err)
			}
		}()
		<-quit
		log.Println("Shutting down Fiber server...")
		if err := fiberApp.Shutdown(); err != nil {
			log.Printf("Error during Fiber server shutdown: %v", err)
		}
	case "gin":
		ginEngine := ginserver.NewGinServer(cfg, apiHandler)
		httpServer, err := ginserver.StartGinServer(ginEngine, cfg)
		if err != nil {
			log.Fatalf("Failed to start GIN server: %v", err)
		}
		<-quit
		log.Println("Shutting down GIN server...")
		ginserver.ShutdownGinServer(httpServer, 5*time.Second)

	default:
		log.Fatalf("Unsupported server framework: %s. Supported: 'fiber', 'gin'", cfg.ServerFramework)
	}

	log.Println("Server gracefully stopped.")
}
