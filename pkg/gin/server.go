package gin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggoFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/aebalz/mindwell-backend/internal/config"
	"github.com/aebalz/mindwell-backend/internal/handler"
	"github.com/aebalz/mindwell-backend/internal/middleware"

	// Import docs for swagger
	_ "github.com/aebalz/mindwell-backend/docs"
)

const RequestIDKey = "requestID"

// NewGinServer creates and configures a new Gin application.
func NewGinServer(cfg *config.AppConfig, apiHandler *handler.APIHandler) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware())
	router.Use(middleware.MetricsMiddlewareGin())
	router.Use(middleware.RateLimiterGin(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CorsAllowedOrigins) == 1 && cfg.CorsAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CorsAllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger UI and Prometheus metrics
	url := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggoFiles.Handler, url))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(router, cfg, apiHandler)

	return router
}

// RegisterRoutes wires every API route onto the Gin engine.
func RegisterRoutes(router *gin.Engine, cfg *config.AppConfig, apiHandler *handler.APIHandler) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to "+cfg.AppName+" API! The server is running.")
	})
	if apiHandler.HealthHandler != nil {
		router.GET("/health", apiHandler.HealthHandler.CheckHealthGin)
	}

	router.POST("/register", apiHandler.RegisterGin)
	router.POST("/login", apiHandler.LoginGin)
	router.POST("/logout", apiHandler.LogoutGin)

	api := router.Group("/api")
	{
		api.PUT("/user/profile", apiHandler.UpdateProfileGin)
		api.DELETE("/user/:id", apiHandler.DeleteAccountGin)
		api.POST("/checkins", apiHandler.CreateCheckInGin)
		api.POST("/journal", apiHandler.CreateJournalEntryGin)
		api.GET("/journal/:user_id", apiHandler.ListJournalEntriesGin)
		api.GET("/progress/:user_id", apiHandler.GetProgressGin)
		api.POST("/feedback", apiHandler.SubmitFeedbackGin)
		api.POST("/chat", apiHandler.ChatGin)
	}
}

// requestIDMiddleware adds a request ID to each request.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// loggingMiddleware logs requests using a structured format.
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		end := time.Now()
		latency := end.Sub(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		statusCode := c.Writer.Status()
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()
		requestID, _ := c.Get(RequestIDKey)

		if raw != "" {
			path = path + "?" + raw
		}

		log.Printf("[GIN] %s | %3d | %13v | %15s | %s %s | %s | RequestID: %s",
			end.Format("2006/01/02 - 15:04:05"),
			statusCode,
			latency,
			clientIP,
			method,
			path,
			errorMessage,
			requestID,
		)
	}
}

// StartGinServer starts the Gin server.
func StartGinServer(router *gin.Engine, cfg *config.AppConfig) (*http.Server, error) {
	addr := fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	log.Printf("Starting GIN server on %s", addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	return srv, nil
}

// ShutdownGinServer gracefully shuts down the Gin server.
func ShutdownGinServer(srv *http.Server, timeout time.Duration) {
	log.Println("Shutting down GIN server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("GIN server exiting")
}
