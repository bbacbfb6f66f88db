package server

import (
	"context"
	"os"
	"strings"
	"time"

	"tesoro-api/internal/auth"
	"tesoro-api/internal/config"
	"tesoro-api/internal/db"
	"tesoro-api/internal/engine"
	"tesoro-api/internal/handlers"
	"tesoro-api/internal/logger"
	"tesoro-api/internal/notify"
	"tesoro-api/internal/queue"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler definitions
var (
	validationHandler *handlers.ValidationHandler
	scopeHandler      *handlers.ScopeHandler
	decisionHandler   *handlers.DecisionHandler
	rationaleHandler  *handlers.RationaleHandler
	healthHandler     *handlers.HealthHandler

	// Database
	dbQueries *db.Queries
)

// InitializeHandlers wires the database pool, queue publisher, notifier and
// all HTTP handlers from the environment.
func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	dbQueries = db.New(connPool)

	defaults, err := config.DefaultsFromEnv()
	if err != nil {
		logger.Fatal("Invalid engine configuration", zap.Error(err))
	}

	// Decision events are optional: without a queue URL the publisher is
	// nil and publishing is a no-op.
	var publisher *queue.Publisher
	if queueURL := os.Getenv("DECISION_QUEUE_URL"); queueURL != "" {
		publisher, err = queue.NewPublisher(context.Background(), queueURL)
		if err != nil {
			logger.Fatal("Unable to create decision publisher", zap.Error(err))
		}
	}

	// Recovery alerts are optional as well.
	var notifier *notify.Notifier
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		from := os.Getenv("RESEND_FROM_ADDRESS")
		if from == "" {
			logger.Fatal("RESEND_FROM_ADDRESS is required when RESEND_API_KEY is set")
		}
		notifier = notify.NewNotifier(apiKey, from)
	}

	commonServices := handlers.NewCommonServices(
		dbQueries,
		defaults,
		engine.LinearPolicy{},
		publisher,
		notifier,
	)

	validationHandler = handlers.NewValidationHandler(commonServices)
	scopeHandler = handlers.NewScopeHandler(commonServices)
	decisionHandler = handlers.NewDecisionHandler(commonServices)
	rationaleHandler = handlers.NewRationaleHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(commonServices)
}

// InitializeRoutes builds the full route table on the given router.
func InitializeRoutes(router *gin.Engine) {
	// Initialize logger first
	logger.InitLogger()

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.HealthCheck)

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(auth.EnsureValidAPIKey(dbQueries))
		{
			// Validation
			protected.POST("/treasuries/:treasury_id/validate", validationHandler.ValidateTransition)

			// Scope snapshots
			protected.GET("/treasuries/:treasury_id/scopes", scopeHandler.ListScopes)
			protected.GET("/treasuries/:treasury_id/scopes/:name", scopeHandler.GetScope)

			// Decision audit log
			protected.GET("/treasuries/:treasury_id/decisions", decisionHandler.ListDecisions)

			// Redeemer tooling
			protected.POST("/rationale/hash", rationaleHandler.HashRationale)
		}
	}
}

// configureCORS builds the CORS middleware from ALLOWED_ORIGINS, a
// comma-separated list. Empty means same-origin tooling only.
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		corsConfig.AllowOrigins = []string{}
	} else {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	}

	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.MaxAge = 12 * time.Hour

	return cors.New(corsConfig)
}
