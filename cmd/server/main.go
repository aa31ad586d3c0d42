package main

import (
	"net/http"
	"os"

	"github.com/hakuramasam/arcade-gmmc/internal/api"
	"github.com/hakuramasam/arcade-gmmc/internal/config"
	"github.com/hakuramasam/arcade-gmmc/internal/database"
	"github.com/hakuramasam/arcade-gmmc/internal/logger"
	"github.com/hakuramasam/arcade-gmmc/internal/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware (pre-flight handled before routing)
	middleware.AllowedOrigin = cfg.CORSAllowedOrigin
	handler := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
