package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/job-application-tracker/internal/config"
	"github.com/justsurfingit/job-application-tracker/internal/database"
	"github.com/justsurfingit/job-application-tracker/internal/handlers"
	"github.com/justsurfingit/job-application-tracker/internal/repository"
	"github.com/justsurfingit/job-application-tracker/internal/services"
)

func main() {
	// 1. Configuration (env + .env)
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Core Services
	repo := repository.NewApplicationRepository(db, cfg.SearchInsensitive)
	appService := services.NewApplicationService(repo, nil)

	// 4. Handlers
	appHandler := handlers.NewApplicationHandler(appService)

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 6. Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		appHandler.RegisterRoutes(api)
	}

	logrus.Infof("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Server failed to start: ", err)
	}
}
