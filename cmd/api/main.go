package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jobdeck/job-deck/internal/config"
	"github.com/jobdeck/job-deck/internal/database"
	"github.com/jobdeck/job-deck/internal/handlers"
	"github.com/jobdeck/job-deck/internal/services"
	"github.com/jobdeck/job-deck/internal/telemetry"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment defaults")
	}
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.PostgresDSN)

	// 3. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(db)
	activityService := services.NewActivityService(db)

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// 5. Setup Router & CORS
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-User-ID"}
	r.Use(cors.New(corsConfig))
	r.Use(telemetry.RequestMetrics())
	r.GET("/metrics", gin.WrapH(telemetry.Handler()))

	// 6. Define Routes
	handlers.Register(r, jobHandler, activityHandler)

	logrus.Infof("server starting on port %s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
