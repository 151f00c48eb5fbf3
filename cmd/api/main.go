package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/auth"
	"github.com/stepkart/stepkart-golang/internal/config"
	"github.com/stepkart/stepkart-golang/internal/database"
	"github.com/stepkart/stepkart-golang/internal/handlers"
	"github.com/stepkart/stepkart-golang/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	auth.SetSecret(cfg.JWTSecret)

	db, err := database.OpenDB(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	app := &handlers.Handlers{
		DB:  db,
		Cfg: cfg,
	}

	router := routes.SetupRouter(app)

	logrus.Infof("Starting StepKart API server on port %s", cfg.AppPort)
	if err := router.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
