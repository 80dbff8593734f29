package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"campusmarket/server/config"
	"campusmarket/server/internal/api"
	"campusmarket/server/internal/database"
	"campusmarket/server/internal/pricing"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}
	logger.Infof("Using database at: %s", cfg.Database.Path)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	if cfg.Database.SeedPath != "" {
		count, err := db.SeedFromFile(cfg.Database.SeedPath)
		if err != nil {
			logger.WithError(err).Fatal("Failed to seed database")
		}
		logger.Infof("Seeded %d listings from %s", count, cfg.Database.SeedPath)
	}

	engine := pricing.NewEngine(db, db, logger, pricing.Options{
		ConfigCacheTTL:   cfg.Pricing.ConfigCacheTTL,
		SimilarItemLimit: cfg.Pricing.SimilarItemLimit,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	api.SetupRoutes(router, db, engine, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Infof("Starting server on port %d", cfg.Server.Port)
	if err := router.Run(addr); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
