package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rentcompass/server/config"
	"rentcompass/server/internal/api"
	"rentcompass/server/internal/database"
	"rentcompass/server/internal/engine"
	"rentcompass/server/internal/processor"
	"rentcompass/server/internal/queue"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	logger.Infof("Using database at: %s", cfg.Server.DBPath)

	// Initialize database
	db, err := database.NewDatabase(cfg.Server.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	// Run database migrations
	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	// Seed the comparable pool on first run
	if cfg.Server.SeedFile != "" {
		if count, err := db.CountProperties(); err == nil && count == 0 {
			inserted, err := db.SeedFromFile(cfg.Server.SeedFile)
			if err != nil {
				logger.WithError(err).Error("Failed to seed listings")
			} else {
				logger.Infof("Seeded %d listings from %s", inserted, cfg.Server.SeedFile)
			}
		}
	}

	// Open a gorm handle on the same file for the ingestion path
	gormDB, err := gorm.Open(sqlite.Open(cfg.Server.DBPath), &gorm.Config{})
	if err != nil {
		logger.WithError(err).Fatal("Failed to open gorm database")
	}

	// Start the listing ingestion pipeline
	listingQueue := queue.NewListingQueue(cfg.BatchProcessing.MaxBatchSize, logger)
	listingQueue.Start()
	batchProcessor := processor.NewBatchProcessor(gormDB, listingQueue, cfg, logger)
	batchProcessor.Start()
	defer batchProcessor.Stop()

	// Initialize the evaluation engine
	params := engine.DefaultParams()
	params.ComparableLimit = cfg.Engine.ComparableLimit
	params.StoreTimeout = time.Duration(cfg.Engine.StoreTimeoutMS) * time.Millisecond
	eng := engine.NewEngine(db, params, logger)

	// Initialize handler and router
	handler := api.NewHandler(eng, db, listingQueue, logger)

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(api.RequestID())
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
