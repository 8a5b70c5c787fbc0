package main

import (
	"os"
	"time"

	"nyc-airbnb-dashboard/config"
	"nyc-airbnb-dashboard/handlers"
	"nyc-airbnb-dashboard/services"
	"nyc-airbnb-dashboard/storage"
	"nyc-airbnb-dashboard/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(utils.ParseLevel(cfg.LogLevel))

	logger.Info("=== NYC Airbnb Dashboard starting ===")
	logger.Info("Config — source: %s | table: %s | addr: %s",
		cfg.DataSource, cfg.ListingTable, cfg.HTTPAddr)

	source, err := openSource(cfg, logger)
	if err != nil {
		logger.Error("Failed to open data source: %v", err)
		os.Exit(1)
	}
	defer source.Close()

	rawListings, err := source.FetchAll()
	if err != nil {
		logger.Error("Failed to load listings: %v", err)
		os.Exit(1)
	}
	if len(rawListings) == 0 {
		logger.Error("Data source returned no listings. Exiting.")
		os.Exit(1)
	}
	logger.Info("Loaded %d raw listings", len(rawListings))

	cleaner := services.NewCleaner(logger)
	cleanListings := cleaner.Clean(rawListings)
	if len(cleanListings) == 0 {
		logger.Error("All listings were dropped during cleaning. Exiting.")
		os.Exit(1)
	}
	logger.Info("Cleaned dataset: %d listings", len(cleanListings))

	server := handlers.NewServer(cleanListings, logger)
	router := server.Router("templates/*")

	logger.Info("Dashboard: http://localhost%s/", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		logger.Error("Server stopped: %v", err)
		os.Exit(1)
	}
}

func openSource(cfg *config.Config, logger *utils.Logger) (storage.ListingSource, error) {
	switch cfg.DataSource {
	case "csv":
		return storage.NewCSVSource(cfg.CSVInputPath, logger), nil
	default:
		retry := &utils.RetryConfig{
			MaxAttempts: cfg.PingRetries,
			BaseDelay:   time.Duration(cfg.PingBaseDelayMs) * time.Millisecond,
			Logger:      logger,
		}
		return storage.NewPostgresSource(cfg.DSN(), cfg.ListingTable, retry)
	}
}
