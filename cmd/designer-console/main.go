package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/studiofront/designer-console/internal/cli"
	"github.com/studiofront/designer-console/internal/client"
	"github.com/studiofront/designer-console/internal/config"
	"github.com/studiofront/designer-console/internal/database"
	"github.com/studiofront/designer-console/internal/logger"
	"github.com/studiofront/designer-console/internal/session"

	"go.uber.org/zap"
)

func main() {
	// Parse command line flags before cobra sees the arguments
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Debug("Starting designer console",
		zap.String("env", cfg.Env),
		zap.String("config_path", *configPath),
	)

	// Initialize local session database
	db, err := database.New(cfg.Session.StoragePath, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Initialize session store and API client
	sessions := session.NewStore(db.DB, log.Logger)
	apiClient := client.NewAPIClient(
		cfg.API.BaseURL,
		cfg.API.AuthURL,
		time.Duration(cfg.API.Timeout)*time.Second,
		sessions,
		log.Logger,
	)

	// Run the command tree
	app := cli.New(cfg, apiClient, sessions, log.Logger)
	if err := app.Execute(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
