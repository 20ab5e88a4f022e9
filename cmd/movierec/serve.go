package main

import (
	"fmt"
	"time"

	"github.com/jonathan/movie-recommender/internal/config"
	"github.com/jonathan/movie-recommender/internal/results"
	"github.com/jonathan/movie-recommender/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the catalog, search and recommendation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by flags)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadCLIConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		DatabaseURL:    cfg.DatabaseURL,
		PageSize:       cfg.PageSize,
		LegacyPageSize: cfg.LegacyPageSize,
		Results: &results.Config{
			TTL:        time.Duration(cfg.ResultTTLMinutes) * time.Minute,
			MaxEntries: cfg.MaxResults,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadCLIConfig loads the optional JSON config, then fills connection fields
// from the environment and merges defaults.
func loadCLIConfig(path string) (*config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Config{
		Port:           8080,
		PageSize:       config.DefaultPageSize,
		LegacyPageSize: config.DefaultLegacyPageSize,
	})
	return &merged, nil
}
