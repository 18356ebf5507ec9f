package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yatra/travel-planner/internal/cache"
	"github.com/yatra/travel-planner/internal/db"
	"github.com/yatra/travel-planner/internal/generator"
	"github.com/yatra/travel-planner/internal/llm"
	"github.com/yatra/travel-planner/internal/server"
)

var (
	servePort    int
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the plan generation endpoint and the profile, destination, and itinerary stores.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger. Verbose mode lowers the level and
// switches to the human-readable console writer.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var logger zerolog.Logger
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	logger := newLogger(serveVerbose)

	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	// Redis is optional; without it every dashboard visit re-invokes the
	// generator.
	var recCache server.RecommendationCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c, err := cache.NewFromURL(ctx, redisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = c.Close() }()
		recCache = c
	} else {
		logger.Warn().Msg("REDIS_URL not set; recommendation caching disabled")
	}

	srv, err := server.New(server.Config{Port: servePort}, server.Deps{
		Profiles:        database,
		Catalog:         database,
		Itineraries:     database,
		Recommendations: recCache,
		Generator:       generator.New(client, logger),
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
