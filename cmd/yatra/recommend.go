package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatra/travel-planner/internal/cache"
	"github.com/yatra/travel-planner/internal/config"
	"github.com/yatra/travel-planner/internal/db"
	"github.com/yatra/travel-planner/internal/generator"
	"github.com/yatra/travel-planner/internal/llm"
	"github.com/yatra/travel-planner/internal/observability"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate destination recommendations for a traveler",
	Long: `Asks the AI generator for destination picks matching a traveler profile.

Cached results are returned when available; use --refresh to overwrite the
cache with a fresh generation. Configuration can be loaded from a JSON file
using --config. Command-line arguments override config file values.`,
	RunE: runRecommend,
}

var (
	recConfigPath  string
	recUserID      string
	recAPIKey      string
	recDatabaseURL string
	recRedisURL    string
	recRefresh     bool
	recVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVar(&recConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	recommendCmd.Flags().StringVarP(&recUserID, "user-id", "u", "", "Traveler profile id (required)")
	recommendCmd.Flags().StringVar(&recAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	recommendCmd.Flags().StringVar(&recDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	recommendCmd.Flags().StringVar(&recRedisURL, "redis-url", "", "Redis connection URL (optional, defaults to REDIS_URL env var)")
	recommendCmd.Flags().BoolVar(&recRefresh, "refresh", false, "Skip the cache and regenerate, overwriting the cached list")
	recommendCmd.Flags().BoolVarP(&recVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(recommendCmd)
}

// loadCLIConfig loads an optional config file, applies flag and environment
// overrides, and validates the result. Shared by the recommend and plan
// commands.
func loadCLIConfig(cmd *cobra.Command, path, apiKey, databaseURL, redisURL string, verbose bool) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	// CLI flags take priority over config file values
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = apiKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = databaseURL
	}
	if cmd.Flags().Changed("redis-url") {
		cfg.RedisURL = redisURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	// Environment fallbacks for values still unset
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	return cfg, nil
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if recUserID == "" {
		return fmt.Errorf("--user-id is required")
	}

	cfg, err := loadCLIConfig(cmd, recConfigPath, recAPIKey, recDatabaseURL, recRedisURL, recVerbose)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	profile, err := database.GetProfile(ctx, recUserID)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("no profile found for user %s", recUserID)
	}
	profile.ApplyDefaults()

	printer := observability.NewPrinter(os.Stdout)

	var recCache *cache.RecommendationCache
	if cfg.RedisURL != "" {
		recCache, err = cache.NewFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = recCache.Close() }()
	}

	if recCache != nil && !recRefresh {
		recs, ok, err := recCache.Get(ctx, profile.ID, profile.TripDurationDays)
		if err != nil {
			return err
		}
		if ok {
			if cfg.Verbose {
				fmt.Println("Serving cached recommendations (use --refresh to regenerate)")
			}
			printer.PrintRecommendations(recs)
			return nil
		}
	}

	destinations, err := database.ListDestinations(ctx)
	if err != nil {
		return fmt.Errorf("failed to list destinations: %w", err)
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	svc := generator.New(client, newLogger(cfg.Verbose))
	recs, issues, err := svc.Recommend(ctx, profile, destinations)
	if err != nil {
		return err
	}

	if recCache != nil {
		if err := recCache.Put(ctx, profile.ID, profile.TripDurationDays, recs); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to cache recommendations: %v\n", err)
		}
	}

	printer.PrintRecommendations(recs)
	printer.PrintIssues(issues)
	return nil
}
