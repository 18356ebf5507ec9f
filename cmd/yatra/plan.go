package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatra/travel-planner/internal/db"
	"github.com/yatra/travel-planner/internal/generator"
	"github.com/yatra/travel-planner/internal/llm"
	"github.com/yatra/travel-planner/internal/observability"
	"github.com/yatra/travel-planner/internal/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a detailed day-by-day itinerary for a destination",
	Long: `Asks the AI generator for a full itinerary covering one destination and
prints a summary. The generated document has passed the itinerary contract
checks; soft findings are printed as warnings.

Use --save to append the itinerary to the traveler's history, and --output to
write the raw plan document JSON to a file.`,
	RunE: runPlan,
}

var (
	planConfigPath    string
	planUserID        string
	planDestinationID string
	planAPIKey        string
	planDatabaseURL   string
	planOutput        string
	planSave          bool
	planVerbose       bool
)

func init() {
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	planCmd.Flags().StringVarP(&planUserID, "user-id", "u", "", "Traveler profile id (required)")
	planCmd.Flags().StringVarP(&planDestinationID, "destination", "d", "", "Destination id from the catalog (required)")
	planCmd.Flags().StringVar(&planAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	planCmd.Flags().StringVar(&planDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	planCmd.Flags().StringVarP(&planOutput, "output", "o", "", "Write the plan document JSON to this file")
	planCmd.Flags().BoolVar(&planSave, "save", false, "Save the itinerary to the traveler's history")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if planUserID == "" {
		return fmt.Errorf("--user-id is required")
	}
	if planDestinationID == "" {
		return fmt.Errorf("--destination is required")
	}

	cfg, err := loadCLIConfig(cmd, planConfigPath, planAPIKey, planDatabaseURL, "", planVerbose)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	profile, err := database.GetProfile(ctx, planUserID)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("no profile found for user %s", planUserID)
	}
	profile.ApplyDefaults()

	destination, err := database.GetDestination(ctx, planDestinationID)
	if err != nil {
		return fmt.Errorf("failed to fetch destination: %w", err)
	}
	if destination == nil {
		return fmt.Errorf("no destination found with id %s", planDestinationID)
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	svc := generator.New(client, newLogger(cfg.Verbose))

	attempt := generator.NewAttempt()
	if err := attempt.Begin(); err != nil {
		return err
	}

	plan, issues, err := svc.GeneratePlan(ctx, destination, profile)
	if err != nil {
		_ = attempt.Fail()
		return fmt.Errorf("plan generation failed (state %s): %w", attempt.State(), err)
	}
	if err := attempt.Succeed(); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintPlan(destination.Name, plan)
	printer.PrintIssues(issues)

	if planOutput != "" {
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode plan document: %w", err)
		}
		if err := os.WriteFile(planOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write plan document: %w", err)
		}
		fmt.Printf("Plan document written to %s\n", planOutput)
	}

	if planSave {
		id, err := database.SaveItinerary(ctx, profile.ID, &types.SaveItineraryRequest{
			DestinationID:   destination.ID,
			DestinationName: destination.Name,
			Data:            *plan,
		})
		if err != nil {
			return fmt.Errorf("failed to save itinerary: %w", err)
		}
		fmt.Printf("Itinerary saved with id %s\n", id)
	}

	return nil
}
