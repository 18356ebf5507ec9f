package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yatra/travel-planner/internal/observability"
	"github.com/yatra/travel-planner/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a plan document or recommendation list offline",
	Long: `Runs the itinerary contract checks against a JSON file without calling the
generator. Structural failures exit non-zero; soft findings are printed as
warnings and do not affect the exit code.`,
	RunE: runValidate,
}

var (
	validateFile      string
	validateDays      int
	validateTravelers int
	validateRecs      bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to the JSON document to validate (required)")
	validateCmd.Flags().IntVar(&validateDays, "days", 0, "Requested trip duration in days (0 skips the duration check)")
	validateCmd.Flags().IntVar(&validateTravelers, "travelers", 0, "Traveler count for the per-person budget check (0 skips it)")
	validateCmd.Flags().BoolVar(&validateRecs, "recommendations", false, "Validate a recommendation list instead of a plan document")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateFile == "" {
		return fmt.Errorf("--file is required")
	}

	raw, err := os.ReadFile(validateFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", validateFile, err)
	}

	var issues []validation.Issue
	if validateRecs {
		_, issues, err = validation.ValidateRecommendations(raw)
	} else {
		_, issues, err = validation.ValidatePlan(raw, validation.RequestContext{
			TripDurationDays: validateDays,
			Travelers:        validateTravelers,
		})
	}
	if err != nil {
		var schemaErr *validation.SchemaError
		if errors.As(err, &schemaErr) {
			fmt.Fprintf(os.Stderr, "Validation failed: %s\n", schemaErr.Message)
			for _, field := range schemaErr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field.Field, field.Message)
			}
			os.Exit(1)
		}
		return err
	}

	observability.NewPrinter(os.Stdout).PrintIssues(issues)
	if len(issues) == 0 {
		fmt.Println("Document is valid")
	} else {
		fmt.Printf("Document is valid with %d warnings\n", len(issues))
	}
	return nil
}
