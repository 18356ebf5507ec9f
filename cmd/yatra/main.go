// Package main provides the entry point for the Yatra travel planner server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yatra",
	Short: "Yatra AI Travel Planner",
	Long:  "Yatra generates personalized destination recommendations and detailed day-by-day itineraries from a traveler profile, validates every generated document against the itinerary contract, and serves the result over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
