// Package generator drives the AI plan generator and validates what it returns.
// Nothing leaving this package has skipped the itinerary contract checks.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yatra/travel-planner/internal/llm"
	"github.com/yatra/travel-planner/internal/prompts"
	"github.com/yatra/travel-planner/internal/types"
	"github.com/yatra/travel-planner/internal/validation"
)

const promptFile = "planner.json"

// Service calls the LLM with the planner prompts and validates responses
// before handing them to persistence or rendering.
type Service struct {
	client llm.Client
	logger zerolog.Logger
}

// New creates a generator service over an LLM client.
func New(client llm.Client, logger zerolog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Recommend asks the generator for destination picks matching the profile.
// Soft findings (e.g. a count other than three) come back as issues alongside
// the list; transport failures surface as *validation.NetworkError.
func (s *Service) Recommend(ctx context.Context, profile *types.Profile, destinations []types.Destination) ([]types.Recommendation, []validation.Issue, error) {
	catalog, err := catalogJSON(destinations)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode destination catalog: %w", err)
	}

	template, err := prompts.Get(promptFile, "recommendations")
	if err != nil {
		return nil, nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Catalog":          catalog,
		"TravelerName":     profile.FullName,
		"CurrentLocation":  profile.CurrentLocation,
		"Interests":        strings.Join(profile.Interests, ", "),
		"BudgetTotal":      strconv.FormatFloat(profile.BudgetTotal, 'f', 0, 64),
		"TripDurationDays": strconv.Itoa(profile.TripDurationDays),
		"GroupType":        profile.TravelGroupType,
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, nil, &validation.NetworkError{Op: "recommendation generation", Cause: err}
	}

	recs, issues, err := validation.ValidateRecommendations([]byte(raw))
	if err != nil {
		return nil, nil, err
	}
	for _, issue := range issues {
		s.logger.Warn().Str("issue", issue.Type).Msg(issue.Details)
	}
	return recs, issues, nil
}

// GeneratePlan asks the generator for a full itinerary for one destination.
// The returned document has passed the structural checks; any soft issues
// (duration drift, odd links, budget identity) accompany it unresolved.
func (s *Service) GeneratePlan(ctx context.Context, destination *types.Destination, profile *types.Profile) (*types.PlanDocument, []validation.Issue, error) {
	template, err := prompts.Get(promptFile, "detailed_plan")
	if err != nil {
		return nil, nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"DestinationName":    destination.Name,
		"DestinationCountry": destination.Country,
		"CurrentLocation":    profile.CurrentLocation,
		"PeopleCount":        strconv.Itoa(profile.PeopleCount),
		"BudgetTotal":        strconv.FormatFloat(profile.BudgetTotal, 'f', 0, 64),
		"Interests":          strings.Join(profile.Interests, ", "),
		"TripDurationDays":   strconv.Itoa(profile.TripDurationDays),
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, nil, &validation.NetworkError{Op: "plan generation", Cause: err}
	}

	plan, issues, err := validation.ValidatePlan([]byte(raw), validation.RequestContext{
		TripDurationDays: profile.TripDurationDays,
		Travelers:        profile.PeopleCount,
	})
	if err != nil {
		return nil, nil, err
	}
	for _, issue := range issues {
		s.logger.Warn().Str("issue", issue.Type).Str("field", issue.Field).Msg(issue.Details)
	}
	return plan, issues, nil
}

// catalogJSON trims the destination catalog down to the fields the
// recommendation prompt needs.
func catalogJSON(destinations []types.Destination) (string, error) {
	type entry struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Country  string `json:"country"`
	}
	entries := make([]entry, 0, len(destinations))
	for _, d := range destinations {
		entries = append(entries, entry{ID: d.ID, Name: d.Name, Category: d.Category, Country: d.Country})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
