package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yatra/travel-planner/internal/types"
	"github.com/yatra/travel-planner/internal/validation"
)

// warningsHeader carries soft validation findings back to the client without
// blocking the response body.
const warningsHeader = "X-Yatra-Warnings"

// handleGenerate dispatches a generation request by action. Unknown actions
// get a plain-text 400, matching the contract the web client relies on.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch req.Action {
	case types.ActionGetRecommendations:
		s.generateRecommendations(w, r, &req)
	case types.ActionGenerateDetailedPlan:
		s.generateDetailedPlan(w, r, &req)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("Invalid action"))
	}
}

func (s *Server) generateRecommendations(w http.ResponseWriter, r *http.Request, req *types.GenerateRequest) {
	if req.Profile == nil {
		s.errorResponse(w, http.StatusBadRequest, "Profile is required")
		return
	}

	destinations := req.Destinations
	if len(destinations) == 0 {
		var err error
		destinations, err = s.catalog.ListDestinations(r.Context())
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
	}
	if len(destinations) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "No destinations to recommend from")
		return
	}

	recs, issues, err := s.generator.Recommend(r.Context(), req.Profile, destinations)
	if err != nil {
		s.logger.Error().Err(err).Msg("recommendation generation failed")
		s.errorResponse(w, HTTPStatus(err), "Failed to get recommendations")
		return
	}

	// Overwrite-on-refresh: the last response to resolve wins the cache slot.
	if s.recCache != nil {
		if err := s.recCache.Put(r.Context(), req.Profile.ID, req.Profile.TripDurationDays, recs); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache recommendations")
		}
	}

	setWarnings(w, issues)
	s.jsonResponse(w, http.StatusOK, recs)
}

func (s *Server) generateDetailedPlan(w http.ResponseWriter, r *http.Request, req *types.GenerateRequest) {
	if req.Destination == nil {
		s.errorResponse(w, http.StatusBadRequest, "Destination is required")
		return
	}
	if req.Profile == nil {
		s.errorResponse(w, http.StatusBadRequest, "Profile is required")
		return
	}

	destination := req.Destination
	profile := req.Profile

	// Clients may send bare ids; resolve both records before generating.
	g, ctx := errgroup.WithContext(r.Context())
	if destination.Name == "" && destination.ID != "" {
		g.Go(func() error {
			resolved, err := s.catalog.GetDestination(ctx, destination.ID)
			if err != nil {
				return err
			}
			if resolved != nil {
				destination = resolved
			}
			return nil
		})
	}
	if profile.FullName == "" && profile.ID != "" {
		g.Go(func() error {
			resolved, err := s.profiles.GetProfile(ctx, profile.ID)
			if err != nil {
				return err
			}
			if resolved != nil {
				profile = resolved
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	plan, issues, err := s.generator.GeneratePlan(r.Context(), destination, profile)
	if err != nil {
		s.logger.Error().Err(err).Str("destination", destination.Name).Msg("plan generation failed")
		s.errorResponse(w, HTTPStatus(err), "Failed to generate detailed plan")
		return
	}

	setWarnings(w, issues)
	s.jsonResponse(w, http.StatusOK, plan)
}

// setWarnings surfaces soft issues in a response header; they never block
// rendering of the body.
func setWarnings(w http.ResponseWriter, issues []validation.Issue) {
	if len(issues) == 0 {
		return
	}
	kinds := make([]string, 0, len(issues))
	for _, issue := range issues {
		kinds = append(kinds, issue.Type)
	}
	w.Header().Set(warningsHeader, strings.Join(kinds, ","))
}
