package server

import (
	"encoding/json"
	"net/http"

	"github.com/yatra/travel-planner/internal/types"
	"github.com/yatra/travel-planner/internal/validation"
)

// ---------------------------------------------------------------------
// Itinerary History Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListItineraries(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	history, err := s.itineraries.ListItineraries(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if history == nil {
		history = []types.SavedItinerary{}
	}

	s.jsonResponse(w, http.StatusOK, history)
}

// handleSaveItinerary appends a plan to the user's history. The plan is
// re-checked against the document contract first: a structurally invalid
// plan is never persisted.
func (s *Server) handleSaveItinerary(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")

	var req types.SaveItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid save request: "+err.Error())
		return
	}

	raw, err := json.Marshal(req.Data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid plan document")
		return
	}
	// No request context here: duration and traveler count belong to the
	// generation call, so only the structural checks can be fatal.
	_, issues, err := validation.ValidatePlan(raw, validation.RequestContext{})
	if err != nil {
		s.logger.Warn().Err(err).Str("user", userID).Msg("rejected invalid plan on save")
		s.errorResponse(w, HTTPStatus(err), "Plan document failed validation")
		return
	}
	for _, issue := range issues {
		s.logger.Warn().Str("issue", issue.Type).Str("field", issue.Field).Msg(issue.Details)
	}

	exists, err := s.profiles.UserExists(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !exists {
		s.errorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}

	id, err := s.itineraries.SaveItinerary(r.Context(), userID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	setWarnings(w, issues)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}
