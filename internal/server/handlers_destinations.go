package server

import (
	"encoding/json"
	"net/http"

	"github.com/yatra/travel-planner/internal/types"
)

// ---------------------------------------------------------------------
// Destination Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, err := s.catalog.ListDestinations(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if destinations == nil {
		destinations = []types.Destination{}
	}

	s.jsonResponse(w, http.StatusOK, destinations)
}

func (s *Server) handleGetDestination(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	destination, err := s.catalog.GetDestination(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if destination == nil {
		s.errorResponse(w, http.StatusNotFound, "Destination not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, destination)
}

func (s *Server) handleCreateDestination(w http.ResponseWriter, r *http.Request) {
	var destination types.Destination
	if err := json.NewDecoder(r.Body).Decode(&destination); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if destination.Name == "" || destination.Country == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name and Country are required")
		return
	}

	id, err := s.catalog.CreateDestination(r.Context(), &destination)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}
