package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yatra/travel-planner/internal/types"
)

func saveRequest(t *testing.T, userID string, body types.SaveItineraryRequest) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/profiles/"+userID+"/itineraries", bytes.NewReader(raw))
	req.SetPathValue("id", userID)
	return req
}

func TestHandleSaveItinerary(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*types.Profile{
		"user-1": {ID: "user-1", FullName: "Asha"},
	}}
	itineraries := &fakeItineraries{}
	s := newTestServer(t, Deps{Profiles: profiles, Itineraries: itineraries})

	req := saveRequest(t, "user-1", types.SaveItineraryRequest{
		DestinationID:   "kochi",
		DestinationName: "Kochi",
		Data:            buildTestPlan(2),
	})
	w := httptest.NewRecorder()
	s.handleSaveItinerary(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "itin-1", resp["id"])
	require.NotNil(t, itineraries.saved)
	assert.Equal(t, "Kochi", itineraries.saved.DestinationName)
}

func TestHandleSaveItinerary_RejectsInvalidPlan(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*types.Profile{
		"user-1": {ID: "user-1"},
	}}
	itineraries := &fakeItineraries{}
	s := newTestServer(t, Deps{Profiles: profiles, Itineraries: itineraries})

	plan := buildTestPlan(2)
	plan.Days[1].DayNumber = 5 // break the day sequence

	req := saveRequest(t, "user-1", types.SaveItineraryRequest{
		DestinationID:   "kochi",
		DestinationName: "Kochi",
		Data:            plan,
	})
	w := httptest.NewRecorder()
	s.handleSaveItinerary(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	// Nothing was persisted
	assert.Nil(t, itineraries.saved)
}

func TestHandleSaveItinerary_UnknownUser(t *testing.T) {
	s := newTestServer(t, Deps{})

	req := saveRequest(t, "ghost", types.SaveItineraryRequest{
		DestinationID:   "kochi",
		DestinationName: "Kochi",
		Data:            buildTestPlan(1),
	})
	w := httptest.NewRecorder()
	s.handleSaveItinerary(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleSaveItinerary_MissingDestination(t *testing.T) {
	s := newTestServer(t, Deps{})

	req := saveRequest(t, "user-1", types.SaveItineraryRequest{
		Data: buildTestPlan(1),
	})
	w := httptest.NewRecorder()
	s.handleSaveItinerary(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleListItineraries(t *testing.T) {
	itineraries := &fakeItineraries{history: []types.SavedItinerary{
		{ID: "itin-2", DestinationID: "hampi", DestinationName: "Hampi", Date: "02/03/2026"},
		{ID: "itin-1", DestinationID: "kochi", DestinationName: "Kochi", Date: "15/01/2026"},
	}}
	s := newTestServer(t, Deps{Itineraries: itineraries})

	req := httptest.NewRequest(http.MethodGet, "/profiles/user-1/itineraries", nil)
	req.SetPathValue("id", "user-1")
	w := httptest.NewRecorder()
	s.handleListItineraries(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []types.SavedItinerary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	// Newest first, as the store returns them
	assert.Equal(t, "itin-2", got[0].ID)
}

func TestHandleListItineraries_EmptyIsArray(t *testing.T) {
	s := newTestServer(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/profiles/user-1/itineraries", nil)
	req.SetPathValue("id", "user-1")
	w := httptest.NewRecorder()
	s.handleListItineraries(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
