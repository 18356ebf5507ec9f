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

func TestHandleListDestinations(t *testing.T) {
	catalog := &fakeCatalog{destinations: []types.Destination{
		{ID: "kochi", Name: "Kochi", Country: "India", Rating: 4.6},
		{ID: "hampi", Name: "Hampi", Country: "India", Rating: 4.8},
	}}
	s := newTestServer(t, Deps{Catalog: catalog})

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	w := httptest.NewRecorder()
	s.handleListDestinations(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []types.Destination
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestHandleListDestinations_EmptyIsArray(t *testing.T) {
	s := newTestServer(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	w := httptest.NewRecorder()
	s.handleListDestinations(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandleGetDestination_NotFound(t *testing.T) {
	s := newTestServer(t, Deps{})

	req := httptest.NewRequest(http.MethodGet, "/destinations/nowhere", nil)
	req.SetPathValue("id", "nowhere")
	w := httptest.NewRecorder()
	s.handleGetDestination(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleCreateDestination(t *testing.T) {
	catalog := &fakeCatalog{}
	s := newTestServer(t, Deps{Catalog: catalog})

	body, err := json.Marshal(types.Destination{Name: "Gokarna", Country: "India", Category: "coastal"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/destinations", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCreateDestination(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dest-new", resp["id"])
	require.NotNil(t, catalog.created)
	assert.Equal(t, "Gokarna", catalog.created.Name)
}

func TestHandleCreateDestination_RequiresNameAndCountry(t *testing.T) {
	s := newTestServer(t, Deps{})

	body, err := json.Marshal(types.Destination{Name: "Gokarna"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/destinations", bytes.NewReader(body))
	w := httptest.NewRecorder()
	s.handleCreateDestination(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
