package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanItinerary(t *testing.T) {
	created := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	planData := []byte(`{"overview": "Two days in Kochi", "days": [{"day_number": 1, "theme": "Harbour"}]}`)

	it, err := scanItinerary("itin-1", "kochi", "Kochi", created, planData)
	require.NoError(t, err)

	assert.Equal(t, "itin-1", it.ID)
	assert.Equal(t, "kochi", it.DestinationID)
	assert.Equal(t, "Kochi", it.DestinationName)
	// Dates render day-first for display
	assert.Equal(t, "15/01/2026", it.Date)
	assert.Equal(t, "Two days in Kochi", it.Data.Overview)
	require.Len(t, it.Data.Days, 1)
	assert.Equal(t, 1, it.Data.Days[0].DayNumber)
}

func TestScanItinerary_CorruptPlanData(t *testing.T) {
	_, err := scanItinerary("itin-1", "kochi", "Kochi", time.Now(), []byte("{broken"))
	assert.Error(t, err)
}

func TestConnect_InvalidURL(t *testing.T) {
	// pgxpool rejects an unparseable URL before dialing
	_, err := Connect(context.Background(), "not-a-url")
	assert.Error(t, err)
}
