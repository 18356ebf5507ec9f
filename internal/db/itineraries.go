package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yatra/travel-planner/internal/types"
)

// SaveItinerary appends a generated plan to the user's history and returns
// the new entry's id. The history is append-only: plans are never updated in
// place, regeneration inserts a fresh row.
func (db *DB) SaveItinerary(ctx context.Context, userID string, req *types.SaveItineraryRequest) (string, error) {
	planData, err := json.Marshal(req.Data)
	if err != nil {
		return "", fmt.Errorf("failed to encode plan document: %w", err)
	}

	id := uuid.NewString()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO itineraries (id, user_id, destination_id, destination_name, plan_data)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, userID, req.DestinationID, req.DestinationName, planData,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save itinerary: %w", err)
	}
	return id, nil
}

// ListItineraries retrieves a user's saved itineraries, newest first.
func (db *DB) ListItineraries(ctx context.Context, userID string) ([]types.SavedItinerary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, destination_id, destination_name, created_at, plan_data
		 FROM itineraries WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list itineraries: %w", err)
	}
	defer rows.Close()

	var history []types.SavedItinerary
	for rows.Next() {
		var (
			id, destinationID, destinationName string
			createdAt                          time.Time
			planData                           []byte
		)
		if err := rows.Scan(&id, &destinationID, &destinationName, &createdAt, &planData); err != nil {
			return nil, fmt.Errorf("failed to scan itinerary: %w", err)
		}
		it, err := scanItinerary(id, destinationID, destinationName, createdAt, planData)
		if err != nil {
			return nil, err
		}
		history = append(history, it)
	}
	return history, nil
}
