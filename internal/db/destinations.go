package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yatra/travel-planner/internal/types"
)

// ListDestinations retrieves the catalog ordered by descending rating.
func (db *DB) ListDestinations(ctx context.Context) ([]types.Destination, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, name, description, category, location_lat, location_lng,
		        image_url, rating, country, best_season
		 FROM destinations ORDER BY rating DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	var destinations []types.Destination
	for rows.Next() {
		var d types.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.Category, &d.LocationLat,
			&d.LocationLng, &d.ImageURL, &d.Rating, &d.Country, &d.BestSeason); err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, d)
	}
	return destinations, nil
}

// GetDestination retrieves a catalog entry by id. Returns nil without error
// when the destination does not exist.
func (db *DB) GetDestination(ctx context.Context, id string) (*types.Destination, error) {
	var d types.Destination
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, description, category, location_lat, location_lng,
		        image_url, rating, country, best_season
		 FROM destinations WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Name, &d.Description, &d.Category, &d.LocationLat,
		&d.LocationLng, &d.ImageURL, &d.Rating, &d.Country, &d.BestSeason)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return &d, nil
}

// CreateDestination inserts a catalog entry and returns its id.
// Used by seed tooling; the catalog is read-only for regular traffic.
func (db *DB) CreateDestination(ctx context.Context, d *types.Destination) (string, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO destinations (id, name, description, category, location_lat, location_lng,
		                           image_url, rating, country, best_season)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.Name, d.Description, d.Category, d.LocationLat, d.LocationLng,
		d.ImageURL, d.Rating, d.Country, d.BestSeason,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create destination: %w", err)
	}
	return d.ID, nil
}
