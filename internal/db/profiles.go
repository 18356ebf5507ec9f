package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yatra/travel-planner/internal/types"
)

// GetProfile retrieves a profile with its itinerary history, newest first.
// Returns nil without error when the profile does not exist.
func (db *DB) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	var p types.Profile
	err := db.pool.QueryRow(ctx,
		`SELECT id, full_name, COALESCE(avatar_url, ''), interests, budget_total, budget_label,
		        people_count, travel_group_type, current_location, trip_duration_days,
		        role, has_completed_onboarding, created_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.FullName, &p.AvatarURL, &p.Interests, &p.BudgetTotal, &p.BudgetLabel,
		&p.PeopleCount, &p.TravelGroupType, &p.CurrentLocation, &p.TripDurationDays,
		&p.Role, &p.HasCompletedOnboarding, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	history, err := db.ListItineraries(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ItineraryHistory = history

	return &p, nil
}

// UpdateProfile upserts a profile by id, back-filling defaults for fields a
// partially onboarded client may omit.
func (db *DB) UpdateProfile(ctx context.Context, profile *types.Profile) error {
	profile.ApplyDefaults()

	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (id, full_name, avatar_url, interests, budget_total, budget_label,
		                       people_count, travel_group_type, current_location, trip_duration_days,
		                       role, has_completed_onboarding)
		 VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 ON CONFLICT (id) DO UPDATE SET
		   full_name = $2, avatar_url = NULLIF($3, ''), interests = $4, budget_total = $5,
		   budget_label = $6, people_count = $7, travel_group_type = $8, current_location = $9,
		   trip_duration_days = $10, role = $11, has_completed_onboarding = $12, updated_at = NOW()`,
		profile.ID, profile.FullName, profile.AvatarURL, profile.Interests, profile.BudgetTotal,
		string(profile.BudgetLabel), profile.PeopleCount, profile.TravelGroupType,
		profile.CurrentLocation, profile.TripDurationDays, profile.Role, profile.HasCompletedOnboarding,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// UserExists reports whether a profile row exists for the given id.
func (db *DB) UserExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM profiles WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return exists, nil
}

// scanItinerary decodes one saved itinerary row including its plan document.
func scanItinerary(id, destinationID, destinationName string, createdAt time.Time, planData []byte) (types.SavedItinerary, error) {
	it := types.SavedItinerary{
		ID:              id,
		DestinationID:   destinationID,
		DestinationName: destinationName,
		Date:            createdAt.Format("02/01/2006"),
	}
	if err := json.Unmarshal(planData, &it.Data); err != nil {
		return it, fmt.Errorf("failed to decode stored plan %s: %w", id, err)
	}
	return it, nil
}
