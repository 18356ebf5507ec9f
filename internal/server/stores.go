package server

import (
	"context"

	"github.com/yatra/travel-planner/internal/types"
	"github.com/yatra/travel-planner/internal/validation"
)

// ProfileStore persists traveler preference records keyed by user id.
type ProfileStore interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	UpdateProfile(ctx context.Context, profile *types.Profile) error
	UserExists(ctx context.Context, id string) (bool, error)
}

// DestinationCatalog is the read-only destination list.
type DestinationCatalog interface {
	ListDestinations(ctx context.Context) ([]types.Destination, error)
	GetDestination(ctx context.Context, id string) (*types.Destination, error)
	CreateDestination(ctx context.Context, d *types.Destination) (string, error)
}

// ItineraryStore is the append-only per-user plan history.
type ItineraryStore interface {
	SaveItinerary(ctx context.Context, userID string, req *types.SaveItineraryRequest) (string, error)
	ListItineraries(ctx context.Context, userID string) ([]types.SavedItinerary, error)
}

// RecommendationCache stores generated recommendation lists keyed by
// (user id, trip duration), overwrite-on-write.
type RecommendationCache interface {
	Get(ctx context.Context, userID string, tripDurationDays int) ([]types.Recommendation, bool, error)
	Put(ctx context.Context, userID string, tripDurationDays int, recs []types.Recommendation) error
}

// PlanGenerator produces validated recommendation lists and plan documents.
type PlanGenerator interface {
	Recommend(ctx context.Context, profile *types.Profile, destinations []types.Destination) ([]types.Recommendation, []validation.Issue, error)
	GeneratePlan(ctx context.Context, destination *types.Destination, profile *types.Profile) (*types.PlanDocument, []validation.Issue, error)
}
