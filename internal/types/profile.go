package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// BudgetLevel labels a traveler's overall budget tier.
type BudgetLevel string

// Budget tiers in ascending order of spend.
const (
	BudgetLow      BudgetLevel = "low"
	BudgetClassic  BudgetLevel = "classic"
	BudgetStandard BudgetLevel = "standard"
	BudgetLuxury   BudgetLevel = "luxury"
)

// Profile holds a traveler's preferences and owns their itinerary history.
// Plan documents have no existence independent of the SavedItinerary wrapper
// anchoring them to a profile and destination.
type Profile struct {
	ID                     string           `json:"id" validate:"required"`
	FullName               string           `json:"full_name" validate:"required,min=1"`
	AvatarURL              string           `json:"avatar_url,omitempty"`
	Interests              []string         `json:"interests"`
	BudgetTotal            float64          `json:"budget_total" validate:"gte=0"`
	BudgetLabel            BudgetLevel      `json:"budget_label" validate:"omitempty,oneof=low classic standard luxury"`
	PeopleCount            int              `json:"people_count" validate:"gte=0"`
	TravelGroupType        string           `json:"travel_group_type" validate:"omitempty,oneof=solo couple family friends"`
	CurrentLocation        string           `json:"current_location"`
	TripDurationDays       int              `json:"trip_duration_days" validate:"gte=0"`
	Role                   string           `json:"role,omitempty"`
	HasCompletedOnboarding bool             `json:"has_completed_onboarding"`
	CreatedAt              time.Time        `json:"created_at,omitempty"`
	ItineraryHistory       []SavedItinerary `json:"itinerary_history,omitempty"`
}

// SavedItinerary anchors a generated plan document to a profile and destination.
type SavedItinerary struct {
	ID              string       `json:"id"`
	DestinationID   string       `json:"destination_id"`
	DestinationName string       `json:"destination_name"`
	Date            string       `json:"date"`
	Data            PlanDocument `json:"data"`
}

// ApplyDefaults back-fills the zero-value fields a partially onboarded profile
// may omit, matching what the persistence layer expects.
func (p *Profile) ApplyDefaults() {
	if p.FullName == "" {
		p.FullName = "Traveler"
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.BudgetLabel == "" {
		p.BudgetLabel = BudgetStandard
	}
	if p.PeopleCount == 0 {
		p.PeopleCount = 1
	}
	if p.TravelGroupType == "" {
		p.TravelGroupType = "solo"
	}
	if p.TripDurationDays == 0 {
		p.TripDurationDays = 3
	}
	if p.Role == "" {
		p.Role = "user"
	}
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
