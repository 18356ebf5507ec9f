// Package types provides type definitions for structured data used throughout the travel-planner system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PlanDocument represents a complete multi-day itinerary produced by the plan
// generator. A document is immutable once persisted: regeneration creates a
// new SavedItinerary rather than mutating the prior one.
type PlanDocument struct {
	Overview          string          `json:"overview"`
	BestTimeToVisit   string          `json:"best_time_to_visit"`
	WeatherPreview    string          `json:"weather_preview"`
	PackingEssentials []string        `json:"packing_essentials"`
	LocalEtiquette    []string        `json:"local_etiquette"`
	SafetyTips        []string        `json:"safety_tips"`
	LocalHiddenGems   []HiddenGem     `json:"local_hidden_gems"`
	StayOptions       []StayOption    `json:"stay_options"`
	FoodGems          []FoodGem       `json:"food_gems"`
	Days              []Day           `json:"days"`
	BudgetPlanner     BudgetBreakdown `json:"budget_planner"`
}

// HiddenGem is a lesser-known point of interest with the reason it was picked.
type HiddenGem struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// StayOption represents an accommodation suggestion.
type StayOption struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	PriceRange string `json:"price_range"`
	BookingURL string `json:"booking_url"`
}

// FoodGem represents a dining suggestion with its signature dish.
type FoodGem struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	PriceLevel string `json:"price_level"`
	MapsURL    string `json:"maps_url"`
}

// Day is a single itinerary day. DayNumber is 1-based and must be contiguous
// across the document's days sequence.
type Day struct {
	DayNumber           int             `json:"day_number"`
	Theme               string          `json:"theme"`
	ProTip              string          `json:"pro_tip"`
	Morning             ActivitySlot    `json:"morning"`
	Afternoon           ActivitySlot    `json:"afternoon"`
	Evening             ActivitySlot    `json:"evening"`
	TravelSegments      []TravelSegment `json:"travel_segments"`
	EstimatedDailySpend string          `json:"estimated_daily_spend"`
	DayRouteURL         string          `json:"day_route_url"`
}

// ActivitySlot is one of the three daily time blocks (morning/afternoon/evening).
type ActivitySlot struct {
	Activity           string   `json:"activity"`
	Details            []string `json:"details"`
	LocationName       string   `json:"location_name"`
	GoogleMapsURL      string   `json:"google_maps_url"`
	OfficialWebsiteURL string   `json:"official_website_url,omitempty"`
}

// TravelSegment describes one leg of intra-day travel.
type TravelSegment struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Mode         string `json:"mode"`
	Duration     string `json:"duration"`
	CostEstimate string `json:"cost_estimate,omitempty"`
}

// BudgetBreakdown is the cost decomposition attached to a plan document.
// GrandTotal must equal the sum of the five component fields and
// TotalPerPerson must equal GrandTotal divided by the traveler count,
// each within one currency unit.
type BudgetBreakdown struct {
	Travel         float64 `json:"travel"`
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	LocalTransport float64 `json:"local_transport"`
	TotalPerPerson float64 `json:"total_per_person"`
	GrandTotal     float64 `json:"grand_total"`
}

// ComponentSum returns the sum of the five budget component fields.
func (b BudgetBreakdown) ComponentSum() float64 {
	return b.Travel + b.Accommodation + b.Food + b.Activities + b.LocalTransport
}

// Slots returns the three activity slots of the day in chronological order,
// keyed by slot name for error reporting.
func (d *Day) Slots() []NamedSlot {
	return []NamedSlot{
		{Name: "morning", Slot: &d.Morning},
		{Name: "afternoon", Slot: &d.Afternoon},
		{Name: "evening", Slot: &d.Evening},
	}
}

// NamedSlot pairs an activity slot with its time-of-day name.
type NamedSlot struct {
	Name string
	Slot *ActivitySlot
}
