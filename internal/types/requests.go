package types

import (
	"github.com/go-playground/validator/v10"
)

// Generation actions accepted by the generate-plan endpoint. Any other value
// is rejected with a plain-text 400.
const (
	ActionGetRecommendations   = "getRecommendations"
	ActionGenerateDetailedPlan = "generateDetailedPlan"
)

// GenerateRequest is the body of a generate-plan call. Which of the optional
// fields must be present depends on the action.
type GenerateRequest struct {
	Action       string        `json:"action" validate:"required"`
	Profile      *Profile      `json:"profile,omitempty"`
	Destination  *Destination  `json:"destination,omitempty"`
	Destinations []Destination `json:"destinations,omitempty"`
}

// SaveItineraryRequest appends a generated plan to a profile's history.
type SaveItineraryRequest struct {
	DestinationID   string       `json:"destination_id" validate:"required"`
	DestinationName string       `json:"destination_name" validate:"required,min=1"`
	Data            PlanDocument `json:"data"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SaveItineraryRequest using the validator.
func (r *SaveItineraryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
