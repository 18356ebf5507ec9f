package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yatra/travel-planner/internal/schemas"
	"github.com/yatra/travel-planner/internal/types"
)

// RequestContext carries the originating request parameters a generated plan
// must be checked against.
type RequestContext struct {
	TripDurationDays int
	Travelers        int
}

// ValidatePlan verifies a raw generator payload against the plan document
// contract. Structural failures short-circuit and return a *SchemaError;
// soft findings accumulate as Issues on an otherwise usable document.
//
// Check order: structure, day numbering, slot details, trip duration,
// link formats, budget identity. Only the first three are fatal.
func ValidatePlan(raw []byte, reqCtx RequestContext) (*types.PlanDocument, []Issue, error) {
	if err := schemas.ValidateBytes(schemas.PlanDocumentSchema, raw); err != nil {
		return nil, nil, asSchemaError("plan document payload rejected", err)
	}

	var plan types.PlanDocument
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, nil, &SchemaError{Message: "plan document payload is not decodable", Cause: err}
	}

	// day_number must be exactly 1..N in order; a gap or duplicate means the
	// generator lost track of the sequence and the document cannot be trusted.
	for i := range plan.Days {
		if plan.Days[i].DayNumber != i+1 {
			return nil, nil, &SchemaError{
				Message: fmt.Sprintf("days[%d].day_number is %d, want %d", i, plan.Days[i].DayNumber, i+1),
			}
		}
	}

	for i := range plan.Days {
		for _, ns := range plan.Days[i].Slots() {
			if len(ns.Slot.Details) == 0 {
				return nil, nil, &SchemaError{
					Message: fmt.Sprintf("days[%d].%s.details is empty", i, ns.Name),
				}
			}
		}
	}

	var issues []Issue

	if reqCtx.TripDurationDays > 0 && len(plan.Days) != reqCtx.TripDurationDays {
		issues = append(issues, warn(IssueDurationMismatch, "days",
			"requested a %d-day trip but the plan has %d days", reqCtx.TripDurationDays, len(plan.Days)))
	}

	issues = append(issues, checkLinks(&plan)...)
	issues = append(issues, CheckBudget(plan.BudgetPlanner, reqCtx.Travelers)...)

	return &plan, issues, nil
}

// checkLinks flags activity slot links that stray from the canonical Google
// Maps query form, and official links behind shorteners or relative paths.
// The UI may still render the links as-is.
func checkLinks(plan *types.PlanDocument) []Issue {
	var issues []Issue
	for i := range plan.Days {
		for _, ns := range plan.Days[i].Slots() {
			field := fmt.Sprintf("days[%d].%s", i, ns.Name)
			if !IsCanonicalMapsURL(ns.Slot.GoogleMapsURL) {
				issues = append(issues, warn(IssueLinkFormat, field+".google_maps_url",
					"%q is not a canonical Google Maps search URL", ns.Slot.GoogleMapsURL))
			}
			if site := ns.Slot.OfficialWebsiteURL; site != "" {
				switch {
				case IsShortenedURL(site):
					issues = append(issues, warn(IssueLinkFormat, field+".official_website_url",
						"%q is a link-shortener URL", site))
				case !IsAbsoluteURL(site):
					issues = append(issues, warn(IssueLinkFormat, field+".official_website_url",
						"%q is not an absolute URL", site))
				}
			}
		}
	}
	return issues
}

// asSchemaError converts a schemas package failure into a *SchemaError,
// preserving field-level detail where available.
func asSchemaError(message string, err error) error {
	var ve *schemas.ValidationError
	if errors.As(err, &ve) {
		return &SchemaError{Message: message, Fields: ve.Errors, Cause: err}
	}
	return &SchemaError{Message: message, Cause: err}
}
