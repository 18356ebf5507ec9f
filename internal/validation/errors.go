// Package validation checks generator payloads against the itinerary contract.
package validation

import (
	"fmt"

	"github.com/yatra/travel-planner/internal/schemas"
)

// SchemaError indicates a structurally invalid payload. It is fatal to the
// request that produced the payload: nothing is persisted and nothing is
// rendered. Malformed JSON is reported the same way as a wrong shape.
type SchemaError struct {
	Message string
	Fields  []schemas.FieldError
	Cause   error
}

func (e *SchemaError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("schema error: %s (%d field errors, first: %s: %s)",
			e.Message, len(e.Fields), e.Fields[0].Field, e.Fields[0].Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("schema error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// NetworkError indicates the round-trip to the generator or database failed
// before a payload could be validated. Callers recover by leaving prior state
// unchanged; there is no automatic retry.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("network error during %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("network error during %s", e.Op)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}
