package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yatra/travel-planner/internal/validation"
)

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity,
		HTTPStatus(&validation.SchemaError{Message: "bad shape"}))
	assert.Equal(t, http.StatusBadGateway,
		HTTPStatus(&validation.NetworkError{Op: "plan generation"}))
	assert.Equal(t, http.StatusInternalServerError,
		HTTPStatus(fmt.Errorf("something else")))
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("request failed: %w", &validation.SchemaError{Message: "bad shape"})
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(wrapped))
}
