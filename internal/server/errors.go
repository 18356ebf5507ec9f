// Package server provides the HTTP REST API for the travel planner.
package server

import (
	"errors"
	"net/http"

	"github.com/yatra/travel-planner/internal/validation"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Structural payload rejections map to 422 (the request was fine, the
// generator's output was not); upstream transport failures map to 502.
func HTTPStatus(err error) int {
	var schemaErr *validation.SchemaError
	if errors.As(err, &schemaErr) {
		return http.StatusUnprocessableEntity
	}
	var netErr *validation.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
