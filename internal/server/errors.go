package server

import (
	"fmt"
	"net/http"
)

// ErrOccupationNotFound indicates the SOC code has no stored record
type ErrOccupationNotFound struct {
	SOCCode string
}

func (e *ErrOccupationNotFound) Error() string {
	return fmt.Sprintf("occupation not found: %s", e.SOCCode)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrOccupationNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
