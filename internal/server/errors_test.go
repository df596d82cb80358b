package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &ErrOccupationNotFound{SOCCode: "99-0000"}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "page", Message: "must be positive"}, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "occupation not found: 99-0000", (&ErrOccupationNotFound{SOCCode: "99-0000"}).Error())
	assert.Contains(t, (&ErrValidation{Field: "cluster", Message: "unknown value"}).Error(), "cluster")
}
