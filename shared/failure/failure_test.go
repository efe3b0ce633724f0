package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"staysync/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestFailure_Constructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("decode failed")), code: http.StatusBadRequest, message: "decode failed"},
		{name: "bad request from string", err: failure.BadRequestFromString("missing id"), code: http.StatusBadRequest, message: "missing id"},
		{name: "unauthorized", err: failure.Unauthorized("invalid api key"), code: http.StatusUnauthorized, message: "invalid api key"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, message: "booking not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			assert.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, f.Error())
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestSyncErrors_Message(t *testing.T) {
	assert.Equal(t, `no external mapping for room "r-101"`, failure.NewMappingError("room", "r-101").Error())
	assert.Equal(t, `external id "BK-1" is already linked to booking b-1`, failure.NewConflictError("BK-1", "b-1").Error())
	assert.Equal(t, "external_id: required to cancel", failure.NewValidationError("external_id", "required to cancel").Error())
	assert.Equal(t, "bad payload", failure.NewValidationError("", "bad payload").Error())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: failure.BadRequestFromString("test"), expected: http.StatusBadRequest},
		{name: "mapping error", input: failure.NewMappingError("room", "1"), expected: http.StatusUnprocessableEntity},
		{name: "wrapped conflict error", input: fmt.Errorf("link: %w", failure.NewConflictError("x", "y")), expected: http.StatusConflict},
		{name: "validation error", input: failure.NewValidationError("f", "m"), expected: http.StatusBadRequest},
		{name: "wrapped not found", input: fmt.Errorf("get: %w", failure.NotFound("booking not found")), expected: http.StatusNotFound},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{name: "bad request", input: failure.BadRequestFromString("test"), expected: failure.KindInvalid},
		{name: "unauthorized", input: failure.Unauthorized("nope"), expected: failure.KindUnauthorized},
		{name: "not found", input: failure.NotFound("room not found"), expected: failure.KindNotFound},
		{name: "wrapped mapping error", input: fmt.Errorf("resolve: %w", failure.NewMappingError("room", "1")), expected: failure.KindMapping},
		{name: "conflict error", input: failure.NewConflictError("x", "y"), expected: failure.KindConflict},
		{name: "validation error", input: failure.NewValidationError("f", "m"), expected: failure.KindInvalid},
		{name: "regular error", input: errors.New("boom"), expected: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetKind(tt.input))
		})
	}
}
