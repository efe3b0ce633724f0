package failure

import (
	"fmt"
	"net/http"
)

// MappingError means no room or rate correspondence exists for a PMS entity. It is terminal for
// the attempt and needs operator action.
type MappingError struct {
	Entity string
	Key    string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no external mapping for %s %q", e.Entity, e.Key)
}

// ConflictError means an external identifier is already held by another canonical record.
type ConflictError struct {
	ExternalID string
	HolderID   string
	Message    string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return fmt.Sprintf("external id %q is already linked to booking %s", e.ExternalID, e.HolderID)
}

// ValidationError means a public operation received malformed input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *MappingError) HTTPCode() int { return http.StatusUnprocessableEntity }

func (e *ConflictError) HTTPCode() int { return http.StatusConflict }

func (e *ValidationError) HTTPCode() int { return http.StatusBadRequest }

func (e *MappingError) Kind() string { return KindMapping }

func (e *ConflictError) Kind() string { return KindConflict }

func (e *ValidationError) Kind() string { return KindInvalid }

func NewMappingError(entity, key string) error {
	return &MappingError{Entity: entity, Key: key}
}

func NewConflictError(externalID, holderID string) error {
	return &ConflictError{ExternalID: externalID, HolderID: holderID}
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
