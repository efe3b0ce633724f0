package channel

import (
	"fmt"
	"net/http"

	"staysync/shared/failure"
)

// ExternalAPIError is the single failure type of the channel client. Status is the HTTP status of
// the response, or 0 when no response arrived (timeout, transport failure, cancelled wait).
type ExternalAPIError struct {
	Status int
	Detail string
}

func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("channel api error (status %d): %s", e.Status, e.Detail)
}

func (e *ExternalAPIError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *ExternalAPIError) Kind() string {
	return failure.KindChannel
}

// NotFound reports whether the external system does not know the requested resource.
func (e *ExternalAPIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func newTransportError(err error) *ExternalAPIError {
	return &ExternalAPIError{Status: 0, Detail: err.Error()}
}
