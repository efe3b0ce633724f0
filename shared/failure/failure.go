package failure

import (
	"errors"
	"net/http"
)

// Kinds reported next to the error message in API responses.
const (
	KindInvalid      = "invalid_request"
	KindUnauthorized = "unauthorized"
	KindNotFound     = "not_found"
	KindMapping      = "mapping_missing"
	KindConflict     = "conflict"
	KindChannel      = "channel_error"
	KindInternal     = "internal"
)

// Failure is a plain request failure answered with a fixed HTTP status.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) HTTPCode() int {
	return e.Code
}

func (e *Failure) Kind() string {
	switch e.Code {
	case http.StatusBadRequest:
		return KindInvalid
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	}

	return KindInternal
}

// BadRequest wraps a decoding or parsing error. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error()}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

// NotFound reports a missing local record, msg usually reads "<entity> not found".
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

type coder interface {
	HTTPCode() int
}

type kinder interface {
	Kind() string
}

// GetCode returns the HTTP status for err, 500 when nothing in its chain knows one.
func GetCode(err error) int {
	var withCode coder
	if errors.As(err, &withCode) {
		return withCode.HTTPCode()
	}

	return http.StatusInternalServerError
}

// GetKind classifies err for API consumers.
func GetKind(err error) string {
	var withKind kinder
	if errors.As(err, &withKind) {
		return withKind.Kind()
	}

	return KindInternal
}
