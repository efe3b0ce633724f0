package response

import (
	"encoding/json"
	"net/http"
	"strconv"

	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request. Kind is one of the failure.Kind* values.
type Error struct {
	Error *string `json:"error,omitempty"`
	Kind  string  `json:"kind,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithError answers with the status and kind derived from err.
func WithError(writer http.ResponseWriter, err error) {
	msg := err.Error()

	write(writer, failure.GetCode(err), Error{Error: &msg, Kind: failure.GetKind(err)})
}

// WithRequestLimitExceeded asks the caller to come back once the current window is over.
func WithRequestLimitExceeded(writer http.ResponseWriter, retryAfterSeconds int) {
	writer.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(retryAfterSeconds))
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithUnavailable is the health answer while the server drains or cannot serve.
func WithUnavailable(writer http.ResponseWriter, reason string) {
	WithMessage(writer, http.StatusServiceUnavailable, reason)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
