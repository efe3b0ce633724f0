package model

import (
	"database/sql"
	"slices"

	channelModel "staysync/internal/domains/channel/model"
	"staysync/shared/model"
)

const (
	TableName  = "webhook_events"
	EntityName = "webhook_event"

	FieldID          = "id"
	FieldEventID     = "event_id"
	FieldEventType   = "event_type"
	FieldStatus      = "status"
	FieldAttempts    = "attempts"
	FieldError       = "error"
	FieldArchiveKey  = "archive_key"
	FieldBookingID   = "booking_id"
	FieldProcessedAt = "processed_at"
	FieldModifiedAt  = "modified_at"
	FieldModifiedBy  = "modified_by"
)

const (
	StatusReceived  = "received"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// Event types the channel notifies about.
const (
	TypeBooking             = "booking"
	TypeBookingNew          = "booking_new"
	TypeBookingModification = "booking_modification"
	TypeBookingCancellation = "booking_cancellation"

	ObjectTypeBooking = "booking"
)

var bookingTypes = []string{TypeBooking, TypeBookingNew, TypeBookingModification, TypeBookingCancellation}

// Event is the raw inbound notification kept for audit and manual replay.
type Event struct {
	ID          string         `db:"id"`
	EventID     string         `db:"event_id"`
	EventType   string         `db:"event_type"`
	ObjectType  string         `db:"object_type"`
	ObjectID    string         `db:"object_id"`
	Payload     string         `db:"payload"`
	ArchiveKey  string         `db:"archive_key"`
	Status      string         `db:"status"`
	Attempts    int            `db:"attempts"`
	Error       string         `db:"error"`
	BookingID   sql.NullString `db:"booking_id"`
	ProcessedAt sql.NullTime   `db:"processed_at"`
	model.Metadata
}

func (e Event) Processed() bool {
	return e.Status == StatusProcessed
}

// Notification is the body the channel posts to the webhook endpoint.
type Notification struct {
	Type       string `json:"type"        validate:"required"`
	ID         string `json:"id"          validate:"required"`
	ObjectType string `json:"object_type"`
	ObjectID   string `json:"object_id"   validate:"required"`
	Data       struct {
		Booking *channelModel.Booking `json:"booking"`
	} `json:"data"`
}

// Recognized reports whether the notification concerns a booking. An empty object type is
// accepted for booking event types.
func (n Notification) Recognized() bool {
	if !slices.Contains(bookingTypes, n.Type) {
		return false
	}

	return n.ObjectType == "" || n.ObjectType == ObjectTypeBooking
}

// Embedded returns the booking carried in the notification, if it carries a usable one. The
// embedded booking is identified by the object id.
func (n Notification) Embedded() (channelModel.Booking, bool) {
	if n.Data.Booking == nil || n.Data.Booking.ArrivalDate == "" {
		return channelModel.Booking{}, false
	}

	booking := *n.Data.Booking
	booking.ID = n.ObjectID

	return booking, true
}

// Receipt tells the caller what happened to a notification.
type Receipt struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
	BookingID string `json:"booking_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
