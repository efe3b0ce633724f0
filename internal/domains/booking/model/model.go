package model

import (
	"database/sql"
	"slices"
	"time"

	"staysync/shared/model"
)

const (
	TableName      = "bookings"
	EntityName     = "booking"
	ErrorTableName = "sync_errors"
	ErrorEntity    = "sync_error"

	FieldID           = "id"
	FieldExternalID   = "external_id"
	FieldRoomID       = "room_id"
	FieldCheckIn      = "check_in"
	FieldCheckOut     = "check_out"
	FieldGuestName    = "guest_name"
	FieldGuestEmail   = "guest_email"
	FieldGuestPhone   = "guest_phone"
	FieldGuestCountry = "guest_country"
	FieldAdults       = "adults"
	FieldChildren     = "children"
	FieldInfants      = "infants"
	FieldTotalAmount  = "total_amount"
	FieldCurrency     = "currency"
	FieldStatus       = "status"
	FieldSource       = "source"
	FieldNotes        = "notes"
	FieldSyncStatus   = "sync_status"
	FieldLastSyncedAt = "last_synced_at"
	FieldBookingID    = "booking_id"
	FieldModifiedAt   = "modified_at"
	FieldModifiedBy   = "modified_by"
)

// Lifecycle statuses of a canonical booking.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	SyncStatusPending = "pending"
	SyncStatusSynced  = "synced"
	SyncStatusError   = "error"
)

// Booking source tags.
const (
	SourceDirect     = "direct"
	SourceWebsite    = "website"
	SourcePhone      = "phone"
	SourceWalkIn     = "walk_in"
	SourceBookingCom = "booking_com"
	SourceAirbnb     = "airbnb"
	SourceAgoda      = "agoda"
	SourceExpedia    = "expedia"
	SourceOther      = "other"
)

var (
	Statuses      = []string{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}
	directSources = []string{SourceDirect, SourceWebsite, SourcePhone, SourceWalkIn}
)

// IsDirectSource reports whether bookings from source originate in the PMS and are pushed outward.
func IsDirectSource(source string) bool {
	return slices.Contains(directSources, source)
}

type Booking struct {
	ID           string         `db:"id"`
	ExternalID   sql.NullString `db:"external_id"`
	RoomID       string         `db:"room_id"`
	CheckIn      time.Time      `db:"check_in"`
	CheckOut     time.Time      `db:"check_out"`
	GuestName    string         `db:"guest_name"`
	GuestEmail   string         `db:"guest_email"`
	GuestPhone   string         `db:"guest_phone"`
	GuestCountry string         `db:"guest_country"`
	Adults       int            `db:"adults"`
	Children     int            `db:"children"`
	Infants      int            `db:"infants"`
	TotalAmount  int64          `db:"total_amount"`
	Currency     string         `db:"currency"`
	Status       string         `db:"status"`
	Source       string         `db:"source"`
	Notes        string         `db:"notes"`
	SyncStatus   string         `db:"sync_status"`
	LastSyncedAt sql.NullTime   `db:"last_synced_at"`
	model.Metadata
}

func (b Booking) HasExternalID() bool {
	return b.ExternalID.Valid && b.ExternalID.String != ""
}

// Active reports whether the booking still holds its room.
func (b Booking) Active() bool {
	return b.Status != StatusCancelled && b.Status != StatusCheckedOut
}

// SameContent compares the fields that identify one stay. Two records with the same content
// describe the same reservation even when their identifiers differ.
func (b Booking) SameContent(other Booking) bool {
	return b.RoomID == other.RoomID &&
		b.CheckIn.Equal(other.CheckIn) &&
		b.CheckOut.Equal(other.CheckOut) &&
		b.GuestName == other.GuestName &&
		b.GuestEmail == other.GuestEmail &&
		b.TotalAmount == other.TotalAmount &&
		b.Currency == other.Currency &&
		b.Status == other.Status
}

// UpsertColumns are overwritten when an external booking is written again.
func UpsertColumns() []string {
	return []string{
		FieldRoomID, FieldCheckIn, FieldCheckOut, FieldGuestName, FieldGuestEmail, FieldGuestPhone,
		FieldGuestCountry, FieldAdults, FieldChildren, FieldInfants, FieldTotalAmount, FieldCurrency,
		FieldStatus, FieldSource, FieldNotes, FieldSyncStatus, FieldLastSyncedAt, FieldModifiedAt, FieldModifiedBy,
	}
}

// SyncError is an append-only record of one failed synchronization step.
type SyncError struct {
	ID        string         `db:"id"`
	BookingID sql.NullString `db:"booking_id"`
	Component string         `db:"component"`
	Message   string         `db:"message"`
	Detail    string         `db:"detail"`
	CreatedAt time.Time      `db:"created_at"`
}
