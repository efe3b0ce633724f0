package dto

import (
	"net/http"

	"staysync/internal/domains/booking/model"
	"staysync/shared"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/timezone"
)

// Query parameters narrowing a booking listing.
const (
	QueryStatus     = "status"
	QuerySyncStatus = "sync_status"
	QuerySource     = "source"
	QueryRoomID     = "room_id"
	QueryFrom       = "from"
	QueryTo         = "to"
)

type BookingResponse struct {
	ID           string `json:"id"`
	ExternalID   string `json:"external_id,omitempty"`
	RoomID       string `json:"room_id"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	GuestName    string `json:"guest_name"`
	GuestEmail   string `json:"guest_email,omitempty"`
	GuestPhone   string `json:"guest_phone,omitempty"`
	GuestCountry string `json:"guest_country,omitempty"`
	Adults       int    `json:"adults"`
	Children     int    `json:"children"`
	Infants      int    `json:"infants"`
	TotalAmount  int64  `json:"total_amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	Source       string `json:"source"`
	Notes        string `json:"notes,omitempty"`
	SyncStatus   string `json:"sync_status"`
	LastSyncedAt string `json:"last_synced_at,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ExternalID = model.ExternalID.String
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateOnly)
	r.CheckOut = model.CheckOut.Format(constant.DateOnly)
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.GuestCountry = model.GuestCountry
	r.Adults = model.Adults
	r.Children = model.Children
	r.Infants = model.Infants
	r.TotalAmount = model.TotalAmount
	r.Currency = model.Currency
	r.Status = model.Status
	r.Source = model.Source
	r.Notes = model.Notes
	r.SyncStatus = model.SyncStatus

	if model.LastSyncedAt.Valid {
		r.LastSyncedAt = timezone.Format(model.LastSyncedAt.Time, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type SyncErrorResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id,omitempty"`
	Component string `json:"component"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

type GetSyncErrorsResponse struct {
	Errors []SyncErrorResponse `json:"errors"`
}

func (r *GetSyncErrorsResponse) FromModels(models []model.SyncError) {
	r.Errors = make([]SyncErrorResponse, len(models))

	for i, mod := range models {
		r.Errors[i] = SyncErrorResponse{
			ID:        mod.ID,
			BookingID: mod.BookingID.String,
			Component: mod.Component,
			Message:   mod.Message,
			Detail:    mod.Detail,
			CreatedAt: timezone.Format(mod.CreatedAt, constant.DateFormat),
		}
	}
}

// FilterFromRequest builds the listing filter from the query string. Unknown values are passed
// through and simply match nothing.
func FilterFromRequest(r *http.Request) gDto.FilterGroup {
	query := r.URL.Query()
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	add := func(field, operator, argName, value string) {
		if value == constant.Empty {
			return
		}

		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  argName,
			Field:    field,
			Value:    value,
			Operator: operator,
			Table:    model.TableName,
		})
	}

	add(model.FieldStatus, gDto.FilterOperatorEq, constant.Empty, query.Get(QueryStatus))
	add(model.FieldSyncStatus, gDto.FilterOperatorEq, constant.Empty, query.Get(QuerySyncStatus))
	add(model.FieldSource, gDto.FilterOperatorEq, constant.Empty, query.Get(QuerySource))
	add(model.FieldRoomID, gDto.FilterOperatorEq, constant.Empty, query.Get(QueryRoomID))
	add(model.FieldCheckOut, gDto.FilterOperatorGreater, QueryFrom, query.Get(QueryFrom))
	add(model.FieldCheckIn, gDto.FilterOperatorLess, QueryTo, query.Get(QueryTo))

	return group
}
