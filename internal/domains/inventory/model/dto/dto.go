package dto

import (
	"time"

	"staysync/shared/timezone"
)

type SyncRoomsRequest struct {
	// RoomIDs limits the run, all active rooms are synchronized when empty.
	RoomIDs []string `json:"room_ids" validate:"omitempty,dive,required"`
}

type PushRatesRequest struct {
	RoomID       string `json:"room_id"       validate:"required"`
	From         string `json:"from"          validate:"required,stay_date"`
	To           string `json:"to"            validate:"required,stay_date"`
	NightlyPrice int64  `json:"nightly_price" validate:"gte=0"`
}

func (r PushRatesRequest) Range() (from, to time.Time, err error) {
	if from, err = timezone.ParseDate(r.From); err != nil {
		return from, to, err
	}

	to, err = timezone.ParseDate(r.To)

	return from, to, err
}

// PushAvailabilityRequest sets a fixed count when Count is given, otherwise the count is
// recomputed from local bookings.
type PushAvailabilityRequest struct {
	RoomID string   `json:"room_id" validate:"required"`
	Dates  []string `json:"dates"   validate:"required,min=1,dive,stay_date"`
	Count  *int     `json:"count"   validate:"omitempty,gte=0"`
}

func (r PushAvailabilityRequest) Days() ([]time.Time, error) {
	days := make([]time.Time, 0, len(r.Dates))

	for _, raw := range r.Dates {
		day, err := timezone.ParseDate(raw)
		if err != nil {
			return nil, err
		}

		days = append(days, day)
	}

	return days, nil
}

type CurrencyRequest struct {
	Currency string `json:"currency" validate:"required,iso_currency"`
}
