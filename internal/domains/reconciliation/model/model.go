package model

import (
	"time"

	channelModel "staysync/internal/domains/channel/model"
	"staysync/shared/constant"
)

// ImportResult counts the outcome of one reconciliation run. Every listed booking lands in
// exactly one of the counters.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   int      `json:"errors"`
	Failures []string `json:"failures"`
}

// ImportFilter narrows the external bookings a run walks through.
type ImportFilter struct {
	ArrivalFrom  time.Time
	ArrivalTo    time.Time
	UpdatedSince time.Time
}

func (f ImportFilter) BookingFilter(propertyID string, limit int) channelModel.BookingFilter {
	filter := channelModel.BookingFilter{PropertyID: propertyID, Page: 1, Limit: limit}

	if !f.ArrivalFrom.IsZero() {
		filter.ArrivalFrom = f.ArrivalFrom.Format(constant.DateOnly)
	}

	if !f.ArrivalTo.IsZero() {
		filter.ArrivalTo = f.ArrivalTo.Format(constant.DateOnly)
	}

	if !f.UpdatedSince.IsZero() {
		filter.UpdatedSince = f.UpdatedSince.UTC().Format(time.RFC3339)
	}

	return filter
}
