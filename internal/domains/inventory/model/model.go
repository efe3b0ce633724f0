package model

import (
	"database/sql"
	"slices"
	"time"

	"staysync/shared/model"
)

const (
	MappingTableName  = "room_mappings"
	MappingEntityName = "room_mapping"
	PlanTableName     = "rate_plans"
	PlanEntityName    = "rate_plan"

	FieldID                 = "id"
	FieldSystem             = "system"
	FieldRoomID             = "room_id"
	FieldCategory           = "category"
	FieldExternalRoomTypeID = "external_room_type_id"
	FieldExternalRatePlanID = "external_rate_plan_id"
	FieldCurrency           = "currency"
	FieldNightlyRate        = "nightly_rate"
	FieldModifiedAt         = "modified_at"
	FieldModifiedBy         = "modified_by"

	PricingModePerRoom = "per_room"
)

// RoomMapping links a PMS room, or a whole category when RoomID is null, to an external room type.
type RoomMapping struct {
	ID                 string         `db:"id"`
	System             string         `db:"system"`
	RoomID             sql.NullString `db:"room_id"`
	Category           string         `db:"category"`
	ExternalRoomTypeID string         `db:"external_room_type_id"`
	Title              string         `db:"title"`
	Occupancy          int            `db:"occupancy"`
	model.Metadata
}

// CategoryLevel reports whether the mapping covers every room of its category.
func (m RoomMapping) CategoryLevel() bool {
	return !m.RoomID.Valid
}

// RatePlan references the single external rate plan of an external room type.
type RatePlan struct {
	ID                 string `db:"id"`
	System             string `db:"system"`
	ExternalRoomTypeID string `db:"external_room_type_id"`
	ExternalRatePlanID string `db:"external_rate_plan_id"`
	Currency           string `db:"currency"`
	PricingMode        string `db:"pricing_mode"`
	NightlyRate        int64  `db:"nightly_rate"`
	model.Metadata
}

// Stale reports whether the plan was created in another currency than the property's.
func (p RatePlan) Stale(currency string) bool {
	return p.Currency != currency
}

// SyncResult aggregates a batch of independent inventory operations.
type SyncResult struct {
	Synced int      `json:"synced"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors"`
}

func (r *SyncResult) Fail(key string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, key+": "+err.Error())
}

// DateRange is an inclusive run of consecutive days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Coalesce sorts and deduplicates dates, then merges consecutive days into ranges.
func Coalesce(dates []time.Time) []DateRange {
	days := make([]time.Time, 0, len(dates))

	for _, date := range dates {
		days = append(days, time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC))
	}

	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })
	days = slices.CompactFunc(days, func(a, b time.Time) bool { return a.Equal(b) })

	ranges := []DateRange{}

	for _, day := range days {
		last := len(ranges) - 1
		if last >= 0 && ranges[last].To.AddDate(0, 0, 1).Equal(day) {
			ranges[last].To = day

			continue
		}

		ranges = append(ranges, DateRange{From: day, To: day})
	}

	return ranges
}
