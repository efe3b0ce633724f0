package service

import (
	"fmt"
	"strings"

	"staysync/config"
	bookingModel "staysync/internal/domains/booking/model"
	"staysync/shared/constant"
	"staysync/shared/failure"
)

const percent = 100

// Adapter shapes pushes for one partner. It is pure configuration and never talks to the
// channel itself.
type Adapter struct {
	Name   string
	Source string
	cfg    config.Partner
}

func NewAdapter(name string, cfg config.Partner) Adapter {
	source := cfg.Source
	if source == constant.Empty {
		source = name
	}

	return Adapter{Name: name, Source: source, cfg: cfg}
}

func key(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// RoomIDFor returns the partner's room identifier for a category, inside the partner namespace.
func (a Adapter) RoomIDFor(category string) (string, error) {
	id, ok := a.cfg.RoomTable[key(category)]
	if !ok || id == constant.Empty {
		return constant.Empty, failure.NewMappingError(a.Name+" room", category) //nolint:wrapcheck
	}

	return a.cfg.IDPrefix + id, nil
}

// NightlyPrice applies the partner markup to a base rate in minor units and rounds half up to
// the partner granularity.
func (a Adapter) NightlyPrice(baseRate int64) int64 {
	price := baseRate * int64(percent+a.cfg.MarkupPercent) / percent

	if step := a.cfg.Granularity; step > 1 {
		price = (price + step/2) / step * step
	}

	return max(price, 0)
}

func (a Adapter) ValidateOccupancy(category string, guests int) error {
	if guests < 1 {
		return failure.NewValidationError("occupancy", "at least one guest is required") //nolint:wrapcheck
	}

	if limit := a.cfg.MaxOccupancy[key(category)]; limit > 0 && guests > limit {
		return failure.NewValidationError("occupancy", fmt.Sprintf("%s allows at most %d guests in %s", a.Name, limit, category)) //nolint:wrapcheck
	}

	return nil
}

// ValidateSource refuses bookings that came from another partner.
func (a Adapter) ValidateSource(source string) error {
	if bookingModel.IsDirectSource(source) || source == a.Source {
		return nil
	}

	return failure.NewValidationError("source", fmt.Sprintf("%s bookings cannot be pushed through %s", source, a.Name)) //nolint:wrapcheck
}
