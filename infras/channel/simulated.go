package channel

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"staysync/internal/domains/channel/model"
	"staysync/shared/constant"

	"github.com/google/uuid"
)

// Simulated is an in-memory channel manager. It keeps enough state to behave like the real
// system for one property: rate plans take the property currency at creation, rate and
// availability pushes overwrite per date, and bookings keep their identifiers.
type Simulated struct {
	mu           sync.RWMutex
	property     model.Property
	roomTypes    []model.RoomType
	ratePlans    []model.RatePlan
	bookings     map[string]model.Booking
	bookingOrder []string
	rates        map[string]map[string]model.Money
	availability map[string]map[string]int
}

func NewSimulated(propertyID, currency string) *Simulated {
	return &Simulated{
		property:     model.Property{ID: propertyID, Currency: currency},
		bookings:     map[string]model.Booking{},
		rates:        map[string]map[string]model.Money{},
		availability: map[string]map[string]int{},
	}
}

func notFound(kind, id string) error {
	return &ExternalAPIError{Status: http.StatusNotFound, Detail: kind + " " + id + " not found"}
}

func unprocessable(detail string) error {
	return &ExternalAPIError{Status: http.StatusUnprocessableEntity, Detail: detail}
}

func eachDate(from, to string, fn func(date string)) error {
	start, err := time.Parse(constant.DateOnly, from)
	if err != nil {
		return unprocessable("invalid date_from " + from)
	}

	end, err := time.Parse(constant.DateOnly, to)
	if err != nil {
		return unprocessable("invalid date_to " + to)
	}

	if end.Before(start) {
		return unprocessable("date_to is before date_from")
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		fn(day.Format(constant.DateOnly))
	}

	return nil
}

func (s *Simulated) GetProperty(_ context.Context, propertyID string) (model.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if propertyID != s.property.ID {
		return model.Property{}, notFound("property", propertyID)
	}

	return s.property, nil
}

func (s *Simulated) UpdatePropertyCurrency(_ context.Context, propertyID, currency string) (model.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if propertyID != s.property.ID {
		return model.Property{}, notFound("property", propertyID)
	}

	s.property.Currency = currency

	return s.property, nil
}

func (s *Simulated) ListRoomTypes(_ context.Context, propertyID string) ([]model.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roomTypes := []model.RoomType{}

	for _, roomType := range s.roomTypes {
		if roomType.PropertyID == propertyID {
			roomTypes = append(roomTypes, roomType)
		}
	}

	return roomTypes, nil
}

func (s *Simulated) CreateRoomType(_ context.Context, roomType model.RoomType) (model.RoomType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(roomType.Title) == "" {
		return model.RoomType{}, unprocessable("title is required")
	}

	roomType.ID = uuid.NewString()
	s.roomTypes = append(s.roomTypes, roomType)

	return roomType, nil
}

func (s *Simulated) ListRatePlans(_ context.Context, propertyID string) ([]model.RatePlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratePlans := []model.RatePlan{}

	for _, ratePlan := range s.ratePlans {
		if ratePlan.PropertyID == propertyID {
			ratePlans = append(ratePlans, ratePlan)
		}
	}

	return ratePlans, nil
}

func (s *Simulated) CreateRatePlan(_ context.Context, ratePlan model.RatePlan) (model.RatePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := slices.ContainsFunc(s.roomTypes, func(roomType model.RoomType) bool {
		return roomType.ID == ratePlan.RoomTypeID
	})
	if !known {
		return model.RatePlan{}, unprocessable("unknown room type " + ratePlan.RoomTypeID)
	}

	ratePlan.ID = uuid.NewString()
	ratePlan.Currency = s.property.Currency
	s.ratePlans = append(s.ratePlans, ratePlan)

	return ratePlan, nil
}

func (s *Simulated) DeleteRatePlan(_ context.Context, ratePlanID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.ratePlans, func(ratePlan model.RatePlan) bool {
		return ratePlan.ID == ratePlanID
	})
	if idx < 0 {
		return notFound("rate plan", ratePlanID)
	}

	s.ratePlans = slices.Delete(s.ratePlans, idx, idx+1)
	delete(s.rates, ratePlanID)

	return nil
}

func (s *Simulated) UpdateRates(_ context.Context, values []model.RateValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, value := range values {
		if _, ok := s.rates[value.RatePlanID]; !ok {
			s.rates[value.RatePlanID] = map[string]model.Money{}
		}

		err := eachDate(value.DateFrom, value.DateTo, func(date string) {
			s.rates[value.RatePlanID][date] = value.Rate
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Simulated) UpdateAvailability(_ context.Context, values []model.AvailabilityValue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, value := range values {
		if _, ok := s.availability[value.RoomTypeID]; !ok {
			s.availability[value.RoomTypeID] = map[string]int{}
		}

		err := eachDate(value.DateFrom, value.DateTo, func(date string) {
			s.availability[value.RoomTypeID][date] = value.Availability
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Simulated) CreateBooking(_ context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = uuid.NewString()
	booking.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.bookings[booking.ID] = booking
	s.bookingOrder = append(s.bookingOrder, booking.ID)

	return booking, nil
}

func (s *Simulated) UpdateBooking(_ context.Context, bookingID string, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[bookingID]; !ok {
		return model.Booking{}, notFound("booking", bookingID)
	}

	booking.ID = bookingID
	booking.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.bookings[bookingID] = booking

	return booking, nil
}

func (s *Simulated) GetBooking(_ context.Context, bookingID string) (model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return model.Booking{}, notFound("booking", bookingID)
	}

	return booking, nil
}

func (s *Simulated) ListBookings(_ context.Context, filter model.BookingFilter) (model.BookingPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []model.Booking{}

	for _, id := range s.bookingOrder {
		booking := s.bookings[id]

		if filter.ArrivalFrom != "" && booking.ArrivalDate < filter.ArrivalFrom {
			continue
		}

		if filter.ArrivalTo != "" && booking.ArrivalDate > filter.ArrivalTo {
			continue
		}

		if filter.UpdatedSince != "" && booking.UpdatedAt < filter.UpdatedSince {
			continue
		}

		matched = append(matched, booking)
	}

	page := max(filter.Page, 1)
	limit := filter.Limit

	if limit <= 0 {
		limit = max(len(matched), 1)
	}

	start := min((page-1)*limit, len(matched))
	end := min(start+limit, len(matched))

	return model.BookingPage{
		Bookings: slices.Clone(matched[start:end]),
		Page:     page,
		Limit:    limit,
		Total:    len(matched),
	}, nil
}

func (s *Simulated) CancelBooking(_ context.Context, bookingID string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return model.Booking{}, notFound("booking", bookingID)
	}

	booking.Status = model.StatusCancelled
	booking.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.bookings[bookingID] = booking

	return booking, nil
}

// Rate returns the last rate pushed for a rate plan on date.
func (s *Simulated) Rate(ratePlanID, date string) (model.Money, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rate, ok := s.rates[ratePlanID][date]

	return rate, ok
}

// Availability returns the last availability pushed for a room type on date.
func (s *Simulated) Availability(roomTypeID, date string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count, ok := s.availability[roomTypeID][date]

	return count, ok
}

// BookingCount returns the number of bookings the simulated system holds.
func (s *Simulated) BookingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings)
}
