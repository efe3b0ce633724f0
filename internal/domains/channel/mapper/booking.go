package mapper

import (
	"database/sql"
	"strings"
	"time"

	bookingModel "staysync/internal/domains/booking/model"
	channelModel "staysync/internal/domains/channel/model"
	inventoryModel "staysync/internal/domains/inventory/model"
	"staysync/shared/constant"
	"staysync/shared/failure"
)

const hoursPerNight = constant.HoursPerDay * time.Hour

// Nights returns the number of nights in [checkIn, checkOut), zero when the range is empty.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Round(time.Hour) / hoursPerNight)

	return max(nights, 0)
}

// NightlyPrices prices every night of [checkIn, checkOut). A configured nightly rate wins,
// otherwise the total is split evenly and the remainder lands on the last night.
func NightlyPrices(checkIn, checkOut time.Time, nightlyRate, total int64) map[string]channelModel.Money {
	nights := Nights(checkIn, checkOut)
	prices := make(map[string]channelModel.Money, nights)

	if nights == 0 {
		return prices
	}

	base := nightlyRate
	last := nightlyRate

	if nightlyRate <= 0 {
		base = total / int64(nights)
		last = total - base*int64(nights-1)
	}

	for night := range nights {
		date := checkIn.AddDate(0, 0, night).Format(constant.DateOnly)

		if night == nights-1 {
			prices[date] = channelModel.Money(last)
		} else {
			prices[date] = channelModel.Money(base)
		}
	}

	return prices
}

// splitName splits a full guest name at its last space into given name and surname.
func splitName(full string) (name, surname string) {
	full = strings.Join(strings.Fields(full), " ")

	idx := strings.LastIndex(full, " ")
	if idx < 0 {
		return full, constant.Empty
	}

	return full[:idx], full[idx+1:]
}

func validateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return failure.NewValidationError("dates", "check-in and check-out are required")
	}

	if !checkOut.After(checkIn) {
		return failure.NewValidationError("dates", "check-out must be after check-in")
	}

	return nil
}

// ToExternalBookingPayload builds the channel booking for a canonical booking. The result depends
// on its arguments only, so a retried push sends the same payload.
func ToExternalBookingPayload(booking bookingModel.Booking, mapping inventoryModel.RoomMapping, plan inventoryModel.RatePlan, propertyID string) (channelModel.Booking, error) {
	if err := validateStay(booking.CheckIn, booking.CheckOut); err != nil {
		return channelModel.Booking{}, err
	}

	if mapping.ExternalRoomTypeID == constant.Empty {
		return channelModel.Booking{}, failure.NewMappingError("room", booking.RoomID)
	}

	if plan.ExternalRatePlanID == constant.Empty {
		return channelModel.Booking{}, failure.NewMappingError("rate plan", mapping.ExternalRoomTypeID)
	}

	currency := booking.Currency
	if currency == constant.Empty {
		currency = plan.Currency
	}

	name, surname := splitName(booking.GuestName)
	arrival := booking.CheckIn.Format(constant.DateOnly)
	departure := booking.CheckOut.Format(constant.DateOnly)

	return channelModel.Booking{
		PropertyID:         propertyID,
		Status:             StatusPMSToExternal(booking.Status),
		OTAName:            SourceToPartnerName(booking.Source),
		OTAReservationCode: booking.ID,
		ArrivalDate:        arrival,
		DepartureDate:      departure,
		Currency:           currency,
		Amount:             channelModel.Money(booking.TotalAmount),
		Notes:              booking.Notes,
		Customer: channelModel.Customer{
			Name:    name,
			Surname: surname,
			Mail:    booking.GuestEmail,
			Phone:   booking.GuestPhone,
			Country: booking.GuestCountry,
		},
		Rooms: []channelModel.BookingRoom{
			{
				RoomTypeID:   mapping.ExternalRoomTypeID,
				RatePlanID:   plan.ExternalRatePlanID,
				CheckinDate:  arrival,
				CheckoutDate: departure,
				Occupancy: channelModel.Occupancy{
					Adults:   max(booking.Adults, 1),
					Children: booking.Children,
					Infants:  booking.Infants,
				},
				Days: NightlyPrices(booking.CheckIn, booking.CheckOut, plan.NightlyRate, booking.TotalAmount),
			},
		},
	}, nil
}

// RoomTypeOf returns the external room type of the first booked room.
func RoomTypeOf(ext channelModel.Booking) string {
	if len(ext.Rooms) == 0 {
		return constant.Empty
	}

	return ext.Rooms[0].RoomTypeID
}

// FromExternalBooking converts a channel booking into a canonical booking for roomID. Identifier
// and metadata are left to the writer.
func FromExternalBooking(ext channelModel.Booking, roomID string) (bookingModel.Booking, error) {
	if strings.TrimSpace(ext.ID) == constant.Empty {
		return bookingModel.Booking{}, failure.NewValidationError("id", "external booking id is required")
	}

	if roomID == constant.Empty {
		return bookingModel.Booking{}, failure.NewValidationError("room_id", "room is required")
	}

	checkIn, err := time.Parse(constant.DateOnly, ext.ArrivalDate)
	if err != nil {
		return bookingModel.Booking{}, failure.NewValidationError("arrival_date", "must be formatted as YYYY-MM-DD")
	}

	checkOut, err := time.Parse(constant.DateOnly, ext.DepartureDate)
	if err != nil {
		return bookingModel.Booking{}, failure.NewValidationError("departure_date", "must be formatted as YYYY-MM-DD")
	}

	if err = validateStay(checkIn, checkOut); err != nil {
		return bookingModel.Booking{}, err
	}

	guest := strings.TrimSpace(strings.Join(strings.Fields(ext.Customer.Name+" "+ext.Customer.Surname), " "))
	if guest == constant.Empty {
		return bookingModel.Booking{}, failure.NewValidationError("customer", "guest name is required")
	}

	occupancy := channelModel.Occupancy{}
	total := int64(ext.Amount)

	if len(ext.Rooms) > 0 {
		occupancy = ext.Rooms[0].Occupancy

		if total == 0 {
			for _, price := range ext.Rooms[0].Days {
				total += int64(price)
			}
		}
	}

	return bookingModel.Booking{
		ExternalID:   sql.NullString{String: ext.ID, Valid: true},
		RoomID:       roomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		GuestName:    guest,
		GuestEmail:   ext.Customer.Mail,
		GuestPhone:   ext.Customer.Phone,
		GuestCountry: ext.Customer.Country,
		Adults:       max(occupancy.Adults, 1),
		Children:     occupancy.Children,
		Infants:      occupancy.Infants,
		TotalAmount:  total,
		Currency:     strings.ToUpper(ext.Currency),
		Status:       StatusExternalToPMS(ext.Status),
		Source:       PartnerNameToSource(ext.OTAName),
		Notes:        ext.Notes,
		SyncStatus:   bookingModel.SyncStatusSynced,
	}, nil
}
