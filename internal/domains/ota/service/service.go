package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"staysync/config"
	"staysync/infras/otel"
	bookingModel "staysync/internal/domains/booking/model"
	bookingRepository "staysync/internal/domains/booking/repository"
	bookingService "staysync/internal/domains/booking/service"
	"staysync/internal/domains/channel/mapper"
	inventory "staysync/internal/domains/inventory/service"
	"staysync/internal/domains/ota/model"
	roomModel "staysync/internal/domains/room/model"
	roomRepository "staysync/internal/domains/room/repository"
	"staysync/shared"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/timezone"
	"staysync/shared/validator"

	"github.com/rs/zerolog/log"
)

type OTA interface {
	// PushBooking validates a booking against the partner profile, pushes it through the booking
	// synchronizer and republishes availability for the booked nights.
	PushBooking(ctx context.Context, partner, bookingID string) (model.BookingResult, error)
	PushRates(ctx context.Context, partner string, req model.PushRatesRequest) (model.RatesResult, error)
}

type serviceImpl struct {
	adapters    map[string]Adapter
	booking     bookingService.Booking
	inventory   inventory.Inventory
	bookingRepo bookingRepository.Booking
	roomRepo    roomRepository.Room
	otel        otel.Otel
}

func New(cfg *config.Config, booking bookingService.Booking, inventory inventory.Inventory, bookingRepo bookingRepository.Booking, roomRepo roomRepository.Room, otel otel.Otel) OTA {
	adapters := map[string]Adapter{}

	for name, partner := range map[string]config.Partner{
		model.PartnerAirbnb: cfg.OTA.Airbnb,
		model.PartnerAgoda:  cfg.OTA.Agoda,
	} {
		if partner.Enable {
			adapters[name] = NewAdapter(name, partner)
		}
	}

	return &serviceImpl{
		adapters:    adapters,
		booking:     booking,
		inventory:   inventory,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		otel:        otel,
	}
}

func (s *serviceImpl) adapter(partner string) (Adapter, error) {
	adapter, ok := s.adapters[partner]
	if !ok {
		return adapter, failure.NotFound("ota partner " + partner) //nolint:wrapcheck
	}

	return adapter, nil
}

func (s *serviceImpl) room(ctx context.Context, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NewMappingError("room", id) //nolint:wrapcheck
	}

	return room, nil
}

// stayNights lists the nights of a stay, check-out excluded.
func stayNights(checkIn, checkOut time.Time) []time.Time {
	nights := make([]time.Time, 0, mapper.Nights(checkIn, checkOut))

	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		nights = append(nights, day)
	}

	return nights
}

func (s *serviceImpl) PushBooking(ctx context.Context, partner, bookingID string) (res model.BookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PushBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	adapter, err := s.adapter(partner)
	if err != nil {
		return res, err
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(bookingModel.EntityName) //nolint:wrapcheck
	}

	room, err := s.room(ctx, booking.RoomID)
	if err != nil {
		return res, err
	}

	category := mapper.CategoryOf(room)

	partnerRoomID, err := adapter.RoomIDFor(category)
	if err != nil {
		return res, err
	}

	if err = adapter.ValidateSource(booking.Source); err != nil {
		return res, err
	}

	if err = adapter.ValidateOccupancy(category, booking.Adults+booking.Children); err != nil {
		return res, err
	}

	pushed, err := s.booking.Push(ctx, booking.ID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res = model.BookingResult{
		Partner:       adapter.Name,
		BookingID:     pushed.ID,
		ExternalID:    pushed.ExternalID.String,
		PartnerRoomID: partnerRoomID,
		Nights:        stayNights(booking.CheckIn, booking.CheckOut),
	}

	if err = s.inventory.RecomputeAvailability(ctx, category, res.Nights); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Str("partner", partner).Msg("booking pushed but availability was not republished")

		return res, fmt.Errorf("failed to republish availability: %w", err)
	}

	log.Info().Str("booking", booking.ID).Str("partner", partner).Str("partnerRoom", partnerRoomID).Msg("ota booking pushed")

	return res, nil
}

func (s *serviceImpl) PushRates(ctx context.Context, partner string, req model.PushRatesRequest) (res model.RatesResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PushRates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	adapter, err := s.adapter(partner)
	if err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	from, err := timezone.ParseDate(req.From)
	if err != nil {
		return res, failure.NewValidationError("from", err.Error()) //nolint:wrapcheck
	}

	to, err := timezone.ParseDate(req.To)
	if err != nil {
		return res, failure.NewValidationError("to", err.Error()) //nolint:wrapcheck
	}

	room, err := s.room(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	partnerRoomID, err := adapter.RoomIDFor(mapper.CategoryOf(room))
	if err != nil {
		return res, err
	}

	_, plan, err := s.inventory.Resolve(ctx, room.ID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	base := req.BaseRate
	if base == 0 {
		base = plan.NightlyRate
	}

	if base == 0 {
		base = room.BasePrice
	}

	price := adapter.NightlyPrice(base)

	if err = s.inventory.PushRates(ctx, plan.ExternalRatePlanID, from, to, price); err != nil {
		return res, err //nolint:wrapcheck
	}

	log.Info().Str("partner", partner).Str("room", room.ID).Int64("price", price).Msg("ota rates pushed")

	return model.RatesResult{
		Partner:       adapter.Name,
		PartnerRoomID: partnerRoomID,
		RatePlanID:    plan.ExternalRatePlanID,
		NightlyPrice:  price,
	}, nil
}
