package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"staysync/config"
	otelMocks "staysync/infras/otel/mocks"
	bookingMocks "staysync/internal/domains/booking/mocks"
	bookingModel "staysync/internal/domains/booking/model"
	inventoryMocks "staysync/internal/domains/inventory/mocks"
	inventoryModel "staysync/internal/domains/inventory/model"
	"staysync/internal/domains/ota/model"
	"staysync/internal/domains/ota/service"
	roomMocks "staysync/internal/domains/room/mocks"
	roomModel "staysync/internal/domains/room/model"
	"staysync/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func airbnb() config.Partner {
	return config.Partner{
		Enable:        true,
		IDPrefix:      "abnb-",
		RoomTable:     map[string]string{"dorm": "111", "double": "222"},
		MaxOccupancy:  map[string]int{"double": 2},
		MarkupPercent: 15,
		Granularity:   100,
	}
}

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func TestAdapter(t *testing.T) {
	adapter := service.NewAdapter(model.PartnerAirbnb, airbnb())

	t.Run("room id", func(t *testing.T) {
		id, err := adapter.RoomIDFor(" Dorm ")
		require.NoError(t, err)
		assert.Equal(t, "abnb-111", id)

		_, err = adapter.RoomIDFor("suite")

		var mappingErr *failure.MappingError
		require.ErrorAs(t, err, &mappingErr)
	})

	t.Run("nightly price", func(t *testing.T) {
		assert.Equal(t, int64(11500), adapter.NightlyPrice(10000))
		assert.Equal(t, int64(5800), adapter.NightlyPrice(5000))
		assert.Equal(t, int64(0), adapter.NightlyPrice(0))

		plain := service.NewAdapter(model.PartnerAgoda, config.Partner{})
		assert.Equal(t, int64(4999), plain.NightlyPrice(4999))
	})

	t.Run("occupancy", func(t *testing.T) {
		require.NoError(t, adapter.ValidateOccupancy("double", 2))
		require.NoError(t, adapter.ValidateOccupancy("dorm", 12))

		var validation *failure.ValidationError
		require.ErrorAs(t, adapter.ValidateOccupancy("double", 3), &validation)
		require.ErrorAs(t, adapter.ValidateOccupancy("dorm", 0), &validation)
	})

	t.Run("source", func(t *testing.T) {
		assert.Equal(t, "airbnb", adapter.Source)
		require.NoError(t, adapter.ValidateSource(bookingModel.SourceWebsite))
		require.NoError(t, adapter.ValidateSource(bookingModel.SourceAirbnb))
		require.Error(t, adapter.ValidateSource(bookingModel.SourceAgoda))
	})
}

type fixture struct {
	booking     *bookingMocks.MockBookingService
	inventory   *inventoryMocks.MockInventory
	bookingRepo *bookingMocks.MockBooking
	roomRepo    *roomMocks.MockRoom
}

func newFixture(t *testing.T) (fixture, service.OTA) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.OTA.Airbnb = airbnb()

	f := fixture{
		booking:     bookingMocks.NewMockBookingService(ctrl),
		inventory:   inventoryMocks.NewMockInventory(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
	}

	return f, service.New(cfg, f.booking, f.inventory, f.bookingRepo, f.roomRepo, otelMocks.NewOtel())
}

func stay() bookingModel.Booking {
	return bookingModel.Booking{
		ID:       "bk-1",
		RoomID:   "room-1",
		CheckIn:  day("2024-05-10"),
		CheckOut: day("2024-05-13"),
		Adults:   2,
		Source:   bookingModel.SourceWebsite,
	}
}

func TestPushBookingRecomputesAvailability(t *testing.T) {
	f, svc := newFixture(t)

	f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(), nil)
	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Number: "201", Category: "Double"}, nil)

	pushed := stay()
	pushed.ExternalID = sql.NullString{String: "ext-1", Valid: true}

	gomock.InOrder(
		f.booking.EXPECT().Push(gomock.Any(), "bk-1").Return(pushed, nil),
		f.inventory.EXPECT().RecomputeAvailability(gomock.Any(), "double", []time.Time{day("2024-05-10"), day("2024-05-11"), day("2024-05-12")}).Return(nil),
	)

	res, err := svc.PushBooking(context.Background(), model.PartnerAirbnb, "bk-1")
	require.NoError(t, err)
	assert.Equal(t, "ext-1", res.ExternalID)
	assert.Equal(t, "abnb-222", res.PartnerRoomID)
	assert.Len(t, res.Nights, 3)
}

func TestPushBookingValidation(t *testing.T) {
	t.Run("disabled partner", func(t *testing.T) {
		_, svc := newFixture(t)

		_, err := svc.PushBooking(context.Background(), model.PartnerAgoda, "bk-1")
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("too many guests", func(t *testing.T) {
		f, svc := newFixture(t)

		booking := stay()
		booking.Adults = 2
		booking.Children = 1

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Category: "double"}, nil)

		_, err := svc.PushBooking(context.Background(), model.PartnerAirbnb, "bk-1")

		var validation *failure.ValidationError
		require.ErrorAs(t, err, &validation)
	})

	t.Run("category not sold by partner", func(t *testing.T) {
		f, svc := newFixture(t)

		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(), nil)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Category: "suite"}, nil)

		_, err := svc.PushBooking(context.Background(), model.PartnerAirbnb, "bk-1")

		var mappingErr *failure.MappingError
		require.ErrorAs(t, err, &mappingErr)
	})
}

func TestPushRates(t *testing.T) {
	f, svc := newFixture(t)

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Category: "dorm", BasePrice: 3000}, nil)
	f.inventory.EXPECT().Resolve(gomock.Any(), "room-1").Return(
		inventoryModel.RoomMapping{ExternalRoomTypeID: "rt-1"},
		inventoryModel.RatePlan{ExternalRatePlanID: "rp-1", NightlyRate: 4000},
		nil,
	)
	f.inventory.EXPECT().PushRates(gomock.Any(), "rp-1", day("2024-06-01"), day("2024-06-30"), int64(4600)).Return(nil)

	res, err := svc.PushRates(context.Background(), model.PartnerAirbnb, model.PushRatesRequest{RoomID: "room-1", From: "2024-06-01", To: "2024-06-30"})
	require.NoError(t, err)
	assert.Equal(t, int64(4600), res.NightlyPrice)
	assert.Equal(t, "abnb-111", res.PartnerRoomID)
}

func TestPushRatesRejectsBadDates(t *testing.T) {
	_, svc := newFixture(t)

	_, err := svc.PushRates(context.Background(), model.PartnerAirbnb, model.PushRatesRequest{RoomID: "room-1", From: "06/01/2024", To: "2024-06-30"})
	assert.Equal(t, 400, failure.GetCode(err))
}
