package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staysync/config"
	"staysync/infras/channel"
	channelMocks "staysync/infras/channel/mocks"
	otelMocks "staysync/infras/otel/mocks"
	bookingMocks "staysync/internal/domains/booking/mocks"
	channelModel "staysync/internal/domains/channel/model"
	"staysync/internal/domains/reconciliation/model"
	"staysync/internal/domains/reconciliation/service"
	"staysync/shared/cache"
	cacheMocks "staysync/shared/cache/mocks"
	"staysync/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo    *bookingMocks.MockBooking
	booking *bookingMocks.MockBookingService
	cache   *cacheMocks.MockRedisCache
	cfg     *config.Config
	sim     *channel.Simulated
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Channel.PropertyID = "prop-1"
	cfg.Sync.ImportPageLimit = 2

	return fixture{
		repo:    bookingMocks.NewMockBooking(ctrl),
		booking: bookingMocks.NewMockBookingService(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		cfg:     cfg,
		sim:     channel.NewSimulated("prop-1", "EUR"),
	}
}

func (f fixture) seed(t *testing.T, arrivals ...string) []string {
	t.Helper()

	ids := make([]string, 0, len(arrivals))

	for _, arrival := range arrivals {
		ext, err := f.sim.CreateBooking(context.Background(), channelModel.Booking{
			PropertyID:    "prop-1",
			ArrivalDate:   arrival,
			DepartureDate: arrival,
			Rooms:         []channelModel.BookingRoom{{RoomTypeID: "rt-1"}},
		})
		require.NoError(t, err)

		ids = append(ids, ext.ID)
	}

	return ids
}

func TestImportAllIsolatesFailures(t *testing.T) {
	f := newFixture(t)
	ids := f.seed(t, "2024-07-01", "2024-07-02", "2024-07-03")

	f.cache.EXPECT().Lock(gomock.Any(), "reconciliation:import", gomock.Any()).Return(func() {}, nil)
	f.repo.EXPECT().ExistingExternalIDs(gomock.Any(), gomock.Any()).Return(map[string]bool{}, nil).Times(2)

	f.booking.EXPECT().UpsertExternal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ext channelModel.Booking) (string, bool, error) {
		if ext.ID == ids[1] {
			return "", false, failure.NewMappingError("room type", "rt-1")
		}

		return "local-" + ext.ID, true, nil
	}).Times(3)

	svc := service.New(f.sim, f.repo, f.booking, f.cfg, f.cache, otelMocks.NewOtel())

	res, err := svc.ImportAll(context.Background(), model.ImportFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 0, res.Skipped)
	require.Len(t, res.Failures, 1)
	assert.Contains(t, res.Failures[0], ids[1])
}

func TestImportAllSkipsKnownBookings(t *testing.T) {
	f := newFixture(t)
	ids := f.seed(t, "2024-07-01", "2024-07-02")

	f.cache.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(func() {}, nil)
	f.repo.EXPECT().ExistingExternalIDs(gomock.Any(), ids).Return(map[string]bool{ids[0]: true}, nil)
	f.booking.EXPECT().UpsertExternal(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ext channelModel.Booking) (string, bool, error) {
		assert.Equal(t, ids[1], ext.ID)

		return "local", true, nil
	})

	svc := service.New(f.sim, f.repo, f.booking, f.cfg, f.cache, otelMocks.NewOtel())

	res, err := svc.ImportAll(context.Background(), model.ImportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 1, res.Skipped)
}

func TestImportAllFiltersByArrival(t *testing.T) {
	f := newFixture(t)
	ids := f.seed(t, "2024-07-01", "2024-08-01")

	f.cache.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(func() {}, nil)
	f.repo.EXPECT().ExistingExternalIDs(gomock.Any(), []string{ids[1]}).Return(map[string]bool{}, nil)
	f.booking.EXPECT().UpsertExternal(gomock.Any(), gomock.Any()).Return("local", true, nil)

	svc := service.New(f.sim, f.repo, f.booking, f.cfg, f.cache, otelMocks.NewOtel())

	res, err := svc.ImportAll(context.Background(), model.ImportFilter{ArrivalFrom: time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
}

func TestImportAllRunInProgress(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cache.ErrLockHeld)

	svc := service.New(f.sim, f.repo, f.booking, f.cfg, f.cache, otelMocks.NewOtel())

	_, err := svc.ImportAll(context.Background(), model.ImportFilter{})

	var conflict *failure.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestImportAllListingFailure(t *testing.T) {
	f := newFixture(t)

	api := channelMocks.NewMockAPI(gomock.NewController(t))
	api.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Return(channelModel.BookingPage{}, &channel.ExternalAPIError{Status: 503, Detail: "Service Unavailable"})

	f.cache.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(func() {}, nil)

	svc := service.New(api, f.repo, f.booking, f.cfg, f.cache, otelMocks.NewOtel())

	_, err := svc.ImportAll(context.Background(), model.ImportFilter{})
	require.Error(t, err)

	var apiErr *channel.ExternalAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 503, apiErr.Status)
}
