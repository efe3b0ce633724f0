package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"staysync/config"
	"staysync/infras/channel"
	channelMocks "staysync/infras/channel/mocks"
	otelMocks "staysync/infras/otel/mocks"
	bookingMocks "staysync/internal/domains/booking/mocks"
	channelModel "staysync/internal/domains/channel/model"
	"staysync/internal/domains/inventory/mocks"
	"staysync/internal/domains/inventory/model"
	"staysync/internal/domains/inventory/service"
	roomMocks "staysync/internal/domains/room/mocks"
	roomModel "staysync/internal/domains/room/model"
	cacheMocks "staysync/shared/cache/mocks"
	"staysync/shared/dto"
	"staysync/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const propertyID = "prop-1"

type fixture struct {
	mappingRepo *mocks.MockRoomMapping
	planRepo    *mocks.MockRatePlan
	roomRepo    *roomMocks.MockRoom
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
	cfg         *config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Channel.System = "channex"
	cfg.Channel.PropertyID = propertyID
	cfg.Sync.RateHorizonDays = 30

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return fixture{
		mappingRepo: mocks.NewMockRoomMapping(ctrl),
		planRepo:    mocks.NewMockRatePlan(ctrl),
		roomRepo:    roomMocks.NewMockRoom(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		cache:       redis,
		cfg:         cfg,
	}
}

func (f fixture) service(api channel.API) service.Inventory {
	return service.New(api, f.mappingRepo, f.planRepo, f.roomRepo, f.bookingRepo, f.cfg, f.cache, otelMocks.NewOtel())
}

// whereArg returns the value a filter binds for name.
func whereArg(filter dto.FilterGroup, name string) any {
	_, args := filter.GetWhereClause()

	return args[name]
}

func day(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func seedPlan(t *testing.T, sim *channel.Simulated, title string) (channelModel.RoomType, channelModel.RatePlan) {
	t.Helper()

	roomType, err := sim.CreateRoomType(context.Background(), channelModel.RoomType{PropertyID: propertyID, Title: title})
	require.NoError(t, err)

	plan, err := sim.CreateRatePlan(context.Background(), channelModel.RatePlan{PropertyID: propertyID, RoomTypeID: roomType.ID, Title: title})
	require.NoError(t, err)

	return roomType, plan
}

func TestCurrencyMigration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := channel.NewSimulated(propertyID, "USD")
	svc := f.service(sim)

	deluxe, deluxePlan := seedPlan(t, sim, "Deluxe")
	suite, suitePlan := seedPlan(t, sim, "Suite")

	refs := []model.RatePlan{
		{ID: "ref-1", System: "channex", ExternalRoomTypeID: deluxe.ID, ExternalRatePlanID: deluxePlan.ID, Currency: "USD", NightlyRate: 15000},
		{ID: "ref-2", System: "channex", ExternalRoomTypeID: suite.ID, ExternalRatePlanID: suitePlan.ID, Currency: "USD", NightlyRate: 30000},
	}

	t.Run("recreate is refused before the property is migrated", func(t *testing.T) {
		_, err := svc.RecreateRatePlans(ctx, "EUR")

		var validationErr *failure.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	require.NoError(t, svc.MigratePropertyCurrency(ctx, "EUR"))

	f.planRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(refs, nil)
	f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter dto.FilterGroup, _ ...string) (model.RoomMapping, error) {
			roomTypeID, _ := whereArg(filter, model.FieldExternalRoomTypeID).(string)

			return model.RoomMapping{ID: "map-" + roomTypeID, ExternalRoomTypeID: roomTypeID, Title: "Room", Occupancy: 2}, nil
		}).
		Times(2)

	updated := map[string]string{}
	f.planRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, filter dto.FilterGroup) error {
			assert.Equal(t, "EUR", req[model.FieldCurrency])

			refID, _ := whereArg(filter, model.FieldID).(string)
			updated[refID], _ = req[model.FieldExternalRatePlanID].(string)

			return nil
		}).
		Times(2)

	result, err := svc.RecreateRatePlans(ctx, "EUR")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Synced)
	assert.Equal(t, 0, result.Failed)

	plans, err := sim.ListRatePlans(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	for _, plan := range plans {
		assert.Equal(t, "EUR", plan.Currency)
		assert.NotEqual(t, deluxePlan.ID, plan.ID)
		assert.NotEqual(t, suitePlan.ID, plan.ID)
		assert.Contains(t, []string{updated["ref-1"], updated["ref-2"]}, plan.ID)
	}

	rate, ok := sim.Rate(updated["ref-2"], time.Now().UTC().Format(time.DateOnly))
	assert.True(t, ok)
	assert.Equal(t, channelModel.Money(30000), rate)

	t.Run("rerun skips migrated plans", func(t *testing.T) {
		migrated := []model.RatePlan{
			{ID: "ref-1", ExternalRoomTypeID: deluxe.ID, ExternalRatePlanID: updated["ref-1"], Currency: "EUR"},
			{ID: "ref-2", ExternalRoomTypeID: suite.ID, ExternalRatePlanID: updated["ref-2"], Currency: "EUR"},
		}
		f.planRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(migrated, nil)

		result, err := svc.RecreateRatePlans(ctx, "EUR")

		require.NoError(t, err)
		assert.Equal(t, model.SyncResult{Errors: []string{}}, result)

		plans, err := sim.ListRatePlans(ctx, propertyID)
		require.NoError(t, err)
		assert.Len(t, plans, 2)
	})
}

func TestMigratePropertyCurrencyValidates(t *testing.T) {
	f := newFixture(t)
	api := channelMocks.NewMockAPI(gomock.NewController(t))

	err := f.service(api).MigratePropertyCurrency(context.Background(), "euro")

	assert.Equal(t, 400, failure.GetCode(err))
}

func TestEnsureRoomType(t *testing.T) {
	ctx := context.Background()

	t.Run("existing mapping needs no external call", func(t *testing.T) {
		f := newFixture(t)
		api := channelMocks.NewMockAPI(gomock.NewController(t))

		f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{ID: "map-1", ExternalRoomTypeID: "rt-9"}, nil)

		id, err := f.service(api).EnsureRoomType(ctx, roomModel.Room{ID: "room-1", Number: "101", Category: "standard"})

		require.NoError(t, err)
		assert.Equal(t, "rt-9", id)
	})

	t.Run("reuses external room type with the same title", func(t *testing.T) {
		f := newFixture(t)
		sim := channel.NewSimulated(propertyID, "USD")

		existing, err := sim.CreateRoomType(ctx, channelModel.RoomType{PropertyID: propertyID, Title: "Deluxe"})
		require.NoError(t, err)

		rooms := []roomModel.Room{
			{ID: "room-1", Number: "201", Category: "deluxe", Capacity: 2},
			{ID: "room-2", Number: "202", Category: "deluxe", Capacity: 3},
		}

		f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{}, nil).Times(2)
		f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
		f.mappingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mapping model.RoomMapping) error {
				assert.False(t, mapping.RoomID.Valid)
				assert.Equal(t, "deluxe", mapping.Category)
				assert.Equal(t, existing.ID, mapping.ExternalRoomTypeID)
				assert.Equal(t, 3, mapping.Occupancy)

				return nil
			})

		id, err := f.service(sim).EnsureRoomType(ctx, rooms[0])

		require.NoError(t, err)
		assert.Equal(t, existing.ID, id)

		roomTypes, err := sim.ListRoomTypes(ctx, propertyID)
		require.NoError(t, err)
		assert.Len(t, roomTypes, 1)
	})

	t.Run("creates room type for an unmapped category", func(t *testing.T) {
		f := newFixture(t)
		sim := channel.NewSimulated(propertyID, "USD")

		f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{}, nil).Times(2)
		f.mappingRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		id, err := f.service(sim).EnsureRoomType(ctx, roomModel.Room{ID: "room-9", Number: "901", Capacity: 6})

		require.NoError(t, err)

		roomTypes, err := sim.ListRoomTypes(ctx, propertyID)
		require.NoError(t, err)
		require.Len(t, roomTypes, 1)
		assert.Equal(t, id, roomTypes[0].ID)
		assert.Equal(t, "Dorm", roomTypes[0].Title)
		assert.Equal(t, channelModel.RoomKindDorm, roomTypes[0].RoomKind)
	})
}

func TestEnsureRatePlanRecreatesStaleReference(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := channel.NewSimulated(propertyID, "USD")

	roomType, oldPlan := seedPlan(t, sim, "Suite")

	_, err := sim.UpdatePropertyCurrency(ctx, propertyID, "EUR")
	require.NoError(t, err)

	f.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RatePlan{
		ID:                 "ref-1",
		ExternalRoomTypeID: roomType.ID,
		ExternalRatePlanID: oldPlan.ID,
		Currency:           "USD",
		NightlyRate:        20000,
	}, nil)
	f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{Title: "Suite", Occupancy: 2}, nil)
	f.planRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	id, err := f.service(sim).EnsureRatePlan(ctx, roomType.ID, 20000)

	require.NoError(t, err)
	assert.NotEqual(t, oldPlan.ID, id)

	plans, err := sim.ListRatePlans(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, id, plans[0].ID)
	assert.Equal(t, "EUR", plans[0].Currency)
}

func TestEnsureRatePlanReusesExternalPlan(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := channel.NewSimulated(propertyID, "USD")

	roomType, plan := seedPlan(t, sim, "Deluxe")

	f.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RatePlan{}, nil)
	f.planRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ref model.RatePlan) error {
			assert.Equal(t, plan.ID, ref.ExternalRatePlanID)
			assert.Equal(t, "USD", ref.Currency)
			assert.Equal(t, model.PricingModePerRoom, ref.PricingMode)

			return nil
		})

	id, err := f.service(sim).EnsureRatePlan(ctx, roomType.ID, 12000)

	require.NoError(t, err)
	assert.Equal(t, plan.ID, id)
}

func TestSyncRoomsIsolatesFailures(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := channel.NewSimulated(propertyID, "USD")

	roomType, plan := seedPlan(t, sim, "Standard")

	f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter dto.FilterGroup, _ ...string) (model.RoomMapping, error) {
			if whereArg(filter, model.FieldRoomID) == "room-broken" {
				return model.RoomMapping{}, errors.New("connection reset")
			}

			return model.RoomMapping{ID: "map-1", ExternalRoomTypeID: roomType.ID}, nil
		}).
		Times(2)
	f.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RatePlan{
		ID:                 "ref-1",
		ExternalRoomTypeID: roomType.ID,
		ExternalRatePlanID: plan.ID,
		Currency:           "USD",
		NightlyRate:        9900,
	}, nil)

	result := f.service(sim).SyncRooms(ctx, []roomModel.Room{
		{ID: "room-broken", Number: "101", Category: "standard"},
		{ID: "room-ok", Number: "102", Category: "standard", BasePrice: 9900},
	})

	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "room 101")

	rate, ok := sim.Rate(plan.ID, time.Now().UTC().AddDate(0, 0, 29).Format(time.DateOnly))
	assert.True(t, ok)
	assert.Equal(t, channelModel.Money(9900), rate)
}

func TestPushAvailabilityCoalesces(t *testing.T) {
	f := newFixture(t)
	api := channelMocks.NewMockAPI(gomock.NewController(t))

	api.EXPECT().UpdateAvailability(gomock.Any(), []channelModel.AvailabilityValue{
		{PropertyID: propertyID, RoomTypeID: "rt-1", DateFrom: "2024-01-01", DateTo: "2024-01-02", Availability: 3},
		{PropertyID: propertyID, RoomTypeID: "rt-1", DateFrom: "2024-01-04", DateTo: "2024-01-04", Availability: 3},
	}).Return(nil)

	err := f.service(api).PushAvailability(context.Background(), "rt-1", []time.Time{day("2024-01-04"), day("2024-01-02"), day("2024-01-01")}, 3)

	require.NoError(t, err)
}

func TestPushValidation(t *testing.T) {
	f := newFixture(t)
	api := channelMocks.NewMockAPI(gomock.NewController(t))
	svc := f.service(api)

	var validationErr *failure.ValidationError

	err := svc.PushRates(context.Background(), "rp-1", day("2024-01-05"), day("2024-01-01"), 100)
	assert.ErrorAs(t, err, &validationErr)

	err = svc.PushAvailability(context.Background(), "rt-1", []time.Time{day("2024-01-01")}, -1)
	assert.ErrorAs(t, err, &validationErr)

	assert.NoError(t, svc.PushAvailability(context.Background(), "rt-1", nil, 2))
}

func TestPushRatesExternalFailure(t *testing.T) {
	f := newFixture(t)
	api := channelMocks.NewMockAPI(gomock.NewController(t))

	api.EXPECT().UpdateRates(gomock.Any(), gomock.Any()).Return(&channel.ExternalAPIError{Status: 500, Detail: "boom"})

	err := f.service(api).PushRates(context.Background(), "rp-1", day("2024-01-01"), day("2024-01-01"), 100)

	var apiErr *channel.ExternalAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, failure.GetCode(err))
}

func TestRecomputeAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := channel.NewSimulated(propertyID, "USD")

	rooms := []roomModel.Room{{ID: "room-1", Category: "deluxe"}, {ID: "room-2", Category: "deluxe"}}
	booked := map[string]int{"2024-06-01": 1, "2024-06-02": 2, "2024-06-03": 3}

	f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
	f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{ID: "map-1", ExternalRoomTypeID: "rt-deluxe"}, nil)
	f.bookingRepo.EXPECT().CountActiveOnDate(gomock.Any(), "deluxe", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, day time.Time) (int, error) {
			return booked[day.Format(time.DateOnly)], nil
		}).
		Times(4)

	err := f.service(sim).RecomputeAvailability(ctx, "deluxe", []time.Time{day("2024-06-01"), day("2024-06-02"), day("2024-06-03"), day("2024-06-04")})

	require.NoError(t, err)

	for date, want := range map[string]int{"2024-06-01": 1, "2024-06-02": 0, "2024-06-03": 0, "2024-06-04": 2} {
		got, ok := sim.Availability("rt-deluxe", date)
		assert.True(t, ok, date)
		assert.Equal(t, want, got, date)
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, _, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).Resolve(ctx, "room-x")

		var mappingErr *failure.MappingError
		assert.ErrorAs(t, err, &mappingErr)
	})

	t.Run("unmapped room", func(t *testing.T) {
		f := newFixture(t)
		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Number: "101", Category: "standard"}, nil)
		f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{}, nil).Times(2)

		_, _, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).Resolve(ctx, "room-1")

		var mappingErr *failure.MappingError
		require.ErrorAs(t, err, &mappingErr)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("mapped room", func(t *testing.T) {
		f := newFixture(t)
		sim := channel.NewSimulated(propertyID, "USD")

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Number: "101", Category: "standard"}, nil)
		f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{ID: "map-1", ExternalRoomTypeID: "rt-1"}, nil)
		f.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RatePlan{ID: "ref-1", ExternalRoomTypeID: "rt-1", ExternalRatePlanID: "rp-1", Currency: "USD"}, nil)

		mapping, plan, err := f.service(sim).Resolve(ctx, "room-1")

		require.NoError(t, err)
		assert.Equal(t, "rt-1", mapping.ExternalRoomTypeID)
		assert.Equal(t, "rp-1", plan.ExternalRatePlanID)
	})
}

func TestResolveRepricesRatePlan(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	sim := channel.NewSimulated(propertyID, "USD")

	f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1", Number: "101", Category: "standard", BasePrice: 15000}, nil)
	f.mappingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomMapping{ID: "map-1", ExternalRoomTypeID: "rt-1"}, nil)
	f.planRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RatePlan{
		ID:                 "ref-1",
		ExternalRoomTypeID: "rt-1",
		ExternalRatePlanID: "rp-1",
		Currency:           "USD",
		NightlyRate:        10000,
	}, nil)
	f.planRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, filter dto.FilterGroup) error {
			assert.Equal(t, int64(15000), req[model.FieldNightlyRate])
			assert.Equal(t, "ref-1", whereArg(filter, model.FieldID))

			return nil
		})

	_, plan, err := f.service(sim).Resolve(ctx, "room-1")

	require.NoError(t, err)
	assert.Equal(t, "rp-1", plan.ExternalRatePlanID)
	assert.Equal(t, int64(15000), plan.NightlyRate)
}

func TestRoomFor(t *testing.T) {
	ctx := context.Background()

	t.Run("room level mapping wins", func(t *testing.T) {
		f := newFixture(t)
		f.mappingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomMapping{
			{Category: "suite", ExternalRoomTypeID: "rt-1"},
			{RoomID: sql.NullString{String: "room-7", Valid: true}, ExternalRoomTypeID: "rt-1"},
		}, nil)

		id, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).RoomFor(ctx, "rt-1", "")

		require.NoError(t, err)
		assert.Equal(t, "room-7", id)
	})

	t.Run("category mapping picks the first active room", func(t *testing.T) {
		f := newFixture(t)
		f.mappingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomMapping{{Category: "suite", ExternalRoomTypeID: "rt-1"}}, nil)
		f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{{ID: "room-301"}, {ID: "room-302"}}, nil)

		id, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).RoomFor(ctx, "rt-1", "")

		require.NoError(t, err)
		assert.Equal(t, "room-301", id)
	})

	t.Run("category mapping keeps the room a booking already holds", func(t *testing.T) {
		f := newFixture(t)
		f.mappingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomMapping{{Category: "standard", ExternalRoomTypeID: "rt-1"}}, nil)
		f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{{ID: "room-101"}, {ID: "room-102"}, {ID: "room-103"}}, nil)

		id, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).RoomFor(ctx, "rt-1", "room-103")

		require.NoError(t, err)
		assert.Equal(t, "room-103", id)
	})

	t.Run("room outside the room type is reassigned", func(t *testing.T) {
		f := newFixture(t)
		f.mappingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomMapping{{Category: "suite", ExternalRoomTypeID: "rt-2"}}, nil)
		f.roomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]roomModel.Room{{ID: "room-301"}, {ID: "room-302"}}, nil)

		id, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).RoomFor(ctx, "rt-2", "room-103")

		require.NoError(t, err)
		assert.Equal(t, "room-301", id)
	})

	t.Run("unknown room type", func(t *testing.T) {
		f := newFixture(t)
		f.mappingRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.RoomMapping{}, nil)

		_, err := f.service(channelMocks.NewMockAPI(gomock.NewController(t))).RoomFor(ctx, "rt-404", "")

		var mappingErr *failure.MappingError
		assert.ErrorAs(t, err, &mappingErr)
	})
}
