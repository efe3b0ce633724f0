package channel_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"staysync/infras/channel"
	"staysync/internal/domains/channel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedRatePlanCurrency(t *testing.T) {
	ctx := context.Background()
	sim := channel.NewSimulated("prop-1", "EUR")

	roomType, err := sim.CreateRoomType(ctx, model.RoomType{PropertyID: "prop-1", Title: "Deluxe"})
	require.NoError(t, err)

	plan, err := sim.CreateRatePlan(ctx, model.RatePlan{PropertyID: "prop-1", RoomTypeID: roomType.ID, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "EUR", plan.Currency)

	_, err = sim.UpdatePropertyCurrency(ctx, "prop-1", "GBP")
	require.NoError(t, err)

	plans, err := sim.ListRatePlans(ctx, "prop-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "EUR", plans[0].Currency)

	require.NoError(t, sim.DeleteRatePlan(ctx, plan.ID))

	err = sim.DeleteRatePlan(ctx, plan.ID)

	var apiErr *channel.ExternalAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	_, err = sim.CreateRatePlan(ctx, model.RatePlan{PropertyID: "prop-1", RoomTypeID: "missing"})
	assert.Error(t, err)
}

func TestSimulatedRangesOverwrite(t *testing.T) {
	ctx := context.Background()
	sim := channel.NewSimulated("prop-1", "EUR")

	values := []model.RateValue{{RatePlanID: "rp-1", DateFrom: "2024-01-01", DateTo: "2024-01-03", Rate: 10000}}

	require.NoError(t, sim.UpdateRates(ctx, values))
	require.NoError(t, sim.UpdateRates(ctx, values))

	rate, ok := sim.Rate("rp-1", "2024-01-03")
	assert.True(t, ok)
	assert.Equal(t, model.Money(10000), rate)

	_, ok = sim.Rate("rp-1", "2024-01-04")
	assert.False(t, ok)

	require.NoError(t, sim.UpdateAvailability(ctx, []model.AvailabilityValue{{RoomTypeID: "rt-1", DateFrom: "2024-01-02", DateTo: "2024-01-02", Availability: 3}}))

	count, ok := sim.Availability("rt-1", "2024-01-02")
	assert.True(t, ok)
	assert.Equal(t, 3, count)

	assert.Error(t, sim.UpdateRates(ctx, []model.RateValue{{RatePlanID: "rp-1", DateFrom: "2024-01-05", DateTo: "2024-01-01"}}))
}

func TestSimulatedBookings(t *testing.T) {
	ctx := context.Background()
	sim := channel.NewSimulated("prop-1", "EUR")

	for _, arrival := range []string{"2024-02-01", "2024-02-05", "2024-03-01"} {
		_, err := sim.CreateBooking(ctx, model.Booking{PropertyID: "prop-1", ArrivalDate: arrival, Status: model.StatusNew})
		require.NoError(t, err)
	}

	page, err := sim.ListBookings(ctx, model.BookingFilter{ArrivalTo: "2024-02-28", Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page.Bookings, 1)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.HasNext())

	cancelled, err := sim.CancelBooking(ctx, page.Bookings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelled, cancelled.Status)

	_, err = sim.UpdateBooking(ctx, "unknown", model.Booking{})
	assert.Error(t, err)
	assert.Equal(t, 3, sim.BookingCount())
}
