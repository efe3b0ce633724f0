package channel_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"staysync/config"
	"staysync/infras/channel"
	"staysync/infras/channel/mocks"
	otelMocks "staysync/infras/otel/mocks"
	"staysync/internal/domains/channel/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAPI(t *testing.T, handler http.HandlerFunc) channel.API {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Channel.BaseURL = server.URL
	cfg.Channel.APIKey = "key"

	return channel.New(cfg, otelMocks.NewOtel())
}

func TestNewSelectsSimulatedWithoutKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Channel.PropertyID = "prop-1"
	cfg.Channel.Currency = "USD"

	api := channel.New(cfg, otelMocks.NewOtel())

	_, ok := api.(*channel.Simulated)
	assert.True(t, ok)
}

func TestCreateBookingEnvelope(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), `{"booking":{"property_id":"prop-1"`)
		assert.Contains(t, string(body), `"amount":"120.00"`)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"ext-9","type":"booking","attributes":{"status":"new","arrival_date":"2024-05-01"}}}`))
	})

	created, err := api.CreateBooking(context.Background(), model.Booking{PropertyID: "prop-1", Amount: 12000})

	require.NoError(t, err)
	assert.Equal(t, "ext-9", created.ID)
	assert.Equal(t, "new", created.Status)
	assert.Equal(t, "2024-05-01", created.ArrivalDate)
}

func TestCreateBookingWithoutID(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"attributes":{}}}`))
	})

	_, err := api.CreateBooking(context.Background(), model.Booking{})

	var apiErr *channel.ExternalAPIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestListRoomTypes(t *testing.T) {
	api := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "prop-1", r.URL.Query().Get("filter[property_id]"))

		_, _ = w.Write([]byte(`{"data":[
			{"id":"rt-1","type":"room_type","attributes":{"title":"Deluxe","room_kind":"room"}},
			{"id":"rt-2","type":"room_type","attributes":{"title":"Dorm","room_kind":"dorm"}}
		]}`))
	})

	roomTypes, err := api.ListRoomTypes(context.Background(), "prop-1")

	require.NoError(t, err)
	require.Len(t, roomTypes, 2)
	assert.Equal(t, "rt-1", roomTypes[0].ID)
	assert.Equal(t, "Dorm", roomTypes[1].Title)
}

func TestListBookingsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		Request(gomock.Any(), http.MethodGet, "/bookings?filter%5Barrival_date%5D%5Bgte%5D=2024-01-01&filter%5Bproperty_id%5D=prop-1&pagination%5Blimit%5D=50&pagination%5Bpage%5D=2", nil, gomock.Any()).
		Return(nil)

	page, err := channel.NewAPI(client).ListBookings(context.Background(), model.BookingFilter{
		PropertyID:  "prop-1",
		ArrivalFrom: "2024-01-01",
		Page:        2,
		Limit:       50,
	})

	require.NoError(t, err)
	assert.Empty(t, page.Bookings)
}

func TestUpdateRatesSkipsEmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	api := channel.NewAPI(client)

	assert.NoError(t, api.UpdateRates(context.Background(), nil))
	assert.NoError(t, api.UpdateAvailability(context.Background(), []model.AvailabilityValue{}))
}
