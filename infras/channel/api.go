package channel

//go:generate go run go.uber.org/mock/mockgen -source=./api.go -destination=./mocks/api_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/internal/domains/channel/model"

	"github.com/rs/zerolog/log"
)

// API is the typed resource surface of the channel manager.
type API interface {
	GetProperty(ctx context.Context, propertyID string) (model.Property, error)
	UpdatePropertyCurrency(ctx context.Context, propertyID, currency string) (model.Property, error)
	ListRoomTypes(ctx context.Context, propertyID string) ([]model.RoomType, error)
	CreateRoomType(ctx context.Context, roomType model.RoomType) (model.RoomType, error)
	ListRatePlans(ctx context.Context, propertyID string) ([]model.RatePlan, error)
	CreateRatePlan(ctx context.Context, ratePlan model.RatePlan) (model.RatePlan, error)
	DeleteRatePlan(ctx context.Context, ratePlanID string) error
	UpdateRates(ctx context.Context, values []model.RateValue) error
	UpdateAvailability(ctx context.Context, values []model.AvailabilityValue) error
	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, booking model.Booking) (model.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (model.Booking, error)
	ListBookings(ctx context.Context, filter model.BookingFilter) (model.BookingPage, error)
	CancelBooking(ctx context.Context, bookingID string) (model.Booking, error)
}

type identifiable[T any] interface {
	*T
	SetID(id string)
}

type resource[T any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

type single[T any] struct {
	Data resource[T] `json:"data"`
}

type collection[T any] struct {
	Data []resource[T] `json:"data"`
	Meta struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
	} `json:"meta"`
}

func unwrap[T any, P identifiable[T]](res resource[T]) T {
	value := res.Attributes
	P(&value).SetID(res.ID)

	return value
}

func unwrapAll[T any, P identifiable[T]](resources []resource[T]) []T {
	values := make([]T, 0, len(resources))

	for _, res := range resources {
		values = append(values, unwrap[T, P](res))
	}

	return values
}

type apiImpl struct {
	client Client
}

// New returns the HTTP implementation, or the in-memory one when no API key is configured.
func New(cfg *config.Config, otl otel.Otel) API {
	if cfg.Simulated() {
		log.Warn().Str("property", cfg.Channel.PropertyID).Msg("No channel API key configured, running in simulated mode")

		return NewSimulated(cfg.Channel.PropertyID, cfg.Channel.Currency)
	}

	return NewAPI(NewClient(cfg, nil, otl))
}

func NewAPI(client Client) API {
	return &apiImpl{client: client}
}

func (a *apiImpl) GetProperty(ctx context.Context, propertyID string) (model.Property, error) {
	out := single[model.Property]{}

	if err := a.client.Request(ctx, http.MethodGet, "/properties/"+url.PathEscape(propertyID), nil, &out); err != nil {
		return model.Property{}, err //nolint:wrapcheck
	}

	return unwrap(out.Data), nil
}

func (a *apiImpl) UpdatePropertyCurrency(ctx context.Context, propertyID, currency string) (model.Property, error) {
	out := single[model.Property]{}
	body := map[string]any{"property": map[string]string{"currency": currency}}

	if err := a.client.Request(ctx, http.MethodPut, "/properties/"+url.PathEscape(propertyID), body, &out); err != nil {
		return model.Property{}, err //nolint:wrapcheck
	}

	return unwrap(out.Data), nil
}

func (a *apiImpl) ListRoomTypes(ctx context.Context, propertyID string) ([]model.RoomType, error) {
	out := collection[model.RoomType]{}
	query := url.Values{"filter[property_id]": {propertyID}}

	if err := a.client.Request(ctx, http.MethodGet, "/room_types?"+query.Encode(), nil, &out); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return unwrapAll(out.Data), nil
}

func (a *apiImpl) CreateRoomType(ctx context.Context, roomType model.RoomType) (model.RoomType, error) {
	out := single[model.RoomType]{}

	if err := a.client.Request(ctx, http.MethodPost, "/room_types", map[string]any{"room_type": roomType}, &out); err != nil {
		return model.RoomType{}, err //nolint:wrapcheck
	}

	return unwrap(out.Data), nil
}

func (a *apiImpl) ListRatePlans(ctx context.Context, propertyID string) ([]model.RatePlan, error) {
	out := collection[model.RatePlan]{}
	query := url.Values{"filter[property_id]": {propertyID}}

	if err := a.client.Request(ctx, http.MethodGet, "/rate_plans?"+query.Encode(), nil, &out); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return unwrapAll(out.Data), nil
}

func (a *apiImpl) CreateRatePlan(ctx context.Context, ratePlan model.RatePlan) (model.RatePlan, error) {
	out := single[model.RatePlan]{}

	if err := a.client.Request(ctx, http.MethodPost, "/rate_plans", map[string]any{"rate_plan": ratePlan}, &out); err != nil {
		return model.RatePlan{}, err //nolint:wrapcheck
	}

	return unwrap(out.Data), nil
}

func (a *apiImpl) DeleteRatePlan(ctx context.Context, ratePlanID string) error {
	return a.client.Request(ctx, http.MethodDelete, "/rate_plans/"+url.PathEscape(ratePlanID), nil, nil) //nolint:wrapcheck
}

func (a *apiImpl) UpdateRates(ctx context.Context, values []model.RateValue) error {
	if len(values) == 0 {
		return nil
	}

	return a.client.Request(ctx, http.MethodPost, "/restrictions", map[string]any{"values": values}, nil) //nolint:wrapcheck
}

func (a *apiImpl) UpdateAvailability(ctx context.Context, values []model.AvailabilityValue) error {
	if len(values) == 0 {
		return nil
	}

	return a.client.Request(ctx, http.MethodPost, "/availability", map[string]any{"values": values}, nil) //nolint:wrapcheck
}

func (a *apiImpl) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	out := single[model.Booking]{}

	if err := a.client.Request(ctx, http.MethodPost, "/bookings", map[string]any{"booking": booking}, &out); err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	created := unwrap(out.Data)
	if created.ID == "" {
		return model.Booking{}, &ExternalAPIError{Status: http.StatusOK, Detail: "created booking carries no id"}
	}

	return created, nil
}

func (a *apiImpl) UpdateBooking(ctx context.Context, bookingID string, booking model.Booking) (model.Booking, error) {
	out := single[model.Booking]{}

	if err := a.client.Request(ctx, http.MethodPut, "/bookings/"+url.PathEscape(bookingID), map[string]any{"booking": booking}, &out); err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	updated := unwrap(out.Data)
	if updated.ID == "" {
		updated.ID = bookingID
	}

	return updated, nil
}

func (a *apiImpl) GetBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	out := single[model.Booking]{}

	if err := a.client.Request(ctx, http.MethodGet, "/bookings/"+url.PathEscape(bookingID), nil, &out); err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return unwrap(out.Data), nil
}

func (a *apiImpl) ListBookings(ctx context.Context, filter model.BookingFilter) (model.BookingPage, error) {
	out := collection[model.Booking]{}

	if err := a.client.Request(ctx, http.MethodGet, "/bookings?"+bookingQuery(filter).Encode(), nil, &out); err != nil {
		return model.BookingPage{}, err //nolint:wrapcheck
	}

	return model.BookingPage{
		Bookings: unwrapAll(out.Data),
		Page:     out.Meta.Page,
		Limit:    out.Meta.Limit,
		Total:    out.Meta.Total,
	}, nil
}

func (a *apiImpl) CancelBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	out := single[model.Booking]{}

	if err := a.client.Request(ctx, http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", url.PathEscape(bookingID)), nil, &out); err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	cancelled := unwrap(out.Data)
	if cancelled.ID == "" {
		cancelled.ID = bookingID
	}

	return cancelled, nil
}

func bookingQuery(filter model.BookingFilter) url.Values {
	query := url.Values{}

	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}

	set("filter[property_id]", filter.PropertyID)
	set("filter[arrival_date][gte]", filter.ArrivalFrom)
	set("filter[arrival_date][lte]", filter.ArrivalTo)
	set("filter[updated_at][gte]", filter.UpdatedSince)

	if filter.Page > 0 {
		query.Set("pagination[page]", strconv.Itoa(filter.Page))
	}

	if filter.Limit > 0 {
		query.Set("pagination[limit]", strconv.Itoa(filter.Limit))
	}

	return query
}
