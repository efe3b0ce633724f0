package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staysync/config"
	otelMocks "staysync/infras/otel/mocks"
	bookingMocks "staysync/internal/domains/booking/mocks"
	bookingDto "staysync/internal/domains/booking/model/dto"
	inventoryMocks "staysync/internal/domains/inventory/mocks"
	otaMocks "staysync/internal/domains/ota/mocks"
	reconciliationMocks "staysync/internal/domains/reconciliation/mocks"
	webhookMocks "staysync/internal/domains/webhook/mocks"
	webhookModel "staysync/internal/domains/webhook/model"
	"staysync/internal/handlers/booking"
	"staysync/internal/handlers/inventory"
	"staysync/internal/handlers/ota"
	"staysync/internal/handlers/reconciliation"
	"staysync/internal/handlers/webhook"
	"staysync/shared/constant"
	"staysync/transport/http/middleware"
	"staysync/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	booking *bookingMocks.MockBookingService
	webhook *webhookMocks.MockWebhook
	mux     *chi.Mux
}

func newFixture(t *testing.T, env, apiKey string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Server.Env = env
	cfg.App.APIKey = apiKey

	f := fixture{
		booking: bookingMocks.NewMockBookingService(ctrl),
		webhook: webhookMocks.NewMockWebhook(ctrl),
		mux:     chi.NewRouter(),
	}

	r := router.New(router.DomainHandlers{
		Booking:        booking.New(f.booking, otel),
		Inventory:      inventory.New(inventoryMocks.NewMockInventory(ctrl), otel),
		Reconciliation: reconciliation.New(reconciliationMocks.NewMockReconciliation(ctrl), otel),
		Webhook:        webhook.New(f.webhook, otel),
		OTA:            ota.New(otaMocks.NewMockOTA(ctrl), otel),
	}, middleware.NewAppMiddleware(otel, cfg, nil))

	r.SetupRoutes(f.mux)

	return f
}

func (f fixture) serve(req *http.Request) int {
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	return rec.Code
}

func TestOperatorRoutesRequireAPIKey(t *testing.T) {
	f := newFixture(t, constant.ServerEnvProduction, "operator-key")

	assert.Equal(t, http.StatusUnauthorized, f.serve(httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1", nil)))

	wrong := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1", nil)
	wrong.Header.Set(constant.RequestHeaderAPIKey, "guess")
	assert.Equal(t, http.StatusUnauthorized, f.serve(wrong))

	f.booking.EXPECT().Get(gomock.Any(), "bk-1").Return(bookingDto.BookingResponse{ID: "bk-1"}, nil)

	valid := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1", nil)
	valid.Header.Set(constant.RequestHeaderAPIKey, "operator-key")
	assert.Equal(t, http.StatusOK, f.serve(valid))
}

func TestWebhookIsPublic(t *testing.T) {
	f := newFixture(t, constant.ServerEnvProduction, "operator-key")

	f.webhook.EXPECT().Receive(gomock.Any(), gomock.Any(), gomock.Any()).Return(webhookModel.Receipt{Status: webhookModel.StatusProcessed}, nil)

	assert.Equal(t, http.StatusOK, f.serve(httptest.NewRequest(http.MethodPost, "/v1/webhooks/channel", strings.NewReader(`{}`))))
	assert.Equal(t, http.StatusUnauthorized, f.serve(httptest.NewRequest(http.MethodPost, "/v1/webhooks/events/row-1/reprocess", nil)))
}

func TestMissingKeyOnlyOpenOutsideProduction(t *testing.T) {
	dev := newFixture(t, constant.ServerEnvDevelopment, "")

	dev.booking.EXPECT().Get(gomock.Any(), "bk-1").Return(bookingDto.BookingResponse{ID: "bk-1"}, nil)
	assert.Equal(t, http.StatusOK, dev.serve(httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1", nil)))

	prod := newFixture(t, constant.ServerEnvProduction, "")
	assert.Equal(t, http.StatusUnauthorized, prod.serve(httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1", nil)))
}
