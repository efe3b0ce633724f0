package booking_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "staysync/infras/otel/mocks"
	"staysync/internal/domains/booking/mocks"
	"staysync/internal/domains/booking/model"
	"staysync/internal/domains/booking/model/dto"
	"staysync/internal/handlers/booking"
	"staysync/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockBookingService, chi.Router) {
	t.Helper()

	svc := mocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router chi.Router, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestSyncBooking(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Push(gomock.Any(), "bk-1").Return(model.Booking{ID: "bk-1", SyncStatus: model.SyncStatusSynced}, nil)

		rec := serve(router, http.MethodPost, "/bookings/bk-1/sync")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bk-1"`)
	})

	t.Run("conflict", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Push(gomock.Any(), "bk-1").Return(model.Booking{}, failure.NewConflictError("ext-1", "bk-0"))

		assert.Equal(t, http.StatusConflict, serve(router, http.MethodPost, "/bookings/bk-1/sync").Code)
	})

	t.Run("unmapped room", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Push(gomock.Any(), "bk-1").Return(model.Booking{}, failure.NewMappingError("room", "room-9"))

		assert.Equal(t, http.StatusUnprocessableEntity, serve(router, http.MethodPost, "/bookings/bk-1/sync").Code)
	})
}

func TestCancelBookingWithoutExternalID(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Cancel(gomock.Any(), "bk-1").Return(model.Booking{}, failure.NewValidationError("external_id", "booking was never synchronized"))

	assert.Equal(t, http.StatusBadRequest, serve(router, http.MethodPost, "/bookings/bk-1/cancel").Code)
}

func TestGetBookingByID(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.BookingResponse{}, failure.NotFound(model.EntityName))

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/bookings/missing").Code)
}
