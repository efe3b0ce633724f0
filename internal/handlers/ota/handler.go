package ota

import (
	"encoding/json"
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/ota/model"
	"staysync/internal/domains/ota/service"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OTA
	otel    otel.Otel
}

func New(service service.OTA, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ota/{partner}", func(routerGroup chi.Router) {
		routerGroup.Post("/bookings/{id}/push", handler.PushBooking)
		routerGroup.Post("/rates", handler.PushRates)
	})
}

// PushBooking pushes a booking sold through an OTA partner.
// @Summary Push an OTA booking
// @Description Validate the booking against the partner profile, push it and republish availability for the booked nights.
// @Tags OTA
// @Produce json
// @Param partner path string true "Partner (airbnb, agoda)"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[model.BookingResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/ota/{partner}/bookings/{id}/push [post]
// @Security ApiKeyAuth
func (handler *Handler) PushBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PushBooking")
	defer scope.End()

	partner := chi.URLParam(r, constant.RequestParamPartner)
	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.PushBooking(ctx, partner, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("partner", partner).Str("booking", id).Msg("failed to push ota booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PushRates publishes partner prices for a room.
// @Summary Push OTA rates
// @Tags OTA
// @Accept json
// @Produce json
// @Param partner path string true "Partner (airbnb, agoda)"
// @Param request body model.PushRatesRequest true "Rate range"
// @Success 200 {object} response.Data[model.RatesResult]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/ota/{partner}/rates [post]
// @Security ApiKeyAuth
func (handler *Handler) PushRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PushRates")
	defer scope.End()

	partner := chi.URLParam(r, constant.RequestParamPartner)

	req := model.PushRatesRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	res, err := handler.service.PushRates(ctx, partner, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("partner", partner).Str("room", req.RoomID).Msg("failed to push ota rates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
