package inventory

import (
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/inventory/model/dto"
	"staysync/internal/domains/inventory/service"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/shared/validator"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Post("/rooms/sync", handler.SyncRooms)
		routerGroup.Post("/rates", handler.PushRates)
		routerGroup.Post("/availability", handler.PushAvailability)
		routerGroup.Post("/currency/migrate", handler.MigrateCurrency)
		routerGroup.Post("/currency/rate-plans", handler.RecreateRatePlans)
	})
}

// SyncRooms publishes room types and rate plans of active rooms.
// @Summary Synchronize rooms
// @Description Ensure every active room has a room type and a rate plan on the channel manager. A failing room does not stop the others.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.SyncRoomsRequest false "Rooms to synchronize"
// @Success 200 {object} response.Data[model.SyncResult]
// @Failure 400 {object} response.Error
// @Router /v1/inventory/rooms/sync [post]
// @Security ApiKeyAuth
func (handler *Handler) SyncRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncRooms")
	defer scope.End()

	req := dto.SyncRoomsRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	rooms, err := handler.service.ActiveRooms(ctx, req.RoomIDs)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, handler.service.SyncRooms(ctx, rooms))
}

// PushRates overwrites the nightly rate of a room for a date range.
// @Summary Push rates
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.PushRatesRequest true "Rate range"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inventory/rates [post]
// @Security ApiKeyAuth
func (handler *Handler) PushRates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PushRates")
	defer scope.End()

	req := dto.PushRatesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	from, to, err := req.Range()
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	_, plan, err := handler.service.Resolve(ctx, req.RoomID)
	if err == nil {
		err = handler.service.PushRates(ctx, plan.ExternalRatePlanID, from, to, req.NightlyPrice)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to push rates")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rates pushed successfully")
}

// PushAvailability publishes availability of a room type for a set of dates.
// @Summary Push availability
// @Description Set a fixed count, or recompute it from local bookings when count is omitted.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.PushAvailabilityRequest true "Availability"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inventory/availability [post]
// @Security ApiKeyAuth
func (handler *Handler) PushAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PushAvailability")
	defer scope.End()

	req := dto.PushAvailabilityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	days, err := req.Days()
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	mapping, _, err := handler.service.Resolve(ctx, req.RoomID)
	if err == nil {
		if req.Count != nil {
			err = handler.service.PushAvailability(ctx, mapping.ExternalRoomTypeID, days, *req.Count)
		} else {
			err = handler.service.RecomputeAvailability(ctx, mapping.Category, days)
		}
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to push availability")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Availability pushed successfully")
}

// MigrateCurrency switches the property currency, the first phase of a currency change.
// @Summary Migrate property currency
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CurrencyRequest true "Target currency"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inventory/currency/migrate [post]
// @Security ApiKeyAuth
func (handler *Handler) MigrateCurrency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MigrateCurrency")
	defer scope.End()

	req := dto.CurrencyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.MigratePropertyCurrency(ctx, req.Currency); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("currency", req.Currency).Msg("failed to migrate property currency")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Property currency migrated, recreate rate plans next")
}

// RecreateRatePlans replaces rate plans created in another currency, the second phase of a
// currency change.
// @Summary Recreate stale rate plans
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CurrencyRequest true "Property currency"
// @Success 200 {object} response.Data[model.SyncResult]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/inventory/currency/rate-plans [post]
// @Security ApiKeyAuth
func (handler *Handler) RecreateRatePlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecreateRatePlans")
	defer scope.End()

	req := dto.CurrencyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	result, err := handler.service.RecreateRatePlans(ctx, req.Currency)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("currency", req.Currency).Msg("failed to recreate rate plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}
