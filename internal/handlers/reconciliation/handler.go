package reconciliation

import (
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/reconciliation/model/dto"
	"staysync/internal/domains/reconciliation/service"
	"staysync/shared/constant"
	"staysync/shared/validator"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reconciliation
	otel    otel.Otel
}

func New(service service.Reconciliation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reconciliation", func(routerGroup chi.Router) {
		routerGroup.Post("/import", handler.Import)
	})
}

// Import pulls bookings from the channel manager that the PMS does not know yet.
// @Summary Import external bookings
// @Description Page through the external booking collection and upsert unknown bookings. Item failures are counted, they never abort the run.
// @Tags Reconciliation
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest false "Import filter"
// @Success 200 {object} response.Data[model.ImportResult]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/reconciliation/import [post]
// @Security ApiKeyAuth
func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Import")
	defer scope.End()

	req := dto.ImportRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	filter, err := req.ToFilter()
	if err != nil {
		response.WithError(w, err)

		return
	}

	result, err := handler.service.ImportAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to import external bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}
