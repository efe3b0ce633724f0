package webhook

import (
	"io"
	"net/http"

	"staysync/infras/otel"
	"staysync/internal/domains/webhook/model"
	"staysync/internal/domains/webhook/service"
	"staysync/shared/constant"
	"staysync/shared/failure"
	"staysync/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Webhook
	otel    otel.Otel
}

func New(service service.Webhook, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the public notification endpoint.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/webhooks/channel", handler.Receive)
}

// OperatorRouter mounts the routes that sit behind the API key.
func (handler *Handler) OperatorRouter(router chi.Router) {
	router.Post("/webhooks/events/{id}/reprocess", handler.Reprocess)
}

func statusOf(receipt model.Receipt) int {
	if receipt.Status == model.StatusFailed {
		return http.StatusAccepted
	}

	return http.StatusOK
}

// Receive ingests a channel manager notification.
// @Summary Receive a channel notification
// @Description Record, deduplicate and apply a booking notification. A notification that fails to apply is kept for reprocessing and answered with 202.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param X-Signature header string false "Hex HMAC-SHA256 of the body"
// @Success 200 {object} response.Data[model.Receipt]
// @Success 202 {object} response.Data[model.Receipt]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/webhooks/channel [post]
func (handler *Handler) Receive(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Receive")
	defer scope.End()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constant.RequestMaxBodySize))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	receipt, err := handler.service.Receive(ctx, body, r.Header.Get(constant.RequestHeaderSignature))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("webhook rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, statusOf(receipt), receipt)
}

// Reprocess replays a stored notification.
// @Summary Reprocess a webhook event
// @Tags Webhook
// @Produce json
// @Param id path string true "Webhook event ID"
// @Success 200 {object} response.Data[model.Receipt]
// @Success 202 {object} response.Data[model.Receipt]
// @Failure 404 {object} response.Error
// @Router /v1/webhooks/events/{id}/reprocess [post]
// @Security ApiKeyAuth
func (handler *Handler) Reprocess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reprocess")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	receipt, err := handler.service.Reprocess(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", id).Msg("failed to reprocess webhook event")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, statusOf(receipt), receipt)
}
