package router

import (
	"staysync/internal/handlers/booking"
	"staysync/internal/handlers/inventory"
	"staysync/internal/handlers/ota"
	"staysync/internal/handlers/reconciliation"
	"staysync/internal/handlers/webhook"
	"staysync/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking        booking.Handler
	Inventory      inventory.Handler
	Reconciliation reconciliation.Handler
	Webhook        webhook.Handler
	OTA            ota.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		// the channel manager authenticates with the payload signature
		r.DomainHandlers.Webhook.Router(routerGroup)

		routerGroup.Group(func(operator chi.Router) {
			operator.Use(r.Middleware.APIKey)

			r.DomainHandlers.Booking.Router(operator)
			r.DomainHandlers.Inventory.Router(operator)
			r.DomainHandlers.Reconciliation.Router(operator)
			r.DomainHandlers.OTA.Router(operator)
			r.DomainHandlers.Webhook.OperatorRouter(operator)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
