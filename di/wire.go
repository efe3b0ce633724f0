//go:build wireinject
// +build wireinject

package di

import (
	"staysync/config"
	"staysync/infras/channel"
	"staysync/infras/kafka"
	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/infras/redis"
	"staysync/infras/s3"
	"staysync/shared/cache"
	"staysync/transport/event"
	"staysync/transport/http"
	"staysync/transport/http/middleware"
	"staysync/transport/http/router"
	"staysync/transport/scheduler"

	bookingRepository "staysync/internal/domains/booking/repository"
	bookingService "staysync/internal/domains/booking/service"
	inventoryRepository "staysync/internal/domains/inventory/repository"
	inventoryService "staysync/internal/domains/inventory/service"
	otaService "staysync/internal/domains/ota/service"
	reconciliationService "staysync/internal/domains/reconciliation/service"
	roomRepository "staysync/internal/domains/room/repository"
	webhookRepository "staysync/internal/domains/webhook/repository"
	webhookService "staysync/internal/domains/webhook/service"
	bookingHandler "staysync/internal/handlers/booking"
	inventoryHandler "staysync/internal/handlers/inventory"
	otaHandler "staysync/internal/handlers/ota"
	reconciliationHandler "staysync/internal/handlers/reconciliation"
	webhookHandler "staysync/internal/handlers/webhook"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	channel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	bookingRepository.New,
	roomRepository.New,
	inventoryRepository.NewRoomMapping,
	inventoryRepository.NewRatePlan,
	webhookRepository.New,
)

var domains = wire.NewSet(
	inventoryService.New,
	bookingService.New,
	reconciliationService.New,
	webhookService.New,
	otaService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	inventoryHandler.New,
	reconciliationHandler.New,
	webhookHandler.New,
	otaHandler.New,
	router.New,
)

var transports = wire.NewSet(
	http.New,
	scheduler.New,
	event.New,
)

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		transports,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}
