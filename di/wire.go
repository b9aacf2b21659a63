//go:build wireinject
// +build wireinject

package di

import (
	"estate/config"
	"estate/infras/jwt"
	"estate/infras/kafka"
	"estate/infras/notifier"
	"estate/infras/otel"
	"estate/infras/postgres"
	"estate/infras/redis"
	"estate/permissions"
	"estate/shared/cache"
	gRepo "estate/shared/repository"
	"estate/transport/http"
	"estate/transport/http/middleware"
	"estate/transport/http/router"

	"github.com/google/wire"

	availabilityService "estate/internal/domains/availability/service"
	followUpRepository "estate/internal/domains/followup/repository"
	followUpService "estate/internal/domains/followup/service"
	maintenanceRepository "estate/internal/domains/maintenance/repository"
	maintenanceService "estate/internal/domains/maintenance/service"
	resourceRepository "estate/internal/domains/resource/repository"
	viewingRepository "estate/internal/domains/viewing/repository"
	viewingService "estate/internal/domains/viewing/service"

	followUpHandler "estate/internal/handlers/followup"
	maintenanceHandler "estate/internal/handlers/maintenance"
	viewingHandler "estate/internal/handlers/viewing"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(gRepo.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
	jwt.New,
	notifier.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var schedulingDomain = wire.NewSet(
	resourceRepository.New,
	viewingRepository.New,
	wire.Bind(new(availabilityService.BookingReader), new(viewingRepository.Viewing)),
	availabilityService.New,
	viewingService.New,
)

var followUpDomain = wire.NewSet(
	followUpRepository.New,
	followUpService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceRepository.NewTaskRecord,
	maintenanceService.New,
)

var domains = wire.NewSet(
	schedulingDomain,
	followUpDomain,
	maintenanceDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	viewingHandler.New,
	followUpHandler.New,
	maintenanceHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
