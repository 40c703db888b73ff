//go:build wireinject
// +build wireinject

package di

import (
	"stayadmin/config"
	"stayadmin/infras/jwt"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/infras/redis"
	"stayadmin/infras/s3"
	"stayadmin/internal/consumers/verification"
	"stayadmin/permissions"
	"stayadmin/shared/cache"
	"stayadmin/transport/http"
	"stayadmin/transport/http/middleware"
	"stayadmin/transport/http/router"

	auditRepository "stayadmin/internal/domains/audit/repository"
	auditService "stayadmin/internal/domains/audit/service"
	bookingRepository "stayadmin/internal/domains/booking/repository"
	bookingService "stayadmin/internal/domains/booking/service"
	roomTypeRepository "stayadmin/internal/domains/roomtype/repository"
	roomTypeService "stayadmin/internal/domains/roomtype/service"
	"stayadmin/internal/domains/slip/reconciler"
	slipRepository "stayadmin/internal/domains/slip/repository"
	slipService "stayadmin/internal/domains/slip/service"

	bookingHandler "stayadmin/internal/handlers/booking"
	integrationHandler "stayadmin/internal/handlers/integration"
	roomTypeHandler "stayadmin/internal/handlers/roomtype"
	slipHandler "stayadmin/internal/handlers/slip"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	provideClock,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var slipDomain = wire.NewSet(
	slipRepository.New,
	slipService.New,
	reconciler.New,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomTypeDomain,
	slipDomain,
	auditDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	slipHandler.New,
	roomTypeHandler.New,
	integrationHandler.New,
	router.New,
)

var consumers = wire.NewSet(
	verification.New,
)

func InitializeService() *Service {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		consumers,
		http.New,
		wire.Struct(new(Service), "*"),
	)

	return &Service{}
}
