//go:build wireinject
// +build wireinject

package di

import (
	"barber/config"
	"barber/infras/kafka"
	"barber/infras/otel"
	"barber/infras/postgres"
	publicBookingHandler "barber/internal/handlers/publicbooking"
	"barber/shared/cache"
	"barber/shared/limiter"
	"barber/shared/metrics"
	"barber/shared/session"
	"barber/shared/timezone"
	"barber/transport/http"
	"barber/transport/http/middleware"
	"barber/transport/http/router"

	bookingRepository "barber/internal/domains/booking/repository"
	capsterRepository "barber/internal/domains/capster/repository"
	hairModelRepository "barber/internal/domains/hairmodel/repository"
	priceRepository "barber/internal/domains/price/repository"
	publicBookingService "barber/internal/domains/publicbooking/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	kafka.NewPublisher,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	timezone.NewClock,
	cache.New,
	limiter.New,
	session.New,
	metrics.New,
)

var catalogDomain = wire.NewSet(
	capsterRepository.New,
	priceRepository.New,
	hairModelRepository.New,
)

var publicBookingDomain = wire.NewSet(
	bookingRepository.New,
	publicBookingService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	publicBookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	publicBookingHandler.New,
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
