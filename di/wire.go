//go:build wireinject
// +build wireinject

package di

import (
	"glade/config"
	"glade/infras/jwt"
	"glade/infras/kafka"
	"glade/infras/otel"
	"glade/infras/postgres"
	"glade/infras/redis"
	"glade/infras/s3"
	"glade/shared/cache"
	"glade/transport/http"
	"glade/transport/http/middleware"
	"glade/transport/http/router"

	amenityRepository "glade/internal/domains/amenity/repository"
	amenityService "glade/internal/domains/amenity/service"
	bookingRepository "glade/internal/domains/booking/repository"
	bookingService "glade/internal/domains/booking/service"
	cottageRepository "glade/internal/domains/cottage/repository"
	cottageService "glade/internal/domains/cottage/service"
	reportService "glade/internal/domains/report/service"

	amenityHandler "glade/internal/handlers/amenity"
	bookingHandler "glade/internal/handlers/booking"
	cottageHandler "glade/internal/handlers/cottage"
	reportHandler "glade/internal/handlers/report"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var cottageDomain = wire.NewSet(
	cottageRepository.New,
	cottageService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	amenityDomain,
	cottageDomain,
	bookingDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	amenityHandler.New,
	cottageHandler.New,
	bookingHandler.New,
	reportHandler.New,
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
