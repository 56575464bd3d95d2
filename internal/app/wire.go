//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/savioruz/kickmatch/config"
	"github.com/savioruz/kickmatch/internal/delivery/http"

	bookingHandler "github.com/savioruz/kickmatch/internal/domains/bookings/handler"
	bookingRepository "github.com/savioruz/kickmatch/internal/domains/bookings/repository"
	bookingService "github.com/savioruz/kickmatch/internal/domains/bookings/service"

	venueHandler "github.com/savioruz/kickmatch/internal/domains/venues/handler"
	venueRepository "github.com/savioruz/kickmatch/internal/domains/venues/repository"
	venueService "github.com/savioruz/kickmatch/internal/domains/venues/service"
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	provideCatalogRegistry,
	providePlacesClient,
	venueService.New,
	venueHandler.New,
	wire.Bind(new(venueRepository.Querier), new(*venueRepository.Queries)),
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var domains = wire.NewSet(
	venueDomain,
	bookingDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		provideClock,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideStorage,
		provideJWT,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideHTTPServer,

		// Jobs
		NewScheduler,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}
