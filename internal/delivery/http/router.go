package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/savioruz/kickmatch/config"
	_ "github.com/savioruz/kickmatch/docs" // Swagger docs
	bookingHandler "github.com/savioruz/kickmatch/internal/domains/bookings/handler"
	venueHandler "github.com/savioruz/kickmatch/internal/domains/venues/handler"

	"github.com/savioruz/kickmatch/internal/delivery/http/middleware"
	"github.com/savioruz/kickmatch/pkg/logger"
)

type Handlers struct {
	Venue   *venueHandler.Handler
	Booking *bookingHandler.Handler
}

// NewRouter initializes the HTTP router and registers the routes for the application.
// Swagger spec:
// @title kickmatch API
// @description Venue discovery and booking for football pitches
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	l logger.Interface,
	handlers Handlers,
) {
	// Options
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(l))
	app.Use(middleware.Recovery(l))
	app.Use(middleware.CORS(cfg))

	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	apiV1Group := app.Group("/v1")
	{
		handlers.Venue.RegisterRoutes(apiV1Group)
		handlers.Booking.RegisterRoutes(apiV1Group)
	}

	app.Use("*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "route not found",
		})
	})
}
