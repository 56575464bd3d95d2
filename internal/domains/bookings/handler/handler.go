package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/kickmatch/internal/delivery/http/middleware"
	"github.com/savioruz/kickmatch/internal/delivery/http/response"
	"github.com/savioruz/kickmatch/internal/domains/bookings/dto"
	"github.com/savioruz/kickmatch/internal/domains/bookings/service"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/logger"
)

type Handler struct {
	service   service.BookingService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.BookingService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - booking - %s"

	routepath = "/bookings"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	bookings := r.Group(routepath)

	bookings.Post("/quote", h.Quote)
	bookings.Post("/", middleware.Jwt(), h.Create)
	bookings.Get("/:id", middleware.Jwt(), h.Get)
	bookings.Put("/:id/cancel", middleware.Jwt(), h.Cancel)
	bookings.Put("/:id/confirm", middleware.OwnerOnly(), h.Confirm)

	r.Get("/users/bookings", middleware.Jwt(), h.List)
	r.Get("/venues/:id/slots", h.Slots)
}

func (h *Handler) pathID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString("id must be a valid uuid")
	}

	return id, nil
}

func (h *Handler) fail(ctx *fiber.Ctx, op string, err error) error {
	h.logger.Error(identifier, op+" - request_id: %s - %v", middleware.GetRequestID(ctx), err)

	return response.WithError(ctx, err)
}

func (h *Handler) parse(ctx *fiber.Ctx, op string, req any, fromQuery bool) error {
	var err error
	if fromQuery {
		err = ctx.QueryParser(req)
	} else {
		err = ctx.BodyParser(req)
	}

	if err == nil {
		err = h.validator.Struct(req)
	}

	if err != nil {
		h.logger.Error(identifier, op+" - validate error: %v", err)

		return failure.BadRequestFromString(err.Error())
	}

	return nil
}

// Quote godoc
// @Summary Preview a booking
// @Description Computes duration, end time and price for a selection without booking it
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Selection"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /bookings/quote [post]
func (h *Handler) Quote(ctx *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := h.parse(ctx, "quote", &req, false); err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Quote(ctx.UserContext(), req)
	if err != nil {
		return h.fail(ctx, "quote", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Create godoc
// @Summary Book a venue
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /bookings [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.CreateBookingRequest
	if err := h.parse(ctx, "create", &req, false); err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Create(ctx.UserContext(), actor, req)
	if err != nil {
		return h.fail(ctx, "create", err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Get godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /bookings/{id} [get]
// @Security BearerAuth
func (h *Handler) Get(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.pathID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Get(ctx.UserContext(), actor, id)
	if err != nil {
		return h.fail(ctx, "get", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// List godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Param filter query string false "all, upcoming or past"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /users/bookings [get]
// @Security BearerAuth
func (h *Handler) List(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.ListRequest
	if err := h.parse(ctx, "list", &req, true); err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.List(ctx.UserContext(), actor.UserID, req)
	if err != nil {
		return h.fail(ctx, "list", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Cancel godoc
// @Summary Cancel a booking
// @Description Pending or confirmed bookings can be cancelled up to the end of their day
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /bookings/{id}/cancel [put]
// @Security BearerAuth
func (h *Handler) Cancel(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.pathID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Cancel(ctx.UserContext(), actor, id)
	if err != nil {
		return h.fail(ctx, "cancel", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Confirm godoc
// @Summary Confirm a pending booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /bookings/{id}/confirm [put]
// @Security BearerAuth
func (h *Handler) Confirm(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.pathID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Confirm(ctx.UserContext(), actor, id)
	if err != nil {
		return h.fail(ctx, "confirm", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Slots godoc
// @Summary Hourly availability of a venue
// @Tags bookings
// @Produce json
// @Param id path string true "Venue ID"
// @Param date query string true "Day, 2006-01-02"
// @Param selected query string false "Selected start, 15:04"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/{id}/slots [get]
func (h *Handler) Slots(ctx *fiber.Ctx) error {
	id, err := h.pathID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.SlotsRequest
	if err := h.parse(ctx, "slots", &req, true); err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Slots(ctx.UserContext(), id, req)
	if err != nil {
		return h.fail(ctx, "slots", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}
