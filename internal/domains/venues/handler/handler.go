package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/kickmatch/internal/delivery/http/middleware"
	"github.com/savioruz/kickmatch/internal/delivery/http/response"
	"github.com/savioruz/kickmatch/internal/domains/venues/dto"
	"github.com/savioruz/kickmatch/internal/domains/venues/service"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/gdto"
	"github.com/savioruz/kickmatch/pkg/logger"
)

type Handler struct {
	service   service.VenueService
	logger    logger.Interface
	validator *validator.Validate
}

func New(s service.VenueService, l logger.Interface, v *validator.Validate) *Handler {
	return &Handler{
		service:   s,
		logger:    l,
		validator: v,
	}
}

const (
	identifier = "http - venue - %s"

	formFilePhoto = "photo"
)

func (h *Handler) RegisterRoutes(r fiber.Router) {
	venue := r.Group("/venues")

	venue.Post("/search", middleware.OptionalJwt(), h.Search)
	venue.Get("/catalog", middleware.OptionalJwt(), h.Catalog)
	venue.Put("/catalog/location", middleware.OptionalJwt(), h.Relocate)

	venue.Post("/", middleware.OwnerOnly(), h.Create)
	venue.Get("/:id", h.Get)
	venue.Patch("/:id", middleware.OwnerOnly(), h.Update)
	venue.Delete("/:id", middleware.OwnerOnly(), h.Delete)
	venue.Put("/:id/active", middleware.OwnerOnly(), h.SetActive)
	venue.Post("/:id/photos", middleware.OwnerOnly(), h.AddPhoto)
	venue.Delete("/:id/photos", middleware.OwnerOnly(), h.RemovePhoto)

	r.Get("/users/venues", middleware.OwnerOnly(), h.GetByOwner)
	r.Get("/amenities", h.Amenities)
}

// sessionKey identifies whose catalog a request reads: the signed in user, else the X-Session-ID header.
func sessionKey(ctx *fiber.Ctx) string {
	if userID, ok := ctx.Locals(constant.JwtFieldUser).(string); ok && userID != "" {
		return "user:" + userID
	}

	if sid := ctx.Get(constant.RequestHeaderSessionID); sid != "" {
		return "session:" + sid
	}

	return ""
}

func (h *Handler) fail(ctx *fiber.Ctx, op string, err error) error {
	h.logger.Error(identifier, op+" - request_id: %s - %v", middleware.GetRequestID(ctx), err)

	return response.WithError(ctx, err)
}

func (h *Handler) invalid(ctx *fiber.Ctx, op string, err error) error {
	h.logger.Error(identifier, op+" - validate error: %v", err)

	return response.WithError(ctx, failure.BadRequestFromString(err.Error()))
}

func (h *Handler) venueID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params(constant.RequestParamID)
	if err := h.validator.Var(id, constant.RequestValidateUUID); err != nil {
		return "", failure.BadRequestFromString("id must be a valid uuid")
	}

	return id, nil
}

// Search Venue godoc
// @Summary Search venues near a location
// @Description Runs a live places search, merges registered venues and applies the filters. Falls back to a demo catalog when nothing is found.
// @Tags venues
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Catalog session for anonymous clients"
// @Param request body dto.SearchRequest true "Search request"
// @Success 200 {object} response.Data[dto.CatalogResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues/search [post]
func (h *Handler) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.invalid(ctx, "search", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "search", err)
	}

	key := sessionKey(ctx)
	if key == "" {
		sid := uuid.NewString()
		ctx.Set(constant.RequestHeaderSessionID, sid)
		key = "session:" + sid
	}

	data, err := h.service.Search(ctx.UserContext(), key, req)
	if err != nil {
		return h.fail(ctx, "search", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Catalog Venue godoc
// @Summary Filter the current catalog
// @Description Re-applies filters to the result of the session's last search
// @Tags venues
// @Produce json
// @Param X-Session-ID header string false "Catalog session for anonymous clients"
// @Param filter query dto.FilterRequest false "Filters"
// @Success 200 {object} response.Data[dto.CatalogResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/catalog [get]
func (h *Handler) Catalog(ctx *fiber.Ctx) error {
	var req dto.FilterRequest
	if err := ctx.QueryParser(&req); err != nil {
		return h.invalid(ctx, "catalog", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "catalog", err)
	}

	key := sessionKey(ctx)
	if key == "" {
		return response.WithError(ctx, failure.BadRequestFromString(constant.RequestHeaderSessionID+" header is required"))
	}

	data, err := h.service.Catalog(ctx.UserContext(), key, req)
	if err != nil {
		return h.fail(ctx, "catalog", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Relocate Venue godoc
// @Summary Move the catalog origin
// @Description Recomputes distances of the current catalog from a new location
// @Tags venues
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Catalog session for anonymous clients"
// @Param request body dto.RelocateRequest true "New location"
// @Success 200 {object} response.Data[dto.CatalogResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/catalog/location [put]
func (h *Handler) Relocate(ctx *fiber.Ctx) error {
	var req dto.RelocateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.invalid(ctx, "relocate", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "relocate", err)
	}

	key := sessionKey(ctx)
	if key == "" {
		return response.WithError(ctx, failure.BadRequestFromString(constant.RequestHeaderSessionID+" header is required"))
	}

	data, err := h.service.Relocate(ctx.UserContext(), key, req)
	if err != nil {
		return h.fail(ctx, "relocate", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Create Venue godoc
// @Summary Register a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param request body dto.VenueCreateRequest true "Venue"
// @Success 201 {object} response.Data[dto.VenueResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /venues [post]
// @Security BearerAuth
func (h *Handler) Create(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.VenueCreateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.invalid(ctx, "create", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "create", err)
	}

	data, err := h.service.Create(ctx.UserContext(), actor, req)
	if err != nil {
		return h.fail(ctx, "create", err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// Get Venue godoc
// @Summary Get a registered venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Data[dto.VenueResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/{id} [get]
func (h *Handler) Get(ctx *fiber.Ctx) error {
	id, err := h.venueID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	data, err := h.service.Get(ctx.UserContext(), id)
	if err != nil {
		return h.fail(ctx, "get", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// GetByOwner Venue godoc
// @Summary List the caller's venues
// @Tags venues
// @Produce json
// @Param pagination query gdto.PaginationRequest false "Pagination"
// @Success 200 {object} response.Data[dto.GetVenuesResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /users/venues [get]
// @Security BearerAuth
func (h *Handler) GetByOwner(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req gdto.PaginationRequest
	if err := ctx.QueryParser(&req); err != nil {
		return h.invalid(ctx, "getByOwner", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "getByOwner", err)
	}

	data, err := h.service.GetByOwner(ctx.UserContext(), actor.UserID, req)
	if err != nil {
		return h.fail(ctx, "getByOwner", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Update Venue godoc
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.VenueUpdateRequest true "Changes"
// @Success 200 {object} response.Data[dto.VenueResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/{id} [patch]
// @Security BearerAuth
func (h *Handler) Update(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.venueID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.VenueUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.invalid(ctx, "update", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "update", err)
	}

	data, err := h.service.Update(ctx.UserContext(), actor, id, req)
	if err != nil {
		return h.fail(ctx, "update", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Delete Venue godoc
// @Summary Delete a venue
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/{id} [delete]
// @Security BearerAuth
func (h *Handler) Delete(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.venueID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	if err := h.service.Delete(ctx.UserContext(), actor, id); err != nil {
		return h.fail(ctx, "delete", err)
	}

	return response.WithMessage(ctx, fiber.StatusOK, "venue deleted")
}

// SetActive Venue godoc
// @Summary Show or hide a venue in searches
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.SetActiveRequest true "Active flag"
// @Success 200 {object} response.Data[dto.VenueResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /venues/{id}/active [put]
// @Security BearerAuth
func (h *Handler) SetActive(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.venueID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.SetActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.invalid(ctx, "setActive", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "setActive", err)
	}

	data, err := h.service.SetActive(ctx.UserContext(), actor, id, *req.Active)
	if err != nil {
		return h.fail(ctx, "setActive", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// AddPhoto Venue godoc
// @Summary Upload a venue photo
// @Tags venues
// @Accept mpfd
// @Produce json
// @Param id path string true "Venue ID"
// @Param photo formData file true "JPEG, PNG or WEBP image"
// @Success 201 {object} response.Data[dto.VenueResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /venues/{id}/photos [post]
// @Security BearerAuth
func (h *Handler) AddPhoto(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.venueID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	header, err := ctx.FormFile(formFilePhoto)
	if err != nil {
		return h.invalid(ctx, "addPhoto", err)
	}

	file, err := header.Open()
	if err != nil {
		return h.invalid(ctx, "addPhoto", err)
	}
	defer file.Close()

	data, err := h.service.AddPhoto(ctx.UserContext(), actor, id, file, header.Filename, header.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return h.fail(ctx, "addPhoto", err)
	}

	return response.WithJSON(ctx, fiber.StatusCreated, data)
}

// RemovePhoto Venue godoc
// @Summary Remove a venue photo
// @Tags venues
// @Accept json
// @Produce json
// @Param id path string true "Venue ID"
// @Param request body dto.PhotoDeleteRequest true "Photo URL"
// @Success 200 {object} response.Data[dto.VenueResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /venues/{id}/photos [delete]
// @Security BearerAuth
func (h *Handler) RemovePhoto(ctx *fiber.Ctx) error {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	id, err := h.venueID(ctx)
	if err != nil {
		return response.WithError(ctx, err)
	}

	var req dto.PhotoDeleteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return h.invalid(ctx, "removePhoto", err)
	}

	if err := h.validator.Struct(req); err != nil {
		return h.invalid(ctx, "removePhoto", err)
	}

	data, err := h.service.RemovePhoto(ctx.UserContext(), actor, id, req.URL)
	if err != nil {
		return h.fail(ctx, "removePhoto", err)
	}

	return response.WithJSON(ctx, fiber.StatusOK, data)
}

// Amenities godoc
// @Summary List known amenities
// @Tags venues
// @Produce json
// @Success 200 {object} response.Data[[]entity.Amenity]
// @Router /amenities [get]
func (h *Handler) Amenities(ctx *fiber.Ctx) error {
	return response.WithJSON(ctx, fiber.StatusOK, h.service.Amenities())
}
