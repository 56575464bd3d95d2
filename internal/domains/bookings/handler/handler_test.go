package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/savioruz/kickmatch/internal/delivery/http/middleware"
	"github.com/savioruz/kickmatch/internal/domains/bookings/dto"
	"github.com/savioruz/kickmatch/internal/domains/bookings/entity"
	"github.com/savioruz/kickmatch/internal/domains/bookings/mock"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/gdto"
	"github.com/savioruz/kickmatch/pkg/jwt"
	log "github.com/savioruz/kickmatch/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*fiber.App, *mock.MockBookingService) {
	t.Helper()

	jwt.Initialize("kickmatch-test", "test-secret", time.Hour)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockBookingService(ctrl)

	l := log.NewMockInterface(ctrl)
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	app := fiber.New()
	app.Use(middleware.RequestID())
	New(svc, l, validator.New()).RegisterRoutes(app.Group("/v1"))

	return app, svc
}

func authorize(t *testing.T, req *http.Request, userID, role string) *http.Request {
	t.Helper()

	tok, err := jwt.GenerateAccessToken(userID, "player@kickmatch.test", role)
	require.NoError(t, err)

	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)

	return req
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

func TestHandler_Quote(t *testing.T) {
	venueID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Quote(gomock.Any(), dto.QuoteRequest{VenueID: venueID, Date: "2026-03-05", StartTime: "08:00", EndTime: "08:30"}).
			Return(dto.QuoteResponse{DurationHours: 1, TotalPrice: 80000}, nil)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings/quote", map[string]any{
			"venue_id":   venueID,
			"date":       "2026-03-05",
			"start_time": "08:00",
			"end_time":   "08:30",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data dto.QuoteResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, 1, out.Data.DurationHours)
	})

	t.Run("malformed time is rejected", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings/quote", map[string]any{
			"venue_id":   venueID,
			"date":       "2026-03-05",
			"start_time": "8am",
			"end_time":   "09:00",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("reason code is returned as the message", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(dto.QuoteResponse{}, failure.Validation(entity.ReasonEndBeforeStart))

		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings/quote", map[string]any{
			"venue_id":   venueID,
			"date":       "2026-03-05",
			"start_time": "09:00",
			"end_time":   "08:00",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, entity.ReasonEndBeforeStart, out["error"])
	})
}

func TestHandler_Create(t *testing.T) {
	userID := uuid.NewString()
	body := map[string]any{
		"venue_id":   uuid.NewString(),
		"date":       "2026-03-05",
		"start_time": "18:00",
		"end_time":   "19:00",
		"notes":      "traer petos",
	}

	t.Run("requires a token", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(jsonRequest(http.MethodPost, "/v1/bookings", body))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("passes the actor", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Create(gomock.Any(), gdto.Actor{UserID: userID, Role: constant.UserRoleUser}, gomock.Any()).
			DoAndReturn(func(_ any, _ gdto.Actor, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, "traer petos", req.Notes)
				assert.Equal(t, "18:00", req.StartTime)

				return dto.BookingResponse{ID: uuid.NewString(), Status: constant.BookingStatusPending}, nil
			})

		req := authorize(t, jsonRequest(http.MethodPost, "/v1/bookings", body), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("taken slot is a conflict", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.BookingResponse{}, failure.Conflict("the selected time overlaps an existing booking"))

		req := authorize(t, jsonRequest(http.MethodPost, "/v1/bookings", body), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestHandler_List(t *testing.T) {
	userID := uuid.NewString()

	t.Run("filter is forwarded", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().List(gomock.Any(), userID, dto.ListRequest{Filter: constant.BookingFilterUpcoming}).
			Return(dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}}, nil)

		req := authorize(t, httptest.NewRequest(http.MethodGet, "/v1/users/bookings?filter=upcoming", nil), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown filter is rejected", func(t *testing.T) {
		app, _ := setup(t)

		req := authorize(t, httptest.NewRequest(http.MethodGet, "/v1/users/bookings?filter=soon", nil), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_Lifecycle(t *testing.T) {
	userID := uuid.NewString()
	bookingID := uuid.NewString()

	t.Run("cancel", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Cancel(gomock.Any(), gdto.Actor{UserID: userID, Role: constant.UserRoleUser}, bookingID).
			Return(dto.BookingResponse{ID: bookingID, Status: constant.BookingStatusCancelled}, nil)

		req := authorize(t, httptest.NewRequest(http.MethodPut, "/v1/bookings/"+bookingID+"/cancel", nil), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("cancel with a malformed id", func(t *testing.T) {
		app, _ := setup(t)

		req := authorize(t, httptest.NewRequest(http.MethodPut, "/v1/bookings/nope/cancel", nil), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("confirm needs an owner token", func(t *testing.T) {
		app, _ := setup(t)

		req := authorize(t, httptest.NewRequest(http.MethodPut, "/v1/bookings/"+bookingID+"/confirm", nil), userID, constant.UserRoleUser)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("confirm by owner", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Confirm(gomock.Any(), gdto.Actor{UserID: userID, Role: constant.UserRoleOwner}, bookingID).
			Return(dto.BookingResponse{ID: bookingID, Status: constant.BookingStatusConfirmed}, nil)

		req := authorize(t, httptest.NewRequest(http.MethodPut, "/v1/bookings/"+bookingID+"/confirm", nil), userID, constant.UserRoleOwner)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestHandler_Slots(t *testing.T) {
	venueID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		app, svc := setup(t)

		svc.EXPECT().Slots(gomock.Any(), venueID, dto.SlotsRequest{Date: "2026-03-05", Selected: "18:00"}).
			Return(dto.SlotsResponse{VenueID: venueID, Date: "2026-03-05", Slots: entity.AnnotateSlots(entity.GenerateTimeSlots(), nil, "18:00")}, nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/venues/"+venueID+"/slots?date=2026-03-05&selected=18:00", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Data dto.SlotsResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Len(t, out.Data.Slots, 17)
	})

	t.Run("date is required", func(t *testing.T) {
		app, _ := setup(t)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/venues/"+venueID+"/slots", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
