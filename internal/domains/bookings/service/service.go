package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/savioruz/kickmatch/config"
	"github.com/savioruz/kickmatch/internal/domains/bookings/dto"
	"github.com/savioruz/kickmatch/internal/domains/bookings/entity"
	"github.com/savioruz/kickmatch/internal/domains/bookings/repository"
	venueRepo "github.com/savioruz/kickmatch/internal/domains/venues/repository"
	"github.com/savioruz/kickmatch/pkg/clock"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/gdto"
	"github.com/savioruz/kickmatch/pkg/helper"
	"github.com/savioruz/kickmatch/pkg/logger"
	"github.com/savioruz/kickmatch/pkg/postgres"
	"github.com/savioruz/kickmatch/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/kickmatch/internal/domains/bookings/service BookingService

type BookingService interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Create(ctx context.Context, actor gdto.Actor, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, actor gdto.Actor, id string) (dto.BookingResponse, error)
	List(ctx context.Context, userID string, req dto.ListRequest) (dto.GetBookingsResponse, error)
	Cancel(ctx context.Context, actor gdto.Actor, id string) (dto.BookingResponse, error)
	Confirm(ctx context.Context, actor gdto.Actor, id string) (dto.BookingResponse, error)
	Slots(ctx context.Context, venueID string, req dto.SlotsRequest) (dto.SlotsResponse, error)
	CompleteElapsed(ctx context.Context) (int64, error)
}

type bookingService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	venueRepo venueRepo.Querier
	cache     redis.IRedisCache
	clock     clock.Clock
	cfg       *config.Config
	logger    logger.Interface
}

func New(
	db postgres.PgxIface,
	r repository.Querier,
	v venueRepo.Querier,
	c redis.IRedisCache,
	clk clock.Clock,
	cfg *config.Config,
	l logger.Interface,
) BookingService {
	return &bookingService{
		db:        db,
		repo:      r,
		venueRepo: v,
		cache:     c,
		clock:     clk,
		cfg:       cfg,
		logger:    l,
	}
}

const (
	cacheUserBookingsKey = "bookings:user"
	cacheSlotsKey        = "bookings:slots"

	pgUniqueViolation = "23505"

	identifier = "service - booking - %s"
)

func (s *bookingService) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	venue, err := s.venue(ctx, s.db, req.VenueID)
	if err != nil {
		return res, err
	}

	quote, err := entity.ComputeBooking(req.Date, req.StartTime, req.EndTime, venue.PricePerHour, s.clock.Now().Location())
	if err != nil {
		return res, err
	}

	return res.FromQuote(req.VenueID, venue.Name, quote), nil
}

func (s *bookingService) Create(ctx context.Context, actor gdto.Actor, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	now := s.clock.Now()

	venue, err := s.venue(ctx, s.db, req.VenueID)
	if err != nil {
		return res, err
	}

	if !venue.Active {
		return res, failure.BadRequestFromString("venue is not accepting bookings")
	}

	quote, err := entity.ComputeBooking(req.Date, req.StartTime, req.EndTime, venue.PricePerHour, now.Location())
	if err != nil {
		return res, err
	}

	if quote.Start.Before(now) {
		return res, failure.BadRequestFromString("booking time cannot be in the past")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create - failed to begin transaction: %v", err)

		return res, err
	}
	defer s.rollback(ctx, tx)

	existing, err := s.repo.ListVenueBookingsByDate(ctx, tx, repository.ListVenueBookingsByDateParams{
		VenueID:     venue.ID,
		BookingDate: helper.PgDate(req.Date),
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to list venue bookings: %v", err)

		return res, err
	}

	for _, b := range toEntities(existing, now.Location()) {
		if b.Overlaps(quote.Start, quote.End) {
			return res, failure.Conflict("the selected time overlaps an existing booking")
		}
	}

	booking, err := s.repo.InsertBooking(ctx, tx, repository.InsertBookingParams{
		VenueID:       venue.ID,
		VenueName:     venue.Name,
		UserID:        helper.PgUUID(actor.UserID),
		BookingDate:   helper.PgDate(req.Date),
		StartTime:     helper.PgTimestamptz(quote.Start),
		EndTime:       helper.PgTimestamptz(quote.End),
		DurationHours: int32(quote.DurationHours), //nolint:gosec // bounded by the slot range
		PricePerHour:  quote.PricePerHour,
		TotalPrice:    quote.TotalPrice,
		Status:        string(entity.StatusPending),
		Notes:         helper.PgString(req.Notes),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			s.logger.Info(identifier, "create - slot already taken: %s", pgErr.ConstraintName)

			return res, failure.Conflict("the selected time overlaps an existing booking")
		}

		s.logger.Error(identifier, "create - failed to insert booking: %v", err)

		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "create - failed to commit transaction: %v", err)

		return res, err
	}

	created := toEntity(booking, now.Location())
	s.invalidate(ctx, created)

	return res.FromEntity(created, now), nil
}

func (s *bookingService) Get(ctx context.Context, actor gdto.Actor, id string) (res dto.BookingResponse, err error) {
	now := s.clock.Now()

	booking, err := s.load(ctx, s.db, id)
	if err != nil {
		return res, err
	}

	if err = s.canView(ctx, actor, booking); err != nil {
		return res, err
	}

	return res.FromEntity(toEntity(booking, now.Location()), now), nil
}

func (s *bookingService) List(ctx context.Context, userID string, req dto.ListRequest) (res dto.GetBookingsResponse, err error) {
	now := s.clock.Now()

	filter := req.Filter
	if filter == "" {
		filter = constant.BookingFilterAll
	}

	// Tabs and can_cancel change with the day, so the day is part of the key.
	cacheKey := helper.BuildCacheKey(cacheUserBookingsKey, userID+":"+filter+":"+now.Format(constant.DateFormat))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		s.logger.Debug(identifier, "list - cache hit for user %s", userID)

		return res, nil
	}

	models, err := s.repo.ListUserBookings(ctx, s.db, helper.PgUUID(userID))
	if err != nil {
		s.logger.Error(identifier, "list - failed to list bookings: %v", err)

		return res, err
	}

	bookings := make([]entity.Booking, 0, len(models))

	for _, b := range toEntities(models, now.Location()) {
		switch filter {
		case constant.BookingFilterUpcoming:
			if !b.IsUpcoming(now) {
				continue
			}
		case constant.BookingFilterPast:
			if !b.IsPast(now) {
				continue
			}
		}

		bookings = append(bookings, b)
	}

	res.FromEntities(bookings, now)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "list - failed to save cache: %v", err)
		}
	}()

	return res, nil
}

func (s *bookingService) Cancel(ctx context.Context, actor gdto.Actor, id string) (res dto.BookingResponse, err error) {
	now := s.clock.Now()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "cancel - failed to begin transaction: %v", err)

		return res, err
	}
	defer s.rollback(ctx, tx)

	model, err := s.load(ctx, tx, id)
	if err != nil {
		return res, err
	}

	booking := toEntity(model, now.Location())
	if !actor.CanManage(booking.UserID) {
		return res, failure.Forbidden("booking belongs to another user")
	}

	cancelled, err := entity.Cancel(booking, now)
	if err != nil {
		return res, failure.Conflict(err.Error())
	}

	updated, err := s.updateStatus(ctx, tx, cancelled)
	if err != nil {
		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "cancel - failed to commit transaction: %v", err)

		return res, err
	}

	s.invalidate(ctx, updated)

	return res.FromEntity(updated, now), nil
}

func (s *bookingService) Confirm(ctx context.Context, actor gdto.Actor, id string) (res dto.BookingResponse, err error) {
	now := s.clock.Now()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "confirm - failed to begin transaction: %v", err)

		return res, err
	}
	defer s.rollback(ctx, tx)

	model, err := s.load(ctx, tx, id)
	if err != nil {
		return res, err
	}

	if !actor.IsAdmin() {
		venue, err := s.venueRepo.GetVenueByID(ctx, tx, model.VenueID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "confirm - failed to get venue: %v", err)

			return res, err
		}

		if err != nil || helper.UUIDFromPg(venue.OwnerID) != actor.UserID {
			return res, failure.Forbidden("only the venue owner can confirm bookings")
		}
	}

	booking := toEntity(model, now.Location())
	if !booking.Status.CanTransitionTo(entity.StatusConfirmed) {
		return res, failure.Conflict(fmt.Sprintf("a %s booking cannot be confirmed", booking.Status))
	}

	booking.Status = entity.StatusConfirmed
	booking.UpdatedAt = now

	updated, err := s.updateStatus(ctx, tx, booking)
	if err != nil {
		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "confirm - failed to commit transaction: %v", err)

		return res, err
	}

	s.invalidate(ctx, updated)

	return res.FromEntity(updated, now), nil
}

func (s *bookingService) Slots(ctx context.Context, venueID string, req dto.SlotsRequest) (res dto.SlotsResponse, err error) {
	booked, err := s.occupied(ctx, venueID, req.Date)
	if err != nil {
		return res, err
	}

	return dto.SlotsResponse{
		VenueID: venueID,
		Date:    req.Date,
		Slots:   entity.AnnotateSlots(entity.GenerateTimeSlots(), booked, req.Selected),
	}, nil
}

// occupied returns the hour labels taken on date, keyed to the occupying booking id.
func (s *bookingService) occupied(ctx context.Context, venueID, date string) (map[string]string, error) {
	cacheKey := helper.BuildCacheKey(cacheSlotsKey, venueID+":"+date)

	var booked map[string]string
	if err := s.cache.Get(ctx, cacheKey, &booked); err == nil {
		return booked, nil
	}

	venue, err := s.venue(ctx, s.db, venueID)
	if err != nil {
		return nil, err
	}

	models, err := s.repo.ListVenueBookingsByDate(ctx, s.db, repository.ListVenueBookingsByDateParams{
		VenueID:     venue.ID,
		BookingDate: helper.PgDate(date),
	})
	if err != nil {
		s.logger.Error(identifier, "slots - failed to list venue bookings: %v", err)

		return nil, err
	}

	booked = entity.OccupiedLabels(toEntities(models, s.clock.Now().Location()))

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, booked, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "slots - failed to save cache: %v", err)
		}
	}()

	return booked, nil
}

// CompleteElapsed moves confirmed bookings whose end time has passed to completed.
func (s *bookingService) CompleteElapsed(ctx context.Context) (int64, error) {
	n, err := s.repo.CompleteElapsedBookings(ctx, s.db, helper.PgTimestamptz(s.clock.Now()))
	if err != nil {
		s.logger.Error(identifier, "complete - failed to complete bookings: %v", err)

		return 0, err
	}

	if n > 0 {
		s.logger.Info(identifier, "complete - %d bookings completed", n)

		go func() {
			ctx := context.WithoutCancel(ctx)

			for _, key := range []string{cacheUserBookingsKey, cacheSlotsKey} {
				if err := s.cache.Clear(ctx, helper.BuildCacheKey(key)); err != nil {
					s.logger.Error(identifier, "complete - failed to clear cache: %v", err)
				}
			}
		}()
	}

	return n, nil
}

func (s *bookingService) venue(ctx context.Context, db repository.DBTX, id string) (venueRepo.Venue, error) {
	venueID := helper.PgUUID(id)
	if !venueID.Valid {
		return venueRepo.Venue{}, failure.NotFound(fmt.Sprintf("venue %s not found", id))
	}

	venue, err := s.venueRepo.GetVenueByID(ctx, db, venueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return venueRepo.Venue{}, failure.NotFound(fmt.Sprintf("venue %s not found", id))
		}

		s.logger.Error(identifier, "venue - failed to get venue: %v", err)

		return venueRepo.Venue{}, err
	}

	return venue, nil
}

func (s *bookingService) load(ctx context.Context, db repository.DBTX, id string) (repository.Booking, error) {
	bookingID := helper.PgUUID(id)
	if !bookingID.Valid {
		return repository.Booking{}, failure.NotFound(fmt.Sprintf("booking %s not found", id))
	}

	booking, err := s.repo.GetBookingByID(ctx, db, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Booking{}, failure.NotFound(fmt.Sprintf("booking %s not found", id))
		}

		s.logger.Error(identifier, "load - failed to get booking: %v", err)

		return repository.Booking{}, err
	}

	return booking, nil
}

// canView lets the booker, the venue owner and admins read a booking.
func (s *bookingService) canView(ctx context.Context, actor gdto.Actor, b repository.Booking) error {
	if actor.CanManage(helper.UUIDFromPg(b.UserID)) {
		return nil
	}

	venue, err := s.venueRepo.GetVenueByID(ctx, s.db, b.VenueID)
	if err == nil && helper.UUIDFromPg(venue.OwnerID) == actor.UserID {
		return nil
	}

	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error(identifier, "get - failed to get venue: %v", err)

		return err
	}

	return failure.Forbidden("booking belongs to another user")
}

func (s *bookingService) updateStatus(ctx context.Context, tx pgx.Tx, b entity.Booking) (entity.Booking, error) {
	updated, err := s.repo.UpdateBookingStatus(ctx, tx, repository.UpdateBookingStatusParams{
		ID:        helper.PgUUID(b.ID),
		Status:    string(b.Status),
		UpdatedAt: helper.PgTimestamptz(b.UpdatedAt),
	})
	if err != nil {
		s.logger.Error(identifier, "failed to update booking status: %v", err)

		return b, err
	}

	return toEntity(updated, b.Date.Location()), nil
}

func (s *bookingService) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		s.logger.Error(identifier, "failed to roll back transaction: %v", err)
	}
}

// invalidate drops the booker's cached lists and the cached slots of the booking's day.
func (s *bookingService) invalidate(ctx context.Context, b entity.Booking) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheUserBookingsKey, b.UserID)); err != nil {
			s.logger.Error(identifier, "failed to clear user bookings cache: %v", err)
		}

		if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheSlotsKey, b.VenueID+":"+b.Date.Format(constant.DateFormat))); err != nil {
			s.logger.Error(identifier, "failed to delete slots cache: %v", err)
		}
	}()
}
