package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/kickmatch/config"
	"github.com/savioruz/kickmatch/internal/domains/venues/catalog"
	"github.com/savioruz/kickmatch/internal/domains/venues/dto"
	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/internal/domains/venues/places"
	"github.com/savioruz/kickmatch/internal/domains/venues/repository"
	"github.com/savioruz/kickmatch/pkg/constant"
	"github.com/savioruz/kickmatch/pkg/failure"
	"github.com/savioruz/kickmatch/pkg/gdto"
	"github.com/savioruz/kickmatch/pkg/geo"
	"github.com/savioruz/kickmatch/pkg/helper"
	"github.com/savioruz/kickmatch/pkg/logger"
	"github.com/savioruz/kickmatch/pkg/postgres"
	"github.com/savioruz/kickmatch/pkg/redis"
	"github.com/savioruz/kickmatch/pkg/storage"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service_mock.go -package=mock github.com/savioruz/kickmatch/internal/domains/venues/service VenueService

type VenueService interface {
	Search(ctx context.Context, sessionKey string, req dto.SearchRequest) (dto.CatalogResponse, error)
	Catalog(ctx context.Context, sessionKey string, req dto.FilterRequest) (dto.CatalogResponse, error)
	Relocate(ctx context.Context, sessionKey string, req dto.RelocateRequest) (dto.CatalogResponse, error)
	Create(ctx context.Context, actor gdto.Actor, req dto.VenueCreateRequest) (dto.VenueResponse, error)
	Get(ctx context.Context, id string) (dto.VenueResponse, error)
	GetByOwner(ctx context.Context, ownerID string, req gdto.PaginationRequest) (dto.GetVenuesResponse, error)
	Update(ctx context.Context, actor gdto.Actor, id string, req dto.VenueUpdateRequest) (dto.VenueResponse, error)
	Delete(ctx context.Context, actor gdto.Actor, id string) error
	SetActive(ctx context.Context, actor gdto.Actor, id string, active bool) (dto.VenueResponse, error)
	AddPhoto(ctx context.Context, actor gdto.Actor, id string, file io.Reader, filename, contentType string) (dto.VenueResponse, error)
	RemovePhoto(ctx context.Context, actor gdto.Actor, id string, url string) (dto.VenueResponse, error)
	Amenities() []entity.Amenity
	SweepSessions(ctx context.Context) int
}

type venueService struct {
	db       postgres.PgxIface
	repo     repository.Querier
	places   places.Client
	registry *catalog.Registry
	cache    redis.IRedisCache
	storage  storage.Interface
	cfg      *config.Config
	logger   logger.Interface
}

func New(
	db postgres.PgxIface,
	repo repository.Querier,
	p places.Client,
	registry *catalog.Registry,
	cache redis.IRedisCache,
	st storage.Interface,
	cfg *config.Config,
	l logger.Interface,
) VenueService {
	return &venueService{
		db:       db,
		repo:     repo,
		places:   p,
		registry: registry,
		cache:    cache,
		storage:  st,
		cfg:      cfg,
		logger:   l,
	}
}

const (
	cacheGetVenueKey       = "venue"
	cacheGetOwnerVenuesKey = "venues:owner"
	cacheSearchKey         = "venues:search"

	identifier = "service - venue - %s"
)

func (s *venueService) Search(ctx context.Context, sessionKey string, req dto.SearchRequest) (res dto.CatalogResponse, err error) {
	origin := catalog.DefaultOrigin
	if req.Lat != nil && req.Lon != nil {
		origin = geo.Point{Lat: *req.Lat, Lon: *req.Lon}
	}

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = s.cfg.Places.RadiusMeters
	}

	if radius <= 0 {
		radius = places.DefaultRadiusMeters
	}

	snap, err := s.registry.Session(sessionKey).Refresh(ctx, func(ctx context.Context) (*catalog.Snapshot, error) {
		return s.fetch(ctx, origin, radius, req.Query)
	})
	if err != nil {
		if errors.Is(err, catalog.ErrSuperseded) {
			s.logger.Info(identifier, "search - superseded for session %s", sessionKey)

			return res, failure.Conflict("search superseded by a newer request")
		}

		s.logger.Error(identifier, "search - failed: %v", err)

		return res, err
	}

	return res.FromSnapshot(snap, snap.ApplyFilters(req.ToFilter())), nil
}

// fetch queries the places provider and the registered venues concurrently and merges them.
// Provider failures are absorbed: the catalog falls back to the demo set instead.
func (s *venueService) fetch(ctx context.Context, origin geo.Point, radiusMeters int, text string) (*catalog.Snapshot, error) {
	var (
		live       []entity.Venue
		liveErr    error
		registered []entity.Venue
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		live, liveErr = s.searchPlaces(gctx, origin, radiusMeters, text)

		return nil
	})

	g.Go(func() error {
		registered = s.registeredNear(gctx, origin, radiusMeters)

		return nil
	})

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if liveErr != nil {
		s.logger.Warn(identifier, "search - places unavailable: %v", liveErr)
	}

	merged, source := mergeVenues(registered, live)
	snap := catalog.Resolve(merged, source, nil, origin)

	if snap.Source() == entity.SourceDemo {
		s.logger.Info(identifier, "search - no live results, serving demo catalog")
	}

	return snap, nil
}

func (s *venueService) searchPlaces(ctx context.Context, origin geo.Point, radiusMeters int, text string) ([]entity.Venue, error) {
	keyArgs := map[string]string{
		"lat":    strconv.FormatFloat(origin.Lat, 'f', 3, 64),
		"lon":    strconv.FormatFloat(origin.Lon, 'f', 3, 64),
		"radius": strconv.Itoa(radiusMeters),
		"text":   text,
	}
	cacheKey := helper.BuildCacheKey(cacheSearchKey, helper.GenerateUniqueKey(keyArgs))

	var cached []entity.Venue
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
		s.logger.Debug(identifier, "search - cache hit %s", cacheKey)

		return cached, nil
	}

	var (
		venues []entity.Venue
		err    error
	)

	if text != "" {
		venues, err = s.places.SearchByText(ctx, text, origin.Lat, origin.Lon)
	} else {
		venues, err = s.places.Search(ctx, places.SearchQuery{
			Lat:          origin.Lat,
			Lon:          origin.Lon,
			RadiusMeters: radiusMeters,
		})
	}

	if err != nil {
		return nil, err
	}

	if len(venues) > 0 {
		go func() {
			if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, venues, s.cfg.Cache.SearchDuration); err != nil {
				s.logger.Error(identifier, "search - failed to save cache: %v", err)
			}
		}()
	}

	return venues, nil
}

func (s *venueService) registeredNear(ctx context.Context, origin geo.Point, radiusMeters int) []entity.Venue {
	radiusKm := float64(radiusMeters) / 1000
	sw, ne := geo.BoundingBox(origin, radiusKm)

	models, err := s.repo.ListActiveVenuesInBox(ctx, s.db, repository.ListActiveVenuesInBoxParams{
		MinLat: sw.Lat,
		MaxLat: ne.Lat,
		MinLon: sw.Lon,
		MaxLon: ne.Lon,
	})
	if err != nil {
		s.logger.Error(identifier, "search - failed to list registered venues: %v", err)

		return nil
	}

	out := make([]entity.Venue, 0, len(models))

	for _, m := range models {
		v := toEntity(m)
		if geo.Between(origin, v.Point()) <= radiusKm {
			out = append(out, v)
		}
	}

	return out
}

func (s *venueService) Catalog(_ context.Context, sessionKey string, req dto.FilterRequest) (res dto.CatalogResponse, err error) {
	session, ok := s.registry.Lookup(sessionKey)
	if !ok {
		return res, failure.NotFound("no search has been made in this session")
	}

	snap, err := session.Current()
	if err != nil {
		return res, failure.NotFound("no search has been made in this session")
	}

	return res.FromSnapshot(snap, snap.ApplyFilters(req.ToFilter())), nil
}

func (s *venueService) Relocate(_ context.Context, sessionKey string, req dto.RelocateRequest) (res dto.CatalogResponse, err error) {
	session, ok := s.registry.Lookup(sessionKey)
	if !ok {
		return res, failure.NotFound("no search has been made in this session")
	}

	snap, err := session.Relocate(*req.Lat, *req.Lon)
	if err != nil {
		return res, failure.NotFound("no search has been made in this session")
	}

	return res.FromSnapshot(snap, snap.Venues()), nil
}

func (s *venueService) Create(ctx context.Context, actor gdto.Actor, req dto.VenueCreateRequest) (res dto.VenueResponse, err error) {
	amenities, err := entity.NormalizeAmenities(req.Amenities)
	if err != nil {
		return res, err
	}

	venue, err := s.repo.InsertVenue(ctx, s.db, repository.InsertVenueParams{
		OwnerID:      helper.PgUUID(actor.UserID),
		Name:         req.Name,
		Address:      req.Address,
		Size:         req.Size,
		Surface:      req.Surface,
		PricePerHour: req.PricePerHour,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		Amenities:    amenities,
		Photos:       []string{},
		Active:       true,
		Phone:        helper.PgString(req.Phone),
		OpeningHours: helper.PgString(req.OpeningHours),
		Description:  helper.PgString(req.Description),
	})
	if err != nil {
		s.logger.Error(identifier, "create - failed to insert venue: %v", err)

		return res, err
	}

	s.invalidate(ctx, "")

	return res.FromEntity(toEntity(venue)), nil
}

func (s *venueService) Get(ctx context.Context, id string) (res dto.VenueResponse, err error) {
	cacheKey := helper.BuildCacheKey(cacheGetVenueKey, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	venue, err := s.load(ctx, s.db, id)
	if err != nil {
		return res, err
	}

	res = res.FromEntity(toEntity(venue))

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "get - failed to save cache: %v", err)
		}
	}()

	return res, nil
}

func (s *venueService) GetByOwner(ctx context.Context, ownerID string, req gdto.PaginationRequest) (res dto.GetVenuesResponse, err error) {
	page, limit := helper.DefaultPagination(req.Page, req.Limit)

	keyArgs := map[string]string{
		"owner": ownerID,
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
	cacheKey := helper.BuildCacheKey(cacheGetOwnerVenuesKey, helper.GenerateUniqueKey(keyArgs))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		s.logger.Debug(identifier, "getByOwner - cache hit for owner %s", ownerID)

		return res, nil
	}

	owner := helper.PgUUID(ownerID)

	total, err := s.repo.CountVenuesByOwner(ctx, s.db, owner)
	if err != nil {
		s.logger.Error(identifier, "getByOwner - failed to count venues: %v", err)

		return res, err
	}

	venues, err := s.repo.ListVenuesByOwner(ctx, s.db, repository.ListVenuesByOwnerParams{
		OwnerID: owner,
		Limit:   int32(limit),                               //nolint:gosec // bounded by validation
		Offset:  int32(helper.CalculateOffset(page, limit)), //nolint:gosec // bounded by validation
	})
	if err != nil {
		s.logger.Error(identifier, "getByOwner - failed to list venues: %v", err)

		return res, err
	}

	res.FromEntities(toEntities(venues), int(total), limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.Duration); err != nil {
			s.logger.Error(identifier, "getByOwner - failed to save cache: %v", err)
		}
	}()

	return res, nil
}

func (s *venueService) Update(ctx context.Context, actor gdto.Actor, id string, req dto.VenueUpdateRequest) (res dto.VenueResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "update - failed to begin transaction: %v", err)

		return res, err
	}

	defer s.rollback(ctx, tx)

	venue, err := s.loadManaged(ctx, tx, actor, id)
	if err != nil {
		return res, err
	}

	params := repository.UpdateVenueParams{
		ID:           venue.ID,
		Name:         venue.Name,
		Address:      venue.Address,
		Size:         venue.Size,
		Surface:      venue.Surface,
		PricePerHour: venue.PricePerHour,
		Latitude:     venue.Latitude,
		Longitude:    venue.Longitude,
		Amenities:    venue.Amenities,
		Phone:        venue.Phone,
		OpeningHours: venue.OpeningHours,
		Description:  venue.Description,
	}

	applyUpdate(&params, req)

	if req.Amenities != nil {
		if params.Amenities, err = entity.NormalizeAmenities(req.Amenities); err != nil {
			return res, err
		}
	}

	updated, err := s.repo.UpdateVenue(ctx, tx, params)
	if err != nil {
		s.logger.Error(identifier, "update - failed to update venue: %v", err)

		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "update - failed to commit: %v", err)

		return res, err
	}

	s.invalidate(ctx, id)

	return res.FromEntity(toEntity(updated)), nil
}

func applyUpdate(p *repository.UpdateVenueParams, req dto.VenueUpdateRequest) {
	if req.Name != "" {
		p.Name = req.Name
	}

	if req.Address != "" {
		p.Address = req.Address
	}

	if req.Size != "" {
		p.Size = req.Size
	}

	if req.Surface != "" {
		p.Surface = req.Surface
	}

	if req.PricePerHour != nil {
		p.PricePerHour = *req.PricePerHour
	}

	if req.Latitude != nil {
		p.Latitude = *req.Latitude
	}

	if req.Longitude != nil {
		p.Longitude = *req.Longitude
	}

	if req.Phone != nil {
		p.Phone = helper.PgString(*req.Phone)
	}

	if req.OpeningHours != nil {
		p.OpeningHours = helper.PgString(*req.OpeningHours)
	}

	if req.Description != nil {
		p.Description = helper.PgString(*req.Description)
	}
}

func (s *venueService) Delete(ctx context.Context, actor gdto.Actor, id string) error {
	venue, err := s.loadManaged(ctx, s.db, actor, id)
	if err != nil {
		return err
	}

	affected, err := s.repo.DeleteVenue(ctx, s.db, venue.ID)
	if err != nil {
		s.logger.Error(identifier, "delete - failed to delete venue: %v", err)

		return err
	}

	if affected == 0 {
		return failure.NotFound(fmt.Sprintf("venue %s not found", id))
	}

	for _, photo := range venue.Photos {
		if err := s.storage.DeleteFile(ctx, photo); err != nil {
			s.logger.Warn(identifier, "delete - failed to remove photo %s: %v", photo, err)
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *venueService) SetActive(ctx context.Context, actor gdto.Actor, id string, active bool) (res dto.VenueResponse, err error) {
	venue, err := s.loadManaged(ctx, s.db, actor, id)
	if err != nil {
		return res, err
	}

	updated, err := s.repo.SetVenueActive(ctx, s.db, repository.SetVenueActiveParams{
		ID:     venue.ID,
		Active: active,
	})
	if err != nil {
		s.logger.Error(identifier, "setActive - failed to update venue: %v", err)

		return res, err
	}

	s.invalidate(ctx, id)

	return res.FromEntity(toEntity(updated)), nil
}

func (s *venueService) AddPhoto(ctx context.Context, actor gdto.Actor, id string, file io.Reader, filename, contentType string) (res dto.VenueResponse, err error) {
	if !helper.IsValidImageType(contentType) {
		return res, failure.BadRequestFromString("unsupported image type " + contentType)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "addPhoto - failed to begin transaction: %v", err)

		return res, err
	}

	defer s.rollback(ctx, tx)

	venue, err := s.loadManaged(ctx, tx, actor, id)
	if err != nil {
		return res, err
	}

	if len(venue.Photos) >= constant.VenueMaxPhotos {
		return res, failure.BadRequestFromString(fmt.Sprintf("a venue can have at most %d photos", constant.VenueMaxPhotos))
	}

	url, err := s.storage.UploadFile(ctx, file, filename)
	if err != nil {
		s.logger.Error(identifier, "addPhoto - failed to upload: %v", err)

		return res, err
	}

	updated, err := s.repo.UpdateVenuePhotos(ctx, tx, repository.UpdateVenuePhotosParams{
		ID:     venue.ID,
		Photos: append(slices.Clone(venue.Photos), url),
	})
	if err == nil {
		err = tx.Commit(ctx)
	}

	if err != nil {
		s.logger.Error(identifier, "addPhoto - failed to save photo: %v", err)

		if delErr := s.storage.DeleteFile(context.WithoutCancel(ctx), url); delErr != nil {
			s.logger.Warn(identifier, "addPhoto - failed to remove orphan %s: %v", url, delErr)
		}

		return res, err
	}

	s.invalidate(ctx, id)

	return res.FromEntity(toEntity(updated)), nil
}

func (s *venueService) RemovePhoto(ctx context.Context, actor gdto.Actor, id string, url string) (res dto.VenueResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "removePhoto - failed to begin transaction: %v", err)

		return res, err
	}

	defer s.rollback(ctx, tx)

	venue, err := s.loadManaged(ctx, tx, actor, id)
	if err != nil {
		return res, err
	}

	idx := slices.Index(venue.Photos, url)
	if idx < 0 {
		return res, failure.NotFound("photo not found on venue")
	}

	updated, err := s.repo.UpdateVenuePhotos(ctx, tx, repository.UpdateVenuePhotosParams{
		ID:     venue.ID,
		Photos: slices.Delete(slices.Clone(venue.Photos), idx, idx+1),
	})
	if err != nil {
		s.logger.Error(identifier, "removePhoto - failed to update photos: %v", err)

		return res, err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "removePhoto - failed to commit: %v", err)

		return res, err
	}

	if err := s.storage.DeleteFile(ctx, url); err != nil {
		s.logger.Warn(identifier, "removePhoto - failed to delete %s from storage: %v", url, err)
	}

	s.invalidate(ctx, id)

	return res.FromEntity(toEntity(updated)), nil
}

func (s *venueService) Amenities() []entity.Amenity {
	return entity.Amenities()
}

func (s *venueService) SweepSessions(_ context.Context) int {
	removed := s.registry.Sweep()
	if removed > 0 {
		s.logger.Info(identifier, "sweep - removed %d idle catalog sessions", removed)
	}

	return removed
}

func (s *venueService) load(ctx context.Context, db repository.DBTX, id string) (repository.Venue, error) {
	venueID := helper.PgUUID(id)
	if !venueID.Valid {
		return repository.Venue{}, failure.NotFound(fmt.Sprintf("venue %s not found", id))
	}

	venue, err := s.repo.GetVenueByID(ctx, db, venueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Venue{}, failure.NotFound(fmt.Sprintf("venue %s not found", id))
		}

		s.logger.Error(identifier, "load - failed to get venue: %v", err)

		return repository.Venue{}, err
	}

	return venue, nil
}

func (s *venueService) loadManaged(ctx context.Context, db repository.DBTX, actor gdto.Actor, id string) (repository.Venue, error) {
	venue, err := s.load(ctx, db, id)
	if err != nil {
		return venue, err
	}

	if !actor.CanManage(helper.UUIDFromPg(venue.OwnerID)) {
		return repository.Venue{}, failure.Forbidden("venue belongs to another owner")
	}

	return venue, nil
}

func (s *venueService) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		s.logger.Error(identifier, "failed to roll back transaction: %v", err)
	}
}

// invalidate drops cached owner listings and, when id is set, the cached venue.
func (s *venueService) invalidate(ctx context.Context, id string) {
	go func() {
		ctx := context.WithoutCancel(ctx)

		if id != "" {
			if err := s.cache.Delete(ctx, helper.BuildCacheKey(cacheGetVenueKey, id)); err != nil {
				s.logger.Error(identifier, "failed to delete venue cache: %v", err)
			}
		}

		if err := s.cache.Clear(ctx, helper.BuildCacheKey(cacheGetOwnerVenuesKey)); err != nil {
			s.logger.Error(identifier, "failed to clear owner venues cache: %v", err)
		}
	}()
}
