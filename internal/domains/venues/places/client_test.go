package places_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/savioruz/kickmatch/internal/domains/venues/catalog"
	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/internal/domains/venues/places"
	"github.com/savioruz/kickmatch/pkg/geo"
	"github.com/savioruz/kickmatch/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	originLat = 3.4516
	originLon = -76.5320
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-76.5225, 3.4376]},
      "properties": {
        "place_id": "p-1",
        "name": "Cancha Fútbol 11 Municipal",
        "street": "Calle 25",
        "housenumber": "100-50",
        "city": "Cali",
        "country": "Colombia",
        "description": "grama natural",
        "opening_hours": "Mo-Su 06:00-22:00",
        "contact:phone": "+57 300 000 0000",
        "rating": 4.2,
        "datasource": {"raw": {"parking": "yes", "lit": "yes"}}
      }
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-76.53]},
      "properties": {"place_id": "broken", "name": "No coordinates"}
    },
    {
      "type": "Feature",
      "geometry": {"type": "Point", "coordinates": [-76.5300, 3.4500]},
      "properties": {"place_id": "p-2", "city": "Cali", "sport": 5, "surface": "artificial_turf"}
    },
    "not-an-object"
  ]
}`

func newLogger(t *testing.T) *mock.MockInterface {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mock.NewMockInterface(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return log
}

func newClient(t *testing.T, baseURL string) *places.GeoapifyClient {
	t.Helper()

	return places.NewGeoapifyClient(places.Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		ConnectTimeout: time.Second,
		ReadTimeout:    2 * time.Second,
	}, newLogger(t))
}

func TestSearch_ParsesFeatures(t *testing.T) {
	var query url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(featureCollection))
	}))
	t.Cleanup(srv.Close)

	venues, err := newClient(t, srv.URL).Search(context.Background(), places.SearchQuery{Lat: originLat, Lon: originLon})
	require.NoError(t, err)

	assert.Equal(t, "sport.pitch,sport.stadium,leisure.park,activity.sport_club", query.Get("categories"))
	assert.Equal(t, "circle:-76.532,3.4516,15000", query.Get("filter"))
	assert.Equal(t, "proximity:-76.532,3.4516", query.Get("bias"))
	assert.Equal(t, "20", query.Get("limit"))
	assert.Equal(t, "test-key", query.Get("apiKey"))
	assert.Empty(t, query.Get("text"))

	require.Len(t, venues, 2)

	first := venues[0]
	assert.Equal(t, "p-1", first.ID)
	assert.Equal(t, "Cancha Fútbol 11 Municipal", first.Name)
	assert.Equal(t, "Calle 25 100-50, Cali, Colombia", first.Address)
	assert.Equal(t, entity.Size11, first.Size)
	assert.Equal(t, entity.SurfaceNatural, first.Surface)
	assert.Equal(t, []string{entity.AmenityParking, entity.AmenityLighting}, first.Amenities)
	assert.Equal(t, "+57 300 000 0000", first.Phone)
	assert.Equal(t, "Mo-Su 06:00-22:00", first.OpeningHours)
	assert.InDelta(t, 4.2, first.Rating, 1e-9)
	assert.InDelta(t, 1.88, first.DistanceKm, 0.05)
	assert.Equal(t, entity.SourcePlaces, first.Source)
	assert.True(t, first.Active)

	second := venues[1]
	assert.Equal(t, places.DefaultVenueName, second.Name)
	assert.Equal(t, "Cali", second.Address)
	assert.Equal(t, entity.Size5, second.Size)
	assert.Equal(t, entity.SurfaceSynthetic, second.Surface)
	assert.Empty(t, second.Amenities)
}

func TestSearchByText_AddsTextAndSportsCentre(t *testing.T) {
	var query url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	t.Cleanup(srv.Close)

	venues, err := newClient(t, srv.URL).SearchByText(context.Background(), "  el diamante ", originLat, originLon)
	require.NoError(t, err)
	assert.Empty(t, venues)

	assert.Equal(t, "el diamante", query.Get("text"))
	assert.Equal(t, "sport.pitch,sport.stadium,leisure.sports_centre,leisure.park,activity.sport_club", query.Get("categories"))
}

func TestSearch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid apiKey"}`))
	}))
	t.Cleanup(srv.Close)

	venues, err := newClient(t, srv.URL).Search(context.Background(), places.SearchQuery{Lat: originLat, Lon: originLon})
	assert.Nil(t, venues)

	var searchErr *places.SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Equal(t, http.StatusUnauthorized, searchErr.StatusCode)
	assert.Equal(t, `{"error":"Invalid apiKey"}`, searchErr.Body)
}

func TestSearch_UnreadableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	t.Cleanup(srv.Close)

	venues, err := newClient(t, srv.URL).Search(context.Background(), places.SearchQuery{Lat: originLat, Lon: originLon})
	require.NoError(t, err)
	assert.NotNil(t, venues)
	assert.Empty(t, venues)
}

func TestSearch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(300 * time.Millisecond):
		}

		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newClient(t, srv.URL).Search(ctx, places.SearchQuery{Lat: originLat, Lon: originLon})

	var searchErr *places.SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSearch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	_, err := newClient(t, baseURL).Search(context.Background(), places.SearchQuery{Lat: originLat, Lon: originLon})

	var searchErr *places.SearchError
	require.ErrorAs(t, err, &searchErr)
	assert.Error(t, searchErr.Err)
}

func TestSearch_FilteredVenueRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(featureCollection))
	}))
	t.Cleanup(srv.Close)

	venues, err := newClient(t, srv.URL).Search(context.Background(), places.SearchQuery{Lat: originLat, Lon: originLon})
	require.NoError(t, err)
	require.NotEmpty(t, venues)

	origin := geo.Point{Lat: originLat, Lon: originLon}
	size := venues[0].Size
	surface := venues[0].Surface
	maxPrice := 1000000.0

	out := catalog.NewSnapshot(venues, entity.SourcePlaces, origin).ApplyFilters(catalog.Filter{
		Text:     "municipal",
		Size:     &size,
		Surface:  &surface,
		MaxPrice: &maxPrice,
	})
	require.Len(t, out, 1)

	got := out[0]
	want := venues[0]
	got.DistanceKm, want.DistanceKm = 0, 0
	assert.Equal(t, want, got)
}
