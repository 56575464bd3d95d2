package places

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/savioruz/kickmatch/internal/domains/venues/entity"
	"github.com/savioruz/kickmatch/pkg/logger"
	"github.com/valyala/fasthttp"
)

//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client_mock.go -package=mock github.com/savioruz/kickmatch/internal/domains/venues/places Client

const (
	DefaultBaseURL      = "https://api.geoapify.com/v2/places"
	DefaultRadiusMeters = 15000
	DefaultLimit        = 20

	_defaultConnectTimeout = 10 * time.Second
	_defaultReadTimeout    = 10 * time.Second
)

var (
	DefaultCategories = []string{"sport.pitch", "sport.stadium", "leisure.park", "activity.sport_club"}
	TextCategories    = []string{"sport.pitch", "sport.stadium", "leisure.sports_centre", "leisure.park", "activity.sport_club"}
)

type Client interface {
	Search(ctx context.Context, q SearchQuery) ([]entity.Venue, error)
	SearchByText(ctx context.Context, text string, lat, lon float64) ([]entity.Venue, error)
}

type SearchQuery struct {
	Lat          float64
	Lon          float64
	RadiusMeters int
	Categories   []string
	Text         string
}

type Config struct {
	BaseURL        string
	APIKey         string
	RadiusMeters   int
	Limit          int
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
}

type GeoapifyClient struct {
	client *fasthttp.Client
	cfg    Config
	log    logger.Interface
}

var _ Client = (*GeoapifyClient)(nil)

func NewGeoapifyClient(cfg Config, log logger.Interface) *GeoapifyClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.RadiusMeters <= 0 {
		cfg.RadiusMeters = DefaultRadiusMeters
	}

	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}

	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = _defaultConnectTimeout
	}

	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = _defaultReadTimeout
	}

	connectTimeout := cfg.ConnectTimeout

	return &GeoapifyClient{
		client: &fasthttp.Client{
			Name:         "kickmatch",
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.ReadTimeout,
			Dial: func(addr string) (net.Conn, error) {
				return fasthttp.DialTimeout(addr, connectTimeout)
			},
		},
		cfg: cfg,
		log: log,
	}
}

func (c *GeoapifyClient) Search(ctx context.Context, q SearchQuery) ([]entity.Venue, error) {
	if q.RadiusMeters <= 0 {
		q.RadiusMeters = c.cfg.RadiusMeters
	}

	if len(q.Categories) == 0 {
		q.Categories = DefaultCategories
	}

	body, err := c.get(ctx, c.buildURI(q))
	if err != nil {
		return nil, err
	}

	return parseFeatureCollection(body, q.Lat, q.Lon, c.log), nil
}

func (c *GeoapifyClient) SearchByText(ctx context.Context, text string, lat, lon float64) ([]entity.Venue, error) {
	return c.Search(ctx, SearchQuery{
		Lat:        lat,
		Lon:        lon,
		Categories: TextCategories,
		Text:       strings.TrimSpace(text),
	})
}

func (c *GeoapifyClient) buildURI(q SearchQuery) string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)

	lon := formatCoord(q.Lon)
	lat := formatCoord(q.Lat)

	args.Add("categories", strings.Join(q.Categories, ","))
	args.Add("filter", "circle:"+lon+","+lat+","+strconv.Itoa(q.RadiusMeters))
	args.Add("bias", "proximity:"+lon+","+lat)

	if q.Text != "" {
		args.Add("text", q.Text)
	}

	args.Add("limit", strconv.Itoa(c.cfg.Limit))
	args.Add("apiKey", c.cfg.APIKey)

	return c.cfg.BaseURL + "?" + args.String()
}

type reply struct {
	status int
	body   []byte
	err    error
}

// get performs the request on its own goroutine so a cancelled ctx returns immediately.
// The goroutine owns the pooled request and response.
func (c *GeoapifyClient) get(ctx context.Context, uri string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &SearchError{Err: err}
	}

	deadline := time.Now().Add(c.cfg.ConnectTimeout + c.cfg.ReadTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	done := make(chan reply, 1)

	go func() {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()

		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(uri)
		req.Header.SetMethod(fasthttp.MethodGet)
		req.Header.Set(fasthttp.HeaderAccept, "application/json")

		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			done <- reply{err: err}

			return
		}

		done <- reply{
			status: resp.StatusCode(),
			body:   append([]byte(nil), resp.Body()...),
		}
	}()

	select {
	case <-ctx.Done():
		return nil, &SearchError{Err: ctx.Err()}
	case r := <-done:
		if r.err != nil {
			return nil, &SearchError{Err: r.err}
		}

		if r.status < fasthttp.StatusOK || r.status >= fasthttp.StatusMultipleChoices {
			return nil, &SearchError{StatusCode: r.status, Body: string(r.body)}
		}

		return r.body, nil
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
