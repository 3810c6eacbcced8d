package gdacs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/gdacs-go/internal/cache"
	"github.com/couchcryptid/gdacs-go/internal/observability"
)

const (
	defaultAPIBaseURL      = "https://www.gdacs.org/gdacsapi"
	defaultResourceBaseURL = "https://www.gdacs.org/datareport/resources"

	defaultTimeout       = 30 * time.Second
	defaultCacheTTL      = 5 * time.Minute
	defaultCacheCapacity = 500
)

// List endpoint paths under the API base URL.
const (
	latestEventsPath     = "/api/events/geteventlist/latest"
	latestEvents4AppPath = "/api/events/geteventlist/EVENTS4APP"
	eventsByAreaPath     = "/api/events/geteventlist/eventsbyarea"
	eventDataPath        = "/api/events/geteventdata"
)

var (
	metricsOnce   sync.Once
	sharedMetrics *observability.Metrics
)

// defaultMetrics registers the client metrics with the default Prometheus
// registry exactly once, however many clients the process creates.
func defaultMetrics() *observability.Metrics {
	metricsOnce.Do(func() { sharedMetrics = observability.NewMetrics() })
	return sharedMetrics
}

// Client is a GDACS API reader. Construct it with New; the zero value is not
// usable. A Client is safe for concurrent use.
type Client struct {
	http    *resty.Client
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock

	resourceBaseURL string
	downloadDir     string

	// One memoization cache per operation; no cross-operation invalidation.
	latest4AppCache *cache.TTLCache[*FeatureCollection]
	latestCache     *cache.TTLCache[*FeatureCollection]
	byAreaCache     *cache.TTLCache[*FeatureCollection]
	eventDataCache  *cache.TTLCache[*FeatureCollection]
	eventCache      *cache.TTLCache[*EventRecord]
}

type options struct {
	apiBaseURL      string
	resourceBaseURL string
	timeout         time.Duration
	downloadDir     string
	logger          *slog.Logger
	clock           clockwork.Clock
	cacheTTL        time.Duration
	cacheCapacity   int
	metrics         *observability.Metrics
}

// Option configures a Client.
type Option func(*options)

// WithAPIBaseURL overrides the GDACS API base URL.
func WithAPIBaseURL(u string) Option {
	return func(o *options) { o.apiBaseURL = u }
}

// WithResourceBaseURL overrides the base URL for static per-event resources.
func WithResourceBaseURL(u string) Option {
	return func(o *options) { o.resourceBaseURL = u }
}

// WithTimeout sets the HTTP timeout for every request. Defaults to 30s.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithDownloadDir sets the directory shapefile archives are extracted into.
// Defaults to the working directory.
func WithDownloadDir(dir string) Option {
	return func(o *options) { o.downloadDir = dir }
}

// WithLogger attaches a logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock injects the time source used for cache expiry and request
// timing. Tests pass a clockwork fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithCacheTTL sets how long memoized results stay valid. Defaults to 5m.
func WithCacheTTL(d time.Duration) Option {
	return func(o *options) { o.cacheTTL = d }
}

// WithCacheCapacity bounds the number of distinct calls each operation's
// cache holds. Defaults to 500.
func WithCacheCapacity(n int) Option {
	return func(o *options) { o.cacheCapacity = n }
}

// withMetrics is test-only: it avoids registering with the default registry.
func withMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New creates a GDACS API client.
func New(opts ...Option) *Client {
	o := options{
		apiBaseURL:      defaultAPIBaseURL,
		resourceBaseURL: defaultResourceBaseURL,
		timeout:         defaultTimeout,
		downloadDir:     ".",
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		clock:           clockwork.NewRealClock(),
		cacheTTL:        defaultCacheTTL,
		cacheCapacity:   defaultCacheCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = defaultMetrics()
	}

	r := resty.New()
	r.SetBaseURL(o.apiBaseURL)
	r.SetTimeout(o.timeout)
	r.SetHeader("Accept", "application/json")

	return &Client{
		http:            r,
		logger:          o.logger,
		metrics:         o.metrics,
		clock:           o.clock,
		resourceBaseURL: o.resourceBaseURL,
		downloadDir:     o.downloadDir,

		latest4AppCache: cache.New[*FeatureCollection](o.cacheCapacity, o.cacheTTL, o.clock),
		latestCache:     cache.New[*FeatureCollection](o.cacheCapacity, o.cacheTTL, o.clock),
		byAreaCache:     cache.New[*FeatureCollection](o.cacheCapacity, o.cacheTTL, o.clock),
		eventDataCache:  cache.New[*FeatureCollection](o.cacheCapacity, o.cacheTTL, o.clock),
		eventCache:      cache.New[*EventRecord](o.cacheCapacity, o.cacheTTL, o.clock),
	}
}

// fetchCollection issues one GET against a list endpoint and applies the
// shared status-code policy: 200 parses the body, 204 is an empty collection,
// 404 maps to ErrEventNotFound when mapNotFound is set, anything else is an
// upstream failure.
func (c *Client) fetchCollection(ctx context.Context, op, path string, params map[string]string, mapNotFound bool) (*FeatureCollection, error) {
	start := c.clock.Now()
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	c.metrics.RequestDuration.WithLabelValues(op).Observe(c.clock.Since(start).Seconds())
	if err != nil {
		c.metrics.APIRequests.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("%s: %w: %v", op, ErrAPIUnavailable, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var fc FeatureCollection
		if err := json.Unmarshal(resp.Body(), &fc); err != nil {
			c.metrics.APIRequests.WithLabelValues(op, "error").Inc()
			return nil, fmt.Errorf("%s: %w: decode response: %v", op, ErrAPIUnavailable, err)
		}
		c.metrics.APIRequests.WithLabelValues(op, "success").Inc()
		c.logger.Debug("gdacs request", "operation", op, "features", len(fc.Features))
		return &fc, nil

	case http.StatusNoContent:
		c.metrics.APIRequests.WithLabelValues(op, "empty").Inc()
		return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}, nil

	case http.StatusNotFound:
		if mapNotFound {
			c.metrics.APIRequests.WithLabelValues(op, "not_found").Inc()
			return nil, fmt.Errorf("%s: %w: %w", op, ErrAPIUnavailable, ErrEventNotFound)
		}
	}

	c.metrics.APIRequests.WithLabelValues(op, "error").Inc()
	return nil, fmt.Errorf("%s: %w: status %d: %s", op, ErrAPIUnavailable, resp.StatusCode(), resp.String())
}

// cacheLookup records a hit/miss metric alongside the cache probe.
func cacheLookup[V any](c *Client, store *cache.TTLCache[V], op, key string) (V, bool) {
	v, ok := store.Get(key)
	result := "miss"
	if ok {
		result = "hit"
	}
	c.metrics.CacheLookups.WithLabelValues(op, result).Inc()
	return v, ok
}
