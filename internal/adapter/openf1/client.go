package openf1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/cache"
	"github.com/Temutjin2k/lapla/pkg/hasher"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/metrics"
)

const (
	DefaultBaseURL = "https://api.openf1.org/v1"

	maxErrorBody = 512
)

type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client talks to the OpenF1 REST API and normalizes its records into domain models.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	lookups cache.Store
	l       logger.Logger
}

// New builds a client. lookups may be nil; it caches meeting and session resolution.
func New(cfg Config, lookups cache.Store, l logger.Logger) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		lookups: lookups,
		l:       l,
	}
}

// filter is one query condition. The provider expresses ranges with operators
// inside the key (date>=...), so the query string is assembled by hand.
type filter struct {
	key   string
	op    string
	value string
}

func eq(key string, v any) filter {
	return filter{key: key, op: "=", value: fmt.Sprint(v)}
}

func gte(key, v string) filter { return filter{key: key, op: ">=", value: v} }
func lt(key, v string) filter  { return filter{key: key, op: "<", value: v} }

func encode(filters []filter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, url.QueryEscape(f.key)+f.op+url.QueryEscape(f.value))
	}
	return strings.Join(parts, "&")
}

// get fetches one endpoint into out. An empty JSON array is reported as not found.
func (c *Client) get(ctx context.Context, op, endpoint string, out any, filters ...filter) (err error) {
	start := time.Now()
	defer func() { metrics.RecordProviderCall(op, err, time.Since(start)) }()

	if err := c.limiter.Wait(ctx); err != nil {
		return unavailable(op, 0, fmt.Errorf("rate limiter: %w", err))
	}

	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(filters) > 0 {
		u += "?" + encode(filters)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return unavailable(op, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return unavailable(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return notFound(op, "%s returned 404", endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return unavailable(op, resp.StatusCode, errors.New(strings.TrimSpace(string(body))))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return unavailable(op, resp.StatusCode, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return decodeFailed(op, err)
	}
	if len(items) == 0 {
		return notFound(op, "%s returned no records", endpoint)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return decodeFailed(op, err)
	}

	c.l.Debug(ctx, "provider call", "op", op, "records", len(items), "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// logFailure adds the provider context to err so it is logged once by the caller.
func logFailure(ctx context.Context, err error) error {
	ctx = wrap.WithAction(ctx, types.ActionProviderFailed)
	return wrap.Error(ctx, err)
}

func lookupKey(parts ...any) string {
	s := make([]string, 0, len(parts)+1)
	s = append(s, "openf1")
	for _, p := range parts {
		s = append(s, fmt.Sprint(p))
	}
	return hasher.Key(s...)
}
