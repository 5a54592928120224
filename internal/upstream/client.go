package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"prisonerprofile/internal/platform/config"
	"prisonerprofile/internal/platform/metrics"
	"prisonerprofile/pkg/platform/sentinel"
)

// maxResponseBody bounds how much of an upstream response is read; profile
// section payloads are small and an unbounded read would let a broken
// upstream exhaust memory.
const maxResponseBody = 4 << 20

// Client is the shared base for every upstream REST API client. It owns the
// per-API timeout, circuit breaker, tracing and call metrics so the
// per-endpoint clients stay declarative.
type Client struct {
	name    string
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewClient builds a Client for one upstream API. The timeout applies per
// call; a timeout surfaces as an ordinary error and is handled identically to
// any other failure.
func NewClient(name string, cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Not-found and other 4xx responses are answers, not outages; only
		// transport failures and 5xx trip the breaker.
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, sentinel.ErrNotFound) {
				return true
			}
			var se *StatusError
			if errors.As(err, &se) {
				return !se.IsServerError()
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("upstream circuit state change",
				"api", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Client{
		name:    name,
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		logger:  logger,
		tracer:  otel.Tracer("prisonerprofile/internal/upstream"),
	}
}

// Name returns the upstream API name used in logs and metrics.
func (c *Client) Name() string {
	return c.name
}

// Get issues an authenticated GET and decodes the JSON response into out.
// A 404 is returned as sentinel.ErrNotFound (wrapped); other non-2xx
// responses are returned as *StatusError carrying the HTTP status. out may be
// nil to discard the body.
func (c *Client) Get(ctx context.Context, token, path string, out any) error {
	ctx, span := c.tracer.Start(ctx, c.name+" GET",
		trace.WithAttributes(
			attribute.String("upstream.api", c.name),
			attribute.String("upstream.path", path),
		),
	)
	defer span.End()

	start := time.Now()
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, token, path)
	})
	metrics.ObserveUpstreamCall(c.name, outcome(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.name, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, token, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", c.name, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", c.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", c.name, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s GET %s: %w", c.name, path, sentinel.ErrNotFound)
	case resp.StatusCode >= 400:
		return nil, &StatusError{API: c.name, Status: resp.StatusCode, Body: truncate(string(body), 512)}
	}
	return body, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, sentinel.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
