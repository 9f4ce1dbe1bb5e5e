package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/dothis/internal/client/command"
	"github.com/dmitrijs2005/dothis/internal/client/models"
	"github.com/dmitrijs2005/dothis/internal/client/query"
	"github.com/dmitrijs2005/dothis/internal/logging"
	"github.com/sony/gobreaker"
)

const (
	DefaultEndpoint = "https://api.todoist.com/sync/v8/sync"
	DefaultTimeout  = 10 * time.Second
)

// HTTPClient talks to the sync endpoint over HTTP.
type HTTPClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
	timeout    time.Duration
	log        logging.Logger
	breaker    *gobreaker.CircuitBreaker
	decodeOpts models.DecodeOptions
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithTimeout bounds every request, DefaultTimeout otherwise.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithSkipMalformedRecords keeps the well-formed records of a collection and
// reports the others in Envelope.RecordErrors instead of failing the call.
func WithSkipMalformedRecords() Option {
	return func(c *HTTPClient) { c.decodeOpts.SkipBadRecords = true }
}

// BreakerSettings configures WithCircuitBreaker.
type BreakerSettings struct {
	// ConsecutiveFailures trips the breaker after this many transport failures in a row.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before letting a probe through.
	OpenTimeout time.Duration
}

// WithCircuitBreaker stops sending requests after repeated transport
// failures. While open, calls fail fast with a TransportError wrapping
// gobreaker.ErrOpenState. Malformed responses do not count as failures.
func WithCircuitBreaker(s BreakerSettings) Option {
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	return func(c *HTTPClient) {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "sync",
			MaxRequests: 1,
			Timeout:     s.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= s.ConsecutiveFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.log.Debug(context.Background(), "circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			},
		})
	}
}

// NewHTTPClient returns a client for endpoint authenticated with token.
func NewHTTPClient(endpoint, token string, opts ...Option) (*HTTPClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmptyToken
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &HTTPClient{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Fetch(ctx context.Context, kinds []models.Kind) (*models.Envelope, error) {
	return c.FetchSince(ctx, query.FullSync, kinds)
}

func (c *HTTPClient) FetchSince(ctx context.Context, syncToken string, kinds []models.Kind) (*models.Envelope, error) {
	q, err := query.NewBuilder(c.token).Get(kinds...).SyncToken(syncToken).BuildRead()
	if err != nil {
		return nil, fmt.Errorf("building read query: %w", err)
	}
	return c.send(ctx, "fetch", q)
}

func (c *HTTPClient) Apply(ctx context.Context, kinds []models.Kind, syncToken string, commands []command.Command) (*models.Envelope, error) {
	q, err := query.NewBuilder(c.token).Get(kinds...).SyncToken(syncToken).Add(commands...).BuildWrite()
	if err != nil {
		return nil, fmt.Errorf("building write query: %w", err)
	}
	return c.send(ctx, "apply", q)
}

// response is what came back from one round trip.
type response struct {
	status int
	body   []byte
}

func (c *HTTPClient) send(ctx context.Context, op string, q *query.Query) (*models.Envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.log.Debug(ctx, "sending sync request",
		"op", op,
		"method", req.Method,
		"resource_types", q.ResourceTypes,
		"sync_token", q.SyncToken,
		"commands", len(q.Commands),
	)

	resp, err := c.roundTrip(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if resp.status < 200 || resp.status > 299 {
		return nil, &MalformedResponseError{
			Op:         op,
			StatusCode: resp.status,
			Reason:     strings.TrimSpace(snippet(resp.body)),
		}
	}

	env, err := models.DecodeEnvelope(resp.body, c.decodeOpts)
	if err != nil {
		return nil, &MalformedResponseError{Op: op, StatusCode: resp.status, Err: err}
	}

	c.log.Debug(ctx, "sync response decoded",
		"op", op,
		"full_sync", env.FullSync,
		"sync_token", env.SyncToken,
		"temp_ids", len(env.TempIDMapping),
		"record_errors", len(env.RecordErrors),
	)

	return env, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, q *query.Query) (*http.Request, error) {
	vals, err := q.Values()
	if err != nil {
		return nil, err
	}

	var req *http.Request
	if q.IsWrite() {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(vals.Encode()))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+vals.Encode(), nil)
		if err != nil {
			return nil, err
		}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// roundTrip performs the request and reads the whole body, through the
// circuit breaker when one is configured.
func (c *HTTPClient) roundTrip(req *http.Request) (*response, error) {
	do := func() (*response, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading body: %w", err)
		}
		return &response{status: resp.StatusCode, body: body}, nil
	}

	if c.breaker == nil {
		return do()
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return do()
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("circuit breaker: %w", err)
		}
		return nil, err
	}
	return out.(*response), nil
}

func snippet(b []byte) string {
	const limit = 256
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
