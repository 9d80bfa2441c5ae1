package retry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// ErrExhausted is returned once the retry budget is spent. Callers must treat it
// as "the operation did not happen".
var ErrExhausted = errors.New("retry budget exhausted")

const userAgent = "steam-notion-sync/1.0"

// maxErrorBody caps how much of a failed response body is logged.
const maxErrorBody = 2048

// Request describes one outbound HTTP call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Query  url.Values
	// Body is encoded as JSON when non-nil.
	Body any
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// StatusError is returned for a completed exchange with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Client performs HTTP calls with a fixed attempt budget and a fixed delay.
// It does not distinguish retryable from non-retryable failures.
type Client struct {
	httpClient *http.Client
	maxTries   int
	delay      time.Duration
	logger     *zap.Logger
}

// NewClient creates a retry client from the configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxTries:   cfg.MaxRetries,
		delay:      cfg.RetryDelay,
		logger:     logger,
	}
}

// WithHTTPClient swaps the underlying transport, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	clone := *c
	clone.httpClient = hc
	return &clone
}

// MaxTries returns the attempt budget.
func (c *Client) MaxTries() int {
	return c.maxTries
}

// Send performs the request, retrying every failure until it succeeds or the
// budget is spent. On exhaustion it returns a nil response and an error
// wrapping ErrExhausted.
func (c *Client) Send(ctx context.Context, req Request) (*Response, error) {
	payload, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	attempt := 0
	operation := func() (*Response, error) {
		attempt++
		resp, err := c.do(ctx, req, payload)
		if err != nil {
			c.logger.Error("Request failed, retrying",
				zap.String("method", req.Method),
				zap.String("url", req.URL),
				zap.Int("attempt", attempt),
				zap.Int("max_tries", c.maxTries),
				zap.String("error_body", errorBody(err)),
				zap.Error(err),
			)
			return nil, err
		}
		return resp, nil
	}

	resp, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.delay)),
		backoff.WithMaxTries(uint(c.maxTries)),
		backoff.WithMaxElapsedTime(c.maxElapsed()),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, ctxErr)
		}
		c.logger.Error("Max retries exceeded, giving up",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Int("attempts", attempt),
			zap.String("error_body", errorBody(err)),
		)
		return nil, fmt.Errorf("%s %s after %d attempts: %w: %w", req.Method, req.URL, attempt, ErrExhausted, err)
	}
	return resp, nil
}

// SendOnce performs a single attempt without retrying.
func (c *Client) SendOnce(ctx context.Context, req Request) (*Response, error) {
	payload, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req, payload)
}

// maxElapsed is generous enough that only MaxTries ever stops the loop.
func (c *Client) maxElapsed() time.Duration {
	perAttempt := c.delay + c.httpClient.Timeout
	if c.httpClient.Timeout <= 0 {
		perAttempt = c.delay + DefaultTimeout
	}
	return time.Duration(c.maxTries+1) * (perAttempt + time.Second)
}

func (c *Client) do(ctx context.Context, req Request, payload []byte) (*Response, error) {
	target := req.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}
	if payload != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func encodeBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return payload, nil
}

func errorBody(err error) string {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return "No response"
	}
	if len(statusErr.Body) > maxErrorBody {
		return statusErr.Body[:maxErrorBody]
	}
	return statusErr.Body
}
