// Package upstream is the transport client for the remote network service.
//
// Each operation maps to exactly one HTTP request: there is no caching and no
// retrying. Failures are normalized into *domain.APIError so callers can branch
// on domain.KindOf or errors.Is against the domain sentinels.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/logger"
)

// maxBodyBytes caps how much of an upstream response body is read.
const maxBodyBytes = 8 << 20

const requestIDHeader = "X-Request-ID"

// Config holds configuration for the upstream client.
type Config struct {
	// BaseURL is the upstream origin, e.g. "http://localhost:8080" (required).
	BaseURL string

	// Timeout bounds a single request.
	// Default: 10 seconds
	Timeout time.Duration

	// Headers are added to every request.
	Headers map[string]string

	// Breaker configures the circuit breaker. Zero values take the defaults.
	Breaker BreakerConfig

	// HTTPClient overrides the underlying HTTP client (optional).
	HTTPClient *http.Client
}

// Client talks to the upstream network service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*response]
	logger     zerolog.Logger
}

// response is a fully read upstream response.
type response struct {
	status int
	body   []byte
}

// NewClient creates a new upstream client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	defaults := DefaultBreakerConfig()
	if cfg.Breaker.Name == "" {
		cfg.Breaker.Name = defaults.Name
	}
	if cfg.Breaker.FailureThreshold == 0 {
		cfg.Breaker.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.Breaker.Timeout == 0 {
		cfg.Breaker.Timeout = defaults.Timeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    cfg.Headers,
		httpClient: httpClient,
		breaker:    newBreaker(cfg.Breaker, log),
		logger:     log,
	}
}

// BreakerState reports the circuit breaker state ("closed", "half-open" or "open").
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// do performs one request. body, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded 2xx response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}

	start := time.Now()
	resp, err := c.breaker.Execute(func() (*response, error) {
		return c.send(ctx, method, path, target, payload)
	})
	latency := time.Since(start)

	if err != nil {
		err = c.normalize(method, path, err)
		c.logFailure(method, path, latency, err)
		return err
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.status).
		Dur("latency", latency).
		Msg("Upstream call completed")

	if out == nil || resp.status == http.StatusNoContent || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		decodeErr := &domain.APIError{
			Kind:   domain.KindTransport,
			Status: resp.status,
			Method: method,
			Path:   path,
			Err:    fmt.Errorf("decoding response: %w", err),
		}
		c.logFailure(method, path, latency, decodeErr)
		return decodeErr
	}
	return nil
}

// send executes the HTTP exchange inside the breaker.
func (c *Client) send(ctx context.Context, method, path, target string, payload []byte) (*response, error) {
	var reqBody io.Reader = http.NoBody
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, c.requestError(ctx, method, path, fmt.Errorf("creating request: %w", err))
	}
	c.setHeaders(req, payload != nil)

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, method, path, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.requestError(ctx, method, path, fmt.Errorf("reading response: %w", err))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, statusError(method, path, httpResp.StatusCode, data)
	}
	return &response{status: httpResp.StatusCode, body: data}, nil
}

// setHeaders sets the configured and content headers on the request.
func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if id := logger.RequestIDFromContext(req.Context()); id != "" {
		req.Header.Set(requestIDHeader, id)
	}
}

// requestError classifies a failure that produced no upstream status.
func (c *Client) requestError(ctx context.Context, method, path string, err error) *domain.APIError {
	if errors.Is(ctx.Err(), context.Canceled) {
		return &domain.APIError{Kind: domain.KindCanceled, Method: method, Path: path, Err: context.Canceled}
	}
	return &domain.APIError{Kind: domain.KindTransport, Method: method, Path: path, Err: err}
}

// normalize converts breaker rejections into transport failures.
func (c *Client) normalize(method, path string, err error) error {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.APIError{
			Kind:    domain.KindTransport,
			Method:  method,
			Path:    path,
			Message: "upstream temporarily unavailable",
			Err:     err,
		}
	}
	return &domain.APIError{Kind: domain.KindTransport, Method: method, Path: path, Err: err}
}

func (c *Client) logFailure(method, path string, latency time.Duration, err error) {
	kind := domain.KindOf(err)
	event := c.logger.Warn()
	if kind == domain.KindCanceled || kind == domain.KindNotFound {
		event = c.logger.Debug()
	}
	event.
		Err(err).
		Str("method", method).
		Str("path", path).
		Str("kind", kind.String()).
		Dur("latency", latency).
		Msg("Upstream call failed")
}

// statusError builds the error for a non-2xx response, decoding the upstream
// error body when it has one of the known shapes.
func statusError(method, path string, status int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{
		Kind:   domain.KindForStatus(status),
		Status: status,
		Method: method,
		Path:   path,
	}

	var er errorResponse
	if len(body) > 0 && json.Unmarshal(body, &er) == nil {
		apiErr.Message = er.Message
		if apiErr.Message == "" {
			apiErr.Message = er.Error
		}
		if len(er.Errors) > 0 {
			apiErr.Fields = er.Errors
		}
		if len(er.FieldErrors) > 0 {
			if apiErr.Fields == nil {
				apiErr.Fields = make(map[string]string, len(er.FieldErrors))
			}
			for _, fe := range er.FieldErrors {
				if _, exists := apiErr.Fields[fe.Field]; !exists {
					apiErr.Fields[fe.Field] = fe.Message
				}
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

// pageQuery encodes paging parameters, omitting unset ones.
func pageQuery(p domain.Page) url.Values {
	q := url.Values{}
	p = p.Normalize()
	if p.Page != nil {
		q.Set("page", fmt.Sprint(*p.Page))
	}
	if p.Size != nil {
		q.Set("size", fmt.Sprint(*p.Size))
	}
	return q
}
