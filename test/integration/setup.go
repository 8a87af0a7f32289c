// Package integration provides helpers and integration tests for the route console.
// Integration tests run the console API against the real upstream client and a
// fake upstream network service.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/skyroute/route-console/internal/adapter/http"
	"github.com/skyroute/route-console/internal/adapter/http/middleware"
	"github.com/skyroute/route-console/internal/adapter/upstream"
	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
	"github.com/skyroute/route-console/internal/presentation"
	"github.com/skyroute/route-console/internal/usecase"
	"github.com/skyroute/route-console/test/mock"
)

// Today is the fixed operator day used by integration tests: Tuesday 2025-06-10.
const Today = "2025-06-10"

// TestServer wraps an Echo instance wired to a fake upstream.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *mock.Upstream
	Client   *upstream.Client
	UseCase  usecase.RouteSearchUseCase
	Sessions *usecase.Sessions
	Clock    *timeutil.FixedClock
}

// Options tweaks the server under test.
type Options struct {
	// UpstreamTimeout bounds each upstream request (default 2s)
	UpstreamTimeout time.Duration

	// BreakerFailures opens the breaker after this many consecutive failures (default 5)
	BreakerFailures uint32

	// VerifyShape drops malformed upstream routes
	VerifyShape bool
}

// NewTestServer starts a fake upstream and a console API in front of it. Both
// are closed when the test ends.
func NewTestServer(t *testing.T, opts Options) *TestServer {
	t.Helper()

	if opts.UpstreamTimeout == 0 {
		opts.UpstreamTimeout = 2 * time.Second
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = 5
	}

	fake := mock.NewUpstream()
	t.Cleanup(fake.Close)

	client := upstream.NewClient(upstream.Config{
		BaseURL: fake.URL(),
		Timeout: opts.UpstreamTimeout,
		Breaker: upstream.BreakerConfig{
			Name:             "upstream",
			FailureThreshold: opts.BreakerFailures,
			Timeout:          time.Minute,
		},
	}, zerolog.Nop())

	clock := timeutil.NewFixedClockFromDate(Today)
	search := usecase.NewRouteSearchUseCase(client, &usecase.Config{
		Location:    time.UTC,
		VerifyShape: opts.VerifyShape,
		Clock:       clock,
	})
	sessions := usecase.NewSessions(search, time.Hour, clock)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.SetupWithConfig(e, zerolog.Nop(), middleware.Options{
		Recovery: middleware.DefaultRecoveryConfig(),
	})

	handler := httpAdapter.NewHandler(httpAdapter.Dependencies{
		Locations:       client,
		Transportations: client,
		Search:          search,
		Sessions:        sessions,
		Directory:       presentation.NewDirectoryLoader(client, presentation.DefaultLookupSize, nil),
		Upstream:        client,
		Location:        time.UTC,
	})
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Upstream: fake,
		Client:   client,
		UseCase:  search,
		Sessions: sessions,
		Clock:    clock,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Session string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	return ts.DoContext(context.Background(), req)
}

// DoContext executes a test request carrying ctx.
func (ts *TestServer) DoContext(ctx context.Context, req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader).WithContext(ctx)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Session != "" {
		httpReq.Header.Set(middleware.ConsoleSessionHeader, req.Session)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search runs a route search. A zero id is left out of the query and an empty
// date disables operating-day filtering.
func (ts *TestServer) Search(session string, origin, destination int64, date string) Response {
	return ts.SearchContext(context.Background(), session, origin, destination, date)
}

// SearchContext is Search carrying ctx.
func (ts *TestServer) SearchContext(ctx context.Context, session string, origin, destination int64, date string) Response {
	q := url.Values{}
	if origin != 0 {
		q.Set("originLocationId", strconv.FormatInt(origin, 10))
	}
	if destination != 0 {
		q.Set("destinationLocationId", strconv.FormatInt(destination, 10))
	}
	if date != "" {
		q.Set("date", date)
	}
	return ts.DoContext(ctx, Request{
		Method:  http.MethodGet,
		Path:    "/api/v1/routes/search?" + q.Encode(),
		Session: session,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses the response body as a RouteSearchResponse.
func (r *Response) ParseSearchResponse() (*httpAdapter.RouteSearchResponse, error) {
	var resp httpAdapter.RouteSearchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// Network is the sample network used across integration tests.
type Network struct {
	IST, LHR, SAW, TKS, WMB domain.Location

	// FlightMWF is IST→LHR flying Monday, Wednesday and Friday
	FlightMWF domain.Transportation
	// FlightDaily is SAW→LHR flying every day
	FlightDaily domain.Transportation
	// BusToIST is TKS→IST every day
	BusToIST domain.Transportation
	// SubwayToSAW is TKS→SAW on Tuesdays only
	SubwayToSAW domain.Transportation
	// UberFromLHR is LHR→WMB every day
	UberFromLHR domain.Transportation
}

// SeedNetwork fills the fake upstream with the sample network.
func (ts *TestServer) SeedNetwork() Network {
	u := ts.Upstream
	n := Network{
		IST: u.AddLocation("Istanbul Airport", "Turkey", "Istanbul", "IST"),
		LHR: u.AddLocation("London Airport", "UK", "London", "LHR"),
		SAW: u.AddLocation("Sabiha Gokcen Airport", "Turkey", "Istanbul", "SAW"),
		TKS: u.AddLocation("Taksim Square", "Turkey", "Istanbul", "TKS"),
		WMB: u.AddLocation("Wembley Stadium", "UK", "London", "WMB"),
	}
	n.FlightMWF = u.AddTransportation(n.IST.IDValue(), n.LHR.IDValue(), domain.TransportationFlight, 1, 3, 5)
	n.FlightDaily = u.AddTransportation(n.SAW.IDValue(), n.LHR.IDValue(), domain.TransportationFlight)
	n.BusToIST = u.AddTransportation(n.TKS.IDValue(), n.IST.IDValue(), domain.TransportationBus)
	n.SubwayToSAW = u.AddTransportation(n.TKS.IDValue(), n.SAW.IDValue(), domain.TransportationSubway, 2)
	n.UberFromLHR = u.AddTransportation(n.LHR.IDValue(), n.WMB.IDValue(), domain.TransportationUber)
	return n
}
