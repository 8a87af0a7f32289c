// Package http provides the console HTTP API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-console/internal/adapter/http/middleware"
	"github.com/skyroute/route-console/internal/adapter/http/response"
	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/logger"
	"github.com/skyroute/route-console/internal/presentation"
	"github.com/skyroute/route-console/internal/usecase"
)

// BreakerStater reports the upstream circuit breaker state.
type BreakerStater interface {
	BreakerState() string
}

// Dependencies holds everything the handlers call into.
type Dependencies struct {
	Locations       domain.LocationService
	Transportations domain.TransportationService
	Search          usecase.RouteSearchUseCase
	Sessions        *usecase.Sessions
	Directory       *presentation.DirectoryLoader

	// Upstream reports breaker state on /health (optional)
	Upstream BreakerStater

	// Location is the operator timezone used to read search dates
	Location *time.Location

	Logger *logger.Logger
}

// Handler handles the console API endpoints.
type Handler struct {
	locations       domain.LocationService
	transportations domain.TransportationService
	search          usecase.RouteSearchUseCase
	sessions        *usecase.Sessions
	directory       *presentation.DirectoryLoader
	upstream        BreakerStater
	location        *time.Location
	log             *logger.Logger
}

// NewHandler creates a new Handler with the given dependencies.
func NewHandler(deps Dependencies) *Handler {
	h := &Handler{
		locations:       deps.Locations,
		transportations: deps.Transportations,
		search:          deps.Search,
		sessions:        deps.Sessions,
		directory:       deps.Directory,
		upstream:        deps.Upstream,
		location:        deps.Location,
		log:             deps.Logger,
	}
	if h.location == nil {
		h.location = time.UTC
	}
	if h.log == nil {
		h.log = logger.Nop()
	}
	h.log = h.log.WithComponent("http")
	return h
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	state := ""
	if h.upstream != nil {
		state = h.upstream.BreakerState()
	}
	return response.Health(c, state)
}

// handleError maps domain errors to appropriate HTTP responses. redirect is
// returned with not-found answers for entity loads.
func (h *Handler) handleError(c echo.Context, err error, redirect string) error {
	if errors.Is(err, domain.ErrSuperseded) {
		return response.Superseded(c)
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		if fields := domain.FieldErrors(err); len(fields) > 0 {
			return response.ValidationError(c, fields)
		}
		return response.ValidationErrorWithMessage(c, apiMessage(err, response.MsgValidationFailed))

	case domain.KindNotFound:
		return response.NotFound(c, apiMessage(err, response.MsgNotFound), redirect)

	case domain.KindCanceled:
		return response.RequestCancelled(c)

	case domain.KindTransport:
		if errors.Is(err, context.DeadlineExceeded) {
			return response.GatewayTimeout(c)
		}
		h.requestLog(c).Warn().Err(err).Msg("Upstream unavailable")
		return response.UpstreamUnavailable(c)
	}

	h.requestLog(c).Error().Err(err).Msg("Unhandled error")
	return response.InternalServerError(c)
}

// apiMessage returns the upstream message carried by err, or fallback.
func apiMessage(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (h *Handler) requestLog(c echo.Context) *logger.Logger {
	return h.log.
		WithRequestID(middleware.GetRequestID(c)).
		WithSession(middleware.GetConsoleSession(c))
}
