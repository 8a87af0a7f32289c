package http

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/skyroute/route-console/internal/adapter/http/middleware"
	"github.com/skyroute/route-console/internal/adapter/http/response"
	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/presentation"
)

// SearchRoutes handles GET /api/v1/routes/search
//
// @Summary Search routes
// @Description Finds routes between two locations. A newer search on the same
// @Description console session supersedes this one.
// @Tags routes
// @Produce json
// @Produce plain
// @Param originLocationId query int true "Origin location id"
// @Param destinationLocationId query int true "Destination location id"
// @Param date query string false "Travel date (YYYY-MM-DD), enables operating-day filtering"
// @Param format query string false "Set to text for a plain-text rendering"
// @Param X-Console-Session header string false "Console session key"
// @Success 200 {object} RouteSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 409 {object} response.ErrorDetail "Superseded by a newer search"
// @Failure 502 {object} response.ErrorDetail "Upstream unavailable"
// @Failure 504 {object} response.ErrorDetail "Timeout or cancelled"
// @Router /api/v1/routes/search [get]
func (h *Handler) SearchRoutes(c echo.Context) error {
	criteria, err := parseRouteSearchCriteria(c, h.location)
	if err != nil {
		return h.handleError(c, err, "")
	}

	// Reject bad criteria before any upstream call, including the directory load
	query, err := h.search.Prepare(criteria)
	if err != nil {
		return h.handleError(c, err, "")
	}

	ctx := c.Request().Context()
	session := h.sessions.Get(middleware.GetConsoleSession(c))

	var (
		result *domain.RouteSearchResult
		dir    *presentation.LocationDirectory
		stale  bool
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		result, err = session.Run(ctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		dir, err = h.directory.Load(ctx)
		stale = err != nil
		return nil
	})
	if err := g.Wait(); err != nil {
		return h.handleError(c, err, "")
	}

	h.requestLog(c).Info().
		Str("query", result.Query.CacheKey()).
		Int("routes", len(result.Routes)).
		Int64("search_time_ms", result.SearchTimeMs).
		Msg("Route search completed")

	return h.writeSearchResult(c, result, dir, stale)
}

// CancelRouteSearch handles DELETE /api/v1/routes/search
//
// @Summary Cancel the session's in-flight search
// @Tags routes
// @Param X-Console-Session header string true "Console session key"
// @Success 204
// @Failure 400 {object} response.ErrorDetail "Missing session"
// @Router /api/v1/routes/search [delete]
func (h *Handler) CancelRouteSearch(c echo.Context) error {
	key := middleware.GetConsoleSession(c)
	if key == "" {
		return response.BadRequest(c, MsgSessionRequired)
	}
	h.sessions.Get(key).Cancel()
	return response.NoContent(c)
}

// LatestRouteSearch handles GET /api/v1/routes/latest
//
// @Summary Last committed search result of the session
// @Tags routes
// @Produce json
// @Param X-Console-Session header string true "Console session key"
// @Success 200 {object} RouteSearchResponse
// @Failure 400 {object} response.ErrorDetail "Missing session"
// @Failure 404 {object} response.ErrorDetail "No search yet"
// @Router /api/v1/routes/latest [get]
func (h *Handler) LatestRouteSearch(c echo.Context) error {
	key := middleware.GetConsoleSession(c)
	if key == "" {
		return response.BadRequest(c, MsgSessionRequired)
	}

	result, ok := h.sessions.Get(key).Latest()
	if !ok {
		return response.NotFound(c, MsgNoSearchYet, "")
	}
	return h.writeSearchResult(c, result, h.directory.Current(), false)
}

func (h *Handler) writeSearchResult(c echo.Context, result *domain.RouteSearchResult, dir *presentation.LocationDirectory, stale bool) error {
	resp := ToRouteSearchResponse(result, dir, stale)
	if c.QueryParam(paramFmt) != formatText {
		return response.SearchResults(c, resp)
	}

	var buf bytes.Buffer
	if err := presentation.RenderText(&buf, resp.Routes); err != nil {
		return h.handleError(c, err, "")
	}
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, buf.Bytes())
}
