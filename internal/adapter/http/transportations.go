package http

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/skyroute/route-console/internal/adapter/http/response"
	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/presentation"
	"github.com/skyroute/route-console/internal/validation"
)

// transportationsPath is where the console goes back to when a transportation is missing.
const transportationsPath = "/api/v1/transportations"

// ListTransportations handles GET /api/v1/transportations
//
// @Summary List transportations
// @Description Transportations with origin and destination names resolved
// @Tags transportations
// @Produce json
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Param originLocationId query int false "Origin location id"
// @Param destinationLocationId query int false "Destination location id"
// @Param transportationType query string false "FLIGHT, BUS, SUBWAY or UBER"
// @Param operatingDays query []int false "ISO weekdays (repeatable)"
// @Success 200 {object} TransportationListResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream unavailable"
// @Router /api/v1/transportations [get]
func (h *Handler) ListTransportations(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return h.handleError(c, err, "")
	}
	filter, err := parseTransportationFilter(c)
	if err != nil {
		return h.handleError(c, err, "")
	}

	var (
		transportations []domain.Transportation
		dir             *presentation.LocationDirectory
		stale           bool
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		transportations, err = h.transportations.ListTransportations(ctx, page, filter)
		return err
	})
	g.Go(func() error {
		var err error
		// Names fall back to "ID: n" rather than failing the list
		dir, err = h.directory.Load(ctx)
		stale = err != nil
		return nil
	})
	if err := g.Wait(); err != nil {
		return h.handleError(c, err, "")
	}

	return response.OK(c, &TransportationListResponse{
		Transportations: presentation.BuildTransportationRows(transportations, dir),
		Stale:           stale,
	})
}

// GetTransportation handles GET /api/v1/transportations/:id
//
// @Summary Get a transportation
// @Tags transportations
// @Produce json
// @Param id path int true "Transportation id"
// @Success 200 {object} domain.Transportation
// @Failure 404 {object} response.ErrorDetail "Not found, with redirect to the list"
// @Router /api/v1/transportations/{id} [get]
func (h *Handler) GetTransportation(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, MsgInvalidID)
	}

	t, err := h.transportations.GetTransportation(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, transportationsPath)
	}
	return response.OK(c, t)
}

// CreateTransportation handles POST /api/v1/transportations
//
// @Summary Create a transportation
// @Tags transportations
// @Accept json
// @Produce json
// @Param request body TransportationRequest true "Transportation"
// @Success 201 {object} domain.Transportation
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/transportations [post]
func (h *Handler) CreateTransportation(c echo.Context) error {
	var req TransportationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	in := ToTransportationInput(&req)
	if err := validation.Transportation(in); err != nil {
		return h.handleError(c, err, "")
	}

	t, err := h.transportations.CreateTransportation(c.Request().Context(), in)
	if err != nil {
		return h.handleError(c, err, "")
	}
	return response.Created(c, t)
}

// UpdateTransportation handles PUT /api/v1/transportations/:id
//
// @Summary Update a transportation
// @Tags transportations
// @Accept json
// @Produce json
// @Param id path int true "Transportation id"
// @Param request body TransportationRequest true "Transportation"
// @Success 200 {object} domain.Transportation
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/transportations/{id} [put]
func (h *Handler) UpdateTransportation(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, MsgInvalidID)
	}

	var req TransportationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	in := ToTransportationInput(&req)
	if err := validation.Transportation(in); err != nil {
		return h.handleError(c, err, "")
	}

	t, err := h.transportations.UpdateTransportation(c.Request().Context(), id, in)
	if err != nil {
		return h.handleError(c, err, transportationsPath)
	}
	return response.OK(c, t)
}

// DeleteTransportation handles DELETE /api/v1/transportations/:id
//
// @Summary Delete a transportation
// @Tags transportations
// @Param id path int true "Transportation id"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/transportations/{id} [delete]
func (h *Handler) DeleteTransportation(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, MsgInvalidID)
	}

	if err := h.transportations.DeleteTransportation(c.Request().Context(), id); err != nil {
		return h.handleError(c, err, "")
	}
	return response.NoContent(c)
}
