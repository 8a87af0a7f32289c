package http

import (
	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-console/internal/adapter/http/response"
	"github.com/skyroute/route-console/internal/validation"
)

// locationsPath is where the console goes back to when a location is missing.
const locationsPath = "/api/v1/locations"

// ListLocations handles GET /api/v1/locations
//
// @Summary List locations
// @Tags locations
// @Produce json
// @Param page query int false "Page number (0-based)"
// @Param size query int false "Page size"
// @Success 200 {object} LocationListResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 502 {object} response.ErrorDetail "Upstream unavailable"
// @Router /api/v1/locations [get]
func (h *Handler) ListLocations(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return h.handleError(c, err, "")
	}

	locations, err := h.locations.ListLocations(c.Request().Context(), page)
	if err != nil {
		return h.handleError(c, err, "")
	}
	return response.OK(c, &LocationListResponse{Locations: locations})
}

// LocationOptions handles GET /api/v1/locations/options
//
// @Summary Location picker options
// @Description Bounded location list used to fill origin and destination pickers
// @Tags locations
// @Produce json
// @Success 200 {object} LocationOptionsResponse
// @Router /api/v1/locations/options [get]
func (h *Handler) LocationOptions(c echo.Context) error {
	dir, err := h.directory.Load(c.Request().Context())
	return response.OK(c, &LocationOptionsResponse{
		Options: dir.Options(),
		Stale:   err != nil,
	})
}

// GetLocation handles GET /api/v1/locations/:id
//
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param id path int true "Location id"
// @Success 200 {object} domain.Location
// @Failure 404 {object} response.ErrorDetail "Not found, with redirect to the list"
// @Router /api/v1/locations/{id} [get]
func (h *Handler) GetLocation(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, MsgInvalidID)
	}

	loc, err := h.locations.GetLocation(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, locationsPath)
	}
	return response.OK(c, loc)
}

// CreateLocation handles POST /api/v1/locations
//
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param request body LocationRequest true "Location"
// @Success 201 {object} domain.Location
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/locations [post]
func (h *Handler) CreateLocation(c echo.Context) error {
	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	in := ToLocationInput(&req)
	if err := validation.Location(in); err != nil {
		return h.handleError(c, err, "")
	}

	loc, err := h.locations.CreateLocation(c.Request().Context(), in)
	if err != nil {
		return h.handleError(c, err, "")
	}
	return response.Created(c, loc)
}

// UpdateLocation handles PUT /api/v1/locations/:id
//
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path int true "Location id"
// @Param request body LocationRequest true "Location"
// @Success 200 {object} domain.Location
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/locations/{id} [put]
func (h *Handler) UpdateLocation(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, MsgInvalidID)
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	in := ToLocationInput(&req)
	if err := validation.Location(in); err != nil {
		return h.handleError(c, err, "")
	}

	loc, err := h.locations.UpdateLocation(c.Request().Context(), id, in)
	if err != nil {
		return h.handleError(c, err, locationsPath)
	}
	return response.OK(c, loc)
}

// DeleteLocation handles DELETE /api/v1/locations/:id
//
// @Summary Delete a location
// @Tags locations
// @Param id path int true "Location id"
// @Success 204
// @Failure 404 {object} response.ErrorDetail "Not found"
// @Router /api/v1/locations/{id} [delete]
func (h *Handler) DeleteLocation(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.BadRequest(c, MsgInvalidID)
	}

	if err := h.locations.DeleteLocation(c.Request().Context(), id); err != nil {
		return h.handleError(c, err, "")
	}
	return response.NoContent(c)
}
