package upstream

import (
	"context"
	"net/http"
	"strconv"

	"github.com/skyroute/route-console/internal/domain"
)

const locationsPath = "/api/locations"

func locationPath(id int64) string {
	return locationsPath + "/" + strconv.FormatInt(id, 10)
}

// ListLocations returns one page of locations.
func (c *Client) ListLocations(ctx context.Context, page domain.Page) ([]domain.Location, error) {
	var dtos []locationDTO
	if err := c.do(ctx, http.MethodGet, locationsPath, pageQuery(page), nil, &dtos); err != nil {
		return nil, err
	}
	return toLocations(dtos), nil
}

// GetLocation returns the location with the given id.
func (c *Client) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	var dto locationDTO
	if err := c.do(ctx, http.MethodGet, locationPath(id), nil, nil, &dto); err != nil {
		return nil, err
	}
	loc := toLocation(dto)
	return &loc, nil
}

// CreateLocation creates a location and returns it with its assigned id.
func (c *Client) CreateLocation(ctx context.Context, in domain.LocationInput) (*domain.Location, error) {
	var dto locationDTO
	if err := c.do(ctx, http.MethodPost, locationsPath, nil, fromLocationInput(in), &dto); err != nil {
		return nil, err
	}
	loc := toLocation(dto)
	return &loc, nil
}

// UpdateLocation replaces the writable fields of a location.
func (c *Client) UpdateLocation(ctx context.Context, id int64, in domain.LocationInput) (*domain.Location, error) {
	var dto locationDTO
	if err := c.do(ctx, http.MethodPut, locationPath(id), nil, fromLocationInput(in), &dto); err != nil {
		return nil, err
	}
	loc := toLocation(dto)
	return &loc, nil
}

// DeleteLocation deletes a location.
func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, locationPath(id), nil, nil, nil)
}
