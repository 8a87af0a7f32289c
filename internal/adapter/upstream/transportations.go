package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/skyroute/route-console/internal/domain"
)

const transportationsPath = "/api/transportations"

func transportationPath(id int64) string {
	return transportationsPath + "/" + strconv.FormatInt(id, 10)
}

func filterQuery(q url.Values, f domain.TransportationFilter) {
	if f.OriginLocationID != nil {
		q.Set("originLocationId", strconv.FormatInt(*f.OriginLocationID, 10))
	}
	if f.DestinationLocationID != nil {
		q.Set("destinationLocationId", strconv.FormatInt(*f.DestinationLocationID, 10))
	}
	if f.TransportationType != nil {
		q.Set("transportationType", f.TransportationType.String())
	}
	for _, d := range f.OperatingDays {
		q.Add("operatingDays", strconv.Itoa(d))
	}
}

// ListTransportations returns one page of transportations matching the filter.
// Rows the console cannot represent are skipped and logged.
func (c *Client) ListTransportations(ctx context.Context, page domain.Page, filter domain.TransportationFilter) ([]domain.Transportation, error) {
	q := pageQuery(page)
	filterQuery(q, filter)

	var dtos []transportationDTO
	if err := c.do(ctx, http.MethodGet, transportationsPath, q, nil, &dtos); err != nil {
		return nil, err
	}

	result := make([]domain.Transportation, 0, len(dtos))
	for _, d := range dtos {
		t, err := toTransportation(d)
		if err != nil {
			c.logger.Warn().Err(err).Interface("id", d.ID).Msg("Skipping transportation")
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

// GetTransportation returns the transportation with the given id.
func (c *Client) GetTransportation(ctx context.Context, id int64) (*domain.Transportation, error) {
	path := transportationPath(id)
	var dto transportationDTO
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &dto); err != nil {
		return nil, err
	}
	return c.decodeTransportation(http.MethodGet, path, dto)
}

// CreateTransportation creates a transportation and returns it with its assigned id.
func (c *Client) CreateTransportation(ctx context.Context, in domain.TransportationInput) (*domain.Transportation, error) {
	var dto transportationDTO
	if err := c.do(ctx, http.MethodPost, transportationsPath, nil, fromTransportationInput(in), &dto); err != nil {
		return nil, err
	}
	return c.decodeTransportation(http.MethodPost, transportationsPath, dto)
}

// UpdateTransportation replaces the writable fields of a transportation.
func (c *Client) UpdateTransportation(ctx context.Context, id int64, in domain.TransportationInput) (*domain.Transportation, error) {
	path := transportationPath(id)
	var dto transportationDTO
	if err := c.do(ctx, http.MethodPut, path, nil, fromTransportationInput(in), &dto); err != nil {
		return nil, err
	}
	return c.decodeTransportation(http.MethodPut, path, dto)
}

// DeleteTransportation deletes a transportation.
func (c *Client) DeleteTransportation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, transportationPath(id), nil, nil, nil)
}

func (c *Client) decodeTransportation(method, path string, dto transportationDTO) (*domain.Transportation, error) {
	t, err := toTransportation(dto)
	if err != nil {
		return nil, &domain.APIError{
			Kind:   domain.KindTransport,
			Method: method,
			Path:   path,
			Err:    fmt.Errorf("decoding response: %w", err),
		}
	}
	return &t, nil
}
