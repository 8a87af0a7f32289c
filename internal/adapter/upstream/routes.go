package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/skyroute/route-console/internal/domain"
)

const routesPath = "/api/routes"

// FindRoutes asks the upstream for routes matching the query. An empty
// query.Date omits the date parameter, which disables operating-day filtering.
// Routes and their segments are returned in upstream order.
func (c *Client) FindRoutes(ctx context.Context, query domain.RouteQuery) ([]domain.Route, error) {
	q := url.Values{}
	q.Set("originLocationId", strconv.FormatInt(query.OriginLocationID, 10))
	q.Set("destinationLocationId", strconv.FormatInt(query.DestinationLocationID, 10))
	if query.FiltersByDay() {
		q.Set("date", query.Date)
	}

	var dtos []routeDTO
	if err := c.do(ctx, http.MethodGet, routesPath, q, nil, &dtos); err != nil {
		return nil, err
	}
	return toRoutes(dtos), nil
}
