package upstream

import "github.com/skyroute/route-console/internal/domain"

var (
	_ domain.LocationService       = (*Client)(nil)
	_ domain.TransportationService = (*Client)(nil)
	_ domain.RouteFinder           = (*Client)(nil)
)
