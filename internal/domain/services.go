package domain

import "context"

//go:generate mockgen -source=services.go -destination=mock_services.go -package=domain

// LocationService manages locations in the upstream network service.
type LocationService interface {
	ListLocations(ctx context.Context, page Page) ([]Location, error)
	GetLocation(ctx context.Context, id int64) (*Location, error)
	CreateLocation(ctx context.Context, in LocationInput) (*Location, error)
	UpdateLocation(ctx context.Context, id int64, in LocationInput) (*Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// TransportationService manages transportations in the upstream network service.
type TransportationService interface {
	ListTransportations(ctx context.Context, page Page, filter TransportationFilter) ([]Transportation, error)
	GetTransportation(ctx context.Context, id int64) (*Transportation, error)
	CreateTransportation(ctx context.Context, in TransportationInput) (*Transportation, error)
	UpdateTransportation(ctx context.Context, id int64, in TransportationInput) (*Transportation, error)
	DeleteTransportation(ctx context.Context, id int64) error
}

// RouteFinder asks the upstream network service for routes between two locations.
// Implementations must honor ctx cancellation and make exactly one attempt per call.
type RouteFinder interface {
	FindRoutes(ctx context.Context, query RouteQuery) ([]Route, error)
}
