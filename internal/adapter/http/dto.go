package http

import (
	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/presentation"
)

// LocationListResponse is a page of locations.
type LocationListResponse struct {
	Locations []domain.Location `json:"locations"`
}

// LocationOptionsResponse lists the locations offered in origin and destination pickers.
type LocationOptionsResponse struct {
	Options []presentation.LocationOption `json:"options"`

	// Stale is true when the list could not be refreshed and older data is shown
	Stale bool `json:"stale,omitempty"`
}

// TransportationListResponse is a page of transportations with resolved location names.
type TransportationListResponse struct {
	Transportations []presentation.TransportationRow `json:"transportations"`

	// Stale is true when location names come from an older directory
	Stale bool `json:"stale,omitempty"`
}

// RouteSearchResponse is the route search result as displayed by the console.
type RouteSearchResponse struct {
	// Criteria is the normalized query sent upstream
	Criteria domain.RouteQuery `json:"criteria"`

	// NoResults is true when no route satisfies the criteria
	NoResults bool `json:"noResults"`

	// Message is shown instead of routes when there are none
	Message string `json:"message,omitempty" example:"No routes found for your criteria."`

	// Routes are the numbered route options in upstream order
	Routes []presentation.RouteView `json:"routes"`

	Metadata SearchMetadata `json:"metadata"`
}

// SearchMetadata describes how a route search was executed.
type SearchMetadata struct {
	// TotalRoutes is the number of routes returned
	TotalRoutes int `json:"totalRoutes" example:"2"`

	// Discarded is the number of malformed routes dropped
	Discarded int `json:"discarded,omitempty"`

	// SearchTimeMs is the upstream call duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs" example:"42"`

	// Weekday is the ISO weekday used for operating-day filtering, when a date was given
	Weekday int `json:"weekday,omitempty" example:"2"`

	// DirectoryStale is true when location labels come from an older directory
	DirectoryStale bool `json:"directoryStale,omitempty"`
}
