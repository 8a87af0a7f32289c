package http

import (
	"strings"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/presentation"
)

// ToLocationInput converts a location request body to the domain payload.
func ToLocationInput(req *LocationRequest) domain.LocationInput {
	return domain.LocationInput{
		Name:         strings.TrimSpace(req.Name),
		Country:      strings.TrimSpace(req.Country),
		City:         strings.TrimSpace(req.City),
		LocationCode: strings.ToUpper(strings.TrimSpace(req.LocationCode)),
	}
}

// ToTransportationInput converts a transportation request body to the domain payload.
func ToTransportationInput(req *TransportationRequest) domain.TransportationInput {
	return domain.TransportationInput{
		OriginLocationID:      req.OriginLocationID,
		DestinationLocationID: req.DestinationLocationID,
		TransportationType:    transportationType(req.TransportationType),
		OperatingDays:         domain.OperatingDays(req.OperatingDays).Sorted(),
	}
}

// ToRouteSearchResponse builds the displayed search result.
func ToRouteSearchResponse(result *domain.RouteSearchResult, dir *presentation.LocationDirectory, stale bool) *RouteSearchResponse {
	resp := &RouteSearchResponse{
		Criteria:  result.Query,
		NoResults: result.NoResults,
		Routes:    presentation.BuildRouteViews(result.Routes, dir),
		Metadata: SearchMetadata{
			TotalRoutes:    len(result.Routes),
			Discarded:      result.Discarded,
			SearchTimeMs:   result.SearchTimeMs,
			DirectoryStale: stale,
		},
	}
	if result.NoResults {
		resp.Message = presentation.NoRoutesMessage
	}
	if day, ok := result.Query.Weekday(); ok {
		resp.Metadata.Weekday = day
	}
	return resp
}
