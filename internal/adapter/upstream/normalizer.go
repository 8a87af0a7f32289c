package upstream

import (
	"fmt"

	"github.com/skyroute/route-console/internal/domain"
)

func toLocation(d locationDTO) domain.Location {
	return domain.Location{
		ID:           d.ID,
		Name:         d.Name,
		Country:      d.Country,
		City:         d.City,
		LocationCode: d.LocationCode,
	}
}

func toLocations(dtos []locationDTO) []domain.Location {
	result := make([]domain.Location, 0, len(dtos))
	for _, d := range dtos {
		result = append(result, toLocation(d))
	}
	return result
}

// toTransportation converts a listed or fetched transportation. Rows with a type
// outside the closed set, or with an operating day outside 1..7, cannot be
// represented and are rejected.
func toTransportation(d transportationDTO) (domain.Transportation, error) {
	typ, ok := domain.ParseTransportationType(d.TransportationType)
	if !ok {
		return domain.Transportation{}, fmt.Errorf("unsupported transportation type %q", d.TransportationType)
	}
	days, err := operatingDays(d.OperatingDays)
	if err != nil {
		return domain.Transportation{}, err
	}
	t := routeTransportation(d)
	t.TransportationType = typ
	t.OperatingDays = days
	return t, nil
}

// routeTransportation converts a route leg as sent. Route contents are trusted,
// so an unrecognized type or day is carried through unchanged.
func routeTransportation(d transportationDTO) domain.Transportation {
	typ, ok := domain.ParseTransportationType(d.TransportationType)
	if !ok {
		typ = domain.TransportationType(d.TransportationType)
	}
	var days domain.OperatingDays
	if d.OperatingDays != nil {
		days = append(domain.OperatingDays{}, d.OperatingDays...)
	}
	return domain.Transportation{
		ID:                    d.ID,
		OriginLocationID:      d.OriginLocationID,
		DestinationLocationID: d.DestinationLocationID,
		TransportationType:    typ,
		OperatingDays:         days,
	}
}

// operatingDays keeps the upstream order. Only an absent list means every day,
// so a value outside 1..7 rejects the whole list.
func operatingDays(days []int) (domain.OperatingDays, error) {
	if days == nil {
		return nil, nil
	}
	result := make(domain.OperatingDays, 0, len(days))
	for _, d := range days {
		if !domain.IsOperatingDay(d) {
			return nil, fmt.Errorf("operating day %d out of range", d)
		}
		result = append(result, d)
	}
	return result, nil
}

func toRoutes(dtos []routeDTO) []domain.Route {
	result := make([]domain.Route, 0, len(dtos))
	for _, r := range dtos {
		segments := make([]domain.RouteSegment, 0, len(r.Segments))
		for _, s := range r.Segments {
			segments = append(segments, domain.RouteSegment{
				Order:          s.Order,
				Transportation: routeTransportation(s.Transportation),
			})
		}
		result = append(result, domain.Route{
			Origin:      toLocation(r.Origin),
			Destination: toLocation(r.Destination),
			Segments:    segments,
		})
	}
	return result
}

func fromLocationInput(in domain.LocationInput) locationDTO {
	return locationDTO{
		Name:         in.Name,
		Country:      in.Country,
		City:         in.City,
		LocationCode: in.LocationCode,
	}
}

func fromTransportationInput(in domain.TransportationInput) transportationDTO {
	return transportationDTO{
		OriginLocationID:      in.OriginLocationID,
		DestinationLocationID: in.DestinationLocationID,
		TransportationType:    in.TransportationType.String(),
		OperatingDays:         in.OperatingDays,
	}
}
