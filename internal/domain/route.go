package domain

import (
	"fmt"
)

// MaxRouteSegments is the longest route the upstream contract allows:
// one transfer, one flight, one transfer.
const MaxRouteSegments = 3

// RouteSegment is a single leg of a route.
type RouteSegment struct {
	// Order is the 1-based position of the leg within its route
	Order int `json:"order"`

	// Transportation is the link traversed by this leg
	Transportation Transportation `json:"transportation"`
}

// Route is a chain of transportations from an origin to a destination containing
// exactly one flight and at most one transfer before and after it.
// Routes are value objects built per search response.
type Route struct {
	Origin      Location       `json:"origin"`
	Destination Location       `json:"destination"`
	Segments    []RouteSegment `json:"segments"`
}

// FlightCount returns the number of FLIGHT segments.
func (r Route) FlightCount() int {
	n := 0
	for _, s := range r.Segments {
		if s.Transportation.IsFlight() {
			n++
		}
	}
	return n
}

// IsChained reports whether each segment departs from where the previous one arrived.
func (r Route) IsChained() bool {
	for i := 0; i+1 < len(r.Segments); i++ {
		if r.Segments[i].Transportation.DestinationLocationID != r.Segments[i+1].Transportation.OriginLocationID {
			return false
		}
	}
	return true
}

// FirstOriginID returns the origin location id of the first segment.
func (r Route) FirstOriginID() (int64, bool) {
	if len(r.Segments) == 0 {
		return 0, false
	}
	return r.Segments[0].Transportation.OriginLocationID, true
}

// LastDestinationID returns the destination location id of the last segment.
func (r Route) LastDestinationID() (int64, bool) {
	if len(r.Segments) == 0 {
		return 0, false
	}
	return r.Segments[len(r.Segments)-1].Transportation.DestinationLocationID, true
}

// OperatesOn reports whether every leg of the route runs on the given ISO weekday.
func (r Route) OperatesOn(day int) bool {
	for _, s := range r.Segments {
		if !s.Transportation.OperatingDays.Includes(day) {
			return false
		}
	}
	return true
}

// CheckShape verifies the documented route invariant. It returns nil for a well-formed
// route and an error wrapping ErrMalformedRoute describing the first violation otherwise.
func (r Route) CheckShape() error {
	n := len(r.Segments)
	if n == 0 || n > MaxRouteSegments {
		return fmt.Errorf("%w: %d segments", ErrMalformedRoute, n)
	}

	flightAt := -1
	for i, s := range r.Segments {
		if s.Order != i+1 {
			return fmt.Errorf("%w: segment %d has order %d", ErrMalformedRoute, i+1, s.Order)
		}
		if !s.Transportation.TransportationType.IsValid() {
			return fmt.Errorf("%w: segment %d has unknown type %q", ErrMalformedRoute, i+1, s.Transportation.TransportationType)
		}
		if s.Transportation.IsFlight() {
			if flightAt >= 0 {
				return fmt.Errorf("%w: more than one flight", ErrMalformedRoute)
			}
			flightAt = i
		}
	}
	if flightAt < 0 {
		return fmt.Errorf("%w: no flight segment", ErrMalformedRoute)
	}

	// At most one transfer on each side of the flight.
	if flightAt > 1 || n-flightAt-1 > 1 {
		return fmt.Errorf("%w: too many transfers around the flight", ErrMalformedRoute)
	}

	if !r.IsChained() {
		return fmt.Errorf("%w: segments are not contiguous", ErrMalformedRoute)
	}

	first, _ := r.FirstOriginID()
	last, _ := r.LastDestinationID()
	if r.Origin.ID != nil && *r.Origin.ID != first {
		return fmt.Errorf("%w: first segment does not start at the route origin", ErrMalformedRoute)
	}
	if r.Destination.ID != nil && *r.Destination.ID != last {
		return fmt.Errorf("%w: last segment does not end at the route destination", ErrMalformedRoute)
	}

	return nil
}
