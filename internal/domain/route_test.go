package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// leg creates a transportation between two location ids for route tests.
func leg(id, from, to int64, typ TransportationType, days ...int) Transportation {
	return Transportation{
		ID:                    ID(id),
		OriginLocationID:      from,
		DestinationLocationID: to,
		TransportationType:    typ,
		OperatingDays:         days,
	}
}

// routeOf builds a route whose segments are numbered in the given order.
func routeOf(origin, destination int64, legs ...Transportation) Route {
	segments := make([]RouteSegment, len(legs))
	for i, l := range legs {
		segments[i] = RouteSegment{Order: i + 1, Transportation: l}
	}
	return Route{
		Origin:      Location{ID: ID(origin)},
		Destination: Location{ID: ID(destination)},
		Segments:    segments,
	}
}

func TestRoute_CheckShape_Valid(t *testing.T) {
	tests := []struct {
		name  string
		route Route
	}{
		{
			name:  "direct flight",
			route: routeOf(1, 2, leg(10, 1, 2, TransportationFlight)),
		},
		{
			name:  "transfer then flight",
			route: routeOf(5, 2, leg(11, 5, 1, TransportationBus), leg(10, 1, 2, TransportationFlight)),
		},
		{
			name:  "flight then transfer",
			route: routeOf(1, 6, leg(10, 1, 2, TransportationFlight), leg(12, 2, 6, TransportationUber)),
		},
		{
			name: "transfer flight transfer",
			route: routeOf(5, 6,
				leg(11, 5, 1, TransportationSubway),
				leg(10, 1, 2, TransportationFlight),
				leg(12, 2, 6, TransportationBus),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.route.CheckShape())
			assert.Equal(t, 1, tt.route.FlightCount())
			assert.True(t, tt.route.IsChained())
		})
	}
}

func TestRoute_CheckShape_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		route   Route
		wantMsg string
	}{
		{
			name:    "no segments",
			route:   routeOf(1, 2),
			wantMsg: "0 segments",
		},
		{
			name: "four segments",
			route: routeOf(1, 5,
				leg(1, 1, 2, TransportationBus),
				leg(2, 2, 3, TransportationFlight),
				leg(3, 3, 4, TransportationBus),
				leg(4, 4, 5, TransportationBus),
			),
			wantMsg: "4 segments",
		},
		{
			name:    "no flight",
			route:   routeOf(1, 2, leg(1, 1, 2, TransportationBus)),
			wantMsg: "no flight",
		},
		{
			name:    "two flights",
			route:   routeOf(1, 3, leg(1, 1, 2, TransportationFlight), leg(2, 2, 3, TransportationFlight)),
			wantMsg: "more than one flight",
		},
		{
			name: "two transfers before flight",
			route: routeOf(1, 4,
				leg(1, 1, 2, TransportationBus),
				leg(2, 2, 3, TransportationUber),
				leg(3, 3, 4, TransportationFlight),
			),
			wantMsg: "too many transfers",
		},
		{
			name:    "broken chain",
			route:   routeOf(1, 4, leg(1, 1, 2, TransportationBus), leg(2, 3, 4, TransportationFlight)),
			wantMsg: "not contiguous",
		},
		{
			name:    "first segment not at origin",
			route:   routeOf(9, 2, leg(1, 1, 2, TransportationFlight)),
			wantMsg: "route origin",
		},
		{
			name:    "last segment not at destination",
			route:   routeOf(1, 9, leg(1, 1, 2, TransportationFlight)),
			wantMsg: "route destination",
		},
		{
			name: "out of order",
			route: Route{
				Origin:      Location{ID: ID(1)},
				Destination: Location{ID: ID(3)},
				Segments: []RouteSegment{
					{Order: 2, Transportation: leg(1, 1, 2, TransportationBus)},
					{Order: 1, Transportation: leg(2, 2, 3, TransportationFlight)},
				},
			},
			wantMsg: "has order",
		},
		{
			name:    "unknown type",
			route:   routeOf(1, 2, leg(1, 1, 2, TransportationType("FERRY"))),
			wantMsg: "unknown type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.route.CheckShape()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRoute))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestRoute_Endpoints(t *testing.T) {
	r := routeOf(5, 6,
		leg(11, 5, 1, TransportationSubway),
		leg(10, 1, 2, TransportationFlight),
		leg(12, 2, 6, TransportationBus),
	)

	first, ok := r.FirstOriginID()
	assert.True(t, ok)
	assert.Equal(t, int64(5), first)

	last, ok := r.LastDestinationID()
	assert.True(t, ok)
	assert.Equal(t, int64(6), last)

	_, ok = Route{}.FirstOriginID()
	assert.False(t, ok)
	_, ok = Route{}.LastDestinationID()
	assert.False(t, ok)
}

func TestRoute_OperatesOn(t *testing.T) {
	flightMonWedFri := routeOf(1, 2, leg(10, 1, 2, TransportationFlight, 1, 3, 5))
	everyDay := routeOf(1, 2, leg(10, 1, 2, TransportationFlight))
	transferSundayOnly := routeOf(5, 2, leg(11, 5, 1, TransportationBus, 7), leg(10, 1, 2, TransportationFlight))

	assert.False(t, flightMonWedFri.OperatesOn(2), "tuesday is excluded")
	assert.True(t, flightMonWedFri.OperatesOn(3))
	assert.True(t, everyDay.OperatesOn(2))
	assert.False(t, transferSundayOnly.OperatesOn(1))
	assert.True(t, transferSundayOnly.OperatesOn(7))
}
