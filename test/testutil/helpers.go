// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(timeutil.DateLayout, value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// Criteria builds route search criteria between two location ids. An empty
// date leaves operating-day filtering off.
func Criteria(t *testing.T, origin, destination int64, date string) domain.RouteSearchCriteria {
	t.Helper()
	c := domain.RouteSearchCriteria{
		OriginLocationID:      domain.ID(origin),
		DestinationLocationID: domain.ID(destination),
	}
	if date != "" {
		c.Date = Ptr(MustParseDate(t, date))
	}
	return c
}

// Leg builds a transportation between two location ids.
func Leg(id, from, to int64, typ domain.TransportationType, days ...int) domain.Transportation {
	return domain.Transportation{
		ID:                    domain.ID(id),
		OriginLocationID:      from,
		DestinationLocationID: to,
		TransportationType:    typ,
		OperatingDays:         days,
	}
}

// Route builds a route whose segments are numbered in the order given.
func Route(origin, destination domain.Location, legs ...domain.Transportation) domain.Route {
	segments := make([]domain.RouteSegment, len(legs))
	for i, l := range legs {
		segments[i] = domain.RouteSegment{Order: i + 1, Transportation: l}
	}
	return domain.Route{Origin: origin, Destination: destination, Segments: segments}
}
