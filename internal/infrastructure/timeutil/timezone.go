package timeutil

import (
	"fmt"
	"sync"
	"time"

	// Embedded zone database so operator timezones resolve in minimal containers.
	_ "time/tzdata"
)

// DateLayout is the ISO calendar-date layout (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// UTC is the default operator timezone.
const UTC = "UTC"

// locationCache stores loaded timezone locations.
var locationCache sync.Map

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// CalendarDate formats the calendar day of t, as observed in loc, as YYYY-MM-DD.
// A nil loc keeps t's own location.
func CalendarDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// ParseCalendarDate parses a YYYY-MM-DD date as midnight in loc.
func ParseCalendarDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", value, err)
	}
	return t, nil
}

// StartOfDay returns the start of the day (00:00:00) for the given time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return CalendarDate(a, loc) == CalendarDate(b, loc)
}

