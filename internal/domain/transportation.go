package domain

import (
	"sort"
	"strings"
	"time"
)

// TransportationType is the mode of a transportation link.
type TransportationType string

// Transportation types known to the upstream contract.
const (
	TransportationFlight TransportationType = "FLIGHT"
	TransportationBus    TransportationType = "BUS"
	TransportationSubway TransportationType = "SUBWAY"
	TransportationUber   TransportationType = "UBER"
)

// AllTransportationTypes returns every member of the enumeration in display order.
func AllTransportationTypes() []TransportationType {
	return []TransportationType{
		TransportationFlight,
		TransportationBus,
		TransportationSubway,
		TransportationUber,
	}
}

// IsValid checks if the type is a member of the enumeration.
func (t TransportationType) IsValid() bool {
	switch t {
	case TransportationFlight, TransportationBus, TransportationSubway, TransportationUber:
		return true
	default:
		return false
	}
}

// IsTransfer reports whether the type is a ground transfer (anything but FLIGHT).
func (t TransportationType) IsTransfer() bool {
	return t.IsValid() && t != TransportationFlight
}

// String implements fmt.Stringer.
func (t TransportationType) String() string {
	return string(t)
}

// ParseTransportationType converts a string to a TransportationType (case-insensitive).
// The second return value is false when the string is not a member.
func ParseTransportationType(s string) (TransportationType, bool) {
	t := TransportationType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", false
	}
	return t, true
}

// Day bounds for operating days (ISO-8601 weekday numbering).
const (
	Monday = 1
	Sunday = 7
)

// OperatingDays is the set of ISO weekdays (1 = Monday ... 7 = Sunday) on which a
// transportation runs. An empty set means the transportation runs every day.
type OperatingDays []int

// EveryDay reports whether no restriction is set.
func (d OperatingDays) EveryDay() bool {
	return len(d) == 0
}

// Includes reports whether the transportation runs on the given ISO weekday.
func (d OperatingDays) Includes(day int) bool {
	if d.EveryDay() {
		return true
	}
	for _, v := range d {
		if v == day {
			return true
		}
	}
	return false
}

// OperatesOn reports whether the transportation runs on the calendar day of t.
func (d OperatingDays) OperatesOn(t time.Time) bool {
	return d.Includes(ISOWeekday(t))
}

// Valid reports whether every day is within [1,7].
func (d OperatingDays) Valid() bool {
	for _, v := range d {
		if !IsOperatingDay(v) {
			return false
		}
	}
	return true
}

// Sorted returns an ascending, de-duplicated copy of the days.
func (d OperatingDays) Sorted() OperatingDays {
	if d == nil {
		return nil
	}
	out := make(OperatingDays, 0, len(d))
	seen := make(map[int]bool, len(d))
	for _, v := range d {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// IsOperatingDay reports whether v is a valid ISO weekday number.
func IsOperatingDay(v int) bool {
	return v >= Monday && v <= Sunday
}

// ISOWeekday returns the ISO-8601 weekday of t (1 = Monday ... 7 = Sunday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return Sunday
	}
	return wd
}

// Transportation is a directed link between two locations.
type Transportation struct {
	// ID is assigned by the upstream store; nil until created
	ID *int64 `json:"id,omitempty"`

	// OriginLocationID references the departure location
	OriginLocationID int64 `json:"originLocationId"`

	// DestinationLocationID references the arrival location
	DestinationLocationID int64 `json:"destinationLocationId"`

	// TransportationType is the mode of the link
	TransportationType TransportationType `json:"transportationType"`

	// OperatingDays restricts the days the link runs; empty means every day
	OperatingDays OperatingDays `json:"operatingDays,omitempty"`
}

// TransportationInput is the payload for creating or updating a transportation.
type TransportationInput struct {
	OriginLocationID      int64              `json:"originLocationId"`
	DestinationLocationID int64              `json:"destinationLocationId"`
	TransportationType    TransportationType `json:"transportationType"`
	OperatingDays         OperatingDays      `json:"operatingDays,omitempty"`
}

// IDValue returns the transportation id, or 0 when none has been assigned.
func (t Transportation) IDValue() int64 {
	if t.ID == nil {
		return 0
	}
	return *t.ID
}

// IsFlight reports whether the link is a flight.
func (t Transportation) IsFlight() bool {
	return t.TransportationType == TransportationFlight
}

// TransportationFilter narrows a transportation listing. Nil fields are not sent.
type TransportationFilter struct {
	OriginLocationID      *int64              `json:"originLocationId,omitempty"`
	DestinationLocationID *int64              `json:"destinationLocationId,omitempty"`
	TransportationType    *TransportationType `json:"transportationType,omitempty"`
	OperatingDays         OperatingDays       `json:"operatingDays,omitempty"`
}

// Page carries pass-through paging parameters.
type Page struct {
	Page *int `json:"page,omitempty"`
	Size *int `json:"size,omitempty"`
}

// FirstPage returns a page request for page 0 with the given size.
func FirstPage(size int) Page {
	p := 0
	return Page{Page: &p, Size: &size}
}

// Normalize fills in page 0 when only a size was given.
func (p Page) Normalize() Page {
	if p.Page == nil && p.Size != nil {
		zero := 0
		p.Page = &zero
	}
	return p
}
