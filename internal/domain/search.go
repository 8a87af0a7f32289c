package domain

import (
	"strconv"
	"time"

	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// RouteSearchCriteria is the operator's search input before validation.
type RouteSearchCriteria struct {
	// OriginLocationID is the selected origin; nil when nothing was selected
	OriginLocationID *int64 `json:"originLocationId,omitempty"`

	// DestinationLocationID is the selected destination; nil when nothing was selected
	DestinationLocationID *int64 `json:"destinationLocationId,omitempty"`

	// Date is the optional travel date. Only its calendar day is used.
	Date *time.Time `json:"date,omitempty"`
}

// RouteQuery is the normalized request sent to the upstream route finder.
type RouteQuery struct {
	OriginLocationID      int64 `json:"originLocationId"`
	DestinationLocationID int64 `json:"destinationLocationId"`

	// Date is YYYY-MM-DD, or empty to disable operating-day filtering
	Date string `json:"date,omitempty"`
}

// FiltersByDay reports whether the query asks upstream to apply operating-day filtering.
func (q RouteQuery) FiltersByDay() bool {
	return q.Date != ""
}

// Weekday returns the ISO weekday of the query date. The second return value is
// false when the query has no date or the date cannot be parsed.
func (q RouteQuery) Weekday() (int, bool) {
	if q.Date == "" {
		return 0, false
	}
	t, err := time.Parse(timeutil.DateLayout, q.Date)
	if err != nil {
		return 0, false
	}
	return ISOWeekday(t), true
}

// CacheKey returns a stable string identifying the query.
func (q RouteQuery) CacheKey() string {
	return strconv.FormatInt(q.OriginLocationID, 10) + ">" + strconv.FormatInt(q.DestinationLocationID, 10) + "@" + q.Date
}

// RouteSearchResult is the outcome of a successful route search.
type RouteSearchResult struct {
	// Query is the normalized request that produced the result
	Query RouteQuery `json:"query"`

	// Routes are the candidate routes in upstream order
	Routes []Route `json:"routes"`

	// NoResults is true when no route satisfies the criteria
	NoResults bool `json:"noResults"`

	// Discarded is the number of routes dropped by shape verification
	Discarded int `json:"discarded,omitempty"`

	// SearchTimeMs is the duration of the upstream call in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}

// NewRouteSearchResult creates a result for the given query and routes.
func NewRouteSearchResult(query RouteQuery, routes []Route, elapsed time.Duration) *RouteSearchResult {
	if routes == nil {
		routes = []Route{}
	}
	return &RouteSearchResult{
		Query:        query,
		Routes:       routes,
		NoResults:    len(routes) == 0,
		SearchTimeMs: elapsed.Milliseconds(),
	}
}
