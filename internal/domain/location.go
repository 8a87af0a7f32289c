// Package domain contains the core entities and contracts of the route console.
// These types mirror the upstream network service's resource model and carry no
// transport or presentation concerns.
package domain

// Location represents a named place in the network (airport, city centre, station).
type Location struct {
	// ID is assigned by the upstream store; nil until the location has been created
	ID *int64 `json:"id,omitempty"`

	// Name is the display name (e.g., "Istanbul Airport")
	Name string `json:"name"`

	// Country is the country the location belongs to
	Country string `json:"country"`

	// City is the city the location belongs to
	City string `json:"city"`

	// LocationCode is a short textual code (e.g., "IST")
	LocationCode string `json:"locationCode"`
}

// LocationInput is the payload for creating or updating a location.
type LocationInput struct {
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	LocationCode string `json:"locationCode"`
}

// HasID reports whether the location has been assigned an id upstream.
func (l Location) HasID() bool {
	return l.ID != nil
}

// IDValue returns the location id, or 0 when none has been assigned.
// Use HasID to tell an unassigned id apart from a zero id.
func (l Location) IDValue() int64 {
	if l.ID == nil {
		return 0
	}
	return *l.ID
}

// ID returns a pointer to the given id. It keeps literals readable where an
// optional id is expected.
func ID(v int64) *int64 {
	return &v
}
