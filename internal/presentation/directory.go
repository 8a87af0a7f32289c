// Package presentation turns domain values into what the operator sees: location
// labels resolved from ids, numbered route options and transportation rows.
package presentation

import (
	"strconv"

	"github.com/skyroute/route-console/internal/domain"
)

// LocationOption is an entry of a location picker.
type LocationOption struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// LocationDirectory resolves location ids to display text. It is immutable once
// built; a refreshed location list produces a new directory.
type LocationDirectory struct {
	byID  map[int64]domain.Location
	order []int64
}

// NewLocationDirectory indexes the given locations by id. Locations without an
// id are skipped; for duplicate ids the first occurrence wins.
func NewLocationDirectory(locations []domain.Location) *LocationDirectory {
	d := &LocationDirectory{
		byID:  make(map[int64]domain.Location, len(locations)),
		order: make([]int64, 0, len(locations)),
	}
	for _, loc := range locations {
		if !loc.HasID() {
			continue
		}
		id := loc.IDValue()
		if _, exists := d.byID[id]; exists {
			continue
		}
		d.byID[id] = loc
		d.order = append(d.order, id)
	}
	return d
}

// Len returns the number of indexed locations.
func (d *LocationDirectory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byID)
}

// Lookup returns the location with the given id.
func (d *LocationDirectory) Lookup(id int64) (domain.Location, bool) {
	if d == nil {
		return domain.Location{}, false
	}
	loc, ok := d.byID[id]
	return loc, ok
}

// Label returns "Name (CODE)" for a known id and "ID: n" otherwise.
func (d *LocationDirectory) Label(id int64) string {
	loc, ok := d.Lookup(id)
	if !ok {
		return fallbackLabel(id)
	}
	return loc.Name + " (" + loc.LocationCode + ")"
}

// Name returns the location name for a known id and "ID: n" otherwise.
func (d *LocationDirectory) Name(id int64) string {
	loc, ok := d.Lookup(id)
	if !ok || loc.Name == "" {
		return fallbackLabel(id)
	}
	return loc.Name
}

// Options returns picker entries in the order the locations were listed.
func (d *LocationDirectory) Options() []LocationOption {
	if d == nil {
		return []LocationOption{}
	}
	opts := make([]LocationOption, 0, len(d.order))
	for _, id := range d.order {
		opts = append(opts, LocationOption{ID: id, Label: d.Label(id)})
	}
	return opts
}

func fallbackLabel(id int64) string {
	return "ID: " + strconv.FormatInt(id, 10)
}
