// Package validation holds the input rules applied before any upstream call.
// Every function is pure: it inspects its arguments and returns either nil or a
// *domain.ValidationErrors describing each offending field.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// Field names, matching the JSON names of the validated payloads.
const (
	FieldName                  = "name"
	FieldCountry               = "country"
	FieldCity                  = "city"
	FieldLocationCode          = "locationCode"
	FieldOriginLocationID      = "originLocationId"
	FieldDestinationLocationID = "destinationLocationId"
	FieldTransportationType    = "transportationType"
	FieldOperatingDays         = "operatingDays"
	FieldDate                  = "date"
)

// Messages shown to the operator.
const (
	MsgNameTooShort         = "Name must be at least 2 characters."
	MsgCountryTooShort      = "Country must be at least 2 characters."
	MsgCityTooShort         = "City must be at least 2 characters."
	MsgLocationCodeTooShort = "Location code must be at least 3 characters."
	MsgOriginRequired       = "Origin is required"
	MsgDestinationRequired  = "Destination is required"
	MsgSameEndpoints        = "Destination must be different from Origin"
	MsgNoOperatingDays      = "Select at least one operating day"
	MsgOperatingDayRange    = "Operating days must be between 1 (Monday) and 7 (Sunday)"
	MsgDateInPast           = "Date cannot be in the past"
)

// MsgUnknownType lists the accepted transportation types.
var MsgUnknownType = "Transportation type must be one of " + typeNames()

func typeNames() string {
	types := domain.AllTransportationTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Location checks a location create/update payload.
func Location(in domain.LocationInput) error {
	errs := &domain.ValidationErrors{}
	minLength(errs, FieldName, in.Name, 2, MsgNameTooShort)
	minLength(errs, FieldCountry, in.Country, 2, MsgCountryTooShort)
	minLength(errs, FieldCity, in.City, 2, MsgCityTooShort)
	minLength(errs, FieldLocationCode, in.LocationCode, 3, MsgLocationCodeTooShort)
	return errs.OrNil()
}

// Transportation checks a transportation create/update payload.
func Transportation(in domain.TransportationInput) error {
	errs := &domain.ValidationErrors{}

	hasOrigin := in.OriginLocationID > 0
	hasDestination := in.DestinationLocationID > 0
	if !hasOrigin {
		errs.Add(FieldOriginLocationID, MsgOriginRequired)
	}
	if !hasDestination {
		errs.Add(FieldDestinationLocationID, MsgDestinationRequired)
	}
	if hasOrigin && hasDestination && in.OriginLocationID == in.DestinationLocationID {
		errs.Add(FieldDestinationLocationID, MsgSameEndpoints)
	}

	if !in.TransportationType.IsValid() {
		errs.Add(FieldTransportationType, MsgUnknownType)
	}

	if len(in.OperatingDays) == 0 {
		errs.Add(FieldOperatingDays, MsgNoOperatingDays)
	} else {
		OperatingDays(errs, in.OperatingDays)
	}

	return errs.OrNil()
}

// OperatingDays records an error on errs when any day falls outside 1..7.
// An empty list is accepted; callers that require a selection check that themselves.
func OperatingDays(errs *domain.ValidationErrors, days domain.OperatingDays) {
	if !days.Valid() {
		errs.Add(FieldOperatingDays, MsgOperatingDayRange)
	}
}

// TransportationFilter checks list filters before they are forwarded upstream.
func TransportationFilter(f domain.TransportationFilter) error {
	errs := &domain.ValidationErrors{}
	if f.TransportationType != nil && !f.TransportationType.IsValid() {
		errs.Add(FieldTransportationType, MsgUnknownType)
	}
	OperatingDays(errs, f.OperatingDays)
	return errs.OrNil()
}

// RouteSearch checks route search criteria. today is the operator's current
// time; a date whose calendar day, in today's location, precedes today's is
// rejected.
func RouteSearch(c domain.RouteSearchCriteria, today time.Time) error {
	errs := &domain.ValidationErrors{}

	if c.OriginLocationID == nil {
		errs.Add(FieldOriginLocationID, MsgOriginRequired)
	}
	if c.DestinationLocationID == nil {
		errs.Add(FieldDestinationLocationID, MsgDestinationRequired)
	}
	if c.OriginLocationID != nil && c.DestinationLocationID != nil &&
		*c.OriginLocationID == *c.DestinationLocationID {
		errs.Add(FieldDestinationLocationID, MsgSameEndpoints)
	}

	if c.Date != nil && !today.IsZero() {
		if c.Date.Before(today) && !timeutil.SameDay(*c.Date, today, today.Location()) {
			errs.Add(FieldDate, MsgDateInPast)
		}
	}

	return errs.OrNil()
}

func minLength(errs *domain.ValidationErrors, field, value string, minLen int, message string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < minLen {
		errs.Add(field, message)
	}
}
