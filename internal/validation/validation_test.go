package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyroute/route-console/internal/domain"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	var verrs *domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, errors.Is(err, domain.ErrValidationFailed))
	return verrs.ToMap()
}

func TestLocation(t *testing.T) {
	valid := domain.LocationInput{Name: "Istanbul Airport", Country: "Turkey", City: "Istanbul", LocationCode: "IST"}

	tests := []struct {
		name string
		in   func(domain.LocationInput) domain.LocationInput
		want map[string]string
	}{
		{
			name: "valid",
			in:   func(l domain.LocationInput) domain.LocationInput { return l },
			want: nil,
		},
		{
			name: "minimum lengths accepted",
			in: func(l domain.LocationInput) domain.LocationInput {
				return domain.LocationInput{Name: "Ab", Country: "UK", City: "Ly", LocationCode: "LHR"}
			},
			want: nil,
		},
		{
			name: "short name",
			in:   func(l domain.LocationInput) domain.LocationInput { l.Name = "A"; return l },
			want: map[string]string{FieldName: MsgNameTooShort},
		},
		{
			name: "whitespace does not count",
			in:   func(l domain.LocationInput) domain.LocationInput { l.City = "  I  "; return l },
			want: map[string]string{FieldCity: MsgCityTooShort},
		},
		{
			name: "two letter code",
			in:   func(l domain.LocationInput) domain.LocationInput { l.LocationCode = "IS"; return l },
			want: map[string]string{FieldLocationCode: MsgLocationCodeTooShort},
		},
		{
			name: "everything empty",
			in:   func(domain.LocationInput) domain.LocationInput { return domain.LocationInput{} },
			want: map[string]string{
				FieldName:         MsgNameTooShort,
				FieldCountry:      MsgCountryTooShort,
				FieldCity:         MsgCityTooShort,
				FieldLocationCode: MsgLocationCodeTooShort,
			},
		},
		{
			name: "multibyte characters count once",
			in:   func(l domain.LocationInput) domain.LocationInput { l.City = "İz"; return l },
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Location(tt.in(valid))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestTransportation(t *testing.T) {
	tests := []struct {
		name string
		in   domain.TransportationInput
		want map[string]string
	}{
		{
			name: "valid flight",
			in: domain.TransportationInput{
				OriginLocationID: 1, DestinationLocationID: 2,
				TransportationType: domain.TransportationFlight, OperatingDays: domain.OperatingDays{1, 3, 5},
			},
		},
		{
			name: "same origin and destination",
			in: domain.TransportationInput{
				OriginLocationID: 1, DestinationLocationID: 1,
				TransportationType: domain.TransportationBus, OperatingDays: domain.OperatingDays{1},
			},
			want: map[string]string{FieldDestinationLocationID: MsgSameEndpoints},
		},
		{
			name: "missing endpoints",
			in: domain.TransportationInput{
				TransportationType: domain.TransportationUber, OperatingDays: domain.OperatingDays{7},
			},
			want: map[string]string{
				FieldOriginLocationID:      MsgOriginRequired,
				FieldDestinationLocationID: MsgDestinationRequired,
			},
		},
		{
			name: "no operating days",
			in: domain.TransportationInput{
				OriginLocationID: 1, DestinationLocationID: 2, TransportationType: domain.TransportationSubway,
			},
			want: map[string]string{FieldOperatingDays: MsgNoOperatingDays},
		},
		{
			name: "operating day out of range",
			in: domain.TransportationInput{
				OriginLocationID: 1, DestinationLocationID: 2,
				TransportationType: domain.TransportationFlight, OperatingDays: domain.OperatingDays{0, 8},
			},
			want: map[string]string{FieldOperatingDays: MsgOperatingDayRange},
		},
		{
			name: "unknown type",
			in: domain.TransportationInput{
				OriginLocationID: 1, DestinationLocationID: 2,
				TransportationType: "FERRY", OperatingDays: domain.OperatingDays{2},
			},
			want: map[string]string{FieldTransportationType: MsgUnknownType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Transportation(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestTransportationFilter(t *testing.T) {
	bus := domain.TransportationBus
	ferry := domain.TransportationType("FERRY")

	assert.NoError(t, TransportationFilter(domain.TransportationFilter{}))
	assert.NoError(t, TransportationFilter(domain.TransportationFilter{TransportationType: &bus, OperatingDays: domain.OperatingDays{2}}))

	err := TransportationFilter(domain.TransportationFilter{TransportationType: &ferry, OperatingDays: domain.OperatingDays{9}})
	assert.Equal(t, map[string]string{
		FieldTransportationType: MsgUnknownType,
		FieldOperatingDays:      MsgOperatingDayRange,
	}, fieldErrors(t, err))
}

func TestRouteSearch(t *testing.T) {
	istanbul := time.FixedZone("TRT", 3*60*60)
	// 2025-06-10 09:00 in Istanbul
	today := time.Date(2025, 6, 10, 9, 0, 0, 0, istanbul)

	date := func(y int, m time.Month, d, h int, loc *time.Location) *time.Time {
		v := time.Date(y, m, d, h, 0, 0, 0, loc)
		return &v
	}

	tests := []struct {
		name     string
		criteria domain.RouteSearchCriteria
		want     map[string]string
	}{
		{
			name:     "origin and destination without date",
			criteria: domain.RouteSearchCriteria{OriginLocationID: domain.ID(1), DestinationLocationID: domain.ID(2)},
		},
		{
			name: "today is allowed",
			criteria: domain.RouteSearchCriteria{
				OriginLocationID: domain.ID(1), DestinationLocationID: domain.ID(2),
				Date: date(2025, 6, 10, 0, istanbul),
			},
		},
		{
			name: "late utc evening is already tomorrow in istanbul",
			criteria: domain.RouteSearchCriteria{
				OriginLocationID: domain.ID(1), DestinationLocationID: domain.ID(2),
				Date: date(2025, 6, 9, 22, time.UTC),
			},
		},
		{
			name: "yesterday is rejected",
			criteria: domain.RouteSearchCriteria{
				OriginLocationID: domain.ID(1), DestinationLocationID: domain.ID(2),
				Date: date(2025, 6, 9, 12, istanbul),
			},
			want: map[string]string{FieldDate: MsgDateInPast},
		},
		{
			name:     "same origin and destination",
			criteria: domain.RouteSearchCriteria{OriginLocationID: domain.ID(4), DestinationLocationID: domain.ID(4)},
			want:     map[string]string{FieldDestinationLocationID: MsgSameEndpoints},
		},
		{
			name:     "zero ids are distinct from absent ids",
			criteria: domain.RouteSearchCriteria{OriginLocationID: domain.ID(0), DestinationLocationID: domain.ID(1)},
		},
		{
			name:     "nothing selected",
			criteria: domain.RouteSearchCriteria{},
			want: map[string]string{
				FieldOriginLocationID:      MsgOriginRequired,
				FieldDestinationLocationID: MsgDestinationRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RouteSearch(tt.criteria, today)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestRouteSearch_ZeroTodaySkipsDateCheck(t *testing.T) {
	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	err := RouteSearch(domain.RouteSearchCriteria{
		OriginLocationID:      domain.ID(1),
		DestinationLocationID: domain.ID(2),
		Date:                  &past,
	}, time.Time{})
	assert.NoError(t, err)
}

func TestMsgUnknownType_ListsEveryType(t *testing.T) {
	assert.Equal(t, "Transportation type must be one of FLIGHT, BUS, SUBWAY, UBER", MsgUnknownType)
}
