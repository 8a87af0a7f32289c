package presentation

import (
	"strconv"
	"strings"

	"github.com/skyroute/route-console/internal/domain"
)

// TransportationRow is a transportation as listed to the operator.
type TransportationRow struct {
	ID                    *int64 `json:"id,omitempty"`
	TransportationType    string `json:"transportationType"`
	OriginLocationID      int64  `json:"originLocationId"`
	Origin                string `json:"origin"`
	DestinationLocationID int64  `json:"destinationLocationId"`
	Destination           string `json:"destination"`
	OperatingDays         string `json:"operatingDays"`
}

// BuildTransportationRows resolves location names through dir.
func BuildTransportationRows(ts []domain.Transportation, dir *LocationDirectory) []TransportationRow {
	rows := make([]TransportationRow, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, TransportationRow{
			ID:                    t.ID,
			TransportationType:    t.TransportationType.String(),
			OriginLocationID:      t.OriginLocationID,
			Origin:                dir.Name(t.OriginLocationID),
			DestinationLocationID: t.DestinationLocationID,
			Destination:           dir.Name(t.DestinationLocationID),
			OperatingDays:         FormatOperatingDays(t.OperatingDays),
		})
	}
	return rows
}

// FormatOperatingDays lists the days in ascending order ("1, 3, 5"), or "All"
// when the transportation runs every day.
func FormatOperatingDays(days domain.OperatingDays) string {
	if days.EveryDay() {
		return "All"
	}
	sorted := days.Sorted()
	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}
