package upstream

// Wire representations of the upstream network service payloads.
// They are decoded leniently and converted to domain values by the normalizer.

type locationDTO struct {
	ID           *int64 `json:"id,omitempty"`
	Name         string `json:"name"`
	Country      string `json:"country"`
	City         string `json:"city"`
	LocationCode string `json:"locationCode"`
}

type transportationDTO struct {
	ID                    *int64 `json:"id,omitempty"`
	OriginLocationID      int64  `json:"originLocationId"`
	DestinationLocationID int64  `json:"destinationLocationId"`
	TransportationType    string `json:"transportationType"`
	OperatingDays         []int  `json:"operatingDays,omitempty"`
}

type routeSegmentDTO struct {
	Order          int               `json:"order"`
	Transportation transportationDTO `json:"transportation"`
}

type routeDTO struct {
	Origin      locationDTO       `json:"origin"`
	Destination locationDTO       `json:"destination"`
	Segments    []routeSegmentDTO `json:"segments"`
}

// errorResponse covers the error bodies the upstream is known to send:
// {"message": "...", "errors": {"field": "message"}} and
// {"error": "...", "fieldErrors": [{"field": "...", "message": "..."}]}.
type errorResponse struct {
	Message     string            `json:"message"`
	Error       string            `json:"error"`
	Errors      map[string]string `json:"errors"`
	FieldErrors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fieldErrors"`
}
