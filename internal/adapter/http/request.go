package http

import (
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-console/internal/adapter/http/middleware"
	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
	"github.com/skyroute/route-console/internal/validation"
)

// Query parameter names.
const (
	paramPage  = "page"
	paramSize  = "size"
	paramID    = "id"
	paramFmt   = "format"
	formatText = "text"
)

// Messages for malformed parameters.
const (
	MsgInvalidNumber   = "Must be a number"
	MsgInvalidDate     = "Date must be in YYYY-MM-DD format"
	MsgInvalidID       = "Invalid id"
	MsgInvalidPage     = "Page must be zero or greater and size must be at least 1"
	MsgSessionRequired = "The " + middleware.ConsoleSessionHeader + " header is required"
	MsgNoSearchYet     = "No search has completed in this session"
)

// LocationRequest is the body of a location create or update.
type LocationRequest struct {
	Name         string `json:"name" example:"Istanbul Airport"`
	Country      string `json:"country" example:"Turkey"`
	City         string `json:"city" example:"Istanbul"`
	LocationCode string `json:"locationCode" example:"IST"`
}

// TransportationRequest is the body of a transportation create or update.
type TransportationRequest struct {
	OriginLocationID      int64  `json:"originLocationId" example:"1"`
	DestinationLocationID int64  `json:"destinationLocationId" example:"2"`
	TransportationType    string `json:"transportationType" example:"FLIGHT"`
	OperatingDays         []int  `json:"operatingDays" example:"1,3,5"`
}

// parsePage reads the optional page and size query parameters.
func parsePage(c echo.Context) (domain.Page, error) {
	var page domain.Page
	b := echo.QueryParamsBinder(c)

	if c.QueryParam(paramPage) != "" {
		var p int
		b.Int(paramPage, &p)
		page.Page = &p
	}
	if c.QueryParam(paramSize) != "" {
		var s int
		b.Int(paramSize, &s)
		page.Size = &s
	}

	errs := &domain.ValidationErrors{}
	collectBindErrors(errs, b)
	if page.Page != nil && *page.Page < 0 {
		errs.Add(paramPage, MsgInvalidPage)
	}
	if page.Size != nil && *page.Size < 1 {
		errs.Add(paramSize, MsgInvalidPage)
	}
	if err := errs.OrNil(); err != nil {
		return domain.Page{}, err
	}
	return page.Normalize(), nil
}

// parseID reads the positive :id path parameter.
func parseID(c echo.Context) (int64, bool) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64(paramID, &id).BindError(); err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseRouteSearchCriteria reads the route search query. Missing ids stay nil
// so validation reports them; the date is parsed as a calendar day in loc.
func parseRouteSearchCriteria(c echo.Context, loc *time.Location) (domain.RouteSearchCriteria, error) {
	var criteria domain.RouteSearchCriteria
	b := echo.QueryParamsBinder(c)
	errs := &domain.ValidationErrors{}

	criteria.OriginLocationID = optionalID(c, b, validation.FieldOriginLocationID)
	criteria.DestinationLocationID = optionalID(c, b, validation.FieldDestinationLocationID)
	collectBindErrors(errs, b)

	if raw := strings.TrimSpace(c.QueryParam(validation.FieldDate)); raw != "" {
		date, err := timeutil.ParseCalendarDate(raw, loc)
		if err != nil {
			errs.Add(validation.FieldDate, MsgInvalidDate)
		} else {
			criteria.Date = &date
		}
	}

	return criteria, errs.OrNil()
}

// parseTransportationFilter reads the transportation list filters.
func parseTransportationFilter(c echo.Context) (domain.TransportationFilter, error) {
	var filter domain.TransportationFilter
	b := echo.QueryParamsBinder(c)
	errs := &domain.ValidationErrors{}

	filter.OriginLocationID = optionalID(c, b, validation.FieldOriginLocationID)
	filter.DestinationLocationID = optionalID(c, b, validation.FieldDestinationLocationID)

	var days []int
	b.Ints(validation.FieldOperatingDays, &days)
	if len(days) > 0 {
		filter.OperatingDays = domain.OperatingDays(days)
	}
	collectBindErrors(errs, b)

	if raw := c.QueryParam(validation.FieldTransportationType); raw != "" {
		typ := transportationType(raw)
		filter.TransportationType = &typ
	}

	if err := errs.OrNil(); err != nil {
		return domain.TransportationFilter{}, err
	}
	return filter, validation.TransportationFilter(filter)
}

func optionalID(c echo.Context, b *echo.ValueBinder, name string) *int64 {
	if c.QueryParam(name) == "" {
		return nil
	}
	var id int64
	b.Int64(name, &id)
	return &id
}

// collectBindErrors turns binder failures into field errors.
func collectBindErrors(errs *domain.ValidationErrors, b *echo.ValueBinder) {
	for _, err := range b.BindErrors() {
		var be *echo.BindingError
		if errors.As(err, &be) {
			errs.Add(be.Field, MsgInvalidNumber)
		}
	}
}

// transportationType maps a case-insensitive name onto the enumeration. Unknown
// names are kept upper-cased so validation can reject them.
func transportationType(raw string) domain.TransportationType {
	if typ, ok := domain.ParseTransportationType(raw); ok {
		return typ
	}
	return domain.TransportationType(strings.ToUpper(strings.TrimSpace(raw)))
}
