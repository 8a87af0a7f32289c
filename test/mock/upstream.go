// Package mock provides a fake upstream network service for integration tests.
// It stores locations and transportations in memory, computes routes with the
// one-flight route shape and supports configurable delays and failures.
package mock

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skyroute/route-console/internal/domain"
	"github.com/skyroute/route-console/internal/infrastructure/timeutil"
)

// Upstream is a configurable in-memory implementation of the network service API.
type Upstream struct {
	mu              sync.Mutex
	nextID          int64
	locations       map[int64]domain.Location
	transportations map[int64]domain.Transportation

	delay      time.Duration
	failStatus int
	failPaths  map[string]int
	calls      map[string]int

	server *httptest.Server
}

// NewUpstream creates and starts a fake upstream. Call Close when done.
func NewUpstream() *Upstream {
	u := &Upstream{
		locations:       make(map[int64]domain.Location),
		transportations: make(map[int64]domain.Transportation),
		failPaths:       make(map[string]int),
		calls:           make(map[string]int),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(u.intercept)

	e.GET("/api/locations", u.listLocations)
	e.POST("/api/locations", u.createLocation)
	e.GET("/api/locations/:id", u.getLocation)
	e.PUT("/api/locations/:id", u.updateLocation)
	e.DELETE("/api/locations/:id", u.deleteLocation)

	e.GET("/api/transportations", u.listTransportations)
	e.POST("/api/transportations", u.createTransportation)
	e.GET("/api/transportations/:id", u.getTransportation)
	e.PUT("/api/transportations/:id", u.updateTransportation)
	e.DELETE("/api/transportations/:id", u.deleteTransportation)

	e.GET("/api/routes", u.findRoutes)

	u.server = httptest.NewServer(e)
	return u
}

// URL returns the base URL of the fake upstream.
func (u *Upstream) URL() string {
	return u.server.URL
}

// Close shuts the server down.
func (u *Upstream) Close() {
	u.server.Close()
}

// WithDelay makes every request wait d before being answered. The wait ends
// early when the client goes away.
func (u *Upstream) WithDelay(d time.Duration) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.delay = d
	return u
}

// WithFailure makes every request answer with status. Zero restores normal behavior.
func (u *Upstream) WithFailure(status int) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.failStatus = status
	return u
}

// FailPath makes requests to path answer with status, leaving other paths
// alone. Zero restores normal behavior.
func (u *Upstream) FailPath(path string, status int) *Upstream {
	u.mu.Lock()
	defer u.mu.Unlock()
	if status == 0 {
		delete(u.failPaths, path)
	} else {
		u.failPaths[path] = status
	}
	return u
}

// CallCount returns how many requests hit path, e.g. "/api/routes".
func (u *Upstream) CallCount(path string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.calls[path]
}

// AddLocation stores a location and returns it with its new id.
func (u *Upstream) AddLocation(name, country, city, code string) domain.Location {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.storeLocation(0, domain.LocationInput{Name: name, Country: country, City: city, LocationCode: code})
}

// AddTransportation stores a transportation and returns it with its new id.
func (u *Upstream) AddTransportation(from, to int64, typ domain.TransportationType, days ...int) domain.Transportation {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.storeTransportation(0, domain.TransportationInput{
		OriginLocationID:      from,
		DestinationLocationID: to,
		TransportationType:    typ,
		OperatingDays:         days,
	})
}

// AddRawTransportation stores a row with an arbitrary type string, which the
// console cannot represent.
func (u *Upstream) AddRawTransportation(from, to int64, typ string) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	t := u.storeTransportation(0, domain.TransportationInput{
		OriginLocationID:      from,
		DestinationLocationID: to,
		TransportationType:    domain.TransportationType(typ),
	})
	return t.IDValue()
}

func (u *Upstream) intercept(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u.mu.Lock()
		path := c.Request().URL.Path
		u.calls[path]++
		delay, failStatus := u.delay, u.failStatus
		if status, ok := u.failPaths[path]; ok {
			failStatus = status
		}
		u.mu.Unlock()

		if delay > 0 {
			select {
			case <-c.Request().Context().Done():
				return c.Request().Context().Err()
			case <-time.After(delay):
			}
		}
		if failStatus != 0 {
			return c.JSON(failStatus, echo.Map{"message": http.StatusText(failStatus)})
		}
		return next(c)
	}
}

func (u *Upstream) storeLocation(id int64, in domain.LocationInput) domain.Location {
	if id == 0 {
		u.nextID++
		id = u.nextID
	}
	loc := domain.Location{
		ID:           domain.ID(id),
		Name:         in.Name,
		Country:      in.Country,
		City:         in.City,
		LocationCode: in.LocationCode,
	}
	u.locations[id] = loc
	return loc
}

func (u *Upstream) storeTransportation(id int64, in domain.TransportationInput) domain.Transportation {
	if id == 0 {
		u.nextID++
		id = u.nextID
	}
	t := domain.Transportation{
		ID:                    domain.ID(id),
		OriginLocationID:      in.OriginLocationID,
		DestinationLocationID: in.DestinationLocationID,
		TransportationType:    in.TransportationType,
		OperatingDays:         in.OperatingDays,
	}
	u.transportations[id] = t
	return t
}

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"message": what + " not found"})
}

func pathID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// page applies page and size to a sorted id list.
func page(c echo.Context, ids []int64) []int64 {
	size, err := strconv.Atoi(c.QueryParam("size"))
	if err != nil || size <= 0 {
		return ids
	}
	p, _ := strconv.Atoi(c.QueryParam("page"))
	start := p * size
	if start >= len(ids) {
		return []int64{}
	}
	end := start + size
	if end > len(ids) {
		end = len(ids)
	}
	return ids[start:end]
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (u *Upstream) listLocations(c echo.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := []domain.Location{}
	for _, id := range page(c, sortedIDs(u.locations)) {
		out = append(out, u.locations[id])
	}
	return c.JSON(http.StatusOK, out)
}

func (u *Upstream) getLocation(c echo.Context) error {
	id, _ := pathID(c)
	u.mu.Lock()
	defer u.mu.Unlock()

	loc, ok := u.locations[id]
	if !ok {
		return notFound(c, "Location")
	}
	return c.JSON(http.StatusOK, loc)
}

func (u *Upstream) createLocation(c echo.Context) error {
	var in domain.LocationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "malformed body"})
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, existing := range u.locations {
		if existing.LocationCode == in.LocationCode {
			return c.JSON(http.StatusConflict, echo.Map{
				"message": "Validation failed",
				"errors":  map[string]string{"locationCode": "Location code already exists"},
			})
		}
	}
	return c.JSON(http.StatusCreated, u.storeLocation(0, in))
}

func (u *Upstream) updateLocation(c echo.Context) error {
	id, _ := pathID(c)
	var in domain.LocationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "malformed body"})
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.locations[id]; !ok {
		return notFound(c, "Location")
	}
	return c.JSON(http.StatusOK, u.storeLocation(id, in))
}

func (u *Upstream) deleteLocation(c echo.Context) error {
	id, _ := pathID(c)
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.locations[id]; !ok {
		return notFound(c, "Location")
	}
	delete(u.locations, id)
	return c.NoContent(http.StatusNoContent)
}

func (u *Upstream) listTransportations(c echo.Context) error {
	var (
		origin, destination int64
		days                []int
	)
	err := echo.QueryParamsBinder(c).
		Int64("originLocationId", &origin).
		Int64("destinationLocationId", &destination).
		Ints("operatingDays", &days).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	typ := c.QueryParam("transportationType")

	u.mu.Lock()
	defer u.mu.Unlock()

	matching := make([]int64, 0, len(u.transportations))
	for _, id := range sortedIDs(u.transportations) {
		t := u.transportations[id]
		switch {
		case origin != 0 && t.OriginLocationID != origin:
		case destination != 0 && t.DestinationLocationID != destination:
		case typ != "" && string(t.TransportationType) != typ:
		case !operatesOnAll(t.OperatingDays, days):
		default:
			matching = append(matching, id)
		}
	}

	out := []domain.Transportation{}
	for _, id := range page(c, matching) {
		out = append(out, u.transportations[id])
	}
	return c.JSON(http.StatusOK, out)
}

func operatesOnAll(have domain.OperatingDays, want []int) bool {
	for _, d := range want {
		if !have.Includes(d) {
			return false
		}
	}
	return true
}

func (u *Upstream) getTransportation(c echo.Context) error {
	id, _ := pathID(c)
	u.mu.Lock()
	defer u.mu.Unlock()

	t, ok := u.transportations[id]
	if !ok {
		return notFound(c, "Transportation")
	}
	return c.JSON(http.StatusOK, t)
}

func (u *Upstream) createTransportation(c echo.Context) error {
	var in domain.TransportationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "malformed body"})
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if msg := u.checkEndpoints(in); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":       "Validation failed",
			"fieldErrors": []echo.Map{{"field": "originLocationId", "message": msg}},
		})
	}
	return c.JSON(http.StatusCreated, u.storeTransportation(0, in))
}

func (u *Upstream) updateTransportation(c echo.Context) error {
	id, _ := pathID(c)
	var in domain.TransportationInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "malformed body"})
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.transportations[id]; !ok {
		return notFound(c, "Transportation")
	}
	return c.JSON(http.StatusOK, u.storeTransportation(id, in))
}

func (u *Upstream) deleteTransportation(c echo.Context) error {
	id, _ := pathID(c)
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.transportations[id]; !ok {
		return notFound(c, "Transportation")
	}
	delete(u.transportations, id)
	return c.NoContent(http.StatusNoContent)
}

// checkEndpoints reports a problem with the endpoints of in, or "".
func (u *Upstream) checkEndpoints(in domain.TransportationInput) string {
	if _, ok := u.locations[in.OriginLocationID]; !ok {
		return "Origin location does not exist"
	}
	if _, ok := u.locations[in.DestinationLocationID]; !ok {
		return "Destination location does not exist"
	}
	return ""
}

// findRoutes answers with every route of the shape [transfer] FLIGHT [transfer]
// from origin to destination. With a date, only routes whose every leg runs on
// that weekday are returned.
func (u *Upstream) findRoutes(c echo.Context) error {
	var origin, destination int64
	err := echo.QueryParamsBinder(c).
		MustInt64("originLocationId", &origin).
		MustInt64("destinationLocationId", &destination).
		BindError()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}

	weekday := 0
	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse(timeutil.DateLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "Invalid date",
				"errors":  map[string]string{"date": "Date must be YYYY-MM-DD"},
			})
		}
		weekday = domain.ISOWeekday(date)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	from, ok := u.locations[origin]
	if !ok {
		return notFound(c, "Origin location")
	}
	to, ok := u.locations[destination]
	if !ok {
		return notFound(c, "Destination location")
	}

	routes := []domain.Route{}
	ids := sortedIDs(u.transportations)
	for _, id := range ids {
		flight := u.transportations[id]
		if !flight.IsFlight() {
			continue
		}
		for _, before := range u.transfers(ids, origin, flight.OriginLocationID) {
			for _, after := range u.transfers(ids, flight.DestinationLocationID, destination) {
				legs := append(append(append([]domain.Transportation{}, before...), flight), after...)
				r := buildRoute(from, to, legs)
				if weekday != 0 && !r.OperatesOn(weekday) {
					continue
				}
				routes = append(routes, r)
			}
		}
	}
	return c.JSON(http.StatusOK, routes)
}

// transfers returns the leg options between from and to: no leg when they are
// the same location, otherwise each single non-flight link.
func (u *Upstream) transfers(ids []int64, from, to int64) [][]domain.Transportation {
	if from == to {
		return [][]domain.Transportation{nil}
	}
	var out [][]domain.Transportation
	for _, id := range ids {
		t := u.transportations[id]
		if t.TransportationType.IsTransfer() && t.OriginLocationID == from && t.DestinationLocationID == to {
			out = append(out, []domain.Transportation{t})
		}
	}
	return out
}

func buildRoute(from, to domain.Location, legs []domain.Transportation) domain.Route {
	segments := make([]domain.RouteSegment, len(legs))
	for i, l := range legs {
		segments[i] = domain.RouteSegment{Order: i + 1, Transportation: l}
	}
	return domain.Route{Origin: from, Destination: to, Segments: segments}
}
