package presentation

import (
	"strconv"

	"github.com/skyroute/route-console/internal/domain"
)

// NoRoutesMessage is shown when a search yields no route.
const NoRoutesMessage = "No routes found for your criteria."

// StepView is one leg of a displayed route.
type StepView struct {
	Step               int    `json:"step"`
	Title              string `json:"title"`
	Order              int    `json:"order"`
	From               string `json:"from"`
	To                 string `json:"to"`
	Description        string `json:"description"`
	TransportationType string `json:"transportationType"`
}

// RouteView is a route option as presented to the operator.
type RouteView struct {
	Option     int        `json:"option"`
	Title      string     `json:"title"`
	Stops      int        `json:"stops"`
	StopsLabel string     `json:"stopsLabel"`
	Summary    string     `json:"summary"`
	Steps      []StepView `json:"steps"`
}

// BuildRouteViews numbers the routes in the order given and resolves their
// location ids through dir.
func BuildRouteViews(routes []domain.Route, dir *LocationDirectory) []RouteView {
	views := make([]RouteView, 0, len(routes))
	for i, r := range routes {
		views = append(views, BuildRouteView(i, r, dir))
	}
	return views
}

// BuildRouteView renders the route at zero-based position index. The stop count
// is the number of segments, and steps follow segment order as received.
func BuildRouteView(index int, r domain.Route, dir *LocationDirectory) RouteView {
	from, ok := r.FirstOriginID()
	if !ok {
		from = r.Origin.IDValue()
	}
	to, ok := r.LastDestinationID()
	if !ok {
		to = r.Destination.IDValue()
	}

	steps := make([]StepView, 0, len(r.Segments))
	for i, seg := range r.Segments {
		origin := dir.Label(seg.Transportation.OriginLocationID)
		destination := dir.Label(seg.Transportation.DestinationLocationID)
		steps = append(steps, StepView{
			Step:               i + 1,
			Title:              "Step " + strconv.Itoa(i+1),
			Order:              seg.Order,
			From:               origin,
			To:                 destination,
			Description:        origin + " → " + destination,
			TransportationType: seg.Transportation.TransportationType.String(),
		})
	}

	stops := len(r.Segments)
	return RouteView{
		Option:     index + 1,
		Title:      "Route Option " + strconv.Itoa(index+1),
		Stops:      stops,
		StopsLabel: strconv.Itoa(stops) + " Stop(s)",
		Summary:    "From " + dir.Label(from) + " to " + dir.Label(to),
		Steps:      steps,
	}
}
