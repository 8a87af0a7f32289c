package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all console API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware on the
// versioned group. The health check never carries it.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	locations := api.Group("/locations")
	locations.GET("", h.ListLocations)
	locations.POST("", h.CreateLocation)
	locations.GET("/options", h.LocationOptions)
	locations.GET("/:id", h.GetLocation)
	locations.PUT("/:id", h.UpdateLocation)
	locations.DELETE("/:id", h.DeleteLocation)

	transportations := api.Group("/transportations")
	transportations.GET("", h.ListTransportations)
	transportations.POST("", h.CreateTransportation)
	transportations.GET("/:id", h.GetTransportation)
	transportations.PUT("/:id", h.UpdateTransportation)
	transportations.DELETE("/:id", h.DeleteTransportation)

	routes := api.Group("/routes")
	routes.GET("/search", h.SearchRoutes)
	routes.DELETE("/search", h.CancelRouteSearch)
	routes.GET("/latest", h.LatestRouteSearch)
}
