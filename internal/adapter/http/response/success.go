package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream,omitempty"`
}

// Health writes a health check response. upstream is the circuit breaker state.
func Health(c echo.Context, upstream string) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "ok",
		Upstream: upstream,
	})
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
