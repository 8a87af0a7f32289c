package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// ConsoleSessionHeader identifies one operator console. Searches sharing a
	// session supersede each other.
	ConsoleSessionHeader = "X-Console-Session"
	// consoleSessionKey is the context key for storing the console session.
	consoleSessionKey = "console_session"
	// maxConsoleSessionLen bounds the header value kept as a registry key.
	maxConsoleSessionLen = 128
)

// ConsoleSession returns middleware that reads the console session header and
// stores it in the context. Requests without the header have no session and
// each of their searches runs on its own.
func ConsoleSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := strings.TrimSpace(c.Request().Header.Get(ConsoleSessionHeader))
			if len(session) > maxConsoleSessionLen {
				session = session[:maxConsoleSessionLen]
			}
			if session != "" {
				c.Set(consoleSessionKey, session)
				c.Response().Header().Set(ConsoleSessionHeader, session)
			}
			return next(c)
		}
	}
}

// GetConsoleSession retrieves the console session from the echo context.
// Returns an empty string if the request carried none.
func GetConsoleSession(c echo.Context) string {
	if s, ok := c.Get(consoleSessionKey).(string); ok {
		return s
	}
	return ""
}
