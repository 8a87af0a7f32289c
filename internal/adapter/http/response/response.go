// Package response provides standardized HTTP response builders for the console API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`

	// Redirect is where the console should navigate after the error, if anywhere
	Redirect string `json:"redirect,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeValidationError     = "validation_error"
	CodeNotFound            = "not_found"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeTimeout             = "timeout"
	CodeSuperseded          = "superseded"
	CodeRateLimited         = "rate_limited"
	CodeInternalError       = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody   = "Failed to parse request body"
	MsgValidationFailed     = "Request validation failed"
	MsgNotFound             = "The requested resource was not found"
	MsgUpstreamUnavailable  = "The network service is currently unavailable"
	MsgTimeout              = "Request timed out"
	MsgRequestCancelled     = "Request was cancelled"
	MsgSuperseded           = "A newer search replaced this one"
	MsgRateLimited          = "Rate limit exceeded. Please try again later."
	MsgInternalError        = "An unexpected error occurred"
	MsgLocationNotFound     = "Location not found"
	MsgTransportationAbsent = "Transportation not found"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// Created writes a 201 Created response with the given data.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
