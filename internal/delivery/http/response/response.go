// Package response renders the wire envelope the client consumes:
// {ok:true, ...} on success, {ok:false, error:"..."} on failure.
package response

import (
	"github.com/labstack/echo/v4"
)

// Response is the unified API response structure.
type Response struct {
	OK      bool   `json:"ok"`
	User    any    `json:"user,omitempty"`
	Env     string `json:"env,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// User renders a successful auth result carrying the account payload.
func User(c echo.Context, statusCode int, user any) error {
	return c.JSON(statusCode, Response{
		OK:   true,
		User: user,
	})
}

// OK renders a bare success body, optionally tagged with the environment name.
func OK(c echo.Context, statusCode int, env string) error {
	return c.JSON(statusCode, Response{
		OK:  true,
		Env: env,
	})
}

// Error renders a failure body with the client-facing message.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		OK:    false,
		Error: message,
	})
}

// ErrorWithDetails renders a failure body with a structured detail payload,
// e.g. the field-error map produced by request validation.
func ErrorWithDetails(c echo.Context, statusCode int, message string, details any) error {
	return c.JSON(statusCode, Response{
		OK:      false,
		Error:   message,
		Details: details,
	})
}
