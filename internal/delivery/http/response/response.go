// Package response renders the API's JSON bodies. Successful responses
// return their payload directly; error responses always carry
// {error, message}.
package response

import (
	"net/http"

	domainerrors "echofleet/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// JSON writes a successful response with the payload as the body.
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}

// Error writes an error body from an AppError.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), domainerrors.ErrorResponse{
		Error:   appErr.ErrorCode(),
		Message: appErr.Message(),
		Details: nonEmpty(appErr.Details()),
	})
}

// ErrorWith writes an error body from raw parts.
func ErrorWith(c echo.Context, statusCode int, errorCode, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

func nonEmpty(details string) any {
	if details == "" {
		return nil
	}

	return details
}
