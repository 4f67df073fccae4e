package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "echofleet/internal/domain/errors"
	"echofleet/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
		}
		_ = response.Error(c, appErr)

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.ErrorWith(c, httpErr.Code, "http_error", message)

		return
	}

	// Default to internal error, log the cause chain and return a generic body
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.ErrorWith(c, http.StatusInternalServerError, "internal_error", "internal server error")
}
