package middleware

import (
	"log/slog"
	"net/http"

	"envybase/internal/delivery/api/response"
	deliverycontext "envybase/internal/delivery/context"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ErrorMiddlewareParams holds dependencies for ErrorMiddleware, injected by Fx.
type ErrorMiddlewareParams struct {
	fx.In

	Reporter service.ErrorReporter
	Logger   *slog.Logger
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	reporter service.ErrorReporter
	logger   *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(params ErrorMiddlewareParams) *ErrorMiddleware {
	return &ErrorMiddleware{
		reporter: params.Reporter,
		logger:   params.Logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ctx := c.Request().Context()

	// Taxonomy errors are always logged with a correlation id before rendering.
	if authErr, ok := domainerrors.AsAuthError(err); ok {
		if authErr.CorrelationID() == "" {
			if reported := m.reporter.Report(ctx, authErr); reported != nil {
				authErr = reported
			}
		}
		_ = response.AuthError(c, authErr)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
		}
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	m.logUnhandled(c, err)

	// For 500 errors, do not expose internal error details to the client
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
