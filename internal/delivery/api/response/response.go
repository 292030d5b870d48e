// Package response renders the JSON envelopes returned by the API.
package response

import (
	"net/http"

	deliverycontext "envybase/internal/delivery/context"
	domainerrors "envybase/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code          string `json:"code"`                     // Machine-readable error code, e.g. "OAuthError"
	Message       string `json:"message"`                  // User-friendly error message
	CorrelationID string `json:"correlation_id,omitempty"` // Matches the logged error record
	Details       any    `json:"details,omitempty"`        // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// StatusResponse is the flat body returned by the account and OAuth endpoints.
type StatusResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	Email       string `json:"email,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
	Type        string `json:"type,omitempty"`
}

// StatusSuccess is the status value of every successful StatusResponse.
const StatusSuccess = "success"

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AuthError renders a taxonomy failure with its correlation id. The cause is never sent.
func AuthError(c echo.Context, err *domainerrors.AuthError) error {
	return c.JSON(err.HTTPCode(), ErrorResponse{
		Error: &ErrorInfo{
			Code:          err.ErrorCode(),
			Message:       err.Message(),
			CorrelationID: err.CorrelationID(),
		},
		Meta: meta(c),
	})
}

// AppError renders a non-taxonomy application error.
func AppError(c echo.Context, err domainerrors.AppError) error {
	var details any
	if d := err.Details(); d != "" {
		details = d
	}

	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
