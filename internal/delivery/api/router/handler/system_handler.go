package handler

import (
	"net/http"
	"time"

	"envybase/config"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SystemHandlerParams holds dependencies for SystemHandler, injected by Fx.
type SystemHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Config  *config.Config
}

// SystemHandler serves health, frontend settings and request statistics.
type SystemHandler struct {
	statsUC           usecase.StatsUsecase
	serviceName       string
	passwordMinLength int
	passwordMaxLength int
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(params SystemHandlerParams) *SystemHandler {
	return &SystemHandler{
		statsUC:           params.StatsUC,
		serviceName:       params.Config.Env.ServiceName,
		passwordMinLength: params.Config.Auth.PasswordMinLength,
		passwordMaxLength: params.Config.Auth.PasswordMaxLength,
	}
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// FrontendInfoResponse exposes the password policy to the login form
type FrontendInfoResponse struct {
	PasswordMinLength int `json:"PASSWORD_MIN_LENGTH"`
	PasswordMaxLength int `json:"PASSWORD_MAX_LENGTH"`
}

// StatsResponse lists the request logs of this service
type StatsResponse struct {
	TotalCount int64          `json:"total_count"`
	Logs       []StatsLogItem `json:"logs"`
}

// StatsLogItem is one request log entry. StatusCode is null while the request is in flight.
type StatsLogItem struct {
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Client     string    `json:"client"`
	Timestamp  time.Time `json:"timestamp"`
	StatusCode *int      `json:"status_code"`
}

// Health reports that the service is up
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: h.serviceName})
}

// FrontendInfo returns the password length bounds
func (h *SystemHandler) FrontendInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, FrontendInfoResponse{
		PasswordMinLength: h.passwordMinLength,
		PasswordMaxLength: h.passwordMaxLength,
	})
}

// Stats returns the request log summary
func (h *SystemHandler) Stats(c echo.Context) error {
	output, err := h.statsUC.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]StatsLogItem, 0, len(output.Logs))
	for _, log := range output.Logs {
		items = append(items, StatsLogItem{
			Method:     log.Method,
			Path:       log.Path,
			Client:     log.Client,
			Timestamp:  log.Timestamp,
			StatusCode: log.StatusCode,
		})
	}

	return c.JSON(http.StatusOK, StatsResponse{TotalCount: output.TotalCount, Logs: items})
}
