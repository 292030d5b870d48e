package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"envybase/config"
	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	"envybase/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerCFConnectingIP = "CF-Connecting-IP"
	headerXRealIP        = "X-Real-IP"
)

// RequestLogMiddlewareParams holds dependencies for RequestLogMiddleware, injected by Fx.
type RequestLogMiddlewareParams struct {
	fx.In

	Config *config.Config
	Stats  usecase.StatsUsecase
	Logger *slog.Logger
}

// RequestLogMiddleware writes every request and its outcome to the request log sink.
type RequestLogMiddleware struct {
	stats            usecase.StatsUsecase
	behindCloudflare bool
	logger           *slog.Logger
	now              func() time.Time
}

// NewRequestLogMiddleware creates the request log middleware
func NewRequestLogMiddleware(params RequestLogMiddlewareParams) *RequestLogMiddleware {
	return &RequestLogMiddleware{
		stats:            params.Stats,
		behindCloudflare: params.Config.HTTP.BehindCloudflare,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// Handle records the request before the handler runs and its outcome after.
// The error is rendered here so the stored status code is the one sent.
func (m *RequestLogMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		start := m.now()

		id := m.stats.RecordRequest(ctx, &entity.RequestLog{
			RequestID: deliverycontext.GetRequestID(c),
			Method:    req.Method,
			Path:      req.URL.Path,
			Client:    m.clientAddress(c),
			Timestamp: start.UTC(),
		})

		// A panic still closes the log entry; Recover further out renders it.
		defer func() {
			if r := recover(); r != nil {
				m.complete(ctx, id, start, http.StatusInternalServerError, fmt.Sprintf("panic: %v", r))
				panic(r)
			}
		}()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		var errText string
		if err != nil {
			errText = err.Error()
		}
		m.complete(ctx, id, start, c.Response().Status, errText)

		return nil
	}
}

func (m *RequestLogMiddleware) complete(ctx context.Context, id string, start time.Time, status int, errText string) {
	end := m.now()
	m.stats.CompleteRequest(ctx, id, &entity.RequestOutcome{
		StatusCode:  status,
		Error:       errText,
		RespondedAt: end.UTC(),
		Duration:    end.Sub(start),
	})
}

// clientAddress prefers the Cloudflare header when deployed behind it, then
// X-Real-IP, then the peer address.
func (m *RequestLogMiddleware) clientAddress(c echo.Context) string {
	req := c.Request()
	if m.behindCloudflare {
		if ip := req.Header.Get(headerCFConnectingIP); ip != "" {
			return ip
		}
	}
	if ip := req.Header.Get(headerXRealIP); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}

	return host
}
