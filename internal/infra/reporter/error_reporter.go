// Package reporter records flow failures for support triage.
package reporter

import (
	"context"
	"log/slog"
	"time"

	"envybase/config"
	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/repository"
	"envybase/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sinkTimeout bounds the detached error record write.
const sinkTimeout = 3 * time.Second

// Params defines the dependencies of the error reporter
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sink   repository.ErrorLogRepository
}

type errorReporter struct {
	service string
	logger  *slog.Logger
	sink    repository.ErrorLogRepository
	now     func() time.Time
}

// NewErrorReporter creates the reporter used by the HTTP error middleware and the OAuth flow.
func NewErrorReporter(params Params) service.ErrorReporter {
	return &errorReporter{
		service: params.Config.Env.ServiceName,
		logger:  params.Logger,
		sink:    params.Sink,
		now:     time.Now,
	}
}

func (r *errorReporter) Report(ctx context.Context, err error) *domainerrors.AuthError {
	authErr, ok := domainerrors.AsAuthError(err)
	if !ok {
		return nil
	}
	if authErr.CorrelationID() == "" {
		authErr = authErr.WithCorrelationID(uuid.NewString())
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	attrs := []slog.Attr{
		slog.String("correlation_id", authErr.CorrelationID()),
		slog.String("code", string(authErr.Code())),
		slog.Int("http_status", authErr.HTTPCode()),
	}
	if authErr.Provider() != "" {
		attrs = append(attrs, slog.String("provider", authErr.Provider()))
	}
	if cause := authErr.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	logger.LogAttrs(ctx, slog.LevelWarn, "Authentication flow failed", attrs...)

	record := &entity.ErrorRecord{
		CorrelationID: authErr.CorrelationID(),
		Code:          string(authErr.Code()),
		Message:       authErr.Message(),
		Error:         authErr.Error(),
		HTTPStatus:    authErr.HTTPCode(),
		Provider:      authErr.Provider(),
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Service:       r.service,
		Timestamp:     r.now().UTC(),
	}

	// Detached from request cancellation.
	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()
	if err := r.sink.InsertOne(sinkCtx, record); err != nil {
		logger.WarnContext(ctx, "Failed to write error record",
			slog.String("correlation_id", record.CorrelationID),
			slog.Any("error", err),
		)
	}

	return authErr
}
