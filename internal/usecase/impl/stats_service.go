package impl

import (
	"context"
	"log/slog"

	"envybase/config"
	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	"envybase/internal/domain/repository"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"go.uber.org/fx"
)

type statsService struct {
	logs        repository.RequestLogRepository
	serviceName string
	logger      *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	Config *config.Config
	Logs   repository.RequestLogRepository
	Logger *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		logs:        params.Logs,
		serviceName: params.Config.Env.ServiceName,
		logger:      params.Logger,
	}
}

func (srv *statsService) RecordRequest(ctx context.Context, log *entity.RequestLog) string {
	if log.Service == "" {
		log.Service = srv.serviceName
	}

	id, err := srv.logs.InsertOne(ctx, log)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to record request log", slog.Any("error", err))

		return ""
	}

	return id
}

func (srv *statsService) CompleteRequest(ctx context.Context, id string, outcome *entity.RequestOutcome) {
	if id == "" {
		return
	}

	if err := srv.logs.UpdateOne(ctx, id, outcome); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Failed to complete request log",
			slog.String("log_id", id),
			slog.Any("error", err),
		)
	}
}

// Stats returns every request log written by this service.
func (srv *statsService) Stats(ctx context.Context) (*usecase.StatsOutput, error) {
	total, err := srv.logs.CountByService(ctx, srv.serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count request logs")
	}

	logs, err := srv.logs.FindByService(ctx, srv.serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list request logs")
	}

	return &usecase.StatsOutput{TotalCount: total, Logs: logs}, nil
}
