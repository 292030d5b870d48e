package usecase

import (
	"context"

	"envybase/internal/domain/entity"
)

// StatsOutput is the request log summary for this service.
type StatsOutput struct {
	TotalCount int64
	Logs       []*entity.RequestLog
}

// StatsUsecase records request logs and reports on them. Recording is best
// effort and never returns an error.
type StatsUsecase interface {
	// RecordRequest stores the request and returns its log id, empty when the write failed.
	RecordRequest(ctx context.Context, log *entity.RequestLog) string

	// CompleteRequest applies the outcome to the log id returned by RecordRequest.
	CompleteRequest(ctx context.Context, id string, outcome *entity.RequestOutcome)

	Stats(ctx context.Context) (*StatsOutput, error)
}
