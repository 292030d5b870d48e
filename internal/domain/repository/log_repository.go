package repository

import (
	"context"

	"envybase/internal/domain/entity"
)

// RequestLogRepository is the request log sink. Writes are best effort; callers
// log failures and carry on.
type RequestLogRepository interface {
	// InsertOne stores the request document and returns its id.
	InsertOne(ctx context.Context, log *entity.RequestLog) (string, error)

	// UpdateOne records the outcome of the request identified by id.
	UpdateOne(ctx context.Context, id string, outcome *entity.RequestOutcome) error

	// CountByService counts the documents written by service.
	CountByService(ctx context.Context, service string) (int64, error)

	// FindByService lists the documents written by service, oldest first.
	FindByService(ctx context.Context, service string) ([]*entity.RequestLog, error)
}

// ErrorLogRepository stores structured failure records for support triage.
type ErrorLogRepository interface {
	InsertOne(ctx context.Context, record *entity.ErrorRecord) error
}
