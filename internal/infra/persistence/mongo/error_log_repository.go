package mongo

import (
	"context"
	"time"

	"envybase/internal/domain/entity"
	"envybase/internal/domain/repository"
	"envybase/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

type errorRecordDocument struct {
	CorrelationID string    `bson:"correlation_id"`
	Code          string    `bson:"code"`
	Message       string    `bson:"message"`
	Error         string    `bson:"error,omitempty"`
	HTTPStatus    int       `bson:"http_status"`
	Provider      string    `bson:"provider,omitempty"`
	RequestID     string    `bson:"request_id,omitempty"`
	Service       string    `bson:"service"`
	Timestamp     time.Time `bson:"timestamp"`
}

type errorLogRepository struct {
	collection *mongo.Collection
}

// NewErrorLogRepository returns the sink backed by the errors collection, or a
// discarding sink when db is nil.
func NewErrorLogRepository(db *mongo.Database) repository.ErrorLogRepository {
	if db == nil {
		return discardErrorLogs{}
	}

	return &errorLogRepository{collection: db.Collection(errorLogCollection)}
}

func (r *errorLogRepository) InsertOne(ctx context.Context, record *entity.ErrorRecord) error {
	_, err := r.collection.InsertOne(ctx, errorRecordDocument{
		CorrelationID: record.CorrelationID,
		Code:          record.Code,
		Message:       record.Message,
		Error:         record.Error,
		HTTPStatus:    record.HTTPStatus,
		Provider:      record.Provider,
		RequestID:     record.RequestID,
		Service:       record.Service,
		Timestamp:     record.Timestamp.UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to insert error record")
	}

	return nil
}

type discardErrorLogs struct{}

func (discardErrorLogs) InsertOne(context.Context, *entity.ErrorRecord) error {
	return nil
}
