package mongo

import (
	"context"
	"time"

	"envybase/internal/domain/entity"
	"envybase/internal/domain/repository"
	"envybase/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type requestLogDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RequestID    string             `bson:"request_id"`
	Method       string             `bson:"method"`
	Path         string             `bson:"path"`
	Client       string             `bson:"client"`
	Timestamp    time.Time          `bson:"timestamp"`
	Service      string             `bson:"service"`
	StatusCode   *int               `bson:"status_code,omitempty"`
	Error        string             `bson:"error,omitempty"`
	ResponseTime *time.Time         `bson:"response_time,omitempty"`
	DurationMs   float64            `bson:"duration_ms,omitempty"`
}

type requestLogRepository struct {
	collection *mongo.Collection
}

// NewRequestLogRepository returns the sink backed by the logs collection, or a
// discarding sink when db is nil.
func NewRequestLogRepository(db *mongo.Database) repository.RequestLogRepository {
	if db == nil {
		return discardRequestLogs{}
	}

	return &requestLogRepository{collection: db.Collection(requestLogCollection)}
}

func (r *requestLogRepository) InsertOne(ctx context.Context, log *entity.RequestLog) (string, error) {
	doc := requestLogDocument{
		RequestID:  log.RequestID,
		Method:     log.Method,
		Path:       log.Path,
		Client:     log.Client,
		Timestamp:  log.Timestamp.UTC(),
		Service:    log.Service,
		StatusCode: log.StatusCode,
		Error:      log.Error,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert request log")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *requestLogRepository) UpdateOne(ctx context.Context, id string, outcome *entity.RequestOutcome) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrapf(err, "invalid request log id %q", id)
	}

	set := bson.D{
		{Key: "status_code", Value: outcome.StatusCode},
		{Key: "response_time", Value: outcome.RespondedAt.UTC()},
		{Key: "duration_ms", Value: float64(outcome.Duration) / float64(time.Millisecond)},
	}
	if outcome.Error != "" {
		set = append(set, bson.E{Key: "error", Value: outcome.Error})
	}

	if _, err := r.collection.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: set}}); err != nil {
		return errors.Wrap(err, "failed to update request log")
	}

	return nil
}

func (r *requestLogRepository) CountByService(ctx context.Context, service string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{{Key: "service", Value: service}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count request logs")
	}

	return count, nil
}

func (r *requestLogRepository) FindByService(ctx context.Context, service string) ([]*entity.RequestLog, error) {
	cursor, err := r.collection.Find(ctx,
		bson.D{{Key: "service", Value: service}},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query request logs")
	}

	var docs []requestLogDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode request logs")
	}

	logs := make([]*entity.RequestLog, 0, len(docs))
	for i := range docs {
		logs = append(logs, toRequestLog(&docs[i]))
	}

	return logs, nil
}

func toRequestLog(doc *requestLogDocument) *entity.RequestLog {
	return &entity.RequestLog{
		ID:         doc.ID.Hex(),
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		Client:     doc.Client,
		Timestamp:  doc.Timestamp,
		Service:    doc.Service,
		StatusCode: doc.StatusCode,
		Error:      doc.Error,
		Duration:   time.Duration(doc.DurationMs * float64(time.Millisecond)),
	}
}

// discardRequestLogs is used when no log database is configured.
type discardRequestLogs struct{}

func (discardRequestLogs) InsertOne(context.Context, *entity.RequestLog) (string, error) {
	return "", nil
}

func (discardRequestLogs) UpdateOne(context.Context, string, *entity.RequestOutcome) error {
	return nil
}

func (discardRequestLogs) CountByService(context.Context, string) (int64, error) {
	return 0, nil
}

func (discardRequestLogs) FindByService(context.Context, string) ([]*entity.RequestLog, error) {
	return []*entity.RequestLog{}, nil
}
