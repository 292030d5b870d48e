package mongo

import (
	"context"
	"testing"
	"time"

	"envybase/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestRequestLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns the generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewRequestLogRepository(mt.DB)

		id, err := repo.InsertOne(context.Background(), &entity.RequestLog{
			Method:    "POST",
			Path:      "/login",
			Client:    "203.0.113.7",
			Timestamp: time.Now(),
			Service:   "auth",
		})
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("insert failure is returned", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad"}))
		repo := NewRequestLogRepository(mt.DB)

		_, err := repo.InsertOne(context.Background(), &entity.RequestLog{Service: "auth"})
		assert.Error(mt, err)
	})

	mt.Run("update sets the outcome", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}))
		repo := NewRequestLogRepository(mt.DB)

		err := repo.UpdateOne(context.Background(), primitive.NewObjectID().Hex(), &entity.RequestOutcome{
			StatusCode:  401,
			Error:       "InvalidCredentials",
			RespondedAt: time.Now(),
			Duration:    12 * time.Millisecond,
		})
		assert.NoError(mt, err)
	})

	mt.Run("update rejects a malformed id", func(mt *mtest.T) {
		repo := NewRequestLogRepository(mt.DB)

		err := repo.UpdateOne(context.Background(), "not-an-object-id", &entity.RequestOutcome{StatusCode: 200})
		assert.Error(mt, err)
	})

	mt.Run("count by service", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.logs", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))
		repo := NewRequestLogRepository(mt.DB)

		count, err := repo.CountByService(context.Background(), "auth")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), count)
	})

	mt.Run("find by service", func(mt *mtest.T) {
		status := 200
		first := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "method", Value: "GET"},
			{Key: "path", Value: "/"},
			{Key: "client", Value: "198.51.100.1"},
			{Key: "timestamp", Value: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			{Key: "service", Value: "auth"},
			{Key: "status_code", Value: status},
			{Key: "duration_ms", Value: 2.5},
		}
		second := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "method", Value: "POST"},
			{Key: "path", Value: "/login"},
			{Key: "service", Value: "auth"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.logs", mtest.FirstBatch, first, second))
		repo := NewRequestLogRepository(mt.DB)

		logs, err := repo.FindByService(context.Background(), "auth")
		require.NoError(mt, err)
		require.Len(mt, logs, 2)

		assert.Equal(mt, "GET", logs[0].Method)
		require.NotNil(mt, logs[0].StatusCode)
		assert.Equal(mt, 200, *logs[0].StatusCode)
		assert.Equal(mt, 2500*time.Microsecond, logs[0].Duration)
		assert.Equal(mt, "/login", logs[1].Path)
		assert.Nil(mt, logs[1].StatusCode)
	})
}

func TestErrorLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewErrorLogRepository(mt.DB)

		err := repo.InsertOne(context.Background(), &entity.ErrorRecord{
			CorrelationID: "c0ffee",
			Code:          "OAuthError",
			HTTPStatus:    400,
			Service:       "auth",
			Timestamp:     time.Now(),
		})
		assert.NoError(mt, err)
	})

	mt.Run("insert failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad"}))
		repo := NewErrorLogRepository(mt.DB)

		assert.Error(mt, repo.InsertOne(context.Background(), &entity.ErrorRecord{}))
	})
}

func TestDiscardRepositories(t *testing.T) {
	ctx := context.Background()

	logs := NewRequestLogRepository(nil)
	id, err := logs.InsertOne(ctx, &entity.RequestLog{})
	assert.NoError(t, err)
	assert.Empty(t, id)
	assert.NoError(t, logs.UpdateOne(ctx, id, &entity.RequestOutcome{}))

	count, err := logs.CountByService(ctx, "auth")
	assert.NoError(t, err)
	assert.Zero(t, count)

	found, err := logs.FindByService(ctx, "auth")
	assert.NoError(t, err)
	assert.Empty(t, found)

	assert.NoError(t, NewErrorLogRepository(nil).InsertOne(ctx, &entity.ErrorRecord{}))
}
