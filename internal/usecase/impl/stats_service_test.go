package impl

import (
	"context"
	"testing"
	"time"

	"envybase/internal/domain/entity"
	mockRepo "envybase/internal/mocks/repository"
	"envybase/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type statsServiceFixtures struct {
	service usecase.StatsUsecase
	logs    *mockRepo.MockRequestLogRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	logs := mockRepo.NewMockRequestLogRepository(t)

	return statsServiceFixtures{
		service: NewStatsService(StatsServiceParams{Config: newTestConfig(), Logs: logs, Logger: newDiscardLogger()}),
		logs:    logs,
	}
}

func TestStatsService_RecordRequest(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.logs.EXPECT().
		InsertOne(ctx, mock.MatchedBy(func(l *entity.RequestLog) bool { return l.Service == "auth" && l.Path == "/login" })).
		Return("log-1", nil)

	id := fx.service.RecordRequest(ctx, &entity.RequestLog{Method: "POST", Path: "/login"})
	assert.Equal(t, "log-1", id)
}

func TestStatsService_RecordRequest_SinkDown(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.logs.EXPECT().InsertOne(ctx, mock.Anything).Return("", errors.New("no reachable servers"))

	assert.Empty(t, fx.service.RecordRequest(ctx, &entity.RequestLog{Path: "/"}))
}

func TestStatsService_CompleteRequest(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()
	outcome := &entity.RequestOutcome{StatusCode: 200, Duration: 12 * time.Millisecond}

	fx.logs.EXPECT().UpdateOne(ctx, "log-1", outcome).Return(errors.New("write conflict")).Once()

	fx.service.CompleteRequest(ctx, "log-1", outcome)
	// No log id means the insert failed and there is nothing to update.
	fx.service.CompleteRequest(ctx, "", outcome)
}

func TestStatsService_Stats(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()
	logs := []*entity.RequestLog{{Method: "GET", Path: "/"}, {Method: "POST", Path: "/login"}}

	fx.logs.EXPECT().CountByService(ctx, "auth").Return(int64(2), nil)
	fx.logs.EXPECT().FindByService(ctx, "auth").Return(logs, nil)

	out, err := fx.service.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.TotalCount)
	assert.Equal(t, logs, out.Logs)
}

func TestStatsService_Stats_Error(t *testing.T) {
	fx := createTestStatsService(t)
	ctx := context.Background()

	fx.logs.EXPECT().CountByService(ctx, "auth").Return(int64(0), errors.New("timeout"))

	_, err := fx.service.Stats(ctx)
	assert.ErrorContains(t, err, "failed to count request logs")
}
