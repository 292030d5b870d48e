package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	"envybase/internal/domain/service"
)

const publishTimeout = 3 * time.Second

// publishAuthEvent emits event best effort. The request outcome never depends on it.
func publishAuthEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *entity.AuthEvent) {
	if publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.PublishAuthEvent(publishCtx, event); err != nil {
		logger.Warn("Failed to publish auth event",
			slog.String("event_type", string(event.Type)),
			slog.String("provider", event.Provider.String()),
			slog.Any("error", err),
		)
	}
}
