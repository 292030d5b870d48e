package service

import (
	"context"

	"envybase/internal/domain/entity"
)

// EventPublisher defines the interface for publishing audit events to a message queue
type EventPublisher interface {
	// PublishAuthEvent publishes an authentication audit event
	PublishAuthEvent(ctx context.Context, event *entity.AuthEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
