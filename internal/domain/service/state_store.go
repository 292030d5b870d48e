package service

import (
	"context"
	"errors"
	"time"
)

// ErrStateNotFound is returned when a state value is unknown, expired or already used.
var ErrStateNotFound = errors.New("oauth state not found")

// StateStore keeps the CSRF state values handed out by the authorize redirect.
type StateStore interface {
	// Save binds state to provider for ttl.
	Save(ctx context.Context, state, provider string, ttl time.Duration) error

	// Consume removes state and returns the provider it was bound to.
	Consume(ctx context.Context, state string) (string, error)
}
