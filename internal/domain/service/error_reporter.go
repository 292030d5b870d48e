package service

import (
	"context"

	domainerrors "envybase/internal/domain/errors"
)

// ErrorReporter turns a flow failure into a correlated taxonomy error and records it.
type ErrorReporter interface {
	// Report assigns a correlation id when missing, writes the record to the log
	// sink best effort and returns the AuthError to surface. Errors outside the
	// taxonomy are returned as nil.
	Report(ctx context.Context, err error) *domainerrors.AuthError
}
