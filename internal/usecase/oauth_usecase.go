package usecase

import (
	"context"

	"envybase/internal/domain/entity"
)

// CallbackInput holds the query parameters of the provider redirect.
type CallbackInput struct {
	Provider         string
	Code             string
	State            string
	Error            string
	ErrorDescription string
}

// CallbackOutput is the result of a completed federated sign-in.
type CallbackOutput struct {
	AccessToken string
	User        *entity.User
	// Created is set when the callback created the account.
	Created bool
}

// OAuthUsecase drives the authorization-code flow.
type OAuthUsecase interface {
	// Authorize starts a flow and returns the provider URL to redirect to.
	Authorize(ctx context.Context, provider string) (string, error)

	// Callback completes a flow. Failures are taxonomy errors that already
	// carry a correlation id and have been reported.
	Callback(ctx context.Context, input CallbackInput) (*CallbackOutput, error)
}

// IdentityReconciler binds an external identity to exactly one account.
type IdentityReconciler interface {
	// Reconcile returns the account for the identity's email, creating it on
	// first sign-in. created reports whether it did.
	Reconcile(ctx context.Context, identity *entity.ExternalIdentity) (user *entity.User, created bool, err error)
}
