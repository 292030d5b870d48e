// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"envybase/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
// Name and Username are optional.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Username string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the issued access token.
type LoginOutput struct {
	AccessToken string
	// ExpiresIn is zero when the token does not expire.
	ExpiresIn time.Duration
	User      *entity.User
}

// AccountUsecase covers local registration, password login and profile lookup.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Profile returns the account a validated token's subject refers to.
	Profile(ctx context.Context, subject string) (*entity.User, error)
}
