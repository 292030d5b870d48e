package service

import (
	"context"

	"envybase/internal/domain/entity"
)

// IdentityFetcher completes the authorization-code flow for one provider.
// Each ProviderKind has its own implementation.
type IdentityFetcher interface {
	// Descriptor returns the provider configuration the fetcher was built from.
	Descriptor() *entity.ProviderDescriptor

	// AuthCodeURL builds the authorization redirect for state.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for a token set. Failures are
	// ErrOAuth when the provider or transport reported them and ErrToken otherwise.
	Exchange(ctx context.Context, code string) (*ProviderToken, error)

	// FetchIdentity resolves the external identity from the token set. Every
	// failure is ErrUserinfoFetch. A missing email is not an error here.
	FetchIdentity(ctx context.Context, token *ProviderToken) (*entity.ExternalIdentity, error)
}

// ProviderToken is the token set returned by a provider's token endpoint.
type ProviderToken struct {
	AccessToken string
	TokenType   string
	IDToken     string
}

// ProviderRegistry resolves configured providers by name.
type ProviderRegistry interface {
	// Get returns the descriptor of a configured provider.
	Get(name string) (*entity.ProviderDescriptor, bool)

	// Fetcher returns the fetcher for name, false when the provider is not configured.
	Fetcher(name string) (IdentityFetcher, bool)

	// Names lists the configured providers.
	Names() []string
}
