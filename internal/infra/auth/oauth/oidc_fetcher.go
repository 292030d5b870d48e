package oauth

import (
	"context"
	"net/http"
	"strings"

	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"

	"github.com/coreos/go-oidc/v3/oidc"
)

// oidcFetcher reads the identity from the verified ID token. Signing keys are
// fetched from the JWKS endpoint and cached by kid.
type oidcFetcher struct {
	baseFetcher
	verifier *oidc.IDTokenVerifier
}

type idTokenClaims struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func newOIDCFetcher(descriptor *entity.ProviderDescriptor, client *http.Client) *oidcFetcher {
	// The key set keeps this context for every JWKS refresh.
	keySet := oidc.NewRemoteKeySet(oidc.ClientContext(context.Background(), client), descriptor.JWKSURL)

	return &oidcFetcher{
		baseFetcher: newBaseFetcher(descriptor, client),
		verifier: oidc.NewVerifier(descriptor.Issuer, keySet, &oidc.Config{
			ClientID:             descriptor.ClientID,
			SupportedSigningAlgs: []string{oidc.RS256},
		}),
	}
}

func (f *oidcFetcher) FetchIdentity(ctx context.Context, token *service.ProviderToken) (*entity.ExternalIdentity, error) {
	if token == nil || token.IDToken == "" {
		return nil, f.fetchError(errors.New("token response carries no id_token"))
	}

	idToken, err := f.verifier.Verify(ctx, token.IDToken)
	if err != nil {
		return nil, f.fetchError(errors.Wrap(err, "verify id_token"))
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, f.fetchError(errors.Wrap(err, "decode id_token claims"))
	}

	return &entity.ExternalIdentity{
		Provider:   f.descriptor.Name,
		Email:      strings.TrimSpace(claims.Email),
		Name:       claims.Name,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		Picture:    claims.Picture,
	}, nil
}

func (f *oidcFetcher) fetchError(cause error) error {
	return domainerrors.ErrUserinfoFetch.WithCause(cause).WithProvider(f.descriptor.Name.String())
}
