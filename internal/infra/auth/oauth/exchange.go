package oauth

import (
	"context"
	"net/http"
	"net/url"

	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"

	"golang.org/x/oauth2"
)

// baseFetcher implements the authorization-code half of the flow shared by
// every provider kind.
type baseFetcher struct {
	descriptor  *entity.ProviderDescriptor
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

func newBaseFetcher(descriptor *entity.ProviderDescriptor, client *http.Client) baseFetcher {
	return baseFetcher{
		descriptor: descriptor,
		httpClient: client,
		oauthConfig: &oauth2.Config{
			ClientID:     descriptor.ClientID,
			ClientSecret: descriptor.ClientSecret,
			RedirectURL:  descriptor.RedirectURL,
			Scopes:       descriptor.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   descriptor.AuthURL,
				TokenURL:  descriptor.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
	}
}

func (f *baseFetcher) Descriptor() *entity.ProviderDescriptor {
	return f.descriptor
}

// AuthCodeURL carries client_id, redirect_uri, scope, state and response_type=code.
func (f *baseFetcher) AuthCodeURL(state string) string {
	return f.oauthConfig.AuthCodeURL(state)
}

func (f *baseFetcher) Exchange(ctx context.Context, code string) (*service.ProviderToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)

	tok, err := f.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, classifyExchangeError(err).WithProvider(f.descriptor.Name.String())
	}

	providerToken := &service.ProviderToken{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		providerToken.IDToken = idToken
	}

	return providerToken, nil
}

// classifyExchangeError maps failures the provider or the network reported to
// OAuthError. Cancellation and malformed token responses are TokenError.
func classifyExchangeError(err error) *domainerrors.AuthError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrToken.WithCause(err)
	}

	if _, ok := errors.AsType[*oauth2.RetrieveError](err); ok {
		return domainerrors.ErrOAuth.WithCause(err)
	}
	if _, ok := errors.AsType[*url.Error](err); ok {
		return domainerrors.ErrOAuth.WithCause(err)
	}

	return domainerrors.ErrToken.WithCause(err)
}
