package oauth

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"envybase/config"
	"envybase/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildRegistry_BuiltinDefaults(t *testing.T) {
	providers := map[string]*config.OAuthProviderConfig{
		"google": {Enabled: true, ClientID: "gid", ClientSecret: "gsecret", RedirectURL: "http://localhost/cb/google"},
		"github": {Enabled: true, ClientID: "hid", ClientSecret: "hsecret", RedirectURL: "http://localhost/cb/github"},
	}

	registry, err := BuildRegistry(providers, http.DefaultClient, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"github", "google"}, registry.Names())

	google, ok := registry.Get("google")
	require.True(t, ok)
	assert.Equal(t, entity.ProviderKindOIDC, google.Kind)
	assert.Equal(t, "https://www.googleapis.com/oauth2/v3/certs", google.JWKSURL)
	assert.Equal(t, "https://accounts.google.com", google.Issuer)
	assert.Equal(t, []string{"openid", "email", "profile"}, google.Scopes)
	assert.Equal(t, "gid", google.ClientID)

	github, ok := registry.Get("github")
	require.True(t, ok)
	assert.Equal(t, entity.ProviderKindBearerUserinfo, github.Kind)
	assert.Equal(t, "https://api.github.com/user", github.UserInfoURL)
	assert.Equal(t, "https://api.github.com/user/emails", github.EmailsURL)
	assert.Equal(t, []string{"read:user", "user:email"}, github.Scopes)
}

func TestBuildRegistry_SkipsUnusableProviders(t *testing.T) {
	providers := map[string]*config.OAuthProviderConfig{
		"google": {Enabled: true, ClientID: "gid"},
		"github": {Enabled: false, ClientID: "hid", ClientSecret: "hsecret"},
		"nil":    nil,
	}

	registry, err := BuildRegistry(providers, http.DefaultClient, discardLogger())
	require.NoError(t, err)

	assert.Empty(t, registry.Names())
	_, ok := registry.Fetcher("google")
	assert.False(t, ok)
	_, ok = registry.Fetcher("github")
	assert.False(t, ok)
}

func TestBuildRegistry_ConfigOverrides(t *testing.T) {
	providers := map[string]*config.OAuthProviderConfig{
		"GitLab": {
			Enabled:      true,
			Kind:         "bearer_userinfo",
			ClientID:     "id",
			ClientSecret: "secret",
			Scopes:       []string{"read_user"},
			AuthURL:      "https://gitlab.example/oauth/authorize",
			TokenURL:     "https://gitlab.example/oauth/token",
			UserInfoURL:  "https://gitlab.example/api/v4/user",
		},
	}

	registry, err := BuildRegistry(providers, http.DefaultClient, discardLogger())
	require.NoError(t, err)

	fetcher, ok := registry.Fetcher("gitlab")
	require.True(t, ok)
	assert.Equal(t, entity.ProviderType("gitlab"), fetcher.Descriptor().Name)
	assert.Equal(t, []string{"read_user"}, fetcher.Descriptor().Scopes)
	assert.IsType(t, &userinfoFetcher{}, fetcher)

	_, ok = registry.Fetcher("GITLAB")
	assert.True(t, ok)
}

func TestBuildRegistry_InvalidProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider *config.OAuthProviderConfig
	}{
		{
			name:     "unknown kind",
			provider: &config.OAuthProviderConfig{Enabled: true, Kind: "saml", ClientID: "id", ClientSecret: "s", AuthURL: "a", TokenURL: "t"},
		},
		{
			name:     "custom provider without kind",
			provider: &config.OAuthProviderConfig{Enabled: true, ClientID: "id", ClientSecret: "s", AuthURL: "a", TokenURL: "t"},
		},
		{
			name:     "oidc without jwks",
			provider: &config.OAuthProviderConfig{Enabled: true, Kind: "oidc", ClientID: "id", ClientSecret: "s", AuthURL: "a", TokenURL: "t", Issuer: "i"},
		},
		{
			name:     "bearer without userinfo",
			provider: &config.OAuthProviderConfig{Enabled: true, Kind: "bearer_userinfo", ClientID: "id", ClientSecret: "s", AuthURL: "a", TokenURL: "t"},
		},
		{
			name:     "missing token endpoint",
			provider: &config.OAuthProviderConfig{Enabled: true, Kind: "bearer_userinfo", ClientID: "id", ClientSecret: "s", AuthURL: "a", UserInfoURL: "u"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := map[string]*config.OAuthProviderConfig{"custom": tt.provider}

			registry, err := BuildRegistry(providers, http.DefaultClient, discardLogger())
			assert.Error(t, err)
			assert.Nil(t, registry)
		})
	}
}

func TestNewRegistry_NilOAuthSection(t *testing.T) {
	registry, err := NewRegistry(RegistryParams{Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)
	assert.Empty(t, registry.Names())
}
