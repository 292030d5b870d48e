package oauth

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"envybase/config"
	"envybase/internal/domain/entity"
	"envybase/internal/domain/service"
	"envybase/internal/errors"

	"go.uber.org/fx"
)

const defaultHTTPTimeout = 10 * time.Second

// builtinProviders holds the endpoints of the well-known providers. Config
// values override any field.
var builtinProviders = map[entity.ProviderType]entity.ProviderDescriptor{
	entity.ProviderTypeGoogle: {
		Name:        entity.ProviderTypeGoogle,
		Kind:        entity.ProviderKindOIDC,
		Scopes:      []string{"openid", "email", "profile"},
		AuthURL:     "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL:    "https://oauth2.googleapis.com/token",
		UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
		JWKSURL:     "https://www.googleapis.com/oauth2/v3/certs",
		Issuer:      "https://accounts.google.com",
	},
	entity.ProviderTypeGitHub: {
		Name:        entity.ProviderTypeGitHub,
		Kind:        entity.ProviderKindBearerUserinfo,
		Scopes:      []string{"read:user", "user:email"},
		AuthURL:     "https://github.com/login/oauth/authorize",
		TokenURL:    "https://github.com/login/oauth/access_token",
		UserInfoURL: "https://api.github.com/user",
		EmailsURL:   "https://api.github.com/user/emails",
	},
}

// RegistryParams defines the parameters required for the provider registry
type RegistryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	// HTTPClient is used for token, userinfo and JWKS requests.
	HTTPClient *http.Client `optional:"true"`
}

// Registry is an immutable name to fetcher table built at startup.
type Registry struct {
	fetchers map[string]service.IdentityFetcher
	names    []string
}

// NewRegistry builds the registry from the oauth section of the config.
func NewRegistry(params RegistryParams) (service.ProviderRegistry, error) {
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	var providers map[string]*config.OAuthProviderConfig
	if params.Config.OAuth != nil {
		providers = params.Config.OAuth.Providers
	}

	return BuildRegistry(providers, client, params.Logger)
}

// BuildRegistry creates a fetcher for every enabled provider that has client
// credentials. Providers without credentials are skipped with a warning.
func BuildRegistry(providers map[string]*config.OAuthProviderConfig, client *http.Client, logger *slog.Logger) (*Registry, error) {
	registry := &Registry{fetchers: make(map[string]service.IdentityFetcher)}

	for name, providerCfg := range providers {
		if providerCfg == nil || !providerCfg.Enabled {
			continue
		}

		name = strings.ToLower(strings.TrimSpace(name))
		if providerCfg.ClientID == "" || providerCfg.ClientSecret == "" {
			logger.Warn("OAuth provider skipped, client credentials missing", slog.String("provider", name))

			continue
		}

		descriptor, err := buildDescriptor(name, providerCfg)
		if err != nil {
			return nil, err
		}

		fetcher, err := NewFetcher(descriptor, client)
		if err != nil {
			return nil, err
		}

		registry.fetchers[name] = fetcher
		registry.names = append(registry.names, name)
	}

	slices.Sort(registry.names)
	logger.Info("OAuth providers registered", slog.Any("providers", registry.names))

	return registry, nil
}

// NewFetcher creates the fetcher matching the descriptor's kind.
func NewFetcher(descriptor *entity.ProviderDescriptor, client *http.Client) (service.IdentityFetcher, error) {
	switch descriptor.Kind {
	case entity.ProviderKindOIDC:
		return newOIDCFetcher(descriptor, client), nil
	case entity.ProviderKindBearerUserinfo:
		return newUserinfoFetcher(descriptor, client), nil
	default:
		return nil, errors.Errorf("oauth provider %s: unknown kind %q", descriptor.Name, descriptor.Kind)
	}
}

// Get returns the descriptor of a configured provider.
func (r *Registry) Get(name string) (*entity.ProviderDescriptor, bool) {
	fetcher, ok := r.Fetcher(name)
	if !ok {
		return nil, false
	}

	return fetcher.Descriptor(), true
}

// Fetcher returns the fetcher for name.
func (r *Registry) Fetcher(name string) (service.IdentityFetcher, bool) {
	fetcher, ok := r.fetchers[strings.ToLower(name)]

	return fetcher, ok
}

// Names lists the configured providers in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

func buildDescriptor(name string, cfg *config.OAuthProviderConfig) (*entity.ProviderDescriptor, error) {
	descriptor := builtinProviders[entity.ProviderType(name)]
	descriptor.Name = entity.ProviderType(name)
	descriptor.Scopes = slices.Clone(descriptor.Scopes)

	if cfg.Kind != "" {
		descriptor.Kind = entity.ProviderKind(strings.ToLower(cfg.Kind))
	}
	descriptor.ClientID = cfg.ClientID
	descriptor.ClientSecret = cfg.ClientSecret
	descriptor.RedirectURL = cfg.RedirectURL
	if len(cfg.Scopes) > 0 {
		descriptor.Scopes = slices.Clone(cfg.Scopes)
	}
	override(&descriptor.AuthURL, cfg.AuthURL)
	override(&descriptor.TokenURL, cfg.TokenURL)
	override(&descriptor.UserInfoURL, cfg.UserInfoURL)
	override(&descriptor.EmailsURL, cfg.EmailsURL)
	override(&descriptor.JWKSURL, cfg.JWKSURL)
	override(&descriptor.Issuer, cfg.Issuer)

	if !descriptor.Kind.IsValid() {
		return nil, errors.Errorf("oauth provider %s: unknown kind %q", name, descriptor.Kind)
	}
	if descriptor.AuthURL == "" || descriptor.TokenURL == "" {
		return nil, errors.Errorf("oauth provider %s: authUrl and tokenUrl must be provided", name)
	}
	switch descriptor.Kind {
	case entity.ProviderKindOIDC:
		if descriptor.JWKSURL == "" || descriptor.Issuer == "" {
			return nil, errors.Errorf("oauth provider %s: jwksUrl and issuer must be provided", name)
		}
	case entity.ProviderKindBearerUserinfo:
		if descriptor.UserInfoURL == "" {
			return nil, errors.Errorf("oauth provider %s: userInfoUrl must be provided", name)
		}
	}

	return &descriptor, nil
}

func override(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
