package entity

// ProviderType names the authentication provider bound to an account.
type ProviderType string

const (
	ProviderTypeLocal  ProviderType = "local"
	ProviderTypeGoogle ProviderType = "google"
	ProviderTypeGitHub ProviderType = "github"
)

func (p ProviderType) String() string {
	return string(p)
}

// ProviderKind selects how an external identity is obtained after the code exchange.
type ProviderKind string

const (
	// ProviderKindOIDC providers return a signed ID token verified against their JWKS.
	ProviderKindOIDC ProviderKind = "oidc"
	// ProviderKindBearerUserinfo providers are queried with the access token as a bearer credential.
	ProviderKindBearerUserinfo ProviderKind = "bearer_userinfo"
)

// IsValid reports whether k is a known provider kind.
func (k ProviderKind) IsValid() bool {
	switch k {
	case ProviderKindOIDC, ProviderKindBearerUserinfo:
		return true
	default:
		return false
	}
}

// ProviderDescriptor is the static configuration of one federated identity provider.
type ProviderDescriptor struct {
	Name         ProviderType
	Kind         ProviderKind
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	// EmailsURL lists the account emails for providers that hide them from userinfo.
	EmailsURL string
	// JWKSURL and Issuer are required for OIDC providers.
	JWKSURL string
	Issuer  string
}

// IsOIDC reports whether the provider returns a verifiable ID token.
func (d *ProviderDescriptor) IsOIDC() bool {
	return d.Kind == ProviderKindOIDC
}
