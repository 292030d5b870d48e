// Package constants holds identifiers shared across layers.
package constants

const (
	// PubSubProviderLocal publishes events as Pub/Sub push messages to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// AccessTokenCookie carries the issued JWT for browser clients.
	AccessTokenCookie = "access_token"
	// BearerTokenType is the token type returned by the OAuth callback.
	BearerTokenType = "Bearer"
)

const (
	// UsernameLength is the size of usernames generated for federated signups.
	UsernameLength = 12
	// StateByteLength is the entropy of an OAuth state value before hex encoding.
	StateByteLength = 32
)
