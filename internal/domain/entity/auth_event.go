package entity

import "time"

// AuthEventType identifies an audit event emitted by the auth core.
type AuthEventType string

const (
	AuthEventUserRegistered AuthEventType = "user.registered"
	AuthEventUserLoggedIn   AuthEventType = "user.logged_in"
	AuthEventUserFederated  AuthEventType = "user.federated"
)

// AuthEvent is published after a successful authentication step.
type AuthEvent struct {
	Type       AuthEventType `json:"type"`
	Email      string        `json:"email"`
	Provider   ProviderType  `json:"provider"`
	Created    bool          `json:"created"`
	RequestID  string        `json:"request_id,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
