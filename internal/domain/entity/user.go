// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the canonical account record. Exactly one Provider is bound to an Email
// for the lifetime of the account.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email        string       // Unique, stored lower-cased.
	PasswordHash string       // Only set for accounts created through local registration.
	Provider     ProviderType // The provider that created the account. Never changes.
	Subject      string       // JWT subject. Currently equal to Email.
	Username     string       // User supplied for local accounts, generated for federated ones.
	Name         string
	GivenName    string
	FamilyName   string
	Picture      string
	CreatedAt    time.Time
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// NormalizeEmail is the canonical form used as the user store key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
