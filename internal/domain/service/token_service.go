package service

import "time"

// TokenClaims is the decoded claim set of a validated token.
type TokenClaims map[string]any

// Subject returns the sub claim, or an empty string.
func (c TokenClaims) Subject() string {
	sub, _ := c["sub"].(string)

	return sub
}

// Issuer returns the iss claim, or an empty string.
func (c TokenClaims) Issuer() string {
	iss, _ := c["iss"].(string)

	return iss
}

// TokenService issues and validates the signed bearer credential.
type TokenService interface {
	// IssueToken merges claims with iat, iss and (when configured) exp and signs the result.
	IssueToken(claims map[string]any) (string, error)

	// ValidateToken verifies the signature and returns the claims. It fails with
	// ErrExpiredToken for an elapsed exp and ErrInvalidToken for anything else.
	ValidateToken(token string) (TokenClaims, error)

	// TokenTTL is the lifetime stamped on issued tokens, zero when they do not expire.
	TokenTTL() time.Duration
}
