package errors

import (
	"net/http"

	"envybase/internal/errors"
)

// Code is a stable taxonomy code for authentication failures.
type Code string

const (
	CodeInvalidCredentials    Code = "InvalidCredentials"
	CodeDuplicateRegistration Code = "DuplicateRegistrationError"
	CodeUnsupportedProvider   Code = "UnsupportedProvider"
	CodeOAuth                 Code = "OAuthError"
	CodeToken                 Code = "TokenError"
	CodeUserinfoFetch         Code = "UserinfoFetchError"
	CodeMissingEmail          Code = "MissingEmailError"
	CodeProviderMismatch      Code = "ProviderMismatchError"
	CodeInvalidToken          Code = "InvalidToken"
	CodeExpiredToken          Code = "ExpiredToken"
)

type codeInfo struct {
	status  int
	message string
}

var codeTable = map[Code]codeInfo{
	CodeInvalidCredentials:    {http.StatusUnauthorized, "Incorrect email or password"},
	CodeDuplicateRegistration: {http.StatusBadRequest, "An account with this email already exists"},
	CodeUnsupportedProvider:   {http.StatusBadRequest, "Unsupported OAuth provider"},
	CodeOAuth:                 {http.StatusBadRequest, "The identity provider rejected the sign-in"},
	CodeToken:                 {http.StatusBadRequest, "Failed to obtain a token from the identity provider"},
	CodeUserinfoFetch:         {http.StatusBadRequest, "Failed to fetch the user profile from the identity provider"},
	CodeMissingEmail:          {http.StatusBadRequest, "The identity provider did not disclose an email address"},
	CodeProviderMismatch:      {http.StatusBadRequest, "This email is registered with a different sign-in method"},
	CodeInvalidToken:          {http.StatusUnauthorized, "Invalid token"},
	CodeExpiredToken:          {http.StatusUnauthorized, "Token has expired"},
}

// HTTPStatus returns the status the code is rendered with.
func (c Code) HTTPStatus() int {
	if info, ok := codeTable[c]; ok {
		return info.status
	}

	return http.StatusInternalServerError
}

// AuthError is a taxonomy failure. It implements AppError and keeps the
// underlying cause for logs while only the code and message reach clients.
type AuthError struct {
	code          Code
	message       string
	correlationID string
	provider      string
	cause         error
}

// NewAuthError builds an AuthError with the default message for code.
func NewAuthError(code Code, cause error) *AuthError {
	return &AuthError{
		code:    code,
		message: codeTable[code].message,
		cause:   cause,
	}
}

// Predefined taxonomy values, usable as errors.Is targets.
var (
	ErrInvalidCredentials    = NewAuthError(CodeInvalidCredentials, nil)
	ErrDuplicateRegistration = NewAuthError(CodeDuplicateRegistration, nil)
	ErrUnsupportedProvider   = NewAuthError(CodeUnsupportedProvider, nil)
	ErrOAuth                 = NewAuthError(CodeOAuth, nil)
	ErrToken                 = NewAuthError(CodeToken, nil)
	ErrUserinfoFetch         = NewAuthError(CodeUserinfoFetch, nil)
	ErrMissingEmail          = NewAuthError(CodeMissingEmail, nil)
	ErrProviderMismatch      = NewAuthError(CodeProviderMismatch, nil)
	ErrInvalidToken          = NewAuthError(CodeInvalidToken, nil)
	ErrExpiredToken          = NewAuthError(CodeExpiredToken, nil)
)

// Error implements the error interface
func (e *AuthError) Error() string {
	msg := string(e.code) + ": " + e.message
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}

	return msg
}

// Unwrap returns the cause
func (e *AuthError) Unwrap() error {
	return e.cause
}

// Is matches on taxonomy code only.
func (e *AuthError) Is(target error) bool {
	t, ok := target.(*AuthError)

	return ok && t.code == e.code
}

// Code returns the taxonomy code
func (e *AuthError) Code() Code {
	return e.code
}

// HTTPCode returns the HTTP status code
func (e *AuthError) HTTPCode() int {
	return e.code.HTTPStatus()
}

// ErrorCode returns the taxonomy code as a string
func (e *AuthError) ErrorCode() string {
	return string(e.code)
}

// Message returns the user-friendly error message
func (e *AuthError) Message() string {
	return e.message
}

// Details is always empty; causes are never rendered to clients.
func (e *AuthError) Details() string {
	return ""
}

// CorrelationID returns the id shared by the log record and the client payload.
func (e *AuthError) CorrelationID() string {
	return e.correlationID
}

// Provider returns the provider the failure happened with, if any.
func (e *AuthError) Provider() string {
	return e.provider
}

// WithCorrelationID returns a copy carrying id.
func (e *AuthError) WithCorrelationID(id string) *AuthError {
	cloned := *e
	cloned.correlationID = id

	return &cloned
}

// WithProvider returns a copy tagged with provider.
func (e *AuthError) WithProvider(provider string) *AuthError {
	cloned := *e
	cloned.provider = provider

	return &cloned
}

// WithCause returns a copy wrapping cause.
func (e *AuthError) WithCause(cause error) *AuthError {
	cloned := *e
	cloned.cause = cause

	return &cloned
}

// AsAuthError finds the first AuthError in err's chain.
func AsAuthError(err error) (*AuthError, bool) {
	return errors.AsType[*AuthError](err)
}
