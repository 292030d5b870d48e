package impl

import (
	"fmt"
	"strings"

	"envybase/config"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/errors"

	"github.com/go-playground/validator/v10"
)

// credentialRules validates credential inputs against the configured length bounds.
type credentialRules struct {
	validate    *validator.Validate
	passwordTag string
	usernameTag string
}

func newCredentialRules(auth *config.AuthConfig) *credentialRules {
	return &credentialRules{
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		passwordTag: fmt.Sprintf("required,min=%d,max=%d", auth.PasswordMinLength, auth.PasswordMaxLength),
		usernameTag: fmt.Sprintf("omitempty,min=%d,max=%d", auth.UsernameMinLength, auth.UsernameMaxLength),
	}
}

type fieldCheck struct {
	name  string
	value string
	tag   string
}

func (r *credentialRules) emailField(email string) fieldCheck {
	return fieldCheck{name: "email", value: email, tag: "required,email"}
}

func (r *credentialRules) passwordField(password string) fieldCheck {
	return fieldCheck{name: "password", value: password, tag: r.passwordTag}
}

// loginPasswordField only requires presence. Length bounds apply to new
// passwords; a login attempt outside them is just a wrong password.
func (r *credentialRules) loginPasswordField(password string) fieldCheck {
	return fieldCheck{name: "password", value: password, tag: "required"}
}

func (r *credentialRules) usernameField(username string) fieldCheck {
	return fieldCheck{name: "username", value: username, tag: r.usernameTag}
}

// check runs every field and reports all violations in one ErrValidationFailed.
func (r *credentialRules) check(fields ...fieldCheck) error {
	var violations []string
	for _, field := range fields {
		if err := r.validate.Var(field.value, field.tag); err != nil {
			violations = append(violations, describeViolation(field.name, err))
		}
	}

	if len(violations) == 0 {
		return nil
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

func describeViolation(field string, err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return field + " is invalid"
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
