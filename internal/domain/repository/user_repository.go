// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"envybase/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned by Create when the email uniqueness constraint rejects the insert.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository is the user store. Implementations must enforce uniqueness of the
// normalized email and give read-after-write visibility.
type UserRepository interface {
	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user. It returns ErrUserAlreadyExists when the email is taken.
	Create(ctx context.Context, user *entity.User) error
}
