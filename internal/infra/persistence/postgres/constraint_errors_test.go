package postgres

import (
	"testing"

	"envybase/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, expected: true},
		{name: "raw driver error", err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_unique"}, expected: true},
		{name: "wrapped driver error", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), expected: true},
		{name: "other driver error", err: &pgconn.PgError{Code: "23503"}, expected: false},
		{name: "plain error", err: errors.New("connection reset"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "subject" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}
