package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: "OAuthError"}, "exchange")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "OAuthError", got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestCause(t *testing.T) {
	root := New("root")
	assert.Equal(t, root, Cause(Wrapf(root, "layer %d", 2)))
	assert.True(t, Is(WithStack(root), root))
}
