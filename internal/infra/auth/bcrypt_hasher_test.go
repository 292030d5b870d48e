package auth

import (
	"testing"

	"envybase/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "abcdefgh"
	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.NotEqual(t, password, first)
	assert.NotEqual(t, first, second, "fresh salt per call")
	assert.True(t, hasher.Check(password, first))
	assert.True(t, hasher.Check(password, second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check(password, ""))
}

func TestBcryptHasher_CheckIgnoresCostUsedAtHashTime(t *testing.T) {
	password := "abcdefgh"
	verifier := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, cost := range []int{bcrypt.MinCost, bcrypt.MinCost + 1, bcrypt.MinCost + 2} {
		hash, err := NewBcryptHasherWithCost(cost).Hash(password)
		require.NoError(t, err)

		actualCost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, cost, actualCost)
		assert.True(t, verifier.Check(password, hash), "cost %d", cost)
	}
}

func TestNewBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost + 1}}

	hash, err := NewBcryptHasher(cfg).Hash("abcdefgh")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestNewBcryptHasherWithCost_Clamps(t *testing.T) {
	hash, err := NewBcryptHasherWithCost(1).Hash("abcdefgh")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
