package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	assert.NoError(t, ComparePassword(hash, "secret1"))
	assert.Error(t, ComparePassword(hash, "other2"))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
