package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateApiKey(t *testing.T) {
	key, err := GenerateApiKey(64)
	require.NoError(t, err)
	assert.Len(t, key, 64)

	for _, r := range key {
		assert.Contains(t, apiKeyAlphabet, string(r))
	}

	other, err := GenerateApiKey(64)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestGenerateResetToken(t *testing.T) {
	plaintext, hash, err := GenerateResetToken()
	require.NoError(t, err)

	// 64 random bytes hex-encoded, sha256 hex digest.
	assert.Len(t, plaintext, 128)
	assert.Len(t, hash, 64)
	assert.Equal(t, HashResetToken(plaintext), hash)
}

func TestResetTokenMatches(t *testing.T) {
	plaintext, hash, err := GenerateResetToken()
	require.NoError(t, err)

	assert.True(t, ResetTokenMatches(hash, plaintext))
	assert.False(t, ResetTokenMatches(hash, plaintext+"x"))
	assert.False(t, ResetTokenMatches(hash, ""))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
