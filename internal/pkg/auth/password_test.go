package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabboard/internal/pkg/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret123")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret123", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret123"))
	assert.False(t, auth.CheckPassword(hash, "wrong-password"))
	assert.False(t, auth.CheckPassword("not-a-hash", "s3cret123"))
}

func TestHashPassword_Unique(t *testing.T) {
	first, err := auth.HashPassword("s3cret123")
	require.NoError(t, err)
	second, err := auth.HashPassword("s3cret123")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
