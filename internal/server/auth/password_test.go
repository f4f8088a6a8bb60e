package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltVaries(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, CheckPassword("secret1", first))
	assert.True(t, CheckPassword("secret1", second))
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct-horse")
	require.NoError(t, err)

	assert.False(t, CheckPassword("battery-staple", digest))
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-digest"))
	assert.False(t, CheckPassword("secret1", ""))
}

func TestCheckPassword_EmptyPlaintext(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.False(t, CheckPassword("", digest))
}
