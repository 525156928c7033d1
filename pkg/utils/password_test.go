package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces pbkdf2 hash", func(t *testing.T) {
		hash, err := HashPassword("password123")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "pbkdf2:sha256:"))
		assert.NotContains(t, hash, "password123")
	})

	t.Run("same password produces different hashes", func(t *testing.T) {
		hash1, err := HashPassword("samepassword")
		require.NoError(t, err)
		hash2, err := HashPassword("samepassword")
		require.NoError(t, err)
		assert.NotEqual(t, hash1, hash2)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := HashPassword("")
		assert.Error(t, err)
	})
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("correct password verifies", func(t *testing.T) {
		assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("Tr0ub4dor&3", hash))
	})

	t.Run("malformed hashes fail closed", func(t *testing.T) {
		for _, bad := range []string{
			"",
			"plaintext",
			"pbkdf2:sha256:600000$onlyonepart",
			"bcrypt:x$salt$key",
			"pbkdf2:sha256:notanumber$c2FsdA$a2V5",
			"pbkdf2:sha256:600000$!!badbase64!!$a2V5",
		} {
			assert.False(t, CheckPasswordHash("anything", bad), "hash %q", bad)
		}
	})
}
