package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSigner_RoundTrip(t *testing.T) {
	signer := NewTokenSigner("test-secret-key")

	token := signer.Issue("user@example.com", "email-confirm")

	subject, err := signer.Verify(token, "email-confirm", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", subject)
}

func TestTokenSigner_Expiry(t *testing.T) {
	signer := NewTokenSigner("test-secret-key")
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token := signer.issueAt("user@example.com", "email-confirm", issued)

	t.Run("valid within max age", func(t *testing.T) {
		subject, err := signer.verifyAt(token, "email-confirm", time.Hour, issued.Add(59*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", subject)
	})

	t.Run("expired beyond max age", func(t *testing.T) {
		_, err := signer.verifyAt(token, "email-confirm", time.Hour, issued.Add(61*time.Minute))
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestTokenSigner_Tampering(t *testing.T) {
	signer := NewTokenSigner("test-secret-key")
	token := signer.Issue("user@example.com", "email-confirm")

	t.Run("any flipped byte invalidates the token", func(t *testing.T) {
		for i := 0; i < len(token); i++ {
			if token[i] == '.' {
				continue
			}

			tampered := []byte(token)
			if tampered[i] == 'A' {
				tampered[i] = 'B'
			} else {
				tampered[i] = 'A'
			}

			_, err := signer.Verify(string(tampered), "email-confirm", time.Hour)
			assert.ErrorIs(t, err, ErrTokenInvalid, "byte %d", i)
		}
	})

	t.Run("different purpose does not verify", func(t *testing.T) {
		_, err := signer.Verify(token, "password-reset", time.Hour)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("different secret does not verify", func(t *testing.T) {
		other := NewTokenSigner("another-secret")
		_, err := other.Verify(token, "email-confirm", time.Hour)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestTokenSigner_Malformed(t *testing.T) {
	signer := NewTokenSigner("test-secret-key")

	for _, token := range []string{
		"",
		"only-one-part",
		"two.parts",
		"a.b.c.d",
		strings.Repeat(".", 2),
	} {
		_, err := signer.Verify(token, "email-confirm", time.Hour)
		assert.ErrorIs(t, err, ErrTokenInvalid, "token %q", token)
	}
}
