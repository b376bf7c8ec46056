package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	require.NotEqual(t, "secret", hash)

	require.True(t, VerifyPassword("secret", hash))
	require.False(t, VerifyPassword("wrong", hash))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	// Each hash carries its own salt, so two hashes of the same password
	// must differ while both still verifying.
	require.NotEqual(t, first, second)
	require.True(t, VerifyPassword("secret", first))
	require.True(t, VerifyPassword("secret", second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$broken"} {
		require.False(t, VerifyPassword("secret", hash))
	}
}
