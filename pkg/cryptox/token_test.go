package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateNonce(t *testing.T) {
	t.Parallel()

	t.Run("produces url-safe text of expected entropy", func(t *testing.T) {
		nonce, err := GenerateNonce(NonceSize128)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(nonce)
		require.NoError(t, err)
		require.Len(t, raw, NonceSize128)
	})

	t.Run("unique per call", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			nonce, err := GenerateNonce(NonceSize256)
			require.NoError(t, err)

			_, dup := seen[nonce]
			require.False(t, dup, "nonce collision")
			seen[nonce] = struct{}{}
		}
	})

	t.Run("rejects non-positive size", func(t *testing.T) {
		_, err := GenerateNonce(0)
		require.Error(t, err)
		_, err = GenerateNonce(-1)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("some-signed-token")
	b := FingerprintToken("some-signed-token")
	c := FingerprintToken("some-signed-tokem")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 43) // sha256, base64url, no padding
}
