package jwtx

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testChain(t *testing.T) *Keychain {
	t.Helper()

	chain, err := NewKeychain("v1", map[string][]byte{
		"v1": []byte("0123456789abcdef0123456789abcdef"),
		"v2": []byte("fedcba9876543210fedcba9876543210"),
	})
	require.NoError(t, err)
	return chain
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	chain := testChain(t)
	signer, err := NewSignerHS256(chain)
	require.NoError(t, err)
	verifier := NewVerifierHS256(chain)

	now := time.Now()
	claims := NewCheckInClaims(42, "test-nonce", DefaultTokenTTL, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), got.EventID)
	require.Equal(t, "test-nonce", got.Nonce)
	require.Equal(t, now.Unix(), got.IssuedAt.Unix())
	require.Equal(t, now.Add(DefaultTokenTTL).Unix(), got.ExpiresAt.Unix())
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	chain := testChain(t)
	signer, err := NewSignerHS256(chain)
	require.NoError(t, err)
	verifier := NewVerifierHS256(chain)

	// Issued eleven minutes ago with a ten minute life.
	claims := NewCheckInClaims(1, "stale", DefaultTokenTTL, time.Now().Add(-11*time.Minute))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsTampering(t *testing.T) {
	t.Parallel()

	chain := testChain(t)
	signer, err := NewSignerHS256(chain)
	require.NoError(t, err)
	verifier := NewVerifierHS256(chain)

	token, err := signer.Sign(NewCheckInClaims(7, "honest-nonce", DefaultTokenTTL, time.Now()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	t.Run("payload bit flip", func(t *testing.T) {
		payload, err := base64.RawURLEncoding.DecodeString(parts[1])
		require.NoError(t, err)

		// Point the token at a different event, keep the old signature.
		doctored := strings.Replace(string(payload), `"event_id":7`, `"event_id":8`, 1)
		forged := parts[0] + "." + base64.RawURLEncoding.EncodeToString([]byte(doctored)) + "." + parts[2]

		_, err = verifier.Verify(forged)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("signature bit flip", func(t *testing.T) {
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}

		_, err := verifier.Verify(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewKeychain("v1", map[string][]byte{
			"v1": []byte("another-secret-another-secret-32"),
		})
		require.NoError(t, err)

		_, err = NewVerifierHS256(other).Verify(token)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.Verify("not-a-token")
		require.ErrorIs(t, err, ErrMalformed)
	})
}

func TestVerifyAcrossKeyVersions(t *testing.T) {
	t.Parallel()

	keys := map[string][]byte{
		"v1": []byte("0123456789abcdef0123456789abcdef"),
		"v2": []byte("fedcba9876543210fedcba9876543210"),
	}

	oldChain, err := NewKeychain("v1", keys)
	require.NoError(t, err)
	newChain, err := NewKeychain("v2", keys)
	require.NoError(t, err)

	oldSigner, err := NewSignerHS256(oldChain)
	require.NoError(t, err)

	token, err := oldSigner.Sign(NewCheckInClaims(3, "rotating", DefaultTokenTTL, time.Now()))
	require.NoError(t, err)

	// After rotation the v2 chain still verifies a v1-signed token.
	got, err := NewVerifierHS256(newChain).Verify(token)
	require.NoError(t, err)
	require.Equal(t, "rotating", got.Nonce)

	// A chain that never knew v1 rejects it.
	v2only, err := NewKeychain("v2", map[string][]byte{"v2": keys["v2"]})
	require.NoError(t, err)
	_, err = NewVerifierHS256(v2only).Verify(token)
	require.ErrorIs(t, err, ErrUnknownKID)
}

func TestNewKeychainValidation(t *testing.T) {
	t.Parallel()

	_, err := NewKeychain("v1", nil)
	require.Error(t, err)

	_, err = NewKeychain("v2", map[string][]byte{"v1": []byte("0123456789abcdef0123456789abcdef")})
	require.Error(t, err)

	_, err = NewKeychain("v1", map[string][]byte{"v1": []byte("short")})
	require.Error(t, err)
}
