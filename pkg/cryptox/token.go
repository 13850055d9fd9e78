package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// Nonce size constants (in bytes before encoding).
const (
	// NonceSize128 provides 128 bits of entropy (22 chars base64url),
	// the minimum for a check-in nonce.
	NonceSize128 = 16
	// NonceSize256 provides 256 bits of entropy (43 chars base64url).
	NonceSize256 = 32
)

// GenerateNonce creates a cryptographically secure random value of the given
// byte length, encoded base64url without padding. Returns an error only if
// the system RNG fails.
func GenerateNonce(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("nonce size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random nonce: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// base64url encoded. The ledger stores fingerprints instead of raw signed
// tokens so a database dump never yields redeemable material.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}
