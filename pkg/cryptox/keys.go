package cryptox

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// SigningKeyBytes is the length of a derived HMAC signing key.
const SigningKeyBytes = 32

// DeriveSigningKey derives a versioned HMAC key from the master secret using
// HKDF-SHA256, with the version tag ("v1", "v2", ...) as the info string.
// Rotating a key version never requires distributing new secrets; every
// instance sharing the master derives the same chain.
func DeriveSigningKey(master []byte, version string) ([]byte, error) {
	if len(master) == 0 {
		return nil, fmt.Errorf("empty master secret")
	}
	if version == "" {
		return nil, fmt.Errorf("empty key version")
	}

	r := hkdf.New(sha256.New, master, []byte("attendance-qr"), []byte(version))

	key := make([]byte, SigningKeyBytes)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("hkdf expand: %w", err)
	}
	return key, nil
}

// DeriveKeychain derives versions v1..vN from the master secret and returns
// them keyed by version tag.
func DeriveKeychain(master []byte, versions int) (map[string][]byte, error) {
	if versions < 1 {
		versions = 1
	}

	keys := make(map[string][]byte, versions)
	for i := 1; i <= versions; i++ {
		tag := fmt.Sprintf("v%d", i)
		key, err := DeriveSigningKey(master, tag)
		if err != nil {
			return nil, err
		}
		keys[tag] = key
	}
	return keys, nil
}
