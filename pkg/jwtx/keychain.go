package jwtx

import (
	"errors"
	"fmt"
)

// minKeyBytes rejects secrets too short to be a meaningful HMAC key.
const minKeyBytes = 32

// Keychain holds the symmetric signing keys by version tag ("v1", "v2", ...).
// The active version signs new tokens; every version in the chain can still
// verify, so rotation never strands a token that is mid-flight through its
// ten-minute life.
type Keychain struct {
	active string
	keys   map[string][]byte
}

// NewKeychain builds a keychain from a version->key map. The active version
// must be present in the map.
func NewKeychain(active string, keys map[string][]byte) (*Keychain, error) {
	if len(keys) == 0 {
		return nil, errors.New("jwtx: empty keychain")
	}
	if _, ok := keys[active]; !ok {
		return nil, fmt.Errorf("jwtx: active key version %q not in chain", active)
	}

	for kid, key := range keys {
		if len(key) < minKeyBytes {
			return nil, fmt.Errorf("jwtx: key %q shorter than %d bytes", kid, minKeyBytes)
		}
	}

	// Copy so a caller mutating its map can't swap keys under us.
	cp := make(map[string][]byte, len(keys))
	for kid, key := range keys {
		cp[kid] = append([]byte(nil), key...)
	}

	return &Keychain{active: active, keys: cp}, nil
}

// ActiveKID returns the version tag used to sign new tokens.
func (k *Keychain) ActiveKID() string { return k.active }

// Key returns the secret for a version tag.
func (k *Keychain) Key(kid string) ([]byte, bool) {
	key, ok := k.keys[kid]
	return key, ok
}

// Ready reports whether the chain has at least one usable key.
func (k *Keychain) Ready() bool {
	return k != nil && len(k.keys) > 0
}
