package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints signed check-in tokens.
type Signer interface {
	Sign(Claims) (string, error)
}

// HS256Signer signs tokens with HMAC-SHA256 using the keychain's active key.
type HS256Signer struct {
	chain *Keychain
}

// NewSignerHS256 creates a signer bound to a keychain.
func NewSignerHS256(chain *Keychain) (*HS256Signer, error) {
	if !chain.Ready() {
		return nil, errors.New("jwtx: keychain not ready")
	}
	return &HS256Signer{chain: chain}, nil
}

// Sign turns claims into a compact signed token, stamping the active key
// version into the header so verifiers pick the right secret after rotation.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	key, ok := s.chain.Key(s.chain.ActiveKID())
	if !ok {
		return "", ErrUnknownKID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t.Header["kid"] = s.chain.ActiveKID()
	return t.SignedString(key)
}
