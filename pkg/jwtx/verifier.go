package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrUnknownKID = errors.New("jwtx: unknown kid")
	ErrExpired    = errors.New("jwtx: token expired")
)

// Verifier validates a token string and returns its claims. Implementations
// must distinguish a forged or garbled token (ErrInvalidSig / ErrMalformed)
// from a genuine but stale one (ErrExpired); callers surface those as
// different user-facing outcomes.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256Verifier validates HMAC-SHA256 tokens against a keychain.
type HS256Verifier struct {
	chain *Keychain
}

// NewVerifierHS256 creates a verifier bound to a keychain.
func NewVerifierHS256(chain *Keychain) *HS256Verifier {
	return &HS256Verifier{chain: chain}
}

// Verify parses and validates the token. Expiry is strict: a token presented
// exactly at its exp instant is already expired.
func (v *HS256Verifier) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		// Tokens minted before key versioning carry no kid; fall back to
		// the active key so they stay verifiable.
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			kid = v.chain.ActiveKID()
		}

		key, ok := v.chain.Key(kid)
		if !ok {
			return nil, ErrUnknownKID
		}
		return key, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, ErrUnknownKID):
			return Claims{}, ErrUnknownKID
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if claims.Nonce == "" || claims.EventID <= 0 {
		return Claims{}, ErrMalformed
	}

	return *claims, nil
}
