package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime of a check-in token. Short by
// design: a QR code on a lecture-hall screen should not outlive the slide
// it is shown on by much.
const DefaultTokenTTL = 10 * time.Minute

// Claims are the signed contents of a check-in token. The wire shape is
// kept minimal and stable: event_id, nonce, iat and exp. Anything else a
// caller needs lives in the audit ledger, not the token.
type Claims struct {
	jwt.RegisteredClaims

	// EventID is the event this token admits to.
	EventID int64 `json:"event_id"`

	// Nonce is the single-use random value minted at issuance. Its
	// presence in the nonce store is what makes the token redeemable.
	Nonce string `json:"nonce"`
}

// NewCheckInClaims builds claims for a freshly minted token.
// expires = issued + ttl, both in whole seconds (JWT numeric dates).
func NewCheckInClaims(eventID int64, nonce string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		EventID: eventID,
		Nonce:   nonce,
	}
}
