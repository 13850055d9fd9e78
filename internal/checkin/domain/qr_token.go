package domain

import "time"

// QrToken is the audit ledger row for an issued QR check-in token. The
// raw token is never stored, only its fingerprint.
type QrToken struct {
	ID        string // ULID
	EventID   int64
	Nonce     string
	TokenHash string // sha256 fingerprint, base64url
	ExpiresAt time.Time
	Used      bool
	UsedAt    *time.Time
	UsedBy    *int64 // student who redeemed the token
	CreatedAt time.Time
}
