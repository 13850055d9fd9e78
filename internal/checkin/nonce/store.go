// Package nonce tracks live QR token nonces. A nonce is valid from the
// moment its token is issued until it is consumed by a check-in or its
// TTL lapses, whichever comes first. Consume is atomic: exactly one
// caller wins a given nonce.
package nonce

import (
	"context"
	"time"
)

type Store interface {
	// Put registers a nonce for an event with an absolute expiry.
	Put(ctx context.Context, nonce string, eventID int64, expiresAt time.Time) error

	// Peek reports whether the nonce is live and which event it belongs
	// to, without consuming it.
	Peek(ctx context.Context, nonce string) (eventID int64, ok bool, err error)

	// Consume atomically removes the nonce. It returns the event the
	// nonce was registered for and whether this caller won it. A second
	// Consume of the same nonce always reports ok=false.
	Consume(ctx context.Context, nonce string) (eventID int64, ok bool, err error)

	// Sweep drops entries whose expiry is at or before now and returns
	// how many were removed.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
