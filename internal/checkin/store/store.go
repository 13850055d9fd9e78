package store

import (
	"context"
	"errors"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop people from accidently doing transactions within
// transactions.
type Store interface {
	Events() Events
	Groups() Groups
	QrTokens() QrTokens
	Registrations() Registrations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Events interface {
	// GetEventByID fetches an event by its numeric ID.
	GetEventByID(ctx context.Context, id int64) (domain.Event, error)

	// CreateEvent inserts a new event and returns its assigned ID.
	CreateEvent(ctx context.Context, e domain.Event) (int64, error)

	// UpdateQREnabled toggles QR check-in availability for an event.
	UpdateQREnabled(ctx context.Context, eventID int64, enabled bool) error

	// ListEventsByTeacher returns events owned by a teacher, newest first.
	ListEventsByTeacher(ctx context.Context, teacherID int64) ([]domain.Event, error)
}

type Groups interface {
	// CreateGroup inserts a new group and returns its assigned ID.
	CreateGroup(ctx context.Context, g domain.Group) (int64, error)

	// AddMember adds a student to a group (idempotent).
	AddMember(ctx context.Context, groupID, studentID int64) error

	// LinkEvent attaches a group to an event (idempotent).
	LinkEvent(ctx context.Context, eventID, groupID int64) error

	// IsStudentEnrolled reports whether the student belongs to any group
	// attached to the event.
	IsStudentEnrolled(ctx context.Context, eventID, studentID int64) (bool, error)

	// HasEventGroups reports whether any group is attached to the event.
	// Events with no groups are open to all students.
	HasEventGroups(ctx context.Context, eventID int64) (bool, error)

	// CountEnrolled returns the number of distinct students enrolled in
	// the event across all its groups.
	CountEnrolled(ctx context.Context, eventID int64) (int, error)
}

type QrTokens interface {
	// CreateQrToken writes the audit ledger row for a freshly issued token.
	CreateQrToken(ctx context.Context, t domain.QrToken) error

	// GetQrTokenByNonce fetches a ledger row by its nonce.
	GetQrTokenByNonce(ctx context.Context, nonce string) (domain.QrToken, error)

	// MarkQrTokenUsed sets used=1, used_by and used_at for an unused row.
	// It reports whether this call performed the transition; a second call
	// for the same nonce returns false.
	MarkQrTokenUsed(ctx context.Context, nonce string, usedBy int64, usedAt time.Time) (bool, error)

	// ListActiveQrTokens returns unused, unexpired ledger rows for an
	// event, newest first. Audit rows are never deleted.
	ListActiveQrTokens(ctx context.Context, eventID int64, now time.Time) ([]domain.QrToken, error)
}

type Registrations interface {
	// GetRegistration fetches the registration for an event+student pair.
	GetRegistration(ctx context.Context, eventID, studentID int64) (domain.Registration, error)

	// UpsertCheckIn records a check-in for a student, creating the
	// registration row if the student has none yet. The UNIQUE constraint
	// on (event_id, student_id) guarantees a single row per student.
	UpsertCheckIn(ctx context.Context, r domain.Registration) error

	// ListByEvent returns all registrations for an event ordered by
	// check-in time, unchecked students last.
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error)

	// CountCheckedIn returns the number of students marked present or late.
	CountCheckedIn(ctx context.Context, eventID int64) (int, error)
}
