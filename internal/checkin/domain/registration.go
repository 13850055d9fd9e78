package domain

import "time"

// Registration statuses.
const (
	StatusRegistered = "registered"
	StatusPresent    = "present"
	StatusAbsent     = "absent"
	StatusLate       = "late"
	StatusExcused    = "excused"
)

type Registration struct {
	ID           string // ULID
	EventID      int64
	StudentID    int64
	Status       string
	CheckedInAt  *time.Time
	CheckInLat   *float64
	CheckInLng   *float64
	DeviceInfo   *string
	QrTokenID    *string // ledger row that produced this check-in, nil for manual
	MarkedBy     *int64  // teacher who marked attendance manually
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CheckedIn reports whether the student has already been marked present.
func (r Registration) CheckedIn() bool {
	return r.Status == StatusPresent || r.Status == StatusLate
}
