package domain

import "time"

// Role values carried on requests by the identity gateway.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type Event struct {
	ID                  int64
	Title               string
	StartsAt            time.Time
	EndsAt              time.Time
	QREnabled           bool
	GeolocationRequired bool
	Latitude            *float64 // nil when the event has no venue coordinates
	Longitude           *float64
	AllowedRadiusMeters float64
	CheckInLeadMinutes  int // how early before StartsAt check-in opens
	TeacherID           int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CheckInOpensAt is the earliest instant a student check-in is accepted.
func (e Event) CheckInOpensAt() time.Time {
	return e.StartsAt.Add(-time.Duration(e.CheckInLeadMinutes) * time.Minute)
}

// HasLocation reports whether the event carries venue coordinates.
func (e Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}
