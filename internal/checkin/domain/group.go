package domain

import "time"

// Group is a cohort of students that events are scheduled for.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
