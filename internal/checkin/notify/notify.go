// Package notify delivers best-effort check-in notifications. Failures
// never fail the check-in itself.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/illiaantonenko/attendance/pkg/slogx"
)

// CheckInEvent describes a successful check-in for downstream consumers
// (live attendance dashboards, websockets, etc).
type CheckInEvent struct {
	EventID     int64     `json:"event_id"`
	StudentID   int64     `json:"student_id"`
	Status      string    `json:"status"`
	CheckedInAt time.Time `json:"checked_in_at"`
	Manual      bool      `json:"manual"`
}

type Notifier interface {
	CheckInRecorded(ctx context.Context, ev CheckInEvent) error
}

// LogNotifier writes check-in events to the structured log. It stands in
// for a real broadcast backend in single-node deployments.
type LogNotifier struct{}

func (LogNotifier) CheckInRecorded(ctx context.Context, ev CheckInEvent) error {
	slogx.FromContext(ctx).Info("check-in recorded",
		slog.Int64("event_id", ev.EventID),
		slog.Int64("student_id", ev.StudentID),
		slog.String("status", ev.Status),
		slog.Time("checked_in_at", ev.CheckedInAt),
		slog.Bool("manual", ev.Manual),
	)
	return nil
}
