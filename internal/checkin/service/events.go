package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
	"github.com/illiaantonenko/attendance/internal/checkin/store"
	"github.com/illiaantonenko/attendance/pkg/geo"
	"github.com/illiaantonenko/attendance/pkg/slogx"
)

// DefaultCheckInLeadMinutes is how early before an event starts student
// check-in opens when the event does not override it.
const DefaultCheckInLeadMinutes = 15

type EventService struct {
	Store store.Store

	Now func() time.Time // defaults to time.Now
}

func (s *EventService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateEvent is the minimal create the platform seeder and tests use.
// Full event CRUD lives elsewhere in the platform.
func (s *EventService) CreateEvent(ctx context.Context, e domain.Event, requesterID int64, requesterRole string) (domain.Event, error) {
	log := slogx.FromContext(ctx)

	if requesterRole != domain.RoleTeacher && requesterRole != domain.RoleAdmin {
		return domain.Event{}, ErrForbidden
	}

	if e.Title == "" || !e.EndsAt.After(e.StartsAt) {
		return domain.Event{}, ErrInvalidEvent
	}
	if e.GeolocationRequired {
		if !e.HasLocation() || e.AllowedRadiusMeters <= 0 {
			return domain.Event{}, ErrInvalidEvent
		}
		if !(geo.Point{Lat: *e.Latitude, Lng: *e.Longitude}).Valid() {
			return domain.Event{}, ErrInvalidEvent
		}
	}
	if e.CheckInLeadMinutes <= 0 {
		e.CheckInLeadMinutes = DefaultCheckInLeadMinutes
	}

	now := s.now()
	e.TeacherID = requesterID
	e.CreatedAt = now
	e.UpdatedAt = now

	id, err := s.Store.Events().CreateEvent(ctx, e)
	if err != nil {
		log.Error("failed to create event", slog.Any("error", err))
		return domain.Event{}, errors.Join(ErrStoreUnavailable, err)
	}
	e.ID = id

	log.Info("event created",
		slog.Int64("event_id", id),
		slog.Int64("teacher_id", requesterID),
		slog.Time("starts_at", e.StartsAt),
	)
	return e, nil
}
