package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
	"github.com/illiaantonenko/attendance/internal/checkin/nonce"
	"github.com/illiaantonenko/attendance/internal/checkin/notify"
	"github.com/illiaantonenko/attendance/internal/checkin/store"
	"github.com/illiaantonenko/attendance/pkg/geo"
	"github.com/illiaantonenko/attendance/pkg/idx"
	"github.com/illiaantonenko/attendance/pkg/jwtx"
	"github.com/illiaantonenko/attendance/pkg/slogx"
)

type AttendanceSummary struct {
	EventID     int64
	StudentID   int64
	Status      string
	CheckedInAt time.Time
	Distance    *geo.Evaluation // set when the event required geolocation
}

type CheckInService struct {
	Store    store.Store
	Nonces   nonce.Store
	Verifier jwtx.Verifier
	Notifier notify.Notifier

	Now func() time.Time // defaults to time.Now
}

func (s *CheckInService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CheckIn redeems a scanned token for a student. The input may be the
// bare token or the full check-in URL from the QR code. At most one
// redemption per token ever succeeds: the nonce consume is the atomic
// gate, and the ledger resolves consume misses into a precise error.
func (s *CheckInService) CheckIn(
	ctx context.Context,
	rawToken string,
	studentID int64,
	requesterRole string,
	location *geo.Point,
	deviceInfo string,
) (AttendanceSummary, error) {
	log := slogx.FromContext(ctx)

	// 1. Only students redeem tokens.
	if requesterRole != domain.RoleStudent {
		log.Warn("check-in attempted with wrong role",
			slog.Int64("requester_id", studentID),
			slog.String("role", requesterRole),
		)
		return AttendanceSummary{}, ErrForbidden
	}

	// 2. Decode and verify the token. Forged and stale tokens are
	// distinct outcomes.
	claims, err := s.Verifier.Verify(ExtractToken(rawToken))
	if err != nil {
		return AttendanceSummary{}, mapVerifyError(err)
	}

	// 3. Event must exist and its check-in window must be open.
	event, err := s.Store.Events().GetEventByID(ctx, claims.EventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AttendanceSummary{}, ErrEventNotFound
		}
		log.Error("failed to fetch event", slog.Any("error", err))
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}

	now := s.now()
	if now.Before(event.CheckInOpensAt()) {
		return AttendanceSummary{}, ErrTooEarly
	}
	if !now.Before(event.EndsAt) {
		return AttendanceSummary{}, ErrEnded
	}

	// 4. Enrollment: events with no groups are open to all.
	hasGroups, err := s.Store.Groups().HasEventGroups(ctx, event.ID)
	if err != nil {
		log.Error("failed to check event groups", slog.Any("error", err))
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}
	if hasGroups {
		enrolled, err := s.Store.Groups().IsStudentEnrolled(ctx, event.ID, studentID)
		if err != nil {
			log.Error("failed to check enrollment", slog.Any("error", err))
			return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
		}
		if !enrolled {
			log.Warn("check-in attempted by non-enrolled student",
				slog.Int64("event_id", event.ID),
				slog.Int64("student_id", studentID),
			)
			return AttendanceSummary{}, ErrNotEnrolled
		}
	}

	// 5. Geofence.
	var evaluation *geo.Evaluation
	if event.GeolocationRequired {
		if location == nil {
			return AttendanceSummary{}, ErrLocationRequired
		}
		if !event.HasLocation() {
			// Misconfigured event; admit rather than strand the class.
			log.Warn("event requires geolocation but has no coordinates",
				slog.Int64("event_id", event.ID),
			)
		} else {
			fence := geo.Fence{
				Center:       geo.Point{Lat: *event.Latitude, Lng: *event.Longitude},
				RadiusMeters: event.AllowedRadiusMeters,
			}
			eval, err := geo.Evaluate(*location, fence)
			if err != nil {
				return AttendanceSummary{}, err
			}
			if !eval.WithinRadius {
				return AttendanceSummary{}, &TooFarError{Evaluation: eval}
			}
			evaluation = &eval
		}
	}

	// 6. Idempotency guard: a completed check-in short-circuits before
	// any nonce is consumed.
	existing, err := s.Store.Registrations().GetRegistration(ctx, event.ID, studentID)
	if err == nil && existing.CheckedIn() {
		return AttendanceSummary{}, ErrAlreadyCheckedIn
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to fetch registration", slog.Any("error", err))
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}

	// 7. Atomic consume. Exactly one concurrent redeemer wins; the
	// losers are resolved through the ledger. A nonce-store error fails
	// closed.
	nonceEventID, ok, err := s.Nonces.Consume(ctx, claims.Nonce)
	if err != nil {
		log.Error("nonce store unavailable", slog.Any("error", err))
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}
	if !ok {
		entry, err := s.Store.QrTokens().GetQrTokenByNonce(ctx, claims.Nonce)
		if err == nil && entry.Used {
			return AttendanceSummary{}, ErrAlreadyUsed
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Error("failed to consult ledger", slog.Any("error", err))
			return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
		}
		return AttendanceSummary{}, ErrExpiredOrInvalid
	}
	if nonceEventID != event.ID {
		// The nonce was registered for a different event than the token
		// claims; treat the token as forged.
		return AttendanceSummary{}, ErrInvalidToken
	}

	// 8. Flip the ledger and upsert attendance atomically.
	ledgerEntry, err := s.Store.QrTokens().GetQrTokenByNonce(ctx, claims.Nonce)
	if err != nil {
		log.Error("failed to fetch ledger entry after consume", slog.Any("error", err))
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}

	registration := domain.Registration{
		ID:          idx.New().String(),
		EventID:     event.ID,
		StudentID:   studentID,
		Status:      domain.StatusPresent,
		CheckedInAt: &now,
		QrTokenID:   &ledgerEntry.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if location != nil {
		registration.CheckInLat = &location.Lat
		registration.CheckInLng = &location.Lng
	}
	if deviceInfo != "" {
		registration.DeviceInfo = &deviceInfo
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		marked, err := tx.QrTokens().MarkQrTokenUsed(ctx, claims.Nonce, studentID, now)
		if err != nil {
			return err
		}
		if !marked {
			return ErrAlreadyUsed
		}
		return tx.Registrations().UpsertCheckIn(ctx, registration)
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyUsed) {
			return AttendanceSummary{}, ErrAlreadyUsed
		}
		log.Error("failed to record check-in",
			slog.Int64("event_id", event.ID),
			slog.Int64("student_id", studentID),
			slog.Any("error", err),
		)
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}

	// 9. Best-effort notification; never fails the check-in.
	if s.Notifier != nil {
		if err := s.Notifier.CheckInRecorded(ctx, notify.CheckInEvent{
			EventID:     event.ID,
			StudentID:   studentID,
			Status:      domain.StatusPresent,
			CheckedInAt: now,
		}); err != nil {
			log.Warn("check-in notification failed", slog.Any("error", err))
		}
	}

	log.Info("student checked in",
		slog.Int64("event_id", event.ID),
		slog.Int64("student_id", studentID),
		slog.String("token_id", ledgerEntry.ID),
	)

	return AttendanceSummary{
		EventID:     event.ID,
		StudentID:   studentID,
		Status:      domain.StatusPresent,
		CheckedInAt: now,
		Distance:    evaluation,
	}, nil
}

// ManualCheckIn is the teacher override path. It bypasses the token
// protocol entirely and converges on the same registration row the QR
// path writes, so a concurrent redemption cannot produce a duplicate.
func (s *CheckInService) ManualCheckIn(
	ctx context.Context,
	eventID, studentID int64,
	status string,
	markedBy int64,
	requesterRole string,
) (AttendanceSummary, error) {
	log := slogx.FromContext(ctx)

	if requesterRole != domain.RoleTeacher && requesterRole != domain.RoleAdmin {
		return AttendanceSummary{}, ErrForbidden
	}

	switch status {
	case domain.StatusPresent, domain.StatusAbsent, domain.StatusLate, domain.StatusExcused:
	default:
		return AttendanceSummary{}, ErrInvalidStatus
	}

	event, err := s.Store.Events().GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AttendanceSummary{}, ErrEventNotFound
		}
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}
	if requesterRole == domain.RoleTeacher && event.TeacherID != markedBy {
		return AttendanceSummary{}, ErrForbidden
	}

	now := s.now()
	registration := domain.Registration{
		ID:        idx.New().String(),
		EventID:   eventID,
		StudentID: studentID,
		Status:    status,
		MarkedBy:  &markedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == domain.StatusPresent || status == domain.StatusLate {
		registration.CheckedInAt = &now
	}

	if err := s.Store.Registrations().UpsertCheckIn(ctx, registration); err != nil {
		log.Error("failed to record manual check-in",
			slog.Int64("event_id", eventID),
			slog.Int64("student_id", studentID),
			slog.Any("error", err),
		)
		return AttendanceSummary{}, errors.Join(ErrStoreUnavailable, err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.CheckInRecorded(ctx, notify.CheckInEvent{
			EventID:     eventID,
			StudentID:   studentID,
			Status:      status,
			CheckedInAt: now,
			Manual:      true,
		}); err != nil {
			log.Warn("check-in notification failed", slog.Any("error", err))
		}
	}

	log.Info("manual attendance recorded",
		slog.Int64("event_id", eventID),
		slog.Int64("student_id", studentID),
		slog.String("status", status),
		slog.Int64("marked_by", markedBy),
	)

	return AttendanceSummary{
		EventID:     eventID,
		StudentID:   studentID,
		Status:      status,
		CheckedInAt: now,
	}, nil
}

// Status returns the caller's registration for an event, if any.
func (s *CheckInService) Status(ctx context.Context, eventID, studentID int64) (domain.Registration, bool, error) {
	reg, err := s.Store.Registrations().GetRegistration(ctx, eventID, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Registration{}, false, nil
		}
		return domain.Registration{}, false, errors.Join(ErrStoreUnavailable, err)
	}
	return reg, true, nil
}
