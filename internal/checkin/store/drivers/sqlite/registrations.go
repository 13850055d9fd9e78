package sqlite

import (
	"context"
	"database/sql"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
)

type registrationsRepo struct {
	db dbtx
}

const registrationColumns = `id, event_id, student_id, status, checked_in_at,
	check_in_lat, check_in_lng, device_info, qr_token_id, marked_by, created_at, updated_at`

func (r *registrationsRepo) GetRegistration(ctx context.Context, eventID, studentID int64) (domain.Registration, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM event_registrations WHERE event_id = ? AND student_id = ?`,
		eventID, studentID)
	return scanRegistration(row)
}

// UpsertCheckIn relies on the UNIQUE(event_id, student_id) constraint so
// a student who checks in without a prior registration row gets one, and
// a pre-registered student gets their row updated in place.
func (r *registrationsRepo) UpsertCheckIn(ctx context.Context, reg domain.Registration) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO event_registrations
			(id, event_id, student_id, status, checked_in_at, check_in_lat, check_in_lng,
			 device_info, qr_token_id, marked_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (event_id, student_id) DO UPDATE SET
			status = excluded.status,
			checked_in_at = excluded.checked_in_at,
			check_in_lat = excluded.check_in_lat,
			check_in_lng = excluded.check_in_lng,
			device_info = excluded.device_info,
			qr_token_id = excluded.qr_token_id,
			marked_by = excluded.marked_by,
			updated_at = excluded.updated_at`,
		reg.ID, reg.EventID, reg.StudentID, reg.Status, mapOptionalTime(reg.CheckedInAt),
		mapOptionalFloat(reg.CheckInLat), mapOptionalFloat(reg.CheckInLng),
		mapOptionalString(reg.DeviceInfo), mapOptionalString(reg.QrTokenID),
		mapOptionalInt64(reg.MarkedBy), reg.CreatedAt, reg.UpdatedAt)
	return err
}

func (r *registrationsRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+registrationColumns+` FROM event_registrations
		 WHERE event_id = ?
		 ORDER BY checked_in_at IS NULL, checked_in_at ASC`,
		eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationsRepo) CountCheckedIn(ctx context.Context, eventID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM event_registrations WHERE event_id = ? AND status IN (?, ?)`,
		eventID, domain.StatusPresent, domain.StatusLate).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func scanRegistration(row rowScanner) (domain.Registration, error) {
	var reg domain.Registration
	var checkedInAt sql.NullTime
	var lat, lng sql.NullFloat64
	var deviceInfo, qrTokenID sql.NullString
	var markedBy sql.NullInt64
	err := row.Scan(&reg.ID, &reg.EventID, &reg.StudentID, &reg.Status, &checkedInAt,
		&lat, &lng, &deviceInfo, &qrTokenID, &markedBy, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return domain.Registration{}, mapNotFound(err)
	}
	reg.CheckedInAt = mapNullTimePtr(checkedInAt)
	reg.CheckInLat = mapNullFloatPtr(lat)
	reg.CheckInLng = mapNullFloatPtr(lng)
	reg.DeviceInfo = mapNullStringPtr(deviceInfo)
	reg.QrTokenID = mapNullStringPtr(qrTokenID)
	reg.MarkedBy = mapNullInt64Ptr(markedBy)
	return reg, nil
}
