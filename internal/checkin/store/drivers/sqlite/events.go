package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
)

type eventsRepo struct {
	db dbtx
}

const eventColumns = `id, title, starts_at, ends_at, qr_enabled, geolocation_required,
	latitude, longitude, allowed_radius_m, check_in_lead_min, teacher_id, created_at, updated_at`

func (r *eventsRepo) GetEventByID(ctx context.Context, id int64) (domain.Event, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

func (r *eventsRepo) CreateEvent(ctx context.Context, e domain.Event) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO events (title, starts_at, ends_at, qr_enabled, geolocation_required,
			latitude, longitude, allowed_radius_m, check_in_lead_min, teacher_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.StartsAt, e.EndsAt, e.QREnabled, e.GeolocationRequired,
		mapOptionalFloat(e.Latitude), mapOptionalFloat(e.Longitude),
		e.AllowedRadiusMeters, e.CheckInLeadMinutes, e.TeacherID, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *eventsRepo) UpdateQREnabled(ctx context.Context, eventID int64, enabled bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET qr_enabled = ?, updated_at = ? WHERE id = ?`,
		enabled, time.Now().UTC(), eventID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *eventsRepo) ListEventsByTeacher(ctx context.Context, teacherID int64) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE teacher_id = ? ORDER BY starts_at DESC`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (domain.Event, error) {
	var e domain.Event
	var lat, lng sql.NullFloat64
	err := row.Scan(&e.ID, &e.Title, &e.StartsAt, &e.EndsAt, &e.QREnabled, &e.GeolocationRequired,
		&lat, &lng, &e.AllowedRadiusMeters, &e.CheckInLeadMinutes, &e.TeacherID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	e.Latitude = mapNullFloatPtr(lat)
	e.Longitude = mapNullFloatPtr(lng)
	return e, nil
}
