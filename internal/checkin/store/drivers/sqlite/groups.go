package sqlite

import (
	"context"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
)

type groupsRepo struct {
	db dbtx
}

func (r *groupsRepo) CreateGroup(ctx context.Context, g domain.Group) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO groups (name, created_at) VALUES (?, ?)`,
		g.Name, g.CreatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *groupsRepo) AddMember(ctx context.Context, groupID, studentID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO group_members (group_id, student_id) VALUES (?, ?)`,
		groupID, studentID)
	return err
}

func (r *groupsRepo) LinkEvent(ctx context.Context, eventID, groupID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO event_groups (event_id, group_id) VALUES (?, ?)`,
		eventID, groupID)
	return err
}

func (r *groupsRepo) IsStudentEnrolled(ctx context.Context, eventID, studentID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(1)
		FROM event_groups eg
		JOIN group_members gm ON gm.group_id = eg.group_id
		WHERE eg.event_id = ? AND gm.student_id = ?`,
		eventID, studentID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *groupsRepo) HasEventGroups(ctx context.Context, eventID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM event_groups WHERE event_id = ?`, eventID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *groupsRepo) CountEnrolled(ctx context.Context, eventID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT gm.student_id)
		FROM event_groups eg
		JOIN group_members gm ON gm.group_id = eg.group_id
		WHERE eg.event_id = ?`,
		eventID).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}
