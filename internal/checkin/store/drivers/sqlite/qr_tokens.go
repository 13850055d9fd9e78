package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
)

type qrTokensRepo struct {
	db dbtx
}

const qrTokenColumns = `id, event_id, nonce, token_hash, expires_at, used, used_at, used_by, created_at`

func (r *qrTokensRepo) CreateQrToken(ctx context.Context, t domain.QrToken) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO qr_tokens (id, event_id, nonce, token_hash, expires_at, used, used_at, used_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.EventID, t.Nonce, t.TokenHash, t.ExpiresAt,
		t.Used, mapOptionalTime(t.UsedAt), mapOptionalInt64(t.UsedBy), t.CreatedAt)
	return err
}

func (r *qrTokensRepo) GetQrTokenByNonce(ctx context.Context, nonce string) (domain.QrToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+qrTokenColumns+` FROM qr_tokens WHERE nonce = ?`, nonce)
	return scanQrToken(row)
}

// MarkQrTokenUsed is guarded by used = 0 so two concurrent redeemers
// cannot both flip the flag.
func (r *qrTokensRepo) MarkQrTokenUsed(ctx context.Context, nonce string, usedBy int64, usedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE qr_tokens SET used = 1, used_by = ?, used_at = ? WHERE nonce = ? AND used = 0`,
		usedBy, usedAt, nonce)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *qrTokensRepo) ListActiveQrTokens(ctx context.Context, eventID int64, now time.Time) ([]domain.QrToken, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+qrTokenColumns+` FROM qr_tokens
		 WHERE event_id = ? AND used = 0 AND expires_at > ?
		 ORDER BY created_at DESC`,
		eventID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.QrToken
	for rows.Next() {
		t, err := scanQrToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}

func scanQrToken(row rowScanner) (domain.QrToken, error) {
	var t domain.QrToken
	var usedAt sql.NullTime
	var usedBy sql.NullInt64
	err := row.Scan(&t.ID, &t.EventID, &t.Nonce, &t.TokenHash, &t.ExpiresAt,
		&t.Used, &usedAt, &usedBy, &t.CreatedAt)
	if err != nil {
		return domain.QrToken{}, mapNotFound(err)
	}
	t.UsedAt = mapNullTimePtr(usedAt)
	t.UsedBy = mapNullInt64Ptr(usedBy)
	return t, nil
}
