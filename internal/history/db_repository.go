package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const playLogColumns = "id, session_id, category, native_text, miwok_text, clip, outcome, started_at, ended_at"

// DBRepository stores play logs in the play_logs table.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) Create(ctx context.Context, log *PlayLog) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO play_logs (session_id, category, native_text, miwok_text, clip, outcome, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		log.SessionID, log.Category, log.NativeText, log.MiwokText, log.Clip,
		log.Outcome, log.StartedAt, log.EndedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert play_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	log.ID = id
	return nil
}

func (r *DBRepository) FindRecent(ctx context.Context, limit int) ([]PlayLog, error) {
	query := "SELECT " + playLogColumns + " FROM play_logs ORDER BY started_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var logs []PlayLog
	if err := r.db.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(play_logs) > %w", err)
	}
	return logs, nil
}

func (r *DBRepository) FindBySessionID(ctx context.Context, sessionID string) (*PlayLog, error) {
	var log PlayLog
	err := r.db.GetContext(ctx, &log, "SELECT "+playLogColumns+" FROM play_logs WHERE session_id = ?", sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(play_log) > %w", err)
	}
	return &log, nil
}
