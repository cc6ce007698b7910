package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a :memory: database only lives as long as its connection
	db.SetMaxOpenConns(1)

	statements, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range statements {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSession(ctx context.Context, session *models.Session) error {
	q := `
	INSERT OR REPLACE INTO sessions (session_id, started_at, finished_at, outcome, total_moves, total_penalty_turns, recharges, hidden_tiles, dirt_left)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q,
		session.ID,
		session.StartedAt.UnixMilli(),
		session.FinishedAt.UnixMilli(),
		session.Outcome,
		session.TotalMoves,
		session.TotalPenaltyTurns,
		session.Recharges,
		session.HiddenTiles,
		session.DirtLeft,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadSession(ctx context.Context, id string) (*models.Session, error) {
	q := `
	SELECT session_id, started_at, finished_at, outcome, total_moves, total_penalty_turns, recharges, hidden_tiles, dirt_left
	FROM sessions WHERE session_id = ?;
	`
	session, err := scanSQLiteSession(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	return session, nil
}

func (r *SQLiteRepository) ListSessions(ctx context.Context, limit int) ([]*models.Session, error) {
	q := `
	SELECT session_id, started_at, finished_at, outcome, total_moves, total_penalty_turns, recharges, hidden_tiles, dirt_left
	FROM sessions ORDER BY finished_at DESC LIMIT ?;
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session, err := scanSQLiteSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteSession(row scanner) (*models.Session, error) {
	session := &models.Session{}
	var startedAt, finishedAt int64
	err := row.Scan(
		&session.ID,
		&startedAt,
		&finishedAt,
		&session.Outcome,
		&session.TotalMoves,
		&session.TotalPenaltyTurns,
		&session.Recharges,
		&session.HiddenTiles,
		&session.DirtLeft,
	)
	if err != nil {
		return nil, err
	}
	session.StartedAt = time.UnixMilli(startedAt)
	session.FinishedAt = time.UnixMilli(finishedAt)
	return session, nil
}
