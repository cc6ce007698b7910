package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	var username string
	var database string
	err = pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to query database: %w", err)
	}
	log.Info("Connected to %s as %s", database, username)

	statements, err := readMigrations("postgres")
	if err != nil {
		pool.Close()
		return nil, err
	}
	for i, migration := range statements {
		if _, err := pool.Exec(ctx, migration); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveSession(ctx context.Context, session *models.Session) error {
	q := `
	INSERT INTO sessions (session_id, started_at, finished_at, outcome, total_moves, total_penalty_turns, recharges, hidden_tiles, dirt_left)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (session_id) DO UPDATE SET finished_at = $3, outcome = $4, total_moves = $5,
		total_penalty_turns = $6, recharges = $7, hidden_tiles = $8, dirt_left = $9;
	`
	_, err := r.pool.Exec(ctx, q,
		session.ID,
		session.StartedAt,
		session.FinishedAt,
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

func (r *PostgresRepository) LoadSession(ctx context.Context, id string) (*models.Session, error) {
	q := `
	SELECT session_id::text, started_at, finished_at, outcome, total_moves, total_penalty_turns, recharges, hidden_tiles, dirt_left
	FROM sessions WHERE session_id = $1;
	`
	session, err := scanPostgresSession(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	return session, nil
}

func (r *PostgresRepository) ListSessions(ctx context.Context, limit int) ([]*models.Session, error) {
	q := `
	SELECT session_id::text, started_at, finished_at, outcome, total_moves, total_penalty_turns, recharges, hidden_tiles, dirt_left
	FROM sessions ORDER BY finished_at DESC LIMIT $1;
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []*models.Session{}
	for rows.Next() {
		session, err := scanPostgresSession(rows)
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

func scanPostgresSession(row pgx.Row) (*models.Session, error) {
	session := &models.Session{}
	err := row.Scan(
		&session.ID,
		&session.StartedAt,
		&session.FinishedAt,
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
	return session, nil
}
