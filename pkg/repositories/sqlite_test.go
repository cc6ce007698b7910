package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	r, err := NewRepository(ctx, "sqlite://"+filepath.Join(t.TempDir(), "robocleaner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(ctx) })
	return r
}

func testSession(id string, finishedAt time.Time) *models.Session {
	return &models.Session{
		ID:                id,
		StartedAt:         finishedAt.Add(-time.Minute),
		FinishedAt:        finishedAt,
		Outcome:           "won",
		TotalMoves:        42,
		TotalPenaltyTurns: 3,
		Recharges:         1,
	}
}

func TestSQLiteRepository_SaveLoadSession(t *testing.T) {
	r := newTestSQLiteRepository(t)
	ctx := context.Background()
	finishedAt := time.UnixMilli(time.Now().UnixMilli())

	session := testSession("session-1", finishedAt)
	require.NoError(t, r.SaveSession(ctx, session))

	got, err := r.LoadSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, session.Outcome, got.Outcome)
	assert.Equal(t, session.TotalMoves, got.TotalMoves)
	assert.True(t, session.FinishedAt.Equal(got.FinishedAt))
	assert.True(t, session.StartedAt.Equal(got.StartedAt))

	// saving again replaces the record
	session.Outcome = "lost"
	require.NoError(t, r.SaveSession(ctx, session))
	got, err = r.LoadSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "lost", got.Outcome)
}

func TestSQLiteRepository_LoadSessionNotFound(t *testing.T) {
	r := newTestSQLiteRepository(t)

	_, err := r.LoadSession(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestSQLiteRepository_ListSessions(t *testing.T) {
	r := newTestSQLiteRepository(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, r.SaveSession(ctx, testSession("old", now.Add(-time.Hour))))
	require.NoError(t, r.SaveSession(ctx, testSession("new", now)))
	require.NoError(t, r.SaveSession(ctx, testSession("middle", now.Add(-time.Minute))))

	sessions, err := r.ListSessions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "middle", sessions[1].ID)
}

func TestNewRepository_UnsupportedURL(t *testing.T) {
	_, err := NewRepository(context.Background(), "mysql://localhost")
	assert.Error(t, err)
}
