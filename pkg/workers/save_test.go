package workers

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSessionWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	defer repository.Close(ctx)

	ch := make(chan SaveSessionRequest, 1)
	worker := NewSaveSessionWorker(NewSaveSessionWorkerOptions{
		Repository:      repository,
		SaveSessionChan: ch,
	})
	go worker.Start(ctx)

	done := make(chan error, 1)
	ch <- SaveSessionRequest{
		Session: &models.Session{
			ID:         "session-1",
			StartedAt:  time.Now().Add(-time.Minute),
			FinishedAt: time.Now(),
			Outcome:    "won",
			TotalMoves: 12,
		},
		Done: done,
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("session was not saved")
	}

	session, err := repository.LoadSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "won", session.Outcome)
	assert.Equal(t, 12, session.TotalMoves)
}
