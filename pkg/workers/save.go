package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
)

// saveTimeout bounds a single save, so that a slow database can not hold up shutdown.
const saveTimeout = 5 * time.Second

type SaveSessionWorker struct {
	repository      repositories.Repository
	saveSessionChan <-chan SaveSessionRequest
}

type NewSaveSessionWorkerOptions struct {
	Repository      repositories.Repository
	SaveSessionChan <-chan SaveSessionRequest
}

type SaveSessionRequest struct {
	Session *models.Session
	// Done, if set, receives the result of the save.
	Done chan<- error
}

// NewSaveSessionWorker creates a new SaveSessionWorker.
// The worker processes save requests off the game path.
func NewSaveSessionWorker(opts NewSaveSessionWorkerOptions) *SaveSessionWorker {
	return &SaveSessionWorker{
		repository:      opts.Repository,
		saveSessionChan: opts.SaveSessionChan,
	}
}

// Start processes requests until the channel is closed. Requests still queued
// when ctx is done are saved before returning.
func (w *SaveSessionWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case saveRequest, ok := <-w.saveSessionChan:
			if !ok {
				return
			}
			w.saveSession(saveRequest)
		}
	}
}

func (w *SaveSessionWorker) drain() {
	for {
		select {
		case saveRequest, ok := <-w.saveSessionChan:
			if !ok {
				return
			}
			w.saveSession(saveRequest)
		default:
			return
		}
	}
}

func (w *SaveSessionWorker) saveSession(saveRequest SaveSessionRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	err := w.repository.SaveSession(ctx, saveRequest.Session)
	if err != nil {
		log.Error("Failed to save session %s: %v", saveRequest.Session.ID, err)
	} else {
		log.Info("Saved session %s with outcome: %s", saveRequest.Session.ID, saveRequest.Session.Outcome)
	}
	if saveRequest.Done != nil {
		saveRequest.Done <- err
	}
}
