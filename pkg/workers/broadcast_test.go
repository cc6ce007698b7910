package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/coordinator"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	lock     sync.Mutex
	messages []*messages.Message
}

func (r *recordingBroadcaster) Broadcast(msg *messages.Message) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingBroadcaster) messageTypes() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	messageTypes := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		messageTypes = append(messageTypes, m.Type)
	}
	return messageTypes
}

func TestBroadcastMessageWorker(t *testing.T) {
	ch := make(chan BroadcastMessage, 8)
	recorder := &recordingBroadcaster{}
	worker := NewBroadcastMessageWorker(NewBroadcastMessageWorkerOptions{
		Broadcaster:          recorder,
		BroadcastMessageChan: ch,
	})

	b := NewBroadcaster(ch)
	goalID := types.NewGoalID()
	b.PublishFeedback(goals.Feedback{GoalID: goalID, MoveType: types.MoveTypeForward, ApproachingMarker: '1', Progress: 20})
	b.PublishResult(goals.Result{GoalID: goalID, MoveType: types.MoveTypeForward, Status: goals.StatusSucceeded})
	b.Notify(coordinator.NotificationFieldMapRevealed)
	b.Notify(coordinator.NotificationShutdown)
	close(ch)

	done := make(chan struct{})
	go func() {
		worker.Start(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after the channel was closed")
	}

	assert.Equal(t, []string{
		messages.MessageTypeGoalFeedback,
		messages.MessageTypeGoalResult,
		messages.MessageTypeFieldMapRevealed,
		messages.MessageTypeShutdown,
	}, recorder.messageTypes())

	feedback := &messages.GoalFeedback{}
	require.NoError(t, messages.DecodePayload(recorder.messages[0], feedback))
	assert.Equal(t, messages.GoalFeedback{
		GoalID:            goalID.String(),
		MoveType:          "forward",
		ApproachingMarker: "1",
		Progress:          20,
	}, *feedback)
}

func TestBroadcaster_DropsWhenFull(t *testing.T) {
	ch := make(chan BroadcastMessage, 1)
	b := NewBroadcaster(ch)

	b.Notify(coordinator.NotificationFieldMapCleaned)
	// must not block
	b.Notify(coordinator.NotificationShutdown)

	require.Len(t, ch, 1)
	assert.Equal(t, messages.MessageTypeFieldMapCleaned, (<-ch).Type)
}

func TestBroadcaster_Close(t *testing.T) {
	ch := make(chan BroadcastMessage, 4)
	b := NewBroadcaster(ch)

	b.Notify(coordinator.NotificationShutdown)
	b.Close()
	b.Close()
	// dropped, must not panic
	b.Notify(coordinator.NotificationFieldMapRevealed)

	msg, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, messages.MessageTypeShutdown, msg.Type)
	_, ok = <-ch
	assert.False(t, ok)
}
