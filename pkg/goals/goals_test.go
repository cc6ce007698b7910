package goals_test

import (
	"sync"
	"testing"
	"time"

	mocks "github.com/cbodonnell/robocleaner/mocks/github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type finishedRecorder struct {
	lock  sync.Mutex
	goals []goals.Goal
}

func (f *finishedRecorder) onFinished(goal goals.Goal) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.goals = append(f.goals, goal)
}

func (f *finishedRecorder) finished() []goals.Goal {
	f.lock.Lock()
	defer f.lock.Unlock()
	return append([]goals.Goal(nil), f.goals...)
}

func newTestRegistry(t *testing.T, publisher goals.Publisher) (*goals.Registry, *finishedRecorder) {
	t.Helper()
	recorder := &finishedRecorder{}
	r := goals.NewRegistry(goals.NewRegistryOptions{
		Publisher:        publisher,
		OnFinished:       recorder.onFinished,
		FeedbackInterval: 5 * time.Millisecond,
		MoveDuration:     50 * time.Millisecond,
	})
	t.Cleanup(r.Close)
	return r, recorder
}

func TestRegistry_AcceptGoal(t *testing.T) {
	r, _ := newTestRegistry(t, mocks.NewPublisher(t))
	req := types.MoveRequest{ID: types.NewGoalID(), MoveType: types.MoveTypeForward}

	r.AcceptGoal(req)

	goal, ok := r.Get(req.ID)
	require.True(t, ok)
	assert.Equal(t, goals.StatusAccepted, goal.Status)
	assert.Equal(t, types.MoveTypeForward, goal.MoveType)
	assert.False(t, goal.AcceptedAt.IsZero())

	_, ok = r.Get(types.NewGoalID())
	assert.False(t, ok)
}

func TestRegistry_FeedbackThenResult(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	r, recorder := newTestRegistry(t, publisher)
	req := types.MoveRequest{ID: types.NewGoalID(), MoveType: types.MoveTypeForward}
	outcome := types.MoveOutcome{MoveType: types.MoveTypeForward, Position: types.FieldPos{Row: 1, Col: 2}, Tile: '0'}

	var lock sync.Mutex
	var published []string
	gotFeedback := make(chan struct{}, 1)
	publisher.EXPECT().PublishFeedback(mock.Anything).Run(func(feedback goals.Feedback) {
		assert.Equal(t, req.ID, feedback.GoalID)
		assert.Equal(t, byte('1'), feedback.ApproachingMarker)
		assert.GreaterOrEqual(t, feedback.Progress, 0.0)
		assert.LessOrEqual(t, feedback.Progress, 100.0)

		lock.Lock()
		published = append(published, "feedback")
		lock.Unlock()
		select {
		case gotFeedback <- struct{}{}:
		default:
		}
	})
	publisher.EXPECT().PublishResult(goals.Result{
		GoalID:   req.ID,
		MoveType: types.MoveTypeForward,
		Status:   goals.StatusSucceeded,
		Outcome:  &outcome,
	}).Run(func(goals.Result) {
		lock.Lock()
		published = append(published, "result")
		lock.Unlock()
	}).Once()

	r.AcceptGoal(req)
	r.ReportStartingAction(req.ID, types.MoveTypeForward, '1')

	goal, _ := r.Get(req.ID)
	assert.Equal(t, goals.StatusExecuting, goal.Status)

	select {
	case <-gotFeedback:
	case <-time.After(time.Second):
		t.Fatal("no feedback published")
	}

	r.ReportMoveFinished(req.ID, outcome)
	// give a late tick the chance to show up
	time.Sleep(20 * time.Millisecond)

	lock.Lock()
	require.NotEmpty(t, published)
	assert.Equal(t, "result", published[len(published)-1])
	lock.Unlock()

	finished := recorder.finished()
	require.Len(t, finished, 1)
	assert.Equal(t, goals.StatusSucceeded, finished[0].Status)
	assert.Equal(t, outcome, *finished[0].Result.Outcome)
}

func TestRegistry_CancelFeedbackReporting(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	r, recorder := newTestRegistry(t, publisher)
	req := types.MoveRequest{ID: types.NewGoalID(), MoveType: types.MoveTypeRotateLeft}

	publisher.EXPECT().PublishFeedback(mock.Anything).Maybe()
	publisher.EXPECT().PublishResult(goals.Result{
		GoalID:   req.ID,
		MoveType: types.MoveTypeRotateLeft,
		Status:   goals.StatusCanceled,
	}).Once()

	r.AcceptGoal(req)
	r.ReportStartingAction(req.ID, types.MoveTypeRotateLeft, '0')
	r.CancelFeedbackReporting(req.ID)

	goal, _ := r.Get(req.ID)
	assert.Equal(t, goals.StatusCanceled, goal.Status)
	assert.Len(t, recorder.finished(), 1)

	// the move can not finish after it was canceled
	r.ReportMoveFinished(req.ID, types.MoveOutcome{})
	assert.Len(t, recorder.finished(), 1)
}

func TestRegistry_ReportInsufficientEnergy(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	r, recorder := newTestRegistry(t, publisher)
	req := types.MoveRequest{ID: types.NewGoalID(), MoveType: types.MoveTypeForward}

	publisher.EXPECT().PublishResult(goals.Result{
		GoalID:       req.ID,
		MoveType:     types.MoveTypeForward,
		Status:       goals.StatusAborted,
		PenaltyTurns: 3,
	}).Once()

	r.AcceptGoal(req)
	r.ReportInsufficientEnergy(req.ID, 3)

	finished := recorder.finished()
	require.Len(t, finished, 1)
	assert.Equal(t, goals.StatusAborted, finished[0].Status)
	assert.Equal(t, 3, finished[0].Result.PenaltyTurns)
	publisher.AssertNotCalled(t, "PublishFeedback", mock.Anything)
}

func TestRegistry_UnknownGoal(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	r, recorder := newTestRegistry(t, publisher)

	r.ReportStartingAction(types.NewGoalID(), types.MoveTypeForward, '0')
	r.CancelFeedbackReporting(types.NewGoalID())

	assert.Empty(t, recorder.finished())
}

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status goals.Status
		want   bool
	}{
		{goals.StatusAccepted, false},
		{goals.StatusExecuting, false},
		{goals.StatusSucceeded, true},
		{goals.StatusCanceled, true},
		{goals.StatusAborted, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Terminal())
		})
	}
}
