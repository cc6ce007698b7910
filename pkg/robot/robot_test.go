package robot

import (
	"testing"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActuator(duration time.Duration) (*Actuator, chan types.MoveDone) {
	completed := make(chan types.MoveDone, 4)
	a := NewActuator(NewActuatorOptions{
		MoveDuration: duration,
		OnComplete: func(done types.MoveDone) {
			completed <- done
		},
	})
	return a, completed
}

func TestActuator_CompletesMove(t *testing.T) {
	a, completed := newTestActuator(10 * time.Millisecond)

	a.Act(types.MoveTypeForward)
	assert.True(t, a.Moving())

	select {
	case done := <-completed:
		assert.Equal(t, types.MoveDone{Seq: 1, MoveType: types.MoveTypeForward}, done)
		assert.True(t, a.Finish(done.Seq))
		assert.False(t, a.Moving())
		// a second completion report for the same move is stale
		assert.False(t, a.Finish(done.Seq))
	case <-time.After(time.Second):
		t.Fatal("move did not complete")
	}
}

func TestActuator_CancelMove(t *testing.T) {
	a, completed := newTestActuator(50 * time.Millisecond)

	a.Act(types.MoveTypeRotateLeft)
	a.CancelMove()
	assert.False(t, a.Moving())

	select {
	case done := <-completed:
		t.Fatalf("cancelled move completed: %+v", done)
	case <-time.After(100 * time.Millisecond):
	}
	assert.False(t, a.Finish(1))
}

func TestActuator_MoveDurationDefaults(t *testing.T) {
	a, _ := newTestActuator(0)
	assert.Equal(t, constants.DefaultMoveDuration, a.MoveDuration())

	a, _ = newTestActuator(15 * time.Millisecond)
	assert.Equal(t, 15*time.Millisecond, a.MoveDuration())
}

func TestActuator_CancelWithoutMove(t *testing.T) {
	a, _ := newTestActuator(time.Millisecond)
	assert.NotPanics(t, a.CancelMove)
}

func TestActuator_SupersededMoveIsStale(t *testing.T) {
	a, completed := newTestActuator(10 * time.Millisecond)

	a.Act(types.MoveTypeForward)
	a.Act(types.MoveTypeRotateRight)

	var done types.MoveDone
	select {
	case done = <-completed:
	case <-time.After(time.Second):
		t.Fatal("move did not complete")
	}
	require.Equal(t, uint64(2), done.Seq)
	assert.False(t, a.Finish(1))
	assert.True(t, a.Finish(2))
}
