package messages

import (
	"testing"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/stretchr/testify/assert"
)

func TestNewGoalResult(t *testing.T) {
	goalID := types.NewGoalID()
	tests := []struct {
		name   string
		result goals.Result
		want   *GoalResult
	}{
		{
			name: "succeeded",
			result: goals.Result{
				GoalID:   goalID,
				MoveType: types.MoveTypeForward,
				Status:   goals.StatusSucceeded,
				Outcome: &types.MoveOutcome{
					MoveType:  types.MoveTypeForward,
					Position:  types.FieldPos{Row: 2, Col: 1},
					Direction: types.DirectionDown,
					Tile:      'e',
				},
			},
			want: &GoalResult{
				GoalID:   goalID.String(),
				MoveType: "forward",
				Status:   "succeeded",
				Outcome: &MoveOutcome{
					Position:  types.FieldPos{Row: 2, Col: 1},
					Direction: "down",
					Tile:      "e",
				},
			},
		},
		{
			name: "aborted",
			result: goals.Result{
				GoalID:       goalID,
				MoveType:     types.MoveTypeRotateRight,
				Status:       goals.StatusAborted,
				PenaltyTurns: 3,
			},
			want: &GoalResult{
				GoalID:       goalID.String(),
				MoveType:     "rotate_right",
				Status:       "aborted",
				PenaltyTurns: 3,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewGoalResult(tt.result))
		})
	}
}

func TestNewGoalStatus(t *testing.T) {
	goalID := types.NewGoalID()
	acceptedAt := time.Now()

	got := NewGoalStatus(goals.Goal{
		ID:                goalID,
		MoveType:          types.MoveTypeRotateLeft,
		Status:            goals.StatusExecuting,
		ApproachingMarker: '0',
		AcceptedAt:        acceptedAt,
	})
	assert.Equal(t, &GoalStatus{
		GoalID:            goalID.String(),
		MoveType:          "rotate_left",
		Status:            "executing",
		ApproachingMarker: "0",
		AcceptedAt:        acceptedAt,
	}, got)
}
