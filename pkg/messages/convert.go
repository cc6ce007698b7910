package messages

import "github.com/cbodonnell/robocleaner/pkg/goals"

func NewGoalFeedback(feedback goals.Feedback) *GoalFeedback {
	return &GoalFeedback{
		GoalID:            feedback.GoalID.String(),
		MoveType:          feedback.MoveType.String(),
		ApproachingMarker: Marker(feedback.ApproachingMarker),
		Progress:          feedback.Progress,
	}
}

func NewGoalResult(result goals.Result) *GoalResult {
	m := &GoalResult{
		GoalID:       result.GoalID.String(),
		MoveType:     result.MoveType.String(),
		Status:       string(result.Status),
		PenaltyTurns: result.PenaltyTurns,
	}
	if result.Outcome != nil {
		m.Outcome = &MoveOutcome{
			Position:  result.Outcome.Position,
			Direction: result.Outcome.Direction.String(),
			Tile:      Marker(result.Outcome.Tile),
			Collided:  result.Outcome.Collided,
		}
	}
	return m
}

func NewGoalStatus(goal goals.Goal) *GoalStatus {
	status := &GoalStatus{
		GoalID:            goal.ID.String(),
		MoveType:          goal.MoveType.String(),
		Status:            string(goal.Status),
		ApproachingMarker: Marker(goal.ApproachingMarker),
		AcceptedAt:        goal.AcceptedAt,
	}
	if goal.Result != nil {
		status.Result = NewGoalResult(*goal.Result)
	}
	return status
}
