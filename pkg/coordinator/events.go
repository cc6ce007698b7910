package coordinator

import "github.com/cbodonnell/robocleaner/pkg/game/types"

// Events handled on the dispatcher goroutine. Fields below a "results" comment are
// written by the handler and read by a Blocking submitter.

type admitGoalEvent struct {
	request types.MoveRequest

	// results
	verdict Verdict
}

func (*admitGoalEvent) Op() string { return "admit_goal" }

type goalAcceptedEvent struct {
	request types.MoveRequest
}

func (*goalAcceptedEvent) Op() string { return "goal_accepted" }

type goalCancelledEvent struct {
	goalID types.GoalID
}

func (*goalCancelledEvent) Op() string { return "goal_cancelled" }

type moveFinishedEvent struct {
	done types.MoveDone
}

func (*moveFinishedEvent) Op() string { return "move_finished" }

type resetAdmissionEvent struct{}

func (*resetAdmissionEvent) Op() string { return "reset_admission" }

type admissionStateEvent struct {
	// results
	state AdmissionState
}

func (*admissionStateEvent) Op() string { return "admission_state" }

type batteryStatusEvent struct {
	// results
	status types.BatteryStatus
}

func (*batteryStatusEvent) Op() string { return "query_battery_status" }

type initialStateEvent struct {
	// results
	response InitialStateResponse
}

func (*initialStateEvent) Op() string { return "query_initial_state" }

type fieldMapRevealedEvent struct{}

func (*fieldMapRevealedEvent) Op() string { return "field_map_revealed" }

type fieldMapCleanedEvent struct{}

func (*fieldMapCleanedEvent) Op() string { return "field_map_cleaned" }

type shutdownEvent struct{}

func (*shutdownEvent) Op() string { return "shutdown" }
