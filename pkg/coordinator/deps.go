package coordinator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
)

// Actuator moves the robot.
type Actuator interface {
	// Act starts a move.
	Act(moveType types.MoveType)
	// CancelMove rolls back the in-flight position or rotation change.
	CancelMove()
	// Finish reports whether a completion still belongs to the in-flight move
	// and, if it does, clears it.
	Finish(seq uint64) bool
}

// EnergyLedger tracks the robot battery.
type EnergyLedger interface {
	InitiateMove() types.EnergyOutcome
	PerformPenaltyChange()
	QueryBatteryStatus() types.BatteryStatus
	Recharge()
}

// Tracker tracks progress towards the solution and validates the game rules.
type Tracker interface {
	IncreaseTotalMovesCounter(n int)
	ApproachMarker(moveType types.MoveType) byte
	QueryInitialState() types.InitialStateResult
	ApplyMove(moveType types.MoveType) types.MoveOutcome
	FieldMapRevealed() types.GameOutcome
	FieldMapCleaned() types.GameOutcome
}

// Reporter reports goal progress back to the controller.
type Reporter interface {
	AcceptGoal(req types.MoveRequest)
	ReportStartingAction(goalID types.GoalID, moveType types.MoveType, approachMarker byte)
	ReportInsufficientEnergy(goalID types.GoalID, penaltyTurns int)
	CancelFeedbackReporting(goalID types.GoalID)
	ReportMoveFinished(goalID types.GoalID, outcome types.MoveOutcome)
}

type Notification string

const (
	NotificationFieldMapRevealed Notification = "field_map_revealed"
	NotificationFieldMapCleaned  Notification = "field_map_cleaned"
	NotificationShutdown         Notification = "shutdown"
)

// Notifier forwards lifecycle notifications to the presentation layer.
// It is called from the submitting goroutine and must be safe for concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// Hooks receive session level signals.
type Hooks interface {
	OnGameWon()
	OnGameLost()
	OnShutdown()
}

// Dependencies are the collaborators of a Coordinator. All of them are required.
type Dependencies struct {
	Actuator Actuator
	Energy   EnergyLedger
	Tracker  Tracker
	Reporter Reporter
	Notifier Notifier
	Hooks    Hooks
}

// ErrMissingDependency is wrapped by ConfigError.
var ErrMissingDependency = errors.New("missing dependency")

// ConfigError is returned by New when the coordinator can not start.
type ConfigError struct {
	Dependency string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid coordinator configuration: %s: %v", e.Dependency, ErrMissingDependency)
}

func (e *ConfigError) Unwrap() error {
	return ErrMissingDependency
}

func (d Dependencies) validate() error {
	required := []struct {
		name    string
		missing bool
	}{
		{"actuator", isNil(d.Actuator)},
		{"energy ledger", isNil(d.Energy)},
		{"tracker", isNil(d.Tracker)},
		{"reporter", isNil(d.Reporter)},
		{"notifier", isNil(d.Notifier)},
		{"hooks", isNil(d.Hooks)},
	}
	for _, r := range required {
		if r.missing {
			log.Error("Error, no %s provided", r.name)
			return &ConfigError{Dependency: r.name}
		}
	}
	return nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
