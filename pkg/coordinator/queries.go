package coordinator

import (
	"github.com/cbodonnell/robocleaner/pkg/dispatch"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
)

// InitialStateResponse answers an initial robot state query.
// State is nil when the tracker reported a major error.
type InitialStateResponse struct {
	Success     bool
	ErrorReason string
	State       *types.InitialRobotState
}

// QueryBatteryStatus returns a battery snapshot consistent with every event
// handled before it.
func (c *Coordinator) QueryBatteryStatus() (types.BatteryStatus, error) {
	ev := &batteryStatusEvent{}
	if err := c.dispatcher.Submit(ev, dispatch.Blocking); err != nil {
		return types.BatteryStatus{}, err
	}
	return ev.status, nil
}

// QueryInitialState returns the initial robot state. A major error from the
// tracker still produces a response, and additionally ends the game as lost.
func (c *Coordinator) QueryInitialState() (InitialStateResponse, error) {
	ev := &initialStateEvent{}
	if err := c.dispatcher.Submit(ev, dispatch.Blocking); err != nil {
		return InitialStateResponse{ErrorReason: RejectStopped.String()}, err
	}
	return ev.response, nil
}

func (c *Coordinator) handleInitialState(ev *initialStateEvent) {
	result := c.tracker.QueryInitialState()
	ev.response = InitialStateResponse{
		Success:     result.Status == types.InitialStateOK,
		ErrorReason: result.Reason,
	}

	if result.Status == types.InitialStateMajorError {
		c.logger.Error("Error, initial robot state query failed with major error: %s", result.Reason)
		c.hooks.OnGameLost()
		return
	}

	state := result.State
	state.Battery = c.energy.QueryBatteryStatus()
	ev.response.State = &state
}
