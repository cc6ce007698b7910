package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/robocleaner/pkg/dispatch"
	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
)

type RejectReason uint8

const (
	RejectNone RejectReason = iota
	RejectUnknownMoveType
	RejectGoalActive
	RejectStopped
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectUnknownMoveType:
		return "unsupported move type"
	case RejectGoalActive:
		return "another goal is already active"
	case RejectStopped:
		return "coordinator is stopped"
	default:
		return "unknown"
	}
}

// Verdict is the admission decision for a move goal.
type Verdict struct {
	Accepted bool
	Reason   RejectReason
}

func accept() Verdict {
	return Verdict{Accepted: true}
}

func reject(reason RejectReason) Verdict {
	return Verdict{Reason: reason}
}

type CancelResponse uint8

const (
	CancelReject CancelResponse = iota
	CancelAccept
)

// Coordinator admits move goals and runs their lifecycle. All of its state and all
// calls into its collaborators happen on the dispatcher goroutine; the exported
// methods only build events and submit them.
type Coordinator struct {
	dispatcher *dispatch.Dispatcher
	logger     *log.Logger

	actuator Actuator
	energy   EnergyLedger
	tracker  Tracker
	reporter Reporter
	notifier Notifier
	hooks    Hooks

	// owned by the dispatcher goroutine
	admission  admission
	activeGoal *types.MoveRequest
}

// NewCoordinatorOptions contains options for creating a new Coordinator.
type NewCoordinatorOptions struct {
	Dependencies Dependencies
	Logger       *log.Logger
}

// New creates a Coordinator. It fails with a *ConfigError if any dependency is
// missing, in which case nothing was started.
func New(opts NewCoordinatorOptions) (*Coordinator, error) {
	if err := opts.Dependencies.validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.With("coordinator")
	}

	c := &Coordinator{
		logger:   logger,
		actuator: opts.Dependencies.Actuator,
		energy:   opts.Dependencies.Energy,
		tracker:  opts.Dependencies.Tracker,
		reporter: opts.Dependencies.Reporter,
		notifier: opts.Dependencies.Notifier,
		hooks:    opts.Dependencies.Hooks,
	}

	d, err := dispatch.NewDispatcher(dispatch.NewDispatcherOptions{
		Handler: dispatch.HandlerFunc(c.handleEvent),
		Logger:  logger.With("dispatch"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatcher: %w", err)
	}
	c.dispatcher = d

	return c, nil
}

// Start runs the owning goroutine until ctx is done or Stop is called.
func (c *Coordinator) Start(ctx context.Context) error {
	return c.dispatcher.Start(ctx)
}

// Stop ends the owning goroutine after the queued events ran.
func (c *Coordinator) Stop() {
	c.dispatcher.Stop()
}

// Done is closed after the owning goroutine exited.
func (c *Coordinator) Done() <-chan struct{} {
	return c.dispatcher.Done()
}

// Sync waits until every event submitted before the call was handled.
func (c *Coordinator) Sync() error {
	return c.dispatcher.Sync()
}

// EvaluateGoal decides whether a move goal is admitted.
// Unsupported move types are rejected before they contend for admission.
func (c *Coordinator) EvaluateGoal(req types.MoveRequest) (Verdict, error) {
	c.logger.Info("Received goal request with moveType: %s and id: %s", req.MoveType, req.ID)

	if req.MoveType == types.MoveTypeUnknown {
		c.logger.Error("Error, rejecting goal with id: %s because of unsupported MoveType", req.ID)
		return reject(RejectUnknownMoveType), nil
	}

	ev := &admitGoalEvent{request: req}
	if err := c.dispatcher.Submit(ev, dispatch.Blocking); err != nil {
		return reject(RejectStopped), err
	}
	return ev.verdict, nil
}

// OnGoalAccepted hands an admitted goal to the owning goroutine and returns
// without waiting for it. The queue is unbounded, so it only fails once the
// coordinator stopped.
func (c *Coordinator) OnGoalAccepted(req types.MoveRequest) error {
	return c.dispatcher.Submit(&goalAcceptedEvent{request: req}, dispatch.NonBlocking)
}

// OnGoalCancelled is always accepted. The rollback itself happens later on the
// owning goroutine.
func (c *Coordinator) OnGoalCancelled(goalID types.GoalID) (CancelResponse, error) {
	c.logger.Info("Received request to cancel goal with id: %s, rolling back robot position/rotation to previous state", goalID)

	if err := c.dispatcher.Submit(&goalCancelledEvent{goalID: goalID}, dispatch.NonBlocking); err != nil {
		return CancelReject, err
	}
	return CancelAccept, nil
}

// OnMoveFinished reports that a move started by the actuator has run its course.
// It is safe to call from any goroutine, including timer callbacks.
func (c *Coordinator) OnMoveFinished(done types.MoveDone) error {
	return c.dispatcher.Submit(&moveFinishedEvent{done: done}, dispatch.NonBlocking)
}

// ResetAdmission makes the coordinator accept a new goal. It is called once the
// surrounding session considers the current goal finished.
func (c *Coordinator) ResetAdmission() error {
	return c.dispatcher.Submit(&resetAdmissionEvent{}, dispatch.NonBlocking)
}

// AdmissionState returns the admission state as seen by the owning goroutine.
func (c *Coordinator) AdmissionState() (AdmissionState, error) {
	ev := &admissionStateEvent{}
	if err := c.dispatcher.Submit(ev, dispatch.Blocking); err != nil {
		return AdmissionIdle, err
	}
	return ev.state, nil
}

// PublishFieldMapRevealed forwards the controller's claim that the whole map was
// revealed.
func (c *Coordinator) PublishFieldMapRevealed() error {
	if err := c.dispatcher.Submit(&fieldMapRevealedEvent{}, dispatch.NonBlocking); err != nil {
		return err
	}
	c.notifier.Notify(NotificationFieldMapRevealed)
	return nil
}

// PublishFieldMapCleaned forwards the controller's claim that the map was cleaned.
func (c *Coordinator) PublishFieldMapCleaned() error {
	if err := c.dispatcher.Submit(&fieldMapCleanedEvent{}, dispatch.NonBlocking); err != nil {
		return err
	}
	c.notifier.Notify(NotificationFieldMapCleaned)
	return nil
}

// PublishShutdown tells the controller to shut down and then runs the shutdown hook.
func (c *Coordinator) PublishShutdown() error {
	c.notifier.Notify(NotificationShutdown)
	return c.dispatcher.Submit(&shutdownEvent{}, dispatch.NonBlocking)
}

func (c *Coordinator) handleEvent(ev dispatch.Event) {
	switch event := ev.(type) {
	case *admitGoalEvent:
		c.handleAdmitGoal(event)
	case *goalAcceptedEvent:
		c.handleGoalAccepted(event)
	case *goalCancelledEvent:
		c.handleGoalCancelled(event)
	case *moveFinishedEvent:
		c.handleMoveFinished(event)
	case *resetAdmissionEvent:
		c.admission.reset()
	case *admissionStateEvent:
		event.state = c.admission.state
	case *batteryStatusEvent:
		event.status = c.energy.QueryBatteryStatus()
	case *initialStateEvent:
		c.handleInitialState(event)
	case *fieldMapRevealedEvent:
		c.handleGameOutcome("field map revealed", c.tracker.FieldMapRevealed())
	case *fieldMapCleanedEvent:
		c.handleGameOutcome("field map cleaned", c.tracker.FieldMapCleaned())
	case *shutdownEvent:
		c.hooks.OnShutdown()
	default:
		c.logger.Error("Unhandled event type: %T", event)
	}
}

func (c *Coordinator) handleAdmitGoal(ev *admitGoalEvent) {
	if !c.admission.tryAdmit() {
		c.logger.Error("Error, rejecting goal with id: %s because another one is already active", ev.request.ID)
		ev.verdict = reject(RejectGoalActive)
		return
	}
	ev.verdict = accept()
}

// handleGoalAccepted counts the move before the energy gate: the counter measures
// requested moves, not executed ones. The goal handle is accepted first so that
// feedback never precedes it.
func (c *Coordinator) handleGoalAccepted(ev *goalAcceptedEvent) {
	req := ev.request
	c.reporter.AcceptGoal(req)
	c.tracker.IncreaseTotalMovesCounter(1)

	outcome := c.energy.InitiateMove()
	if !outcome.Admitted {
		c.logger.Info("Insufficient energy for goal %s, penalty turns: %d", req.ID, outcome.PenaltyTurns)
		c.energy.PerformPenaltyChange()
		c.reporter.ReportInsufficientEnergy(req.ID, outcome.PenaltyTurns)
		return
	}

	c.actuator.Act(req.MoveType)
	c.activeGoal = &req
	marker := c.tracker.ApproachMarker(req.MoveType)
	c.reporter.ReportStartingAction(req.ID, req.MoveType, marker)
}

// handleGoalCancelled rolls back before it stops feedback, so in-flight feedback
// still reflects the pre-rollback intent. A cancel naming a goal other than the
// executing one must not roll back that goal's move.
func (c *Coordinator) handleGoalCancelled(ev *goalCancelledEvent) {
	if c.activeGoal != nil && c.activeGoal.ID != ev.goalID {
		c.logger.Warn("Ignoring rollback for goal %s, goal %s is executing", ev.goalID, c.activeGoal.ID)
		c.reporter.CancelFeedbackReporting(ev.goalID)
		return
	}

	c.actuator.CancelMove()
	c.reporter.CancelFeedbackReporting(ev.goalID)
	c.activeGoal = nil
}

func (c *Coordinator) handleMoveFinished(ev *moveFinishedEvent) {
	if !c.actuator.Finish(ev.done.Seq) {
		c.logger.Debug("Ignoring stale completion of move %d", ev.done.Seq)
		return
	}
	if c.activeGoal == nil {
		c.logger.Warn("Move %d finished without an active goal", ev.done.Seq)
		return
	}

	goal := *c.activeGoal
	c.activeGoal = nil

	outcome := c.tracker.ApplyMove(ev.done.MoveType)
	if !outcome.Collided && outcome.Tile == constants.MarkerChargingStation {
		c.energy.Recharge()
	}
	c.reporter.ReportMoveFinished(goal.ID, outcome)
}

func (c *Coordinator) handleGameOutcome(trigger string, outcome types.GameOutcome) {
	switch outcome {
	case types.GameWon:
		c.logger.Info("Game won after %s", trigger)
		c.hooks.OnGameWon()
	case types.GameLost:
		c.logger.Info("Game lost after %s", trigger)
		c.hooks.OnGameLost()
	}
}

// IsStopped reports whether err means the coordinator no longer accepts events.
func IsStopped(err error) bool {
	return errors.Is(err, dispatch.ErrStopped)
}
