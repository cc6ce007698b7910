package goals

import (
	"sync"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
)

type Status string

const (
	StatusAccepted  Status = "accepted"
	StatusExecuting Status = "executing"
	StatusSucceeded Status = "succeeded"
	StatusCanceled  Status = "canceled"
	StatusAborted   Status = "aborted"
)

// Terminal reports whether no further feedback or result follows the status.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusCanceled || s == StatusAborted
}

// Feedback is published periodically while a goal executes.
type Feedback struct {
	GoalID            types.GoalID
	MoveType          types.MoveType
	ApproachingMarker byte
	// Progress is in percent
	Progress float64
}

// Result is published once per goal, when it reaches a terminal status.
type Result struct {
	GoalID       types.GoalID
	MoveType     types.MoveType
	Status       Status
	PenaltyTurns int
	Outcome      *types.MoveOutcome
}

// Goal is a snapshot of a goal and its progress.
type Goal struct {
	ID                types.GoalID
	MoveType          types.MoveType
	Status            Status
	ApproachingMarker byte
	AcceptedAt        time.Time
	StartedAt         time.Time
	FinishedAt        time.Time
	Result            *Result
}

// Publisher delivers feedback and results to the controller.
type Publisher interface {
	PublishFeedback(feedback Feedback)
	PublishResult(result Result)
}

// FinishedFunc is called once a goal reached a terminal status, outside of any
// registry lock.
type FinishedFunc func(goal Goal)

type entry struct {
	goal Goal
	stop chan struct{}
	// closed once the feedback goroutine exited
	done chan struct{}
}

// Registry tracks move goals from acceptance to their result and drives the
// feedback of the executing one.
type Registry struct {
	lock   sync.Mutex
	logger *log.Logger
	goals  map[types.GoalID]*entry

	publisher        Publisher
	onFinished       FinishedFunc
	feedbackInterval time.Duration
	moveDuration     time.Duration
	wg               sync.WaitGroup
}

// NewRegistryOptions contains options for creating a new Registry.
type NewRegistryOptions struct {
	Publisher        Publisher
	OnFinished       FinishedFunc
	FeedbackInterval time.Duration
	// MoveDuration scales the reported progress.
	MoveDuration time.Duration
	Logger       *log.Logger
}

func NewRegistry(opts NewRegistryOptions) *Registry {
	if opts.FeedbackInterval <= 0 {
		opts.FeedbackInterval = constants.DefaultFeedbackInterval
	}
	if opts.MoveDuration <= 0 {
		opts.MoveDuration = constants.DefaultMoveDuration
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.With("goals")
	}
	return &Registry{
		logger:           logger,
		goals:            make(map[types.GoalID]*entry),
		publisher:        opts.Publisher,
		onFinished:       opts.OnFinished,
		feedbackInterval: opts.FeedbackInterval,
		moveDuration:     opts.MoveDuration,
	}
}

// AcceptGoal registers an admitted goal.
func (r *Registry) AcceptGoal(req types.MoveRequest) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.goals[req.ID] = &entry{
		goal: Goal{
			ID:         req.ID,
			MoveType:   req.MoveType,
			Status:     StatusAccepted,
			AcceptedAt: time.Now(),
		},
	}
	r.logger.Debug("Accepted goal %s: %s", req.ID, req.MoveType)
}

// ReportStartingAction marks the goal as executing and starts its feedback.
func (r *Registry) ReportStartingAction(goalID types.GoalID, moveType types.MoveType, marker byte) {
	r.lock.Lock()
	defer r.lock.Unlock()

	e, ok := r.goals[goalID]
	if !ok || e.goal.Status.Terminal() {
		r.logger.Warn("Starting action for unknown or finished goal %s", goalID)
		return
	}
	e.goal.Status = StatusExecuting
	e.goal.ApproachingMarker = marker
	e.goal.StartedAt = time.Now()
	e.stop = make(chan struct{})
	e.done = make(chan struct{})

	r.wg.Add(1)
	go r.reportFeedback(e.goal, e.stop, e.done)
}

// ReportInsufficientEnergy aborts the goal. The penalty is part of its result.
func (r *Registry) ReportInsufficientEnergy(goalID types.GoalID, penaltyTurns int) {
	r.finish(goalID, Result{Status: StatusAborted, PenaltyTurns: penaltyTurns})
}

// CancelFeedbackReporting stops the feedback of the goal and publishes its
// canceled result.
func (r *Registry) CancelFeedbackReporting(goalID types.GoalID) {
	r.finish(goalID, Result{Status: StatusCanceled})
}

// ReportMoveFinished publishes the successful result of the goal.
func (r *Registry) ReportMoveFinished(goalID types.GoalID, outcome types.MoveOutcome) {
	r.finish(goalID, Result{Status: StatusSucceeded, Outcome: &outcome})
}

// Get returns a snapshot of the goal.
func (r *Registry) Get(goalID types.GoalID) (Goal, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	e, ok := r.goals[goalID]
	if !ok {
		return Goal{}, false
	}
	return e.goal, true
}

// Close stops all feedback and waits for the feedback goroutines to exit.
func (r *Registry) Close() {
	r.lock.Lock()
	for _, e := range r.goals {
		r.stopFeedback(e)
	}
	r.lock.Unlock()

	r.wg.Wait()
}

func (r *Registry) finish(goalID types.GoalID, result Result) {
	r.lock.Lock()
	e, ok := r.goals[goalID]
	if !ok || e.goal.Status.Terminal() {
		r.lock.Unlock()
		r.logger.Warn("Ignoring %s result for unknown or finished goal %s", result.Status, goalID)
		return
	}
	r.stopFeedback(e)
	feedbackDone := e.done

	result.GoalID = goalID
	result.MoveType = e.goal.MoveType
	e.goal.Status = result.Status
	e.goal.FinishedAt = time.Now()
	e.goal.Result = &result
	goal := e.goal
	r.lock.Unlock()

	// no feedback may follow the result
	if feedbackDone != nil {
		<-feedbackDone
	}

	r.logger.Info("Goal %s finished with status: %s", goalID, result.Status)
	if r.publisher != nil {
		r.publisher.PublishResult(result)
	}
	if r.onFinished != nil {
		r.onFinished(goal)
	}
}

// stopFeedback must be called with the lock held.
func (r *Registry) stopFeedback(e *entry) {
	if e.stop == nil {
		return
	}
	close(e.stop)
	e.stop = nil
}

func (r *Registry) reportFeedback(goal Goal, stop <-chan struct{}, done chan<- struct{}) {
	defer r.wg.Done()
	defer close(done)

	ticker := time.NewTicker(r.feedbackInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case t := <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			progress := float64(t.Sub(goal.StartedAt)) / float64(r.moveDuration) * 100
			if progress > 100 {
				progress = 100
			}
			if r.publisher == nil {
				continue
			}
			r.publisher.PublishFeedback(Feedback{
				GoalID:            goal.ID,
				MoveType:          goal.MoveType,
				ApproachingMarker: goal.ApproachingMarker,
				Progress:          progress,
			})
		}
	}
}
