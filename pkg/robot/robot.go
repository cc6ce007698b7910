package robot

import (
	"sync"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
)

// CompletionFunc is called from a timer goroutine when a move ran its course.
// It must not block; the coordinator only submits an event from it.
type CompletionFunc func(done types.MoveDone)

type move struct {
	seq      uint64
	moveType types.MoveType
	timer    *time.Timer
}

// Actuator simulates the robot: every move takes a fixed duration and nothing
// about the robot changes until the move is finished.
type Actuator struct {
	lock         sync.Mutex
	logger       *log.Logger
	moveDuration time.Duration
	onComplete   CompletionFunc

	seq     uint64
	current *move
}

// NewActuatorOptions contains options for creating a new Actuator.
type NewActuatorOptions struct {
	MoveDuration time.Duration
	OnComplete   CompletionFunc
	Logger       *log.Logger
}

func NewActuator(opts NewActuatorOptions) *Actuator {
	if opts.MoveDuration <= 0 {
		opts.MoveDuration = constants.DefaultMoveDuration
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.With("robot")
	}
	return &Actuator{
		logger:       logger,
		moveDuration: opts.MoveDuration,
		onComplete:   opts.OnComplete,
	}
}

// Act starts a move. A move still in flight is superseded and its completion
// will be reported as stale.
func (a *Actuator) Act(moveType types.MoveType) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.current != nil {
		a.logger.Warn("Move %d superseded by a new %s move", a.current.seq, moveType)
		a.current.timer.Stop()
	}

	a.seq++
	done := types.MoveDone{Seq: a.seq, MoveType: moveType}
	a.current = &move{
		seq:      a.seq,
		moveType: moveType,
		timer: time.AfterFunc(a.moveDuration, func() {
			if a.onComplete != nil {
				a.onComplete(done)
			}
		}),
	}
	a.logger.Debug("Started move %d: %s", done.Seq, moveType)
}

// CancelMove rolls back the move in flight. Nothing was committed yet, so the
// rollback only has to make sure the move never completes.
func (a *Actuator) CancelMove() {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.current == nil {
		return
	}
	a.current.timer.Stop()
	a.logger.Debug("Rolled back move %d: %s", a.current.seq, a.current.moveType)
	a.current = nil
}

// Finish reports whether seq is the move in flight, and if so retires it.
func (a *Actuator) Finish(seq uint64) bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.current == nil || a.current.seq != seq {
		return false
	}
	a.current = nil
	return true
}

// Moving reports whether a move is in flight.
func (a *Actuator) Moving() bool {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.current != nil
}

// MoveDuration is how long one move takes.
func (a *Actuator) MoveDuration() time.Duration {
	return a.moveDuration
}
