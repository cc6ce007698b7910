package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/coordinator"
	"github.com/cbodonnell/robocleaner/pkg/energy"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
	"github.com/cbodonnell/robocleaner/pkg/robot"
	"github.com/cbodonnell/robocleaner/pkg/validator"
	"github.com/cbodonnell/robocleaner/pkg/workers"
	"github.com/google/uuid"
)

const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// GameManager runs one cleaning session: it owns the coordinator and its
// collaborators, and turns the end of the game into a saved session record and
// a shutdown of the feedback stream.
type GameManager struct {
	logger *log.Logger

	coordinator *coordinator.Coordinator
	validator   *validator.SolutionValidator
	energy      *energy.Handler
	actuator    *robot.Actuator
	goals       *goals.Registry

	broadcaster     *workers.Broadcaster
	broadcastWorker *workers.BroadcastMessageWorker
	messageSink     MessageSink
	saveSessionChan chan<- workers.SaveSessionRequest

	sessionID string
	startedAt time.Time

	finishOnce   sync.Once
	shutdownOnce sync.Once
	done         chan struct{}
}

// MessageSink is the feedback stream the session publishes to.
type MessageSink interface {
	workers.MessageBroadcaster
	// Close disconnects every controller.
	Close()
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	FieldMap         *validator.FieldMap
	InitialDirection types.Direction
	MaxMoves         int
	PenaltyTurns     int
	MoveDuration     time.Duration
	FeedbackInterval time.Duration
	MessageSink      MessageSink
	// SaveSessionChan receives the session record when the game ends. Optional.
	SaveSessionChan chan<- workers.SaveSessionRequest
	Logger          *log.Logger
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	if opts.MessageSink == nil {
		return nil, fmt.Errorf("no message sink provided")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.With("game")
	}

	broadcastMessageChan := make(chan workers.BroadcastMessage, workers.BroadcastMessageChannelSize)
	gm := &GameManager{
		logger:          logger,
		broadcaster:     workers.NewBroadcaster(broadcastMessageChan),
		messageSink:     opts.MessageSink,
		saveSessionChan: opts.SaveSessionChan,
		sessionID:       uuid.NewString(),
		startedAt:       time.Now().UTC(),
		done:            make(chan struct{}),
	}
	gm.broadcastWorker = workers.NewBroadcastMessageWorker(workers.NewBroadcastMessageWorkerOptions{
		Broadcaster:          opts.MessageSink,
		BroadcastMessageChan: broadcastMessageChan,
	})

	gm.validator = validator.NewSolutionValidator(validator.NewSolutionValidatorOptions{
		FieldMap:         opts.FieldMap,
		InitialDirection: opts.InitialDirection,
		Logger:           logger.With("validator"),
	})
	gm.energy = energy.NewHandler(energy.NewHandlerOptions{
		MaxMoves:     opts.MaxMoves,
		PenaltyTurns: opts.PenaltyTurns,
		Logger:       logger.With("energy"),
	})
	gm.actuator = robot.NewActuator(robot.NewActuatorOptions{
		MoveDuration: opts.MoveDuration,
		OnComplete:   gm.onMoveComplete,
		Logger:       logger.With("robot"),
	})
	gm.goals = goals.NewRegistry(goals.NewRegistryOptions{
		Publisher:        gm.broadcaster,
		OnFinished:       gm.onGoalFinished,
		FeedbackInterval: opts.FeedbackInterval,
		MoveDuration:     gm.actuator.MoveDuration(),
		Logger:           logger.With("goals"),
	})

	c, err := coordinator.New(coordinator.NewCoordinatorOptions{
		Dependencies: coordinator.Dependencies{
			Actuator: gm.actuator,
			Energy:   gm.energy,
			Tracker:  gm.validator,
			Reporter: gm.goals,
			Notifier: gm.broadcaster,
			Hooks:    gm,
		},
		Logger: logger.With("coordinator"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create coordinator: %w", err)
	}
	gm.coordinator = c

	return gm, nil
}

// Coordinator is what the API drives.
func (gm *GameManager) Coordinator() *coordinator.Coordinator {
	return gm.coordinator
}

// Goals is the registry the API looks goals up in.
func (gm *GameManager) Goals() *goals.Registry {
	return gm.goals
}

func (gm *GameManager) SessionID() string {
	return gm.sessionID
}

// Start runs the session until ctx is done or the game shut down. Everything
// the session published before that is delivered before the feedback stream
// is closed.
func (gm *GameManager) Start(ctx context.Context) error {
	defer close(gm.done)

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		gm.broadcastWorker.Start(context.Background())
	}()

	gm.logger.Info("Starting session %s", gm.sessionID)
	if err := gm.coordinator.Start(ctx); err != nil {
		return fmt.Errorf("failed to run coordinator: %w", err)
	}

	gm.actuator.CancelMove()
	gm.goals.Close()
	gm.broadcaster.Close()
	<-workerDone
	gm.messageSink.Close()

	gm.logger.Info("Session %s stopped", gm.sessionID)
	return nil
}

// Stop ends the session without an outcome.
func (gm *GameManager) Stop() {
	gm.coordinator.Stop()
}

// Done is closed once Start returned.
func (gm *GameManager) Done() <-chan struct{} {
	return gm.done
}

// OnGameWon implements coordinator.Hooks.
func (gm *GameManager) OnGameWon() {
	gm.finish(OutcomeWon)
}

// OnGameLost implements coordinator.Hooks.
func (gm *GameManager) OnGameLost() {
	gm.finish(OutcomeLost)
}

// OnShutdown implements coordinator.Hooks. It runs on the coordinator
// goroutine, so it only signals Start to wind down.
func (gm *GameManager) OnShutdown() {
	gm.shutdownOnce.Do(func() {
		gm.logger.Info("Shutting down session %s", gm.sessionID)
		gm.coordinator.Stop()
	})
}

func (gm *GameManager) finish(outcome string) {
	gm.finishOnce.Do(func() {
		session := gm.sessionRecord(outcome)
		gm.logger.Info("Session %s %s after %d moves", session.ID, outcome, session.TotalMoves)

		if gm.saveSessionChan != nil {
			select {
			case gm.saveSessionChan <- workers.SaveSessionRequest{Session: session}:
			default:
				gm.logger.Error("Save session channel full, session %s not saved", session.ID)
			}
		}

		if err := gm.coordinator.PublishShutdown(); err != nil {
			gm.logger.Error("Failed to publish shutdown: %v", err)
		}
	})
}

func (gm *GameManager) sessionRecord(outcome string) *models.Session {
	progress := gm.validator.Stats()
	battery := gm.energy.Stats()
	return &models.Session{
		ID:                gm.sessionID,
		StartedAt:         gm.startedAt,
		FinishedAt:        time.Now().UTC(),
		Outcome:           outcome,
		TotalMoves:        progress.TotalMoves,
		TotalPenaltyTurns: battery.TotalPenaltyTurns,
		Recharges:         battery.Recharges,
		HiddenTiles:       progress.HiddenTiles,
		DirtLeft:          progress.DirtLeft,
	}
}

// onMoveComplete is called from the actuator timer.
func (gm *GameManager) onMoveComplete(done types.MoveDone) {
	if err := gm.coordinator.OnMoveFinished(done); err != nil {
		gm.logger.Debug("Dropped completion of move %d: %v", done.Seq, err)
	}
}

// onGoalFinished frees admission once a goal reached a terminal status.
func (gm *GameManager) onGoalFinished(goal goals.Goal) {
	if err := gm.coordinator.ResetAdmission(); err != nil {
		gm.logger.Debug("Dropped admission reset for goal %s: %v", goal.ID, err)
	}
}
