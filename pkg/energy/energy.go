package energy

import (
	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
)

// Handler is the robot battery. It is not safe for concurrent use; the
// coordinator only calls it from its own goroutine.
type Handler struct {
	logger *log.Logger

	maxMoves     int
	movesLeft    int
	penaltyTurns int

	totalPenalty int
	recharges    int
}

// NewHandlerOptions contains options for creating a new Handler.
type NewHandlerOptions struct {
	MaxMoves     int
	PenaltyTurns int
	Logger       *log.Logger
}

func NewHandler(opts NewHandlerOptions) *Handler {
	if opts.MaxMoves <= 0 {
		opts.MaxMoves = constants.DefaultMaxMoves
	}
	if opts.PenaltyTurns < 0 {
		opts.PenaltyTurns = constants.DefaultPenaltyTurns
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.With("energy")
	}
	return &Handler{
		logger:       logger,
		maxMoves:     opts.MaxMoves,
		movesLeft:    opts.MaxMoves,
		penaltyTurns: opts.PenaltyTurns,
	}
}

// InitiateMove spends one move worth of energy. An empty battery vetoes the move
// and reports the penalty that refilling it will cost.
func (h *Handler) InitiateMove() types.EnergyOutcome {
	if h.movesLeft <= 0 {
		return types.EnergyOutcome{PenaltyTurns: h.penaltyTurns}
	}
	h.movesLeft--
	return types.EnergyOutcome{Admitted: true}
}

// PerformPenaltyChange charges the penalty and refills the battery.
func (h *Handler) PerformPenaltyChange() {
	h.totalPenalty += h.penaltyTurns
	h.movesLeft = h.maxMoves
	h.logger.Info("Battery depleted, refilled after a penalty of %d turns (total: %d)", h.penaltyTurns, h.totalPenalty)
}

// Recharge refills the battery without a penalty.
func (h *Handler) Recharge() {
	h.movesLeft = h.maxMoves
	h.recharges++
	h.logger.Debug("Battery recharged on charging station")
}

func (h *Handler) QueryBatteryStatus() types.BatteryStatus {
	return types.BatteryStatus{MaxMoves: h.maxMoves, MovesLeft: h.movesLeft}
}

// Stats is a snapshot of the penalty bookkeeping.
type Stats struct {
	TotalPenaltyTurns int `json:"totalPenaltyTurns"`
	Recharges         int `json:"recharges"`
}

func (h *Handler) Stats() Stats {
	return Stats{TotalPenaltyTurns: h.totalPenalty, Recharges: h.recharges}
}
