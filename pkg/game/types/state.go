package types

// EnergyOutcome is the result of trying to spend energy on a move.
type EnergyOutcome struct {
	Admitted     bool
	PenaltyTurns int
}

// BatteryStatus is a read-only snapshot of the robot battery.
type BatteryStatus struct {
	MaxMoves  int `json:"maxMoves"`
	MovesLeft int `json:"movesLeft"`
}

// InitialRobotState describes where the robot starts.
type InitialRobotState struct {
	Direction Direction     `json:"direction"`
	Tile      byte          `json:"tile"`
	Position  FieldPos      `json:"position"`
	Battery   BatteryStatus `json:"battery"`
}

// InitialStateStatus tags the outcome of an initial state lookup.
type InitialStateStatus uint8

const (
	InitialStateOK InitialStateStatus = iota
	// InitialStateFailed means the lookup failed but the session can go on.
	InitialStateFailed
	// InitialStateMajorError means the session can not go on.
	InitialStateMajorError
)

func (s InitialStateStatus) String() string {
	switch s {
	case InitialStateOK:
		return "ok"
	case InitialStateFailed:
		return "failed"
	case InitialStateMajorError:
		return "major_error"
	default:
		return "unknown"
	}
}

// InitialStateResult is returned by the progress tracker.
// State is only meaningful when Status is not InitialStateMajorError.
type InitialStateResult struct {
	Status InitialStateStatus
	State  InitialRobotState
	Reason string
}

// GameOutcome is the verdict of a map lifecycle check.
type GameOutcome uint8

const (
	GameContinues GameOutcome = iota
	GameWon
	GameLost
)

func (o GameOutcome) String() string {
	switch o {
	case GameContinues:
		return "continues"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MoveDone is emitted by the actuator when a move it started has run its course.
type MoveDone struct {
	Seq      uint64
	MoveType MoveType
}

// MoveOutcome is the committed effect of a finished move.
type MoveOutcome struct {
	MoveType  MoveType  `json:"moveType"`
	Position  FieldPos  `json:"position"`
	Direction Direction `json:"direction"`
	Tile      byte      `json:"tile"`
	Collided  bool      `json:"collided"`
}
