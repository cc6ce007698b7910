package validator

import (
	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/log"
)

// SolutionValidator tracks the robot on the field map and judges the
// controller's claims about it. It is not safe for concurrent use.
type SolutionValidator struct {
	logger *log.Logger

	fieldMap *FieldMap
	majorErr error

	position  types.FieldPos
	direction types.Direction
	revealed  [][]bool
	// reachable passable tiles, computed once from the start tile
	reachable map[types.FieldPos]struct{}

	totalMoves      int
	initialQueried  bool
	revealedClaimed bool
}

// NewSolutionValidatorOptions contains options for creating a new SolutionValidator.
type NewSolutionValidatorOptions struct {
	FieldMap         *FieldMap
	InitialDirection types.Direction
	Logger           *log.Logger
}

// NewSolutionValidator never fails. A malformed field map is kept and reported
// as a major error on the first initial state query.
func NewSolutionValidator(opts NewSolutionValidatorOptions) *SolutionValidator {
	logger := opts.Logger
	if logger == nil {
		logger = log.With("validator")
	}

	v := &SolutionValidator{
		logger:    logger,
		fieldMap:  opts.FieldMap,
		direction: opts.InitialDirection,
	}
	if v.fieldMap == nil {
		v.fieldMap = &FieldMap{}
	}
	if err := v.fieldMap.Validate(); err != nil {
		logger.Error("Invalid field map: %v", err)
		v.majorErr = err
		return v
	}

	v.position = v.fieldMap.Start
	v.revealed = make([][]bool, v.fieldMap.Rows())
	for row := range v.revealed {
		v.revealed[row] = make([]bool, v.fieldMap.Cols())
	}
	v.reachable = v.floodFill(v.fieldMap.Start)
	v.revealAround(v.position)
	return v
}

func (v *SolutionValidator) IncreaseTotalMovesCounter(n int) {
	v.totalMoves += n
}

// ApproachMarker returns the marker the robot is heading to: the tile in front
// for a forward move, the current tile for a rotation. It does not reveal
// anything; tiles are revealed once a move is applied.
func (v *SolutionValidator) ApproachMarker(moveType types.MoveType) byte {
	if v.majorErr != nil {
		return constants.MarkerObstacle
	}
	if moveType != types.MoveTypeForward {
		return v.fieldMap.At(v.position)
	}
	return v.fieldMap.At(v.position.Step(v.direction))
}

func (v *SolutionValidator) QueryInitialState() types.InitialStateResult {
	if v.majorErr != nil {
		return types.InitialStateResult{
			Status: types.InitialStateMajorError,
			Reason: v.majorErr.Error(),
		}
	}

	result := types.InitialStateResult{
		Status: types.InitialStateOK,
		State: types.InitialRobotState{
			Direction: v.direction,
			Tile:      v.fieldMap.At(v.position),
			Position:  v.position,
		},
	}
	if v.initialQueried {
		result.Status = types.InitialStateFailed
		result.Reason = "initial robot state was already queried"
	}
	v.initialQueried = true
	return result
}

// ApplyMove commits a finished move. A forward move into an obstacle or off the
// map leaves the robot in place.
func (v *SolutionValidator) ApplyMove(moveType types.MoveType) types.MoveOutcome {
	outcome := types.MoveOutcome{MoveType: moveType}
	if v.majorErr != nil {
		outcome.Collided = true
		outcome.Position = v.position
		outcome.Direction = v.direction
		outcome.Tile = constants.MarkerObstacle
		return outcome
	}

	switch moveType {
	case types.MoveTypeForward:
		next := v.position.Step(v.direction)
		if constants.IsPassable(v.fieldMap.At(next)) {
			v.position = next
			v.clean(next)
			v.revealAround(next)
		} else {
			v.logger.Debug("Robot at %s collided moving %s", v.position, v.direction)
			outcome.Collided = true
		}
	case types.MoveTypeRotateLeft, types.MoveTypeRotateRight:
		v.direction = v.direction.Rotate(moveType)
	}

	outcome.Position = v.position
	outcome.Direction = v.direction
	outcome.Tile = v.fieldMap.At(v.position)
	return outcome
}

// FieldMapRevealed loses the game if any reachable tile is still hidden.
func (v *SolutionValidator) FieldMapRevealed() types.GameOutcome {
	if v.majorErr != nil {
		return types.GameLost
	}
	if hidden := v.hiddenTiles(); hidden > 0 {
		v.logger.Info("Field map reported revealed with %d tiles still hidden", hidden)
		return types.GameLost
	}
	v.revealedClaimed = true
	return types.GameContinues
}

// FieldMapCleaned wins the game if the map was revealed before and no dirt is left.
func (v *SolutionValidator) FieldMapCleaned() types.GameOutcome {
	if v.majorErr != nil {
		return types.GameLost
	}
	if !v.revealedClaimed || v.hiddenTiles() > 0 {
		v.logger.Info("Field map reported cleaned before it was revealed")
		return types.GameLost
	}
	if dirt := v.dirtLeft(); dirt > 0 {
		v.logger.Info("Field map reported cleaned with %d dirt levels left", dirt)
		return types.GameLost
	}
	return types.GameWon
}

// Stats is a snapshot of the session progress.
type Stats struct {
	TotalMoves    int             `json:"totalMoves"`
	Position      types.FieldPos  `json:"position"`
	Direction     types.Direction `json:"direction"`
	HiddenTiles   int             `json:"hiddenTiles"`
	DirtLeft      int             `json:"dirtLeft"`
	FieldMapError string          `json:"fieldMapError,omitempty"`
}

func (v *SolutionValidator) Stats() Stats {
	stats := Stats{
		TotalMoves: v.totalMoves,
		Position:   v.position,
		Direction:  v.direction,
	}
	if v.majorErr != nil {
		stats.FieldMapError = v.majorErr.Error()
		return stats
	}
	stats.HiddenTiles = v.hiddenTiles()
	stats.DirtLeft = v.dirtLeft()
	return stats
}

// RevealedMap renders the map as the robot knows it.
func (v *SolutionValidator) RevealedMap() string {
	if v.majorErr != nil {
		return ""
	}
	masked := &FieldMap{Tiles: make([][]byte, v.fieldMap.Rows())}
	for row, tiles := range v.fieldMap.Tiles {
		masked.Tiles[row] = make([]byte, len(tiles))
		for col, marker := range tiles {
			if !v.revealed[row][col] {
				marker = constants.MarkerUnrevealed
			}
			masked.Tiles[row][col] = marker
		}
	}
	return masked.String()
}

func (v *SolutionValidator) clean(pos types.FieldPos) {
	marker := v.fieldMap.At(pos)
	if !constants.IsDirt(marker) {
		return
	}
	v.fieldMap.set(pos, marker-1)
}

func (v *SolutionValidator) revealAround(pos types.FieldPos) {
	for dr := int32(-1); dr <= 1; dr++ {
		for dc := int32(-1); dc <= 1; dc++ {
			p := types.FieldPos{Row: pos.Row + dr, Col: pos.Col + dc}
			if v.fieldMap.Contains(p) {
				v.revealed[p.Row][p.Col] = true
			}
		}
	}
}

func (v *SolutionValidator) hiddenTiles() int {
	hidden := 0
	for pos := range v.reachable {
		if !v.revealed[pos.Row][pos.Col] {
			hidden++
		}
	}
	return hidden
}

func (v *SolutionValidator) dirtLeft() int {
	dirt := 0
	for pos := range v.reachable {
		if marker := v.fieldMap.At(pos); constants.IsDirt(marker) {
			dirt += int(marker - constants.MarkerClean)
		}
	}
	return dirt
}

func (v *SolutionValidator) floodFill(start types.FieldPos) map[types.FieldPos]struct{} {
	reachable := map[types.FieldPos]struct{}{start: {}}
	frontier := []types.FieldPos{start}
	directions := []types.Direction{types.DirectionUp, types.DirectionRight, types.DirectionDown, types.DirectionLeft}
	for len(frontier) > 0 {
		pos := frontier[0]
		frontier = frontier[1:]
		for _, d := range directions {
			next := pos.Step(d)
			if _, ok := reachable[next]; ok || !constants.IsPassable(v.fieldMap.At(next)) {
				continue
			}
			reachable[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}
	return reachable
}
