package types

import (
	"fmt"

	"github.com/google/uuid"
)

// GoalID correlates a move goal across admission, feedback and result.
type GoalID = uuid.UUID

// NewGoalID returns a random goal id.
func NewGoalID() GoalID {
	return uuid.New()
}

// ParseGoalID parses the string form of a goal id.
func ParseGoalID(s string) (GoalID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid goal id %q: %w", s, err)
	}
	return id, nil
}

type MoveType uint8

const (
	MoveTypeUnknown MoveType = iota
	MoveTypeForward
	MoveTypeRotateLeft
	MoveTypeRotateRight
)

func (m MoveType) String() string {
	switch m {
	case MoveTypeForward:
		return "forward"
	case MoveTypeRotateLeft:
		return "rotate_left"
	case MoveTypeRotateRight:
		return "rotate_right"
	default:
		return "unknown"
	}
}

// ParseMoveType maps a wire value to a MoveType.
// Anything outside the known set maps to MoveTypeUnknown.
func ParseMoveType(s string) MoveType {
	switch s {
	case "forward":
		return MoveTypeForward
	case "rotate_left":
		return MoveTypeRotateLeft
	case "rotate_right":
		return MoveTypeRotateRight
	default:
		return MoveTypeUnknown
	}
}

// MoveRequest is a single requested move.
type MoveRequest struct {
	ID       GoalID   `json:"id"`
	MoveType MoveType `json:"moveType"`
}

type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionRight
	DirectionDown
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Rotate returns the direction after applying a rotation move.
// Non-rotation moves leave the direction unchanged.
func (d Direction) Rotate(m MoveType) Direction {
	switch m {
	case MoveTypeRotateLeft:
		return (d + 3) % 4
	case MoveTypeRotateRight:
		return (d + 1) % 4
	default:
		return d
	}
}

// FieldPos is a tile position on the field map. Row 0 is the top row.
type FieldPos struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

// Step returns the neighbouring position in the given direction.
func (p FieldPos) Step(d Direction) FieldPos {
	switch d {
	case DirectionUp:
		return FieldPos{Row: p.Row - 1, Col: p.Col}
	case DirectionRight:
		return FieldPos{Row: p.Row, Col: p.Col + 1}
	case DirectionDown:
		return FieldPos{Row: p.Row + 1, Col: p.Col}
	case DirectionLeft:
		return FieldPos{Row: p.Row, Col: p.Col - 1}
	default:
		return p
	}
}

func (p FieldPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
