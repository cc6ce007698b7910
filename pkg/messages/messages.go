package messages

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/game/types"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 1024
	// MaxDecodedMessageSize caps the size of a decompressed message
	MaxDecodedMessageSize = 1 << 20
)

// Message types pushed on the feedback stream
const (
	MessageTypeGoalFeedback     = "goal_feedback"
	MessageTypeGoalResult       = "goal_result"
	MessageTypeFieldMapRevealed = "field_map_revealed"
	MessageTypeFieldMapCleaned  = "field_map_cleaned"
	MessageTypeShutdown         = "shutdown"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into a message of the given type. A nil payload
// leaves the message empty.
func NewMessage(messageType string, payload interface{}) (*Message, error) {
	m := &Message{Type: messageType}
	if payload == nil {
		return m, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", messageType, err)
	}
	m.Payload = b
	return m, nil
}

// GoalRequest is the body of a goal submission.
type GoalRequest struct {
	MoveType string `json:"moveType"`
}

type GoalResponse struct {
	GoalID   string `json:"goalID,omitempty"`
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

type CancelGoalResponse struct {
	GoalID   string `json:"goalID"`
	Accepted bool   `json:"accepted"`
}

// GoalStatus describes a goal on request.
type GoalStatus struct {
	GoalID            string      `json:"goalID"`
	MoveType          string      `json:"moveType"`
	Status            string      `json:"status"`
	ApproachingMarker string      `json:"approachingMarker,omitempty"`
	AcceptedAt        time.Time   `json:"acceptedAt"`
	Result            *GoalResult `json:"result,omitempty"`
}

type GoalFeedback struct {
	GoalID            string  `json:"goalID"`
	MoveType          string  `json:"moveType"`
	ApproachingMarker string  `json:"approachingMarker"`
	Progress          float64 `json:"progress"`
}

type GoalResult struct {
	GoalID       string       `json:"goalID"`
	MoveType     string       `json:"moveType"`
	Status       string       `json:"status"`
	PenaltyTurns int          `json:"penaltyTurns,omitempty"`
	Outcome      *MoveOutcome `json:"outcome,omitempty"`
}

type MoveOutcome struct {
	Position  types.FieldPos `json:"position"`
	Direction string         `json:"direction"`
	Tile      string         `json:"tile"`
	Collided  bool           `json:"collided"`
}

type BatteryStatus struct {
	MaxMoves  int `json:"maxMoves"`
	MovesLeft int `json:"movesLeft"`
}

type InitialRobotState struct {
	Direction string         `json:"direction"`
	Tile      string         `json:"tile"`
	Position  types.FieldPos `json:"position"`
	Battery   BatteryStatus  `json:"battery"`
}

type InitialStateResponse struct {
	Success     bool               `json:"success"`
	ErrorReason string             `json:"errorReason,omitempty"`
	State       *InitialRobotState `json:"state,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Marker renders a field map marker on the wire.
func Marker(marker byte) string {
	if marker == 0 {
		return ""
	}
	return string([]byte{marker})
}
