package messages

import (
	"strings"
	"testing"

	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeMessage(t *testing.T) {
	tests := []struct {
		name        string
		messageType string
		payload     interface{}
		decodeInto  interface{}
	}{
		{
			name:        "goal feedback",
			messageType: MessageTypeGoalFeedback,
			payload: &GoalFeedback{
				GoalID:            types.NewGoalID().String(),
				MoveType:          types.MoveTypeForward.String(),
				ApproachingMarker: Marker('2'),
				Progress:          40,
			},
			decodeInto: &GoalFeedback{},
		},
		{
			name:        "goal result",
			messageType: MessageTypeGoalResult,
			payload: &GoalResult{
				GoalID:   types.NewGoalID().String(),
				MoveType: types.MoveTypeRotateLeft.String(),
				Status:   "succeeded",
				Outcome: &MoveOutcome{
					Position:  types.FieldPos{Row: 2, Col: 3},
					Direction: types.DirectionLeft.String(),
					Tile:      Marker('e'),
				},
			},
			decodeInto: &GoalResult{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(tt.messageType, tt.payload)
			require.NoError(t, err)

			b, err := SerializeMessage(m)
			require.NoError(t, err)

			got, err := DeserializeMessage(b)
			require.NoError(t, err)
			assert.Equal(t, tt.messageType, got.Type)

			require.NoError(t, DecodePayload(got, tt.decodeInto))
			assert.Equal(t, tt.payload, tt.decodeInto)
		})
	}
}

func TestNewMessage_WithoutPayload(t *testing.T) {
	m, err := NewMessage(MessageTypeShutdown, nil)
	require.NoError(t, err)

	b, err := SerializeMessage(m)
	require.NoError(t, err)
	got, err := DeserializeMessage(b)
	require.NoError(t, err)

	assert.Equal(t, MessageTypeShutdown, got.Type)
	assert.Error(t, DecodePayload(got, &GoalResult{}))
}

func TestDeserializeMessage_Garbage(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)
}

func TestDeserializeMessage_DecodedSizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{name: "under limit", size: MaxDecodedMessageSize / 2},
		{name: "over limit", size: 4 * MaxDecodedMessageSize, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(MessageTypeGoalFeedback, strings.Repeat("a", tt.size))
			require.NoError(t, err)
			b, err := SerializeMessage(m)
			require.NoError(t, err)
			// highly repetitive payloads compress to a tiny frame
			require.Less(t, len(b), tt.size/100)

			got, err := DeserializeMessage(b)
			if tt.wantErr {
				assert.ErrorIs(t, err, zstd.ErrDecoderSizeExceeded)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, MessageTypeGoalFeedback, got.Type)
		})
	}
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "#", Marker('#'))
	assert.Equal(t, "", Marker(0))
}
