package constants

import "time"

// Field map markers
const (
	// MarkerClean is a tile without dirt
	MarkerClean byte = '0'
	// MarkerDirtMin is the lowest dirt level
	MarkerDirtMin byte = '1'
	// MarkerDirtMax is the highest dirt level
	MarkerDirtMax byte = '3'
	// MarkerObstacle is an impassable tile. Also reported when approaching the map edge.
	MarkerObstacle byte = '#'
	// MarkerChargingStation recharges the battery when the robot stops on it
	MarkerChargingStation byte = 'e'
	// MarkerStart is the robot starting tile. It is clean.
	MarkerStart byte = 'S'
	// MarkerUnrevealed is shown for tiles the robot has not discovered yet
	MarkerUnrevealed byte = 'X'
)

const (
	// DefaultMaxMoves is the battery capacity in moves
	DefaultMaxMoves int = 20
	// DefaultPenaltyTurns is charged when a move is requested on an empty battery
	DefaultPenaltyTurns int = 3
	// DefaultMoveDuration is how long a single move takes to complete
	DefaultMoveDuration = 500 * time.Millisecond
	// DefaultFeedbackInterval is the period between goal feedback messages
	DefaultFeedbackInterval = 100 * time.Millisecond
)

// IsDirt reports whether the marker is a dirt level.
func IsDirt(marker byte) bool {
	return marker >= MarkerDirtMin && marker <= MarkerDirtMax
}

// IsPassable reports whether the robot can stand on a tile with the marker.
func IsPassable(marker byte) bool {
	return marker == MarkerClean || marker == MarkerStart || marker == MarkerChargingStation || IsDirt(marker)
}
