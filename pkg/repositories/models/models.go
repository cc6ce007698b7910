package models

import "time"

// Session is the record of one finished cleaning session.
type Session struct {
	ID                string    `json:"id"`
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	Outcome           string    `json:"outcome"`
	TotalMoves        int       `json:"total_moves"`
	TotalPenaltyTurns int       `json:"total_penalty_turns"`
	Recharges         int       `json:"recharges"`
	HiddenTiles       int       `json:"hidden_tiles"`
	DirtLeft          int       `json:"dirt_left"`
}
