package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cbodonnell/robocleaner/pkg/coordinator"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/gorilla/mux"
)

const (
	defaultSessionsLimit = 20
	maxSessionsLimit     = 100
)

// GoalCoordinator is the part of the coordinator the API drives.
type GoalCoordinator interface {
	EvaluateGoal(req types.MoveRequest) (coordinator.Verdict, error)
	OnGoalAccepted(req types.MoveRequest) error
	OnGoalCancelled(goalID types.GoalID) (coordinator.CancelResponse, error)
	QueryBatteryStatus() (types.BatteryStatus, error)
	QueryInitialState() (coordinator.InitialStateResponse, error)
	PublishFieldMapRevealed() error
	PublishFieldMapCleaned() error
}

// GoalRegistry looks up goals by id.
type GoalRegistry interface {
	Get(goalID types.GoalID) (goals.Goal, bool)
}

func HandleSubmitGoal(c GoalCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := &messages.GoalRequest{}
		if err := json.NewDecoder(r.Body).Decode(body); err != nil {
			writeError(w, http.StatusBadRequest, "Failed to decode goal request")
			return
		}

		req := types.MoveRequest{
			ID:       types.NewGoalID(),
			MoveType: types.ParseMoveType(body.MoveType),
		}
		verdict, err := c.EvaluateGoal(req)
		if err != nil {
			writeCoordinatorError(w, err)
			return
		}
		if !verdict.Accepted {
			status := http.StatusConflict
			if verdict.Reason == coordinator.RejectUnknownMoveType {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, &messages.GoalResponse{Accepted: false, Reason: verdict.Reason.String()})
			return
		}

		if err := c.OnGoalAccepted(req); err != nil {
			writeCoordinatorError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, &messages.GoalResponse{GoalID: req.ID.String(), Accepted: true})
	}
}

func HandleCancelGoal(c GoalCoordinator, registry GoalRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goalID, err := types.ParseGoalID(mux.Vars(r)["goalID"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Failed to parse goalID")
			return
		}

		goal, ok := registry.Get(goalID)
		if !ok {
			writeError(w, http.StatusNotFound, "Goal not found")
			return
		}
		if goal.Status.Terminal() {
			writeJSON(w, http.StatusConflict, &messages.CancelGoalResponse{GoalID: goalID.String(), Accepted: false})
			return
		}

		response, err := c.OnGoalCancelled(goalID)
		if err != nil {
			writeCoordinatorError(w, err)
			return
		}
		writeJSON(w, http.StatusAccepted, &messages.CancelGoalResponse{
			GoalID:   goalID.String(),
			Accepted: response == coordinator.CancelAccept,
		})
	}
}

func HandleGetGoal(registry GoalRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goalID, err := types.ParseGoalID(mux.Vars(r)["goalID"])
		if err != nil {
			writeError(w, http.StatusBadRequest, "Failed to parse goalID")
			return
		}

		goal, ok := registry.Get(goalID)
		if !ok {
			writeError(w, http.StatusNotFound, "Goal not found")
			return
		}

		writeJSON(w, http.StatusOK, messages.NewGoalStatus(goal))
	}
}

func HandleBatteryStatus(c GoalCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		battery, err := c.QueryBatteryStatus()
		if err != nil {
			writeCoordinatorError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, &messages.BatteryStatus{
			MaxMoves:  battery.MaxMoves,
			MovesLeft: battery.MovesLeft,
		})
	}
}

// HandleInitialState always answers 200; success is part of the body.
func HandleInitialState(c GoalCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := c.QueryInitialState()
		if err != nil {
			writeCoordinatorError(w, err)
			return
		}

		body := &messages.InitialStateResponse{
			Success:     resp.Success,
			ErrorReason: resp.ErrorReason,
		}
		if resp.State != nil {
			body.State = &messages.InitialRobotState{
				Direction: resp.State.Direction.String(),
				Tile:      messages.Marker(resp.State.Tile),
				Position:  resp.State.Position,
				Battery: messages.BatteryStatus{
					MaxMoves:  resp.State.Battery.MaxMoves,
					MovesLeft: resp.State.Battery.MovesLeft,
				},
			}
		}
		writeJSON(w, http.StatusOK, body)
	}
}

func HandleFieldMapRevealed(c GoalCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.PublishFieldMapRevealed(); err != nil {
			writeCoordinatorError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func HandleFieldMapCleaned(c GoalCoordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := c.PublishFieldMapCleaned(); err != nil {
			writeCoordinatorError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func HandleListSessions(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultSessionsLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxSessionsLimit {
				writeError(w, http.StatusBadRequest, "Limit must be between 1 and 100")
				return
			}
			limit = parsed
		}

		sessions, err := repository.ListSessions(r.Context(), limit)
		if err != nil {
			log.Error("failed to list sessions: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to list sessions")
			return
		}
		writeJSON(w, http.StatusOK, sessions)
	}
}

func HandleGetSession(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := repository.LoadSession(r.Context(), mux.Vars(r)["sessionID"])
		if err != nil {
			if repositories.IsNotFound(err) {
				writeError(w, http.StatusNotFound, "Session not found")
				return
			}
			log.Error("failed to load session: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to load session")
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

func writeCoordinatorError(w http.ResponseWriter, err error) {
	if coordinator.IsStopped(err) {
		writeError(w, http.StatusServiceUnavailable, "Session is shutting down")
		return
	}
	log.Error("coordinator request failed: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &messages.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
