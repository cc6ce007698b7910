package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	handlermocks "github.com/cbodonnell/robocleaner/mocks/github.com/cbodonnell/robocleaner/pkg/api/handlers"
	repositorymocks "github.com/cbodonnell/robocleaner/mocks/github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/cbodonnell/robocleaner/pkg/coordinator"
	"github.com/cbodonnell/robocleaner/pkg/dispatch"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/cbodonnell/robocleaner/pkg/network"
	"github.com/cbodonnell/robocleaner/pkg/repositories"
	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	coordinator *handlermocks.GoalCoordinator
	goals       *handlermocks.GoalRegistry
	repository  *repositorymocks.Repository
	handler     http.Handler
}

func newTestAPI(t *testing.T, feedback http.Handler) *testAPI {
	t.Helper()
	a := &testAPI{
		coordinator: handlermocks.NewGoalCoordinator(t),
		goals:       handlermocks.NewGoalRegistry(t),
		repository:  repositorymocks.NewRepository(t),
	}
	a.handler = NewRouter(NewAPIServerOptions{
		Coordinator: a.coordinator,
		Goals:       a.goals,
		Repository:  a.repository,
		Feedback:    feedback,
	}, log.With("api"))
	return a
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestSubmitGoal(t *testing.T) {
	tests := []struct {
		name       string
		moveType   string
		verdict    coordinator.Verdict
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "accepted",
			moveType:   "forward",
			verdict:    coordinator.Verdict{Accepted: true},
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "unknown move type",
			moveType:   "jump",
			verdict:    coordinator.Verdict{Reason: coordinator.RejectUnknownMoveType},
			wantStatus: http.StatusBadRequest,
			wantReason: coordinator.RejectUnknownMoveType.String(),
		},
		{
			name:       "goal already active",
			moveType:   "rotate_left",
			verdict:    coordinator.Verdict{Reason: coordinator.RejectGoalActive},
			wantStatus: http.StatusConflict,
			wantReason: coordinator.RejectGoalActive.String(),
		},
		{
			name:       "stopped",
			moveType:   "forward",
			verdict:    coordinator.Verdict{Reason: coordinator.RejectStopped},
			err:        dispatch.ErrStopped,
			wantStatus: http.StatusServiceUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAPI(t, nil)
			wantMoveType := types.ParseMoveType(tt.moveType)

			var submitted types.MoveRequest
			a.coordinator.EXPECT().EvaluateGoal(mock.MatchedBy(func(req types.MoveRequest) bool {
				return req.MoveType == wantMoveType
			})).Run(func(req types.MoveRequest) {
				submitted = req
			}).Return(tt.verdict, tt.err).Once()
			if tt.verdict.Accepted {
				a.coordinator.EXPECT().OnGoalAccepted(mock.Anything).Return(nil).Once()
			}

			rec := a.do(t, http.MethodPost, "/v1/goals", &messages.GoalRequest{MoveType: tt.moveType})
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err != nil {
				return
			}

			resp := decode[messages.GoalResponse](t, rec)
			assert.Equal(t, tt.verdict.Accepted, resp.Accepted)
			assert.Equal(t, tt.wantReason, resp.Reason)
			if tt.verdict.Accepted {
				assert.Equal(t, submitted.ID.String(), resp.GoalID)
				a.coordinator.AssertCalled(t, "OnGoalAccepted", submitted)
			} else {
				a.coordinator.AssertNotCalled(t, "OnGoalAccepted", mock.Anything)
			}
		})
	}
}

func TestSubmitGoal_BadRequest(t *testing.T) {
	a := newTestAPI(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/goals", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelGoal(t *testing.T) {
	goalID := types.NewGoalID()

	t.Run("executing goal", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.goals.EXPECT().Get(goalID).Return(goals.Goal{ID: goalID, Status: goals.StatusExecuting}, true).Once()
		a.coordinator.EXPECT().OnGoalCancelled(goalID).Return(coordinator.CancelAccept, nil).Once()

		rec := a.do(t, http.MethodDelete, "/v1/goals/"+goalID.String(), nil)
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, messages.CancelGoalResponse{GoalID: goalID.String(), Accepted: true}, decode[messages.CancelGoalResponse](t, rec))
	})

	t.Run("finished goal", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.goals.EXPECT().Get(goalID).Return(goals.Goal{ID: goalID, Status: goals.StatusSucceeded}, true).Once()

		rec := a.do(t, http.MethodDelete, "/v1/goals/"+goalID.String(), nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown goal", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.goals.EXPECT().Get(goalID).Return(goals.Goal{}, false).Once()

		rec := a.do(t, http.MethodDelete, "/v1/goals/"+goalID.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		a := newTestAPI(t, nil)

		rec := a.do(t, http.MethodDelete, "/v1/goals/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetGoal(t *testing.T) {
	a := newTestAPI(t, nil)
	goalID := types.NewGoalID()
	a.goals.EXPECT().Get(goalID).Return(goals.Goal{
		ID:       goalID,
		MoveType: types.MoveTypeForward,
		Status:   goals.StatusAborted,
		Result: &goals.Result{
			GoalID:       goalID,
			MoveType:     types.MoveTypeForward,
			Status:       goals.StatusAborted,
			PenaltyTurns: 3,
		},
	}, true).Once()

	rec := a.do(t, http.MethodGet, "/v1/goals/"+goalID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	status := decode[messages.GoalStatus](t, rec)
	assert.Equal(t, "aborted", status.Status)
	require.NotNil(t, status.Result)
	assert.Equal(t, 3, status.Result.PenaltyTurns)
}

func TestBatteryStatus(t *testing.T) {
	a := newTestAPI(t, nil)
	a.coordinator.EXPECT().QueryBatteryStatus().Return(types.BatteryStatus{MaxMoves: 20, MovesLeft: 7}, nil).Once()

	rec := a.do(t, http.MethodGet, "/v1/battery", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, messages.BatteryStatus{MaxMoves: 20, MovesLeft: 7}, decode[messages.BatteryStatus](t, rec))
}

func TestInitialState(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.coordinator.EXPECT().QueryInitialState().Return(coordinator.InitialStateResponse{
			Success: true,
			State: &types.InitialRobotState{
				Direction: types.DirectionUp,
				Tile:      'S',
				Position:  types.FieldPos{Row: 1, Col: 1},
				Battery:   types.BatteryStatus{MaxMoves: 20, MovesLeft: 20},
			},
		}, nil).Once()

		rec := a.do(t, http.MethodGet, "/v1/initial-state", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, messages.InitialStateResponse{
			Success: true,
			State: &messages.InitialRobotState{
				Direction: "up",
				Tile:      "S",
				Position:  types.FieldPos{Row: 1, Col: 1},
				Battery:   messages.BatteryStatus{MaxMoves: 20, MovesLeft: 20},
			},
		}, decode[messages.InitialStateResponse](t, rec))
	})

	t.Run("major error", func(t *testing.T) {
		a := newTestAPI(t, nil)
		a.coordinator.EXPECT().QueryInitialState().Return(coordinator.InitialStateResponse{
			ErrorReason: "field map has no start tile",
		}, nil).Once()

		rec := a.do(t, http.MethodGet, "/v1/initial-state", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[messages.InitialStateResponse](t, rec)
		assert.False(t, resp.Success)
		assert.Nil(t, resp.State)
		assert.Equal(t, "field map has no start tile", resp.ErrorReason)
	})
}

func TestFieldMapNotifications(t *testing.T) {
	a := newTestAPI(t, nil)
	a.coordinator.EXPECT().PublishFieldMapRevealed().Return(nil).Once()
	a.coordinator.EXPECT().PublishFieldMapCleaned().Return(dispatch.ErrStopped).Once()

	assert.Equal(t, http.StatusAccepted, a.do(t, http.MethodPost, "/v1/field-map/revealed", nil).Code)
	assert.Equal(t, http.StatusServiceUnavailable, a.do(t, http.MethodPost, "/v1/field-map/cleaned", nil).Code)
}

func TestSessions(t *testing.T) {
	a := newTestAPI(t, nil)
	finishedAt := time.Now().UTC().Truncate(time.Millisecond)
	a.repository.EXPECT().ListSessions(mock.Anything, 5).Return([]*models.Session{
		{ID: "session-1", Outcome: "won", FinishedAt: finishedAt},
	}, nil).Once()
	a.repository.EXPECT().LoadSession(mock.Anything, "missing").Return(nil, &repositories.ErrNotFound{}).Once()

	rec := a.do(t, http.MethodGet, "/v1/sessions?limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sessions := decode[[]models.Session](t, rec)
	require.Len(t, sessions, 1)
	assert.Equal(t, "won", sessions[0].Outcome)

	assert.Equal(t, http.StatusBadRequest, a.do(t, http.MethodGet, "/v1/sessions?limit=0", nil).Code)
	assert.Equal(t, http.StatusNotFound, a.do(t, http.MethodGet, "/v1/sessions/missing", nil).Code)
}

func TestCORSPreflight(t *testing.T) {
	a := newTestAPI(t, nil)

	rec := a.do(t, http.MethodOptions, "/v1/goals", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestFeedbackUpgrade(t *testing.T) {
	nm := network.NewNetworkManager(network.NewNetworkManagerOptions{})
	a := newTestAPI(t, nm)
	server := httptest.NewServer(a.handler)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/v1/feedback", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return nm.ClientManager.Count() == 1 }, time.Second, 5*time.Millisecond)

	msg, err := messages.NewMessage(messages.MessageTypeFieldMapRevealed, nil)
	require.NoError(t, err)
	require.NoError(t, nm.Broadcast(msg))

	conn.SetReadDeadline(time.Now().Add(time.Second))
	got, err := network.ReadMessageFromWS(conn)
	require.NoError(t, err)
	assert.Equal(t, messages.MessageTypeFieldMapRevealed, got.Type)
}
