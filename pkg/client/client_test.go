package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	handlermocks "github.com/cbodonnell/robocleaner/mocks/github.com/cbodonnell/robocleaner/pkg/api/handlers"
	"github.com/cbodonnell/robocleaner/pkg/api"
	"github.com/cbodonnell/robocleaner/pkg/coordinator"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/cbodonnell/robocleaner/pkg/network"
	"github.com/cbodonnell/robocleaner/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	coordinator *handlermocks.GoalCoordinator
	goals       *handlermocks.GoalRegistry
	network     *network.NetworkManager
	client      *Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	s := &testServer{
		coordinator: handlermocks.NewGoalCoordinator(t),
		goals:       handlermocks.NewGoalRegistry(t),
		network:     network.NewNetworkManager(network.NewNetworkManagerOptions{}),
	}
	server := httptest.NewServer(api.NewRouter(api.NewAPIServerOptions{
		Coordinator: s.coordinator,
		Goals:       s.goals,
		Feedback:    s.network,
	}, log.With("api")))
	t.Cleanup(func() {
		s.network.Close()
		server.Close()
	})

	c, err := NewClient(NewClientOptions{ServerURL: server.URL})
	require.NoError(t, err)
	s.client = c
	return s
}

func TestNewClient(t *testing.T) {
	c, err := NewClient(NewClientOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8080/v1/feedback", c.FeedbackURL())

	c, err = NewClient(NewClientOptions{ServerURL: "https://robot.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "wss://robot.example.com/v1/feedback", c.FeedbackURL())

	_, err = NewClient(NewClientOptions{ServerURL: "ftp://robot.example.com"})
	assert.Error(t, err)
}

func TestClient_SubmitGoal(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	s.coordinator.EXPECT().EvaluateGoal(mock.Anything).Return(coordinator.Verdict{Accepted: true}, nil).Once()
	s.coordinator.EXPECT().OnGoalAccepted(mock.Anything).Return(nil).Once()

	resp, err := s.client.SubmitGoal(ctx, "forward")
	require.NoError(t, err)
	assert.True(t, resp.Accepted)
	_, err = types.ParseGoalID(resp.GoalID)
	assert.NoError(t, err)

	s.coordinator.EXPECT().EvaluateGoal(mock.Anything).Return(coordinator.Verdict{Reason: coordinator.RejectGoalActive}, nil).Once()

	resp, err = s.client.SubmitGoal(ctx, "forward")
	require.NoError(t, err)
	assert.False(t, resp.Accepted)
	assert.Equal(t, coordinator.RejectGoalActive.String(), resp.Reason)
}

func TestClient_CancelGoal(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	goalID := types.NewGoalID()

	s.goals.EXPECT().Get(goalID).Return(goals.Goal{ID: goalID, Status: goals.StatusExecuting}, true).Once()
	s.coordinator.EXPECT().OnGoalCancelled(goalID).Return(coordinator.CancelAccept, nil).Once()

	resp, err := s.client.CancelGoal(ctx, goalID.String())
	require.NoError(t, err)
	assert.True(t, resp.Accepted)

	s.goals.EXPECT().Get(goalID).Return(goals.Goal{}, false).Once()

	_, err = s.client.CancelGoal(ctx, goalID.String())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Goal not found", statusErr.Message)
}

func TestClient_Queries(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	s.coordinator.EXPECT().QueryBatteryStatus().Return(types.BatteryStatus{MaxMoves: 10, MovesLeft: 4}, nil).Once()
	s.coordinator.EXPECT().QueryInitialState().Return(coordinator.InitialStateResponse{
		Success: true,
		State: &types.InitialRobotState{
			Direction: types.DirectionLeft,
			Tile:      'S',
			Position:  types.FieldPos{Row: 2, Col: 3},
		},
	}, nil).Once()
	s.coordinator.EXPECT().PublishFieldMapRevealed().Return(nil).Once()
	s.coordinator.EXPECT().PublishFieldMapCleaned().Return(nil).Once()

	battery, err := s.client.BatteryStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, &messages.BatteryStatus{MaxMoves: 10, MovesLeft: 4}, battery)

	state, err := s.client.InitialState(ctx)
	require.NoError(t, err)
	require.True(t, state.Success)
	require.NotNil(t, state.State)
	assert.Equal(t, "left", state.State.Direction)
	assert.Equal(t, types.FieldPos{Row: 2, Col: 3}, state.State.Position)

	assert.NoError(t, s.client.FieldMapRevealed(ctx))
	assert.NoError(t, s.client.FieldMapCleaned(ctx))
}

func TestFeedbackStream(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := queue.NewInMemoryQueue[*messages.Message](0)
	stream, err := s.client.DialFeedback(ctx, q)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- stream.Start(ctx)
	}()

	require.Eventually(t, func() bool { return s.network.ClientManager.Count() == 1 }, time.Second, 5*time.Millisecond)

	feedback, err := messages.NewMessage(messages.MessageTypeGoalFeedback, &messages.GoalFeedback{GoalID: "goal-1", Progress: 50})
	require.NoError(t, err)
	shutdown, err := messages.NewMessage(messages.MessageTypeShutdown, nil)
	require.NoError(t, err)
	require.NoError(t, s.network.Broadcast(feedback))
	require.NoError(t, s.network.Broadcast(shutdown))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("feedback stream did not stop after shutdown")
	}

	received := q.ReadAllMessages()
	require.Len(t, received, 2)
	assert.Equal(t, messages.MessageTypeGoalFeedback, received[0].Type)
	got := &messages.GoalFeedback{}
	require.NoError(t, messages.DecodePayload(received[0], got))
	assert.Equal(t, "goal-1", got.GoalID)
	assert.Equal(t, messages.MessageTypeShutdown, received[1].Type)
}

func TestFeedbackStream_ServerClose(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := s.client.DialFeedback(ctx, queue.NewInMemoryQueue[*messages.Message](0))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- stream.Start(ctx)
	}()

	require.Eventually(t, func() bool { return s.network.ClientManager.Count() == 1 }, time.Second, 5*time.Millisecond)
	s.network.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("feedback stream did not stop after server close")
	}
}
