package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/cbodonnell/robocleaner/pkg/queue"
	"nhooyr.io/websocket"
)

// FeedbackStream receives goal feedback, goal results and lifecycle
// notifications pushed by the server.
type FeedbackStream struct {
	conn         *websocket.Conn
	messageQueue queue.Queue[*messages.Message]
	logger       *log.Logger
}

// DialFeedback connects to the feedback stream. Received messages are enqueued
// on messageQueue in arrival order.
func (c *Client) DialFeedback(ctx context.Context, messageQueue queue.Queue[*messages.Message]) (*FeedbackStream, error) {
	conn, _, err := websocket.Dial(ctx, c.FeedbackURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial feedback stream: %w", err)
	}
	return &FeedbackStream{
		conn:         conn,
		messageQueue: messageQueue,
		logger:       c.logger.With("feedback"),
	}, nil
}

// Start reads until the server closes the stream, a shutdown message arrives or
// ctx is done. A normal closure is not an error.
func (s *FeedbackStream) Start(ctx context.Context) error {
	defer s.conn.Close(websocket.StatusNormalClosure, "")

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("failed to read from feedback stream: %w", err)
		}

		msg, err := messages.DeserializeMessage(data)
		if err != nil {
			s.logger.Error("Failed to deserialize message: %v", err)
			continue
		}
		s.logger.Debug("Received %s message", msg.Type)

		if err := s.messageQueue.Enqueue(msg); err != nil {
			s.logger.Error("Failed to enqueue message: %v", err)
		}
		if msg.Type == messages.MessageTypeShutdown {
			return nil
		}
	}
}

// Close ends the stream without waiting for Start to return.
func (s *FeedbackStream) Close() error {
	return s.conn.Close(websocket.StatusNormalClosure, "")
}
