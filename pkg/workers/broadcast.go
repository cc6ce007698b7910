package workers

import (
	"context"
	"sync"

	"github.com/cbodonnell/robocleaner/pkg/coordinator"
	"github.com/cbodonnell/robocleaner/pkg/goals"
	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
)

// BroadcastMessageChannelSize is the number of messages buffered between the
// game and the broadcast worker
const BroadcastMessageChannelSize = 1024

// MessageBroadcaster sends a message to every connected controller.
type MessageBroadcaster interface {
	Broadcast(msg *messages.Message) error
}

type BroadcastMessageWorker struct {
	broadcaster          MessageBroadcaster
	broadcastMessageChan <-chan BroadcastMessage
}

type BroadcastMessage struct {
	Type    string
	Message interface{}
}

type NewBroadcastMessageWorkerOptions struct {
	Broadcaster          MessageBroadcaster
	BroadcastMessageChan <-chan BroadcastMessage
}

func NewBroadcastMessageWorker(opts NewBroadcastMessageWorkerOptions) *BroadcastMessageWorker {
	return &BroadcastMessageWorker{
		broadcaster:          opts.Broadcaster,
		broadcastMessageChan: opts.BroadcastMessageChan,
	}
}

// Start sends messages until ctx is done or the channel is closed. Messages
// still buffered when the channel is closed are sent first.
func (w *BroadcastMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-w.broadcastMessageChan:
			if !ok {
				return
			}
			if err := w.broadcast(msg); err != nil {
				log.Error("Failed to broadcast %s message: %v", msg.Type, err)
			}
		}
	}
}

func (w *BroadcastMessageWorker) broadcast(msg BroadcastMessage) error {
	m, err := messages.NewMessage(msg.Type, msg.Message)
	if err != nil {
		return err
	}
	return w.broadcaster.Broadcast(m)
}

// Broadcaster turns goal feedback, goal results and lifecycle notifications into
// broadcast messages. It never blocks its caller: when the worker falls behind,
// messages are dropped.
type Broadcaster struct {
	lock                 sync.RWMutex
	closed               bool
	broadcastMessageChan chan<- BroadcastMessage
}

func NewBroadcaster(broadcastMessageChan chan<- BroadcastMessage) *Broadcaster {
	return &Broadcaster{broadcastMessageChan: broadcastMessageChan}
}

func (b *Broadcaster) PublishFeedback(feedback goals.Feedback) {
	b.send(BroadcastMessage{
		Type:    messages.MessageTypeGoalFeedback,
		Message: messages.NewGoalFeedback(feedback),
	})
}

func (b *Broadcaster) PublishResult(result goals.Result) {
	b.send(BroadcastMessage{
		Type:    messages.MessageTypeGoalResult,
		Message: messages.NewGoalResult(result),
	})
}

// Notify maps coordinator notifications to their stream message types.
func (b *Broadcaster) Notify(notification coordinator.Notification) {
	switch notification {
	case coordinator.NotificationFieldMapRevealed:
		b.send(BroadcastMessage{Type: messages.MessageTypeFieldMapRevealed})
	case coordinator.NotificationFieldMapCleaned:
		b.send(BroadcastMessage{Type: messages.MessageTypeFieldMapCleaned})
	case coordinator.NotificationShutdown:
		b.send(BroadcastMessage{Type: messages.MessageTypeShutdown})
	default:
		log.Warn("Unknown notification: %s", notification)
	}
}

// Close closes the channel. Messages published afterwards are dropped, and the
// worker stops once it sent what was already buffered.
func (b *Broadcaster) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.broadcastMessageChan)
}

func (b *Broadcaster) send(msg BroadcastMessage) {
	b.lock.RLock()
	defer b.lock.RUnlock()
	if b.closed {
		log.Debug("Broadcaster closed, dropping %s message", msg.Type)
		return
	}

	select {
	case b.broadcastMessageChan <- msg:
	default:
		log.Warn("Broadcast channel full, dropping %s message", msg.Type)
	}
}
