package network

import (
	"fmt"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
)

// NetworkManager owns the feedback stream connections.
type NetworkManager struct {
	ClientManager *ClientManager
}

type NewNetworkManagerOptions struct {
	ClientManager *ClientManager
}

func NewNetworkManager(options NewNetworkManagerOptions) *NetworkManager {
	cm := options.ClientManager
	if cm == nil {
		cm = NewClientManager()
	}
	return &NetworkManager{
		ClientManager: cm,
	}
}

// Broadcast serializes the message once and queues it for every client.
// Clients that can not keep up miss the frame.
func (n *NetworkManager) Broadcast(msg *messages.Message) error {
	frame, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	for _, client := range n.ClientManager.GetClients() {
		if !n.ClientManager.Send(client.ID, frame) {
			log.Warn("Dropped %s message for client %d", msg.Type, client.ID)
		}
	}
	return nil
}

// Close disconnects every client.
func (n *NetworkManager) Close() {
	n.ClientManager.DisconnectAll()
}
