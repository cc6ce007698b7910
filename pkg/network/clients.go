package network

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ClientSendBufferSize is the number of frames buffered per client before
	// frames are dropped for it
	ClientSendBufferSize = 256
)

// Client represents a connected controller
type Client struct {
	ID     uint32
	WSConn *websocket.Conn
	send   chan []byte
}

// ClientManager manages connected controllers
type ClientManager struct {
	clients     map[uint32]*Client
	clientsLock sync.RWMutex
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients: make(map[uint32]*Client),
	}
}

// GetClients returns a snapshot of all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

// ConnectClient adds a new client to the manager and returns it
func (cm *ClientManager) ConnectClient(conn *websocket.Conn) (*Client, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %w", err)
	}
	client := &Client{
		ID:     clientID,
		WSConn: conn,
		send:   make(chan []byte, ClientSendBufferSize),
	}
	cm.clients[clientID] = client

	return client, nil
}

// DisconnectClient removes a client from the manager and ends its writer.
func (cm *ClientManager) DisconnectClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	client, ok := cm.clients[clientID]
	if !ok {
		return
	}
	close(client.send)
	delete(cm.clients, clientID)
}

// DisconnectAll removes every client.
func (cm *ClientManager) DisconnectAll() {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	for id, client := range cm.clients {
		close(client.send)
		delete(cm.clients, id)
	}
}

// Send queues a frame for the client. It reports false if the client is gone
// or its buffer is full.
func (cm *ClientManager) Send(clientID uint32, frame []byte) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()

	client, ok := cm.clients[clientID]
	if !ok {
		return false
	}
	select {
	case client.send <- frame:
		return true
	default:
		return false
	}
}

func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := rand.Uint32()
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
