package network

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/cbodonnell/robocleaner/pkg/messages"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 5 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  messages.MessageBufferSize,
	WriteBufferSize: messages.MessageBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeHTTP upgrades a controller connection to the feedback stream. The stream
// is push only; anything the controller sends is discarded.
func (n *NetworkManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}

	client, err := n.ClientManager.ConnectClient(conn)
	if err != nil {
		log.Error("Failed to connect client: %v", err)
		conn.Close()
		return
	}
	log.Info("Client %d connected from %s", client.ID, conn.RemoteAddr().String())

	go n.writePump(client)
	n.readPump(client)
}

// readPump runs until the connection is closed by either side.
func (n *NetworkManager) readPump(client *Client) {
	defer func() {
		n.ClientManager.DisconnectClient(client.ID)
		log.Info("Client %d disconnected", client.ID)
	}()

	conn := client.WSConn
	conn.SetReadLimit(messages.MessageBufferSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("Error reading WebSocket message from client %d: %v", client.ID, err)
			}
			return
		}
		log.Trace("Discarding message from client %d", client.ID)
	}
}

// writePump is the only writer of the connection.
func (n *NetworkManager) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.WSConn.Close()
	}()

	conn := client.WSConn
	for {
		select {
		case frame, ok := <-client.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				log.Error("Failed to write message to client %d: %v", client.ID, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadMessageFromWS reads a Message from a WebSocket connection
func ReadMessageFromWS(conn *websocket.Conn) (*messages.Message, error) {
	_, message, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	msg, err := messages.DeserializeMessage(message)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %w", err)
	}

	return msg, nil
}
