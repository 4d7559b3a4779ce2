package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// writeTimeout bounds how long a single frame write may block on a slow peer.
const writeTimeout = 10 * time.Second

// wsConnection adapts a gorilla websocket connection to the realtime
// Connection interface. Gorilla connections support only one concurrent
// writer, so all sends serialize on the mutex.
type wsConnection struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func newWSConnection(conn *websocket.Conn) *wsConnection {
	return &wsConnection{conn: conn}
}

// Send writes one text frame to the peer.
func (c *wsConnection) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Close closes the underlying websocket connection.
func (c *wsConnection) Close() error {
	return c.conn.Close()
}
