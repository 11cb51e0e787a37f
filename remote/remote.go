// Package remote relays console command lines between viewer instances
// over WebSocket.
package remote

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub broadcasts every text message received from a client to all the
// other clients.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
	logPrint func(msg interface{})
}

func NewHub(logPrint func(msg interface{})) *Hub {
	if logPrint == nil {
		logPrint = func(interface{}) {}
	}
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logPrint: logPrint,
	}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logPrint(err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logPrint(err)
			}
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		h.Broadcast(msg, conn)
	}
}

// Broadcast sends msg to every client except from.
func (h *Hub) Broadcast(msg []byte, from *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if c == from {
			continue
		}
		if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logPrint(err)
			c.Close()
			delete(h.clients, c)
		}
	}
}

func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Client is a connection to a Hub.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send writes a command line. It is safe for concurrent use.
func (c *Client) Send(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

// Receive blocks until the next command line arrives.
func (c *Client) Receive() (string, error) {
	for {
		typ, msg, err := c.conn.ReadMessage()
		if err != nil {
			return "", err
		}
		if typ == websocket.TextMessage {
			return string(msg), nil
		}
	}
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
