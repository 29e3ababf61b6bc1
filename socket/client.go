package socket

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

type Client struct {
	id     string
	roomID string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	cfg    Config
	closed atomic.Bool
}

func NewClient(id, roomID string, hub *Hub, conn *websocket.Conn, cfg Config) *Client {
	return &Client{
		id:     id,
		roomID: roomID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, cfg.SendBuffer),
		cfg:    cfg,
	}
}

func (c *Client) ID() string {
	return c.id
}

// Close marks the client as closing, says goodbye and unblocks its read pump.
func (c *Client) Close() {
	if c.closed.CompareAndSwap(false, true) {
		goingAway := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown")
		_ = c.conn.WriteControl(websocket.CloseMessage, goingAway, time.Now().Add(c.cfg.WriteWait))
		_ = c.conn.Close()
	}
}

// ReadPump consumes inbound frames until the socket fails. Inbound text is
// logged and ignored. onClose runs once the client left the hub.
func (c *Client) ReadPump(onClose func()) {
	defer func() {
		c.closed.Store(true)
		c.hub.Unregister(c)
		_ = c.conn.Close()
		onClose()
	}()

	c.conn.SetReadLimit(c.cfg.MaxMessageBytes)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug("Socket closed unexpectedly", "connection_id", c.id, "error", err)
			}
			return
		}
		c.hub.monitoring.MessagesIn.Add(1)
		c.hub.log.Info("Inbound message ignored", "connection_id", c.id, "room_id", c.roomID, "bytes", len(data))
	}
}

// WritePump writes one text frame per queued payload and keeps the socket
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
			c.hub.monitoring.MessagesOut.Add(1)

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
