package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Send pings to peer with this period
	pingPeriod = 30 * time.Second

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

var (
	ErrConnectionClosed = websocket.ErrCloseSent
	ErrEmptyData        = errors.New("message has no data")
)

// Connection represents a WebSocket connection to a client, with its own
// scoring session. The connection closes itself when the client stays idle
// past the configured timeout.
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	session   *Session
	logger    *log.Logger
	idle      *idleWatchdog
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper. The clock is injectable so
// tests can drive the idle timeout deterministically.
func NewConnection(conn *websocket.Conn, logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	c := &Connection{
		conn:    conn,
		send:    make(chan *Message, 64),
		session: NewSession(),
		logger:  logger.WithPrefix("conn"),
		ctx:     ctx,
		cancel:  cancel,
	}
	c.idle = newIdleWatchdog(clock, idleTimeout, func() {
		c.logger.Info("Closing idle connection")
		_ = c.Close()
	})
	return c
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		c.idle.Stop()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// Done returns a channel closed when the connection shuts down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Send channel closed during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}

		c.idle.Touch()
		c.handleMessage(&msg)
	}
}

// writePump sends queued messages and keepalive pings to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches one client request to the session
func (c *Connection) handleMessage(msg *Message) {
	switch msg.Type {
	case TypeScore:
		var req ScoreData
		if err := unmarshalData(msg, &req); err != nil {
			c.sendError(msg, "bad_request", err.Error())
			return
		}
		result, err := c.session.Score(req)
		if err != nil {
			c.sendError(msg, "bad_request", err.Error())
			return
		}
		c.reply(msg, TypeScoreResult, result)

	case TypeLevel:
		var req LevelData
		if err := unmarshalData(msg, &req); err != nil {
			c.sendError(msg, "bad_request", err.Error())
			return
		}
		result, err := c.session.Level(req)
		if err != nil {
			c.sendError(msg, "bad_request", err.Error())
			return
		}
		c.reply(msg, TypeLevelResult, result)

	default:
		c.sendError(msg, "unknown_type", "unknown message type: "+string(msg.Type))
	}
}

func (c *Connection) reply(req *Message, messageType MessageType, data interface{}) {
	msg, err := NewMessage(messageType, data)
	if err != nil {
		c.logger.Error("Failed to build reply", "error", err)
		return
	}
	msg.RequestID = req.RequestID
	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Failed to send reply", "error", err)
	}
}

func (c *Connection) sendError(req *Message, code, message string) {
	c.reply(req, TypeError, ErrorData{Code: code, Message: message})
}

func unmarshalData(msg *Message, v interface{}) error {
	if len(msg.Data) == 0 {
		return ErrEmptyData
	}
	return json.Unmarshal(msg.Data, v)
}
