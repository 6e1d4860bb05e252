package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait = 5 * time.Second
	pingWait  = 3 * time.Second
)

var ErrConnClosed = errors.New("connection closed")

// Conn is a websocket connection that is safe for concurrent writers.
type Conn struct {
	conn    *websocket.Conn
	id      uuid.UUID
	doneCtx context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
}

func NewConn(ctx context.Context, conn *websocket.Conn) *Conn {
	ctx, cancel := context.WithCancel(ctx)

	return &Conn{
		conn:    conn,
		id:      uuid.New(),
		doneCtx: ctx,
		cancel:  cancel,
	}
}

func (c *Conn) ID() uuid.UUID {
	return c.id
}

// Done is closed when the connection is closed or its parent context ends.
func (c *Conn) Done() <-chan struct{} {
	return c.doneCtx.Done()
}

// Health pings the peer. It fails once the connection is closed or the ping cannot be written.
func (c *Conn) Health() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.doneCtx.Done():
		return ErrConnClosed
	default:
	}

	if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWait)); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Send writes msg as JSON.
func (c *Conn) Send(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.doneCtx.Done():
		return ErrConnClosed
	default:
	}

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	return c.conn.WriteJSON(msg)
}

// DrainReads discards incoming frames so control frames are processed, and
// cancels the connection once the peer goes away.
func (c *Conn) DrainReads() {
	defer c.cancel()
	for {
		if _, _, err := c.conn.NextReader(); err != nil {
			return
		}
	}
}

func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}

	if c.conn != nil {
		_ = c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		return c.conn.Close()
	}
	return nil
}
