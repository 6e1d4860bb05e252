package ws

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/metrics"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub tracks every active websocket connection so they can be closed on shutdown.
type ConnectionHub struct {
	service string
	clients map[uuid.UUID]*Conn
	l       logger.Logger
	mu      sync.Mutex
}

func NewConnHub(service string, l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		service: service,
		clients: make(map[uuid.UUID]*Conn),
		l:       l,
	}
}

// Add registers a connection.
func (h *ConnectionHub) Add(c *Conn) error {
	if c == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.id] = c
	metrics.WebSocketConnectionsGauge.WithLabelValues(h.service).Inc()

	return nil
}

// Delete closes and forgets the connection with the given id.
func (h *ConnectionHub) Delete(id uuid.UUID) error {
	h.mu.Lock()
	conn, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
		metrics.WebSocketConnectionsGauge.WithLabelValues(h.service).Dec()
	}
	h.mu.Unlock()

	if !ok {
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		ctx := wrap.WithAction(context.Background(), "ws_connection_delete")
		h.l.Debug(ctx, "failed to close conn", "conn_id", id.String(), "err", err.Error())
	}
	return nil
}

// Len returns the number of tracked connections.
func (h *ConnectionHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close closes every websocket connection.
func (h *ConnectionHub) Close() {
	ctx := wrap.WithAction(context.Background(), "hub_close")

	h.mu.Lock()
	ids := make([]uuid.UUID, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		_ = h.Delete(id)
	}

	h.l.Info(ctx, "all websocket connections closed", "count", len(ids))
}

// Sweep pings every connection and drops those that fail. It returns how many were dropped.
func (h *ConnectionHub) Sweep(ctx context.Context) int {
	h.mu.Lock()
	conns := make([]*Conn, 0, len(h.clients))
	for _, c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	dropped := 0
	for _, c := range conns {
		if err := c.Health(); err != nil {
			h.l.Debug(ctx, "dropping unhealthy websocket", "conn_id", c.ID().String(), "error", err.Error())
			if h.Delete(c.ID()) == nil {
				dropped++
			}
		}
	}
	return dropped
}

// KeepAlive sweeps the hub every interval until ctx is done.
func (h *ConnectionHub) KeepAlive(ctx context.Context, interval time.Duration) {
	ctx = wrap.WithAction(ctx, "ws_keep_alive")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := h.Sweep(ctx); n > 0 {
				h.l.Info(ctx, "unhealthy websockets dropped", "count", n)
			}
		}
	}
}
