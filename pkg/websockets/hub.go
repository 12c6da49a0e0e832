package websockets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Hub keeps the sockets opened against the local development server and broadcasts to them.
type Hub struct {
	mu     sync.Mutex
	conns  map[string]*websocket.Conn
	logger *slog.Logger
}

// Make sure we conform to the interface
var _ Publisher = (*Hub)(nil)

// NewHub creates an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{conns: make(map[string]*websocket.Conn), logger: logger}
}

// Attach registers an upgraded connection under connectionID.
func (h *Hub) Attach(connectionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[connectionID] = conn
}

// Detach forgets the connection. The caller closes it.
func (h *Hub) Detach(connectionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, connectionID)
}

// Len returns the number of attached connections.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Publish writes the message to every attached connection. Connections that fail the write are dropped.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// gorilla connections allow one concurrent writer, so writes happen under the lock.
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.conns {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Error("failed to write to local connection, dropping it", "connectionId", id, "error", err)
			delete(h.conns, id)
		}
	}
	return nil
}
