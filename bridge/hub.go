// Package bridge exposes the scene over a websocket
// Clients push pointer releases and receive one transform snapshot per frame
package bridge

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/arpg/core"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/event"
	"github.com/lixenwraith/arpg/parameter"
)

const maxMessageSize = 4096

type client struct {
	id        uint64
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// Hub tracks connected clients and feeds their pointer releases into the event queue
type Hub struct {
	game     *engine.GameContext
	logger   zerolog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	nextID  uint64

	statClients       *atomic.Int64
	statFramesDropped *atomic.Int64
	statMalformed     *atomic.Int64
}

// NewHub creates a hub bound to the game's event queue
func NewHub(game *engine.GameContext) *Hub {
	return &Hub{
		game:   game,
		logger: game.Logger.With().Str("component", "bridge").Logger(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients:           make(map[*client]struct{}),
		statClients:       game.Status.Ints.Get("bridge.clients"),
		statFramesDropped: game.Status.Ints.Get("bridge.frames_dropped"),
		statMalformed:     game.Status.Ints.Get("bridge.malformed"),
	}
}

// ServeHTTP upgrades the connection and runs the session until the client leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("upgrade failed")
		return
	}

	c := h.register(conn)
	core.Go(func() { h.writePump(c) })
	h.readPump(c)
}

// Handler returns a mux serving the hub at /ws
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	return mux
}

func (h *Hub) register(conn *websocket.Conn) *client {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	c := &client{
		id:   h.nextID,
		conn: conn,
		send: make(chan []byte, parameter.BridgeSendBuffer),
	}
	h.clients[c] = struct{}{}
	h.statClients.Store(int64(len(h.clients)))
	h.logger.Info().Uint64("client", c.id).Str("remote", conn.RemoteAddr().String()).Msg("client connected")
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		h.statClients.Store(int64(len(h.clients)))
		h.logger.Info().Uint64("client", c.id).Msg("client disconnected")
	}
	h.mu.Unlock()

	c.closeOnce.Do(func() {
		c.conn.Close()
	})
}

func (h *Hub) readPump(c *client) {
	defer h.unregister(c)
	c.conn.SetReadLimit(maxMessageSize)

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.statMalformed.Add(1)
			h.logger.Warn().Err(err).Uint64("client", c.id).Msg("discarding malformed message")
			continue
		}

		switch msg.Type {
		case typePointerUp:
			if msg.Target == 0 {
				h.statMalformed.Add(1)
				h.logger.Warn().Uint64("client", c.id).Msg("pointer_up without target")
				continue
			}
			event.EmitPointerRelease(h.game.Events(), core.Entity(msg.Target), msg.hitPosition(), h.game.FrameNumber.Load())
		default:
			h.statMalformed.Add(1)
			h.logger.Debug().Str("type", msg.Type).Uint64("client", c.id).Msg("ignoring unknown message type")
		}
	}
}

func (h *Hub) writePump(c *client) {
	wait := time.Duration(parameter.BridgeWriteWaitMs) * time.Millisecond
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(wait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug().Err(err).Uint64("client", c.id).Msg("write failed")
			// Closing the conn unblocks the read pump, which unregisters
			c.closeOnce.Do(func() {
				c.conn.Close()
			})
			return
		}
	}
}

// Publish queues data to every client; a client whose buffer is full misses this frame
func (h *Hub) Publish(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.statFramesDropped.Add(1)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.closeOnce.Do(func() {
			c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
				time.Now().Add(time.Second))
			c.conn.Close()
		})
	}
}
