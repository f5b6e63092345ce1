package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/nawal123158-wq/kartlichallenge/internal/services/game"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans game events out to the websocket connections watching each game.
// It implements the game service's event sink.
type Hub struct {
	mu    sync.Mutex
	games map[string]map[*websocket.Conn]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		games: make(map[string]map[*websocket.Conn]struct{}),
	}
}

// Add registers a connection as a watcher of a game
func (h *Hub) Add(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	watchers := h.games[gameID]
	if watchers == nil {
		watchers = make(map[*websocket.Conn]struct{})
		h.games[gameID] = watchers
	}
	watchers[conn] = struct{}{}
}

// Remove unregisters and closes a connection
func (h *Hub) Remove(gameID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	watchers := h.games[gameID]
	if watchers == nil {
		return
	}
	delete(watchers, conn)
	_ = conn.Close()
	if len(watchers) == 0 {
		delete(h.games, gameID)
	}
}

// Publish broadcasts an event to every watcher of its game
func (h *Hub) Publish(event *game.Event) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.games[event.GameID]))
	for conn := range h.games[event.GameID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.Remove(event.GameID, conn)
		}
	}
}

// handleWebsocket upgrades the request and parks the connection as a
// watcher until the client goes away
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if _, err := s.authenticate(r); err != nil {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	gameID := r.PathValue("id")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	s.hub.Add(gameID, conn)
	defer s.hub.Remove(gameID, conn)

	// Drain control frames; the feed is one-way
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
