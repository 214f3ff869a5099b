package plot

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/raykavin/goplotly/pkg/logger"
)

// Message types understood by the preview page.
const (
	MessageReact    = "react"
	MessageRestyle  = "restyle"
	MessageRelayout = "relayout"
	MessageAnimate  = "animate"
)

// WebSocketMessage represents a message sent over WebSocket
type WebSocketMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type broadcast struct {
	plotID string
	msg    WebSocketMessage
}

// documentLoader returns the current document of a plot.
type documentLoader func(id string) (json.RawMessage, error)

// WebSocketManager handles WebSocket connections
type WebSocketManager struct {
	sync.RWMutex
	clients       map[*websocket.Conn]string // map of connection to plot id
	upgrader      websocket.Upgrader
	broadcastChan chan broadcast
	log           logger.Logger
	load          documentLoader
	closeOnce     sync.Once
	done          chan struct{}
}

// NewWebSocketManager creates a new WebSocket manager
func NewWebSocketManager(log logger.Logger, load documentLoader) *WebSocketManager {
	manager := &WebSocketManager{
		clients: make(map[*websocket.Conn]string),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		broadcastChan: make(chan broadcast, 100),
		log:           log,
		load:          load,
		done:          make(chan struct{}),
	}

	// Start broadcast handler
	go manager.handleBroadcasts()

	return manager
}

// handleBroadcasts processes messages from the broadcast channel
func (m *WebSocketManager) handleBroadcasts() {
	for {
		select {
		case <-m.done:
			return
		case b := <-m.broadcastChan:
			m.RLock()
			for conn, plotID := range m.clients {
				if plotID != b.plotID {
					continue
				}

				if err := conn.WriteJSON(b.msg); err != nil {
					m.log.WithError(err).Error("Error sending WebSocket message")
					// The read loop of the client removes it once the close is detected
					conn.Close()
				}
			}
			m.RUnlock()
		}
	}
}

// Broadcast queues msg for every client watching plotID.
func (m *WebSocketManager) Broadcast(plotID string, msg WebSocketMessage) {
	select {
	case <-m.done:
	case m.broadcastChan <- broadcast{plotID: plotID, msg: msg}:
	}
}

// Subscribers returns how many clients watch plotID.
func (m *WebSocketManager) Subscribers(plotID string) int {
	m.RLock()
	defer m.RUnlock()

	count := 0
	for _, id := range m.clients {
		if id == plotID {
			count++
		}
	}
	return count
}

// HandleWebSocket handles WebSocket connections
func (m *WebSocketManager) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	plotID := r.URL.Query().Get("plot")
	if plotID == "" {
		http.Error(w, "Missing plot parameter", http.StatusBadRequest)
		return
	}

	doc, err := m.load(plotID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		m.log.WithError(err).Error("Failed to upgrade connection to WebSocket")
		return
	}

	// The current document goes out before any broadcast reaches the client
	m.Lock()
	if err := conn.WriteJSON(WebSocketMessage{Type: MessageReact, Payload: doc}); err != nil {
		m.Unlock()
		m.log.WithError(err).Error("Error sending initial document")
		conn.Close()
		return
	}
	m.clients[conn] = plotID
	clientCount := len(m.clients)
	m.Unlock()

	m.log.WithFields(map[string]any{"plot": plotID, "clients": clientCount}).Info("WebSocket client connected")

	go m.handleClient(conn)
}

// handleClient processes messages from a client
func (m *WebSocketManager) handleClient(conn *websocket.Conn) {
	defer func() {
		m.Lock()
		delete(m.clients, conn)
		remaining := len(m.clients)
		m.Unlock()
		conn.Close()
		m.log.WithField("clients", remaining).Info("WebSocket client disconnected")
	}()

	conn.SetPingHandler(func(appData string) error {
		return conn.WriteControl(websocket.PongMessage, []byte{}, time.Now().Add(10*time.Second))
	})

	// Clients only send control frames; reading detects disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				m.log.WithError(err).Error("WebSocket read error")
			}
			return
		}
	}
}

// Close stops broadcasting and disconnects every client.
func (m *WebSocketManager) Close() {
	m.closeOnce.Do(func() {
		close(m.done)

		m.Lock()
		for conn := range m.clients {
			conn.Close()
		}
		m.Unlock()
	})
}
