package chat

import (
	"log/slog"
	"sync"

	"github.com/coder/websocket"
)

// SessionManager tracks the active chat connection per visitor. A visitor has
// at most one open chat; a new connection replaces the old one.
type SessionManager struct {
	mu     sync.RWMutex
	active map[string]*websocket.Conn
}

// NewSessionManager creates a new session manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{
		active: make(map[string]*websocket.Conn),
	}
}

// GetActive returns the active connection for a visitor.
func (m *SessionManager) GetActive(visitorID string) *websocket.Conn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active[visitorID]
}

// Register adds a new chat connection for a visitor, closing any previous one.
func (m *SessionManager) Register(visitorID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, exists := m.active[visitorID]; exists && existing != conn {
		_ = existing.Close(websocket.StatusNormalClosure, "chat replaced")
	}

	m.active[visitorID] = conn
	slog.Info("Chat session registered", "visitor_id", visitorID)
}

// Unregister removes a chat connection for a visitor. Stale unregisters (a
// connection that was already replaced) are ignored.
func (m *SessionManager) Unregister(visitorID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if current, exists := m.active[visitorID]; exists && current == conn {
		delete(m.active, visitorID)
		slog.Info("Chat session unregistered", "visitor_id", visitorID)
	}
}

// CloseSession forcefully terminates the visitor's chat, if any.
func (m *SessionManager) CloseSession(visitorID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	conn, ok := m.active[visitorID]
	if !ok {
		return
	}
	_ = conn.Close(websocket.StatusNormalClosure, "chat closed")
	delete(m.active, visitorID)
	slog.Info("Chat session closed", "visitor_id", visitorID)
}
