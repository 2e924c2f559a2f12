package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/familybridge/familybridge/internal/config"
	"github.com/familybridge/familybridge/internal/domain"
	"github.com/familybridge/familybridge/internal/identity"
	"github.com/familybridge/familybridge/internal/session"
	"github.com/google/uuid"
)

// WebSocketHandler serves the attorney chat over a WebSocket connection.
type WebSocketHandler struct {
	sessions *session.Store
	sm       *SessionManager
	script   *Script
	sim      config.SimConfig
	isDev    bool
}

// NewWebSocketHandler creates a new chat handler.
func NewWebSocketHandler(sessions *session.Store, sm *SessionManager, script *Script, sim config.SimConfig, isDev bool) *WebSocketHandler {
	return &WebSocketHandler{
		sessions: sessions,
		sm:       sm,
		script:   script,
		sim:      sim,
		isDev:    isDev,
	}
}

// clientMessage is what the browser sends.
type clientMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// serverEvent is what the server sends.
type serverEvent struct {
	Type     string              `json:"type"`
	Message  *domain.ChatMessage `json:"message,omitempty"`
	Error    string              `json:"error,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
}

// ServeHTTP upgrades to WebSocket and runs the scripted conversation. The
// chat requires both a case record and a chosen attorney in navigation state;
// without them the client is told to redirect to the intake entry point.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitorID := identity.VisitorIDFromContext(r.Context())
	slog.Info("Chat connection request", "visitor_id", visitorID, "ip", r.RemoteAddr)

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "visitor_id", visitorID)
		return
	}
	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "chat ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "visitor_id", visitorID)
		}
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	caseRec, attorney, err := h.sessions.RequireCaseAndAttorney(visitorID)
	if err != nil {
		slog.Warn("Chat requested without case or attorney", "visitor_id", visitorID)
		_ = h.writeEvent(ctx, ws, serverEvent{
			Type:     "error",
			Error:    "missing_navigation_state",
			Redirect: session.RedirectTarget,
		})
		return
	}

	h.sm.Register(visitorID, ws)
	defer h.sm.Unregister(visitorID, ws)

	// Seed the conversation with the scripted greeting. Tearing the
	// connection down during the delay discards it.
	if err := h.wait(ctx, h.sim.GreetingDelay); err != nil {
		return
	}
	greeting := &domain.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    domain.SenderAttorney,
		Text:      Greeting(caseRec, attorney),
		Timestamp: clockTime(),
	}
	if err := h.writeEvent(ctx, ws, serverEvent{Type: "greeting", Message: greeting}); err != nil {
		return
	}

	for {
		var msg clientMessage
		if err := h.readJSON(ctx, ws, &msg); err != nil {
			if !errors.Is(err, context.Canceled) {
				slog.Debug("Chat read ended", "error", err, "visitor_id", visitorID)
			}
			return
		}
		if msg.Type != "message" || msg.Text == "" {
			continue
		}

		// One reply per message, in order. The typing indicator covers the
		// randomized think delay.
		if err := h.writeEvent(ctx, ws, serverEvent{Type: "typing"}); err != nil {
			return
		}
		if err := h.wait(ctx, h.replyDelay()); err != nil {
			return
		}

		reply := &domain.ChatMessage{
			ID:        uuid.NewString(),
			Sender:    domain.SenderAttorney,
			Text:      h.script.Reply(msg.Text, caseRec, attorney),
			Timestamp: clockTime(),
		}
		slog.Info("Chat reply", "visitor_id", visitorID, "rule", h.script.MatchedRule(msg.Text))
		if err := h.writeEvent(ctx, ws, serverEvent{Type: "reply", Message: reply}); err != nil {
			return
		}
	}
}

func (h *WebSocketHandler) replyDelay() time.Duration {
	min, max := h.sim.ReplyDelayMin, h.sim.ReplyDelayMax
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

func (h *WebSocketHandler) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (h *WebSocketHandler) writeEvent(ctx context.Context, ws *websocket.Conn, ev serverEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return ws.Write(ctx, websocket.MessageText, data)
}

func (h *WebSocketHandler) readJSON(ctx context.Context, ws *websocket.Conn, v any) error {
	_, data, err := ws.Read(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func clockTime() string {
	return time.Now().Format("3:04 PM")
}
