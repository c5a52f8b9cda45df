package chat

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/solenechen/empath/internal/analysis/emotion"
	"github.com/solenechen/empath/internal/service/bot"
)

// WebSocketHandler serves a live conversation over one socket: every inbound
// text frame is processed as a turn and answered with the full turn payload.
type WebSocketHandler struct {
	botSvc   *bot.Service
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates the websocket chat handler.
func NewWebSocketHandler(botSvc *bot.Service) *WebSocketHandler {
	return &WebSocketHandler{
		botSvc: botSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Text            string `json:"text"`
	CulturalContext string `json:"culturalContext,omitempty"`
}

type outboundMessage struct {
	Type  string `json:"type"`
	Turn  any    `json:"turn,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error for session=%s: %v", sessionID, err)
			}
			return
		}

		var override emotion.Context
		if inbound.CulturalContext != "" {
			parsed, ok := emotion.ParseContext(inbound.CulturalContext)
			if !ok {
				h.writeError(conn, "unknown cultural context")
				continue
			}
			override = parsed
		}

		turn, err := h.botSvc.ProcessTurn(r.Context(), sessionID, inbound.Text, override)
		if err != nil {
			h.writeError(conn, err.Error())
			continue
		}

		if err := conn.WriteJSON(outboundMessage{Type: "turn", Turn: turn}); err != nil {
			log.Printf("[ws] write error for session=%s: %v", sessionID, err)
			return
		}
	}
}

func (h *WebSocketHandler) writeError(conn *websocket.Conn, message string) {
	if err := conn.WriteJSON(outboundMessage{Type: "error", Error: message}); err != nil {
		log.Printf("[ws] failed to write error frame: %v", err)
	}
}
