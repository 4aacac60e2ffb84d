package ws

import (
	"encoding/json"

	"go.uber.org/zap"

	"mindtrack/internal/model"
)

// Message is the envelope for every event pushed over a socket.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

type userMessage struct {
	userID string
	data   []byte
}

// Hub tracks open connections per user and fans events out to them.
// It implements service.Notifier.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	send       chan userMessage
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		send:       make(chan userMessage, 64),
		logger:     logger,
	}
}

// Run processes registrations and outbound messages. Call once, in its
// own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]struct{})
			}
			h.clients[client.userID][client] = struct{}{}
			h.logger.Debug("websocket client connected", zap.String("userId", client.userID))

		case client := <-h.unregister:
			if set, ok := h.clients[client.userID]; ok {
				if _, ok := set[client]; ok {
					delete(set, client)
					close(client.sendCh)
					if len(set) == 0 {
						delete(h.clients, client.userID)
					}
				}
			}

		case msg := <-h.send:
			for client := range h.clients[msg.userID] {
				select {
				case client.sendCh <- msg.data:
				default:
					// Slow consumer; drop the connection.
					delete(h.clients[msg.userID], client)
					close(client.sendCh)
				}
			}
		}
	}
}

// AssessmentCompleted pushes a freshly scored assessment to the user's
// open connections.
func (h *Hub) AssessmentCompleted(userID string, assessment *model.Assessment) {
	data, err := json.Marshal(Message{Type: "assessment_completed", Payload: assessment})
	if err != nil {
		h.logger.Warn("failed to marshal websocket message", zap.Error(err))
		return
	}
	h.send <- userMessage{userID: userID, data: data}
}
