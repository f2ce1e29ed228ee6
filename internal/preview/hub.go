package preview

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// RenderFunc renders the latest saved document of a project to markup.
// It runs on hub goroutines, so implementations must be safe for
// concurrent use.
type RenderFunc func(projectID string) (string, error)

type Room struct {
	projectID string
	clients   map[string]*Client // clientID -> client
}

func NewRoom(projectID string) *Room {
	return &Room{
		projectID: projectID,
		clients:   make(map[string]*Client),
	}
}

// Hub fans rendered previews out to the clients watching each project.
type Hub struct {
	mu           sync.RWMutex
	rooms        map[string]*Room // projectID -> room
	register     chan *Client
	unregister   chan *Client
	renderLatest RenderFunc
}

func NewHub(renderLatest RenderFunc) *Hub {
	return &Hub{
		rooms:        make(map[string]*Room),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		renderLatest: renderLatest,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

// BroadcastPreview pushes rendered markup to every client watching the
// project. Safe to call from any goroutine.
func (h *Hub) BroadcastPreview(projectID, markup string) {
	payload, _ := json.Marshal(PreviewPayload{Markup: markup})
	h.broadcastToRoom(projectID, &Message{
		Type:      TypePreviewUpdate,
		ProjectID: projectID,
		Payload:   payload,
	}, "")
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.ProjectID]
	if !ok {
		room = NewRoom(client.ProjectID)
		h.rooms[client.ProjectID] = room
	}
	room.clients[client.ClientID] = client
	h.mu.Unlock()

	client.Send(&Message{Type: TypeWelcome, ProjectID: client.ProjectID, ClientID: client.ClientID})

	// Push the current state so the client has something to show
	h.sendCurrentPreview(client)

	slog.Info("preview client joined", "user", client.UserID, "project", client.ProjectID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.ProjectID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	client.close()

	if len(room.clients) == 0 {
		delete(h.rooms, client.ProjectID)
	}
	h.mu.Unlock()

	slog.Info("preview client left", "user", client.UserID, "project", client.ProjectID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypePreviewRefresh:
		h.sendCurrentPreview(sender)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

func (h *Hub) sendCurrentPreview(client *Client) {
	markup, err := h.renderLatest(client.ProjectID)
	if err != nil {
		slog.Warn("render preview", "project", client.ProjectID, "error", err)
		payload, _ := json.Marshal(ErrorPayload{Reason: "render failed"})
		client.Send(&Message{Type: TypeError, ProjectID: client.ProjectID, Payload: payload})
		return
	}

	payload, _ := json.Marshal(PreviewPayload{Markup: markup})
	client.Send(&Message{
		Type:      TypePreviewUpdate,
		ProjectID: client.ProjectID,
		Payload:   payload,
	})
}

func (h *Hub) broadcastToRoom(projectID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[projectID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
