package preview

import (
	"encoding/json"
	"errors"
	"testing"
)

func newTestClient(hub *Hub, projectID, clientID string) *Client {
	return &Client{
		hub:       hub,
		send:      make(chan []byte, 64),
		UserID:    "user_test",
		ProjectID: projectID,
		ClientID:  clientID,
	}
}

func drain(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data := <-c.send:
		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("unmarshal message: %v", err)
		}
		return msg
	default:
		t.Fatal("no message queued")
		return Message{}
	}
}

func TestAddClientSendsWelcomeAndPreview(t *testing.T) {
	hub := NewHub(func(projectID string) (string, error) {
		return "<svg>" + projectID + "</svg>", nil
	})

	c := newTestClient(hub, "proj_a", "client-1")
	hub.addClient(c)

	if msg := drain(t, c); msg.Type != TypeWelcome {
		t.Errorf("first message type = %q, want %q", msg.Type, TypeWelcome)
	}

	msg := drain(t, c)
	if msg.Type != TypePreviewUpdate {
		t.Fatalf("second message type = %q, want %q", msg.Type, TypePreviewUpdate)
	}
	var payload PreviewPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Markup != "<svg>proj_a</svg>" {
		t.Errorf("markup = %q, want %q", payload.Markup, "<svg>proj_a</svg>")
	}
}

func TestAddClientRenderFailureSendsError(t *testing.T) {
	hub := NewHub(func(string) (string, error) {
		return "", errors.New("boom")
	})

	c := newTestClient(hub, "proj_a", "client-1")
	hub.addClient(c)

	drain(t, c) // welcome
	if msg := drain(t, c); msg.Type != TypeError {
		t.Errorf("message type = %q, want %q", msg.Type, TypeError)
	}
}

func TestBroadcastPreviewReachesRoomOnly(t *testing.T) {
	hub := NewHub(func(string) (string, error) { return "<svg/>", nil })

	a1 := newTestClient(hub, "proj_a", "a1")
	a2 := newTestClient(hub, "proj_a", "a2")
	b1 := newTestClient(hub, "proj_b", "b1")
	for _, c := range []*Client{a1, a2, b1} {
		hub.addClient(c)
		drain(t, c) // welcome
		drain(t, c) // initial preview
	}

	hub.BroadcastPreview("proj_a", "<svg>updated</svg>")

	for _, c := range []*Client{a1, a2} {
		msg := drain(t, c)
		if msg.Type != TypePreviewUpdate {
			t.Errorf("client %s: type = %q, want %q", c.ClientID, msg.Type, TypePreviewUpdate)
		}
		var payload PreviewPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if payload.Markup != "<svg>updated</svg>" {
			t.Errorf("client %s: markup = %q", c.ClientID, payload.Markup)
		}
	}

	select {
	case <-b1.send:
		t.Error("client in another room received the broadcast")
	default:
	}
}

func TestRemoveClientDeletesEmptyRoom(t *testing.T) {
	hub := NewHub(func(string) (string, error) { return "<svg/>", nil })

	c := newTestClient(hub, "proj_a", "c1")
	hub.addClient(c)
	hub.removeClient(c)

	hub.mu.RLock()
	_, ok := hub.rooms["proj_a"]
	hub.mu.RUnlock()
	if ok {
		t.Error("empty room was not removed")
	}

	if _, open := <-c.send; open {
		// Buffered welcome/preview messages drain first; channel must
		// eventually report closed.
		for range c.send {
		}
	}
}

func TestSendAfterDisconnectIsDropped(t *testing.T) {
	// Broadcasts snapshot the room under RLock and deliver after
	// releasing it, so a disconnect can land between the two. Sending to
	// a removed client must be a silent drop, never a panic.
	hub := NewHub(func(string) (string, error) { return "<svg/>", nil })

	c := newTestClient(hub, "proj_a", "c1")
	hub.addClient(c)
	hub.removeClient(c)

	c.Send(&Message{Type: TypePreviewUpdate})
	hub.BroadcastPreview("proj_a", "<svg>late</svg>")
}

func TestBroadcastRacingDisconnect(t *testing.T) {
	hub := NewHub(func(string) (string, error) { return "<svg/>", nil })

	for i := 0; i < 100; i++ {
		c := newTestClient(hub, "proj_a", "c1")
		hub.addClient(c)

		done := make(chan struct{})
		go func() {
			defer close(done)
			hub.BroadcastPreview("proj_a", "<svg>racing</svg>")
		}()
		hub.removeClient(c)
		<-done
	}
}

func TestRefreshMessageTriggersRender(t *testing.T) {
	calls := 0
	hub := NewHub(func(string) (string, error) {
		calls++
		return "<svg/>", nil
	})

	c := newTestClient(hub, "proj_a", "c1")
	hub.addClient(c)
	drain(t, c) // welcome
	drain(t, c) // initial preview

	hub.handleMessage(c, &Message{Type: TypePreviewRefresh})

	if calls != 2 {
		t.Errorf("render calls = %d, want 2", calls)
	}
	if msg := drain(t, c); msg.Type != TypePreviewUpdate {
		t.Errorf("message type = %q, want %q", msg.Type, TypePreviewUpdate)
	}
}
