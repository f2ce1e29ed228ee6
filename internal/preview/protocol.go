package preview

import "encoding/json"

type Message struct {
	Type      string          `json:"type"`
	ProjectID string          `json:"projectId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// PreviewPayload carries rendered markup to connected clients.
type PreviewPayload struct {
	Markup string `json:"markup"`
}

type ErrorPayload struct {
	Reason string `json:"reason"`
}

const (
	// Connection
	TypeWelcome = "welcome"

	// Server pushes the freshly rendered document
	TypePreviewUpdate = "preview.update"

	// Client asks for a re-render of the latest snapshot
	TypePreviewRefresh = "preview.refresh"

	TypeError = "error"
)
