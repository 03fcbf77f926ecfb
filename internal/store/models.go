package store

import "time"

// Session is one visitor conversation with the assistant.
type Session struct {
	ID        string    `json:"id"` // UUID
	CreatedAt time.Time `json:"created_at"`
}

// Message is one transcript entry. Bot messages additionally carry the
// source tag of the resolution tier that produced them, plus the matched
// intent id or project slug when applicable.
type Message struct {
	ID               string    `json:"id"` // UUID
	SessionID        string    `json:"session_id"`
	Sender           string    `json:"sender"` // "user" or "bot"
	Content          string    `json:"content"`
	Timestamp        time.Time `json:"timestamp"`
	Source           string    `json:"source,omitempty"`
	IntentID         string    `json:"intent,omitempty"`
	ProjectSlug      string    `json:"project_slug,omitempty"`
	NegativeFeedback bool      `json:"negative_feedback"`
}
