package store

// TranscriptStore persists chat sessions and their messages.
type TranscriptStore interface {
	CreateSession() (*Session, error)
	GetSessionByID(sessionID string) (*Session, error)
	CreateMessage(msg *Message) error
	GetMessagesBySessionID(sessionID string, limit, offset int) ([]Message, error)
	UpdateMessageFeedback(messageID string, negative bool) error
	Close() error
}
