package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cherrera-dev/portfolio-api/internal/chatbot"
	"github.com/cherrera-dev/portfolio-api/internal/store"
)

// ErrSessionNotFound is returned when a message targets an unknown session.
var ErrSessionNotFound = fmt.Errorf("session not found")

// ChatService runs conversation turns: it persists the visitor's message,
// resolves a reply through the chatbot pipeline, and persists that too.
type ChatService struct {
	transcripts store.TranscriptStore
	responder   *chatbot.Responder
	logger      *zap.Logger
}

func NewChatService(transcripts store.TranscriptStore, responder *chatbot.Responder, logger *zap.Logger) *ChatService {
	return &ChatService{
		transcripts: transcripts,
		responder:   responder,
		logger:      logger,
	}
}

// StartSession creates a new conversation. When a first message is given it
// is answered inline so the widget can render the opening exchange at once.
func (s *ChatService) StartSession(firstMessage *string) (*store.Session, []store.Message, error) {
	session, err := s.transcripts.CreateSession()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	var messages []store.Message
	if firstMessage != nil && *firstMessage != "" {
		botMsg, userMsg, err := s.runTurn(session.ID, *firstMessage)
		if err != nil {
			// The session itself is fine; report it with an empty transcript.
			s.logger.Warn("failed to answer first message", zap.String("session", session.ID), zap.Error(err))
			return session, nil, nil
		}
		messages = append(messages, *userMsg, *botMsg)
	}
	return session, messages, nil
}

// PostMessage handles one turn in an existing session and returns the bot
// reply message.
func (s *ChatService) PostMessage(sessionID, content string) (*store.Message, error) {
	session, err := s.transcripts.GetSessionByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	botMsg, _, err := s.runTurn(sessionID, content)
	return botMsg, err
}

func (s *ChatService) runTurn(sessionID, content string) (*store.Message, *store.Message, error) {
	userMsg := store.Message{
		SessionID: sessionID,
		Sender:    "user",
		Content:   content,
	}
	if err := s.transcripts.CreateMessage(&userMsg); err != nil {
		return nil, nil, fmt.Errorf("failed to store user message: %w", err)
	}

	reply := s.responder.Resolve(content)
	s.logger.Debug("resolved message",
		zap.String("session", sessionID),
		zap.String("source", reply.Source),
		zap.String("intent", reply.IntentID),
		zap.String("project", reply.ProjectSlug))

	botMsg := store.Message{
		SessionID:   sessionID,
		Sender:      "bot",
		Content:     reply.Response,
		Source:      reply.Source,
		IntentID:    reply.IntentID,
		ProjectSlug: reply.ProjectSlug,
	}
	if err := s.transcripts.CreateMessage(&botMsg); err != nil {
		return nil, nil, fmt.Errorf("failed to store bot message: %w", err)
	}
	return &botMsg, &userMsg, nil
}

// GetTranscript returns a session and its messages, or nil when unknown.
func (s *ChatService) GetTranscript(sessionID string) (*store.Session, []store.Message, error) {
	session, err := s.transcripts.GetSessionByID(sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil, nil // Not found
	}

	messages, err := s.transcripts.GetMessagesBySessionID(sessionID, 200, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get messages for session: %w", err)
	}
	return session, messages, nil
}

// SetMessageFeedback flags a bot reply as unhelpful.
func (s *ChatService) SetMessageFeedback(messageID string, negative bool) error {
	return s.transcripts.UpdateMessageFeedback(messageID, negative)
}
