package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cherrera-dev/portfolio-api/internal/auth"
	"github.com/cherrera-dev/portfolio-api/internal/core"
	"github.com/cherrera-dev/portfolio-api/internal/projects"
	"github.com/cherrera-dev/portfolio-api/internal/store"
	"github.com/cherrera-dev/portfolio-api/internal/uploads"
)

type APIHandler struct {
	chatService  *core.ChatService
	projectStore *projects.Store
	uploadStore  *uploads.Storage
	authService  *auth.Service
	logger       *zap.Logger
}

func NewAPIHandler(cs *core.ChatService, ps *projects.Store, us *uploads.Storage, as *auth.Service, logger *zap.Logger) *APIHandler {
	return &APIHandler{
		chatService:  cs,
		projectStore: ps,
		uploadStore:  us,
		authService:  as,
		logger:       logger,
	}
}

func (h *APIHandler) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization header is required", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if err := h.authService.ValidateToken(tokenString); err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type LoginRequest struct {
	Password string `json:"password"`
}

func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}

	if !h.authService.Login(req.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.authService.GenerateToken()
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

type CreateSessionRequest struct {
	FirstMessage *string `json:"first_message,omitempty"`
}

type CreateSessionResponse struct {
	*store.Session
	Messages []store.Message `json:"messages,omitempty"`
}

func (h *APIHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if r.Body != http.NoBody {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	session, messages, err := h.chatService.StartSession(req.FirstMessage)
	if err != nil {
		h.logger.Error("failed to create chat session", zap.Error(err))
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	resp := CreateSessionResponse{
		Session:  session,
		Messages: messages,
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

type GetSessionResponse struct {
	*store.Session
	Messages []store.Message `json:"messages"`
}

func (h *APIHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, messages, err := h.chatService.GetTranscript(sessionID)
	if err != nil {
		h.logger.Error("failed to get transcript", zap.String("session", sessionID), zap.Error(err))
		http.Error(w, "Failed to get session", http.StatusInternalServerError)
		return
	}
	if session == nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	resp := GetSessionResponse{
		Session:  session,
		Messages: messages,
	}
	json.NewEncoder(w).Encode(resp)
}

type PostMessageRequest struct {
	Content string `json:"content"`
}

func (h *APIHandler) PostChatMessageHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "Message content cannot be empty", http.StatusBadRequest)
		return
	}

	botMessage, err := h.chatService.PostMessage(sessionID, req.Content)
	if err != nil {
		if errors.Is(err, core.ErrSessionNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			h.logger.Error("failed to post message", zap.String("session", sessionID), zap.Error(err))
			http.Error(w, "Failed to post message", http.StatusInternalServerError)
		}
		return
	}
	json.NewEncoder(w).Encode(botMessage)
}

type FeedbackRequest struct {
	Negative bool `json:"negative"`
}

func (h *APIHandler) MessageFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.chatService.SetMessageFeedback(messageID, req.Negative); err != nil {
		h.logger.Warn("failed to set feedback", zap.String("message", messageID), zap.Error(err))
		http.Error(w, "Failed to set feedback", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
