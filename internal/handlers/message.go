package handlers

import (
	"encoding/json"
	"net/http"

	"national-connect-backend/internal/models"
	"national-connect-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MessageHandler handles messaging HTTP requests
type MessageHandler struct {
	msgService *services.MessageService
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(msgService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		msgService: msgService,
	}
}

// SendMessageRequest represents the request body for sending a message
type SendMessageRequest struct {
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

// SendMessageResponse represents the send success payload
type SendMessageResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *models.Message `json:"data"`
}

// Send handles POST /api/messages/send
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := h.msgService.Send(req.SenderID, req.ReceiverID, req.Content)
	if err != nil {
		respondOpError(w, err)
		return
	}

	log.Info().
		Str("sender_id", msg.SenderID).
		Str("receiver_id", msg.ReceiverID).
		Msg("Message sent")

	respondJSON(w, http.StatusCreated, SendMessageResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    msg,
	})
}

// ListMessagesResponse represents the message listing payload
type ListMessagesResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Messages []models.Message `json:"messages"`
}

// ListMessages handles GET /api/messages/{userId}
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages := h.msgService.ListForUser(
		chi.URLParam(r, "userId"),
		r.URL.Query().Get("withUserId"),
	)

	respondJSON(w, http.StatusOK, ListMessagesResponse{
		Success:  true,
		Count:    len(messages),
		Messages: messages,
	})
}
