package chat

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
	"github.com/astrooutdoor/fence-assistant/backend/pkg/utils"
)

// maxPromptLength mirrors the declared inbound constraint; longer prompts
// are rejected before they reach the orchestrator.
const maxPromptLength = 4000

// Responder answers one chat turn. Satisfied by the chat orchestrator.
type Responder interface {
	Respond(ctx context.Context, in chatservice.Input) chatservice.Result
}

// Handler exposes the chat endpoint.
type Handler struct {
	responder Responder
	business  string
}

// New creates the chat handler.
func New(responder Responder, businessName string) *Handler {
	return &Handler{responder: responder, business: businessName}
}

// RegisterRoutes mounts the chat route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Prompt    string   `json:"prompt"`
		SessionID string   `json:"session_id"`
		UserName  string   `json:"user_name"`
		Images    []string `json:"images"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(payload.Prompt) > maxPromptLength {
		utils.RespondError(w, http.StatusBadRequest, "prompt exceeds maximum length")
		return
	}

	result := h.responder.Respond(r.Context(), chatservice.Input{
		SessionID: payload.SessionID,
		Prompt:    payload.Prompt,
		UserName:  payload.UserName,
		RemoteIP:  r.RemoteAddr,
		Images:    payload.Images,
	})

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"response":      result.Response,
		"session_id":    result.SessionID,
		"message_count": result.TurnCount,
		"business":      h.business,
	})
}
