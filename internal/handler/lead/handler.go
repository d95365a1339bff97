package lead

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/astrooutdoor/fence-assistant/backend/internal/config"
	"github.com/astrooutdoor/fence-assistant/backend/internal/model/lead"
	leadservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/lead"
	"github.com/astrooutdoor/fence-assistant/backend/pkg/utils"
)

// Handler exposes lead intake and live quote routes.
type Handler struct {
	svc      *leadservice.Service
	business config.BusinessConfig
	logger   *zap.Logger
}

// New creates the lead handler.
func New(svc *leadservice.Service, business config.BusinessConfig, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, business: business, logger: logger}
}

// RegisterRoutes mounts the lead routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/lead", h.handleSubmit)
	r.Post("/live-quote", h.handleLiveQuote)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub lead.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := sub.Validate(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.Submit(r.Context(), sub, r.RemoteAddr)
	if err != nil {
		h.logger.Error("lead submission failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "Failed to submit lead request")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"message":  fmt.Sprintf("Perfect! We'll %s you shortly. For urgent needs, call or text %s.", rec.PreferredContact, h.business.Phone),
		"lead_id":  rec.ID,
		"business": h.business.Name,
		"phone":    h.business.Phone,
		"email":    h.business.Email,
	})
}

func (h *Handler) handleLiveQuote(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID     string `json:"session_id"`
		UserName      string `json:"user_name"`
		Phone         string `json:"phone"`
		ServiceNeeded string `json:"service_needed"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "session_id is required")
		return
	}
	if err := lead.ValidateCallback(payload.UserName, payload.Phone, payload.ServiceNeeded); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := h.svc.RequestCallback(payload.SessionID, payload.UserName, payload.Phone, payload.ServiceNeeded, r.RemoteAddr)

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"message":            fmt.Sprintf("Got it! We'll call you at %s within 30 minutes during business hours (Mon-Fri 8AM-6PM).", req.Phone),
		"session_id":         req.SessionID,
		"estimated_callback": "30 minutes",
		"business_phone":     h.business.Phone,
		"business_email":     h.business.Email,
		"business":           h.business.Name,
	})
}
