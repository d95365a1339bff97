package site

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/astrooutdoor/fence-assistant/backend/internal/config"
	chatservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
	leadservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/lead"
	"github.com/astrooutdoor/fence-assistant/backend/pkg/utils"
)

// Handler serves the public pages and the informational endpoints.
type Handler struct {
	business config.BusinessConfig
	server   config.ServerConfig
	model    string
	sessions *chatservice.Store
	leads    *leadservice.Service
}

// New creates the site handler.
func New(business config.BusinessConfig, server config.ServerConfig, model string, sessions *chatservice.Store, leads *leadservice.Service) *Handler {
	return &Handler{
		business: business,
		server:   server,
		model:    model,
		sessions: sessions,
		leads:    leads,
	}
}

// RegisterRoutes mounts the public routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)
	r.Get("/contact-info", h.handleContactInfo)

	if _, err := os.Stat(h.server.StaticDir); err == nil {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(h.server.StaticDir)))
		r.Get("/static/*", fileServer.ServeHTTP)
	}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.server.ChatPage); err == nil {
		http.ServeFile(w, r, h.server.ChatPage)
		return
	}
	utils.RespondError(w, http.StatusNotFound, "chat page not available")
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"business":        h.business.Name,
		"model":           h.model,
		"active_sessions": h.sessions.Len(),
		"total_leads":     h.leads.Total(),
		"phone":           h.business.Phone,
		"email":           h.business.Email,
	})
}

func (h *Handler) handleContactInfo(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"business":     h.business.Name,
		"phone":        h.business.Phone,
		"email":        h.business.Email,
		"facebook":     h.business.Facebook,
		"website":      h.business.Website,
		"service_area": h.business.ServiceArea,
		"quick_help":   h.business.Email,
	})
}
