package admin

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/astrooutdoor/fence-assistant/backend/internal/config"
	chatservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
	"github.com/astrooutdoor/fence-assistant/backend/internal/service/feed"
	leadservice "github.com/astrooutdoor/fence-assistant/backend/internal/service/lead"
	"github.com/astrooutdoor/fence-assistant/backend/pkg/utils"
)

// Handler serves the admin dashboard surface.
type Handler struct {
	leads    *leadservice.Service
	sessions *chatservice.Store
	hub      *feed.Hub
	business config.BusinessConfig
	page     string
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates the admin handler.
func New(leads *leadservice.Service, sessions *chatservice.Store, hub *feed.Hub, business config.BusinessConfig, page string, logger *zap.Logger) *Handler {
	return &Handler{
		leads:    leads,
		sessions: sessions,
		hub:      hub,
		business: business,
		page:     page,
		logger:   logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the admin routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/admin", h.handlePage)
	r.Get("/admin/data", h.handleData)
	r.Get("/admin/leads", h.handleLeads)
	r.Get("/admin/feed", h.handleFeed)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.page); err == nil {
		http.ServeFile(w, r, h.page)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":         "Admin dashboard not available",
		"leads_count":     h.leads.Total(),
		"active_sessions": h.sessions.Len(),
	})
}

func (h *Handler) handleData(w http.ResponseWriter, _ *http.Request) {
	recent := h.leads.Recent()
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"business_name":       h.business.Name,
		"active_sessions":     h.sessions.Len(),
		"recent_leads":        recent,
		"live_quote_requests": h.leads.Callbacks(),
		"total_leads_today":   h.leads.TotalToday(),
		"phone":               h.business.Phone,
		"email":               h.business.Email,
		"facebook":            h.business.Facebook,
		"website":             h.business.Website,
	})
}

func (h *Handler) handleLeads(w http.ResponseWriter, _ *http.Request) {
	recent := h.leads.Recent()
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"leads":          recent,
		"total":          len(recent),
		"business_phone": h.business.Phone,
		"business_email": h.business.Email,
	})
}

// handleFeed upgrades the connection and streams lead events until the
// dashboard disconnects.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("admin feed upgrade failed", zap.Error(err))
		return
	}

	h.hub.Register(conn)
	defer func() {
		h.hub.Unregister(conn)
		conn.Close()
	}()

	// Inbound frames are ignored; reading only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
