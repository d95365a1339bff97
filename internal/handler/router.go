package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	adminHandler "github.com/astrooutdoor/fence-assistant/backend/internal/handler/admin"
	chatHandler "github.com/astrooutdoor/fence-assistant/backend/internal/handler/chat"
	leadHandler "github.com/astrooutdoor/fence-assistant/backend/internal/handler/lead"
	siteHandler "github.com/astrooutdoor/fence-assistant/backend/internal/handler/site"

	"github.com/astrooutdoor/fence-assistant/backend/internal/config"
	middlewarePkg "github.com/astrooutdoor/fence-assistant/backend/internal/middleware"
	chatService "github.com/astrooutdoor/fence-assistant/backend/internal/service/chat"
	"github.com/astrooutdoor/fence-assistant/backend/internal/service/feed"
	leadService "github.com/astrooutdoor/fence-assistant/backend/internal/service/lead"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(cfg *config.Config, orchestrator *chatService.Orchestrator, store *chatService.Store, leads *leadService.Service, hub *feed.Hub, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cfg.Server.AllowedOrigins))

	chatHandler.New(orchestrator, cfg.Business.Name).RegisterRoutes(r)
	leadHandler.New(leads, cfg.Business, logger).RegisterRoutes(r)
	adminHandler.New(leads, store, hub, cfg.Business, cfg.Server.AdminPage, logger).RegisterRoutes(r)
	siteHandler.New(cfg.Business, cfg.Server, cfg.AI.Model, store, leads).RegisterRoutes(r)

	return r
}
