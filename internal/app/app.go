package app

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/config"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/handlers"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/importer"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/services"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/websocket"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	master   *repository.Store
	events   *event.Manager
}

// New creates and initializes a new application instance
func New(log logger.Logger, cfg *config.Config) (*App, error) {
	master, err := repository.NewMaster(cfg.MasterDBPath)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.EventDir, 0o755); err != nil {
		master.Close()
		return nil, err
	}

	events := event.NewManager()

	// Initialize services
	classService := services.NewClassService(log, master)
	awardsService := services.NewAwardsService(log, classService)
	imp := importer.New(log)

	// Initialize WebSocket hub
	hub := websocket.New(log)
	hub.Start()

	h := handlers.New(classService, awardsService, imp, events, hub, log, cfg.EventDir)

	return &App{
		log:      log,
		handlers: h,
		master:   master,
		events:   events,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close performs graceful shutdown of app resources
func (a *App) Close() {
	if err := a.events.Close(); err != nil {
		a.log.Warn("Failed to close event database", "error", err)
	}
	if err := a.master.Close(); err != nil {
		a.log.Warn("Failed to close master database", "error", err)
	}
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	a.log.Info("Server starting", "addr", addr)
	return http.ListenAndServe(addr, a.Router())
}
