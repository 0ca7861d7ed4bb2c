package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	r.Get("/api/health", h.handleHealth)

	// Event lifecycle
	r.Post("/api/event/open", h.handleOpenEvent)
	r.Post("/api/event/close", h.handleCloseEvent)
	r.Get("/api/event/current", h.handleCurrentEvent)

	// Class configuration
	r.Get("/api/classes", h.handleGetClassDefinitions)
	r.Post("/api/classes", h.handleUpsertClassDefinition)
	r.Delete("/api/classes/{key}", h.handleDeleteClassDefinition)
	r.Get("/api/classes/aliases", h.handleGetClassAliases)
	r.Post("/api/classes/aliases", h.handleUpsertClassAlias)
	r.Delete("/api/classes/aliases/{alias}", h.handleDeleteClassAlias)
	r.Get("/api/classes/unmapped", h.handleGetUnmappedClasses)
	r.Get("/api/classes/resolve", h.handleResolveClass)

	// Program import and routines
	r.Post("/api/import", h.handleImport)
	r.Get("/api/routines", h.handleGetRoutines)
	r.Get("/api/program-lock", h.handleGetProgramLock)
	r.Post("/api/program-lock", h.handleSetProgramLock)

	// Scores
	r.Post("/api/routines/{id}/scores", h.handleSaveScores)
	r.Get("/api/routines/{id}/scores", h.handleGetScores)
	r.Post("/api/scores/clear", h.handleClearScores)

	// Award reports
	r.Get("/api/reports/solo", h.handleSoloReport)
	r.Get("/api/reports/duet", h.handleDuetReport)
	r.Get("/api/reports/trio", h.handleTrioReport)
	r.Get("/api/reports/ensemble", h.handleEnsembleReport)

	return r
}
