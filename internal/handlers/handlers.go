package handlers

import (
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/importer"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/services"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Classes  services.ClassServicer
	Awards   services.AwardsServicer
	Importer *importer.Importer
	Events   *event.Manager
	Hub      *websocket.Hub
	Log      logger.Logger
	EventDir string
}

// New creates a new Handlers instance with all dependencies
func New(
	classes services.ClassServicer,
	awards services.AwardsServicer,
	imp *importer.Importer,
	events *event.Manager,
	hub *websocket.Hub,
	log logger.Logger,
	eventDir string,
) *Handlers {
	return &Handlers{
		Classes:  classes,
		Awards:   awards,
		Importer: imp,
		Events:   events,
		Hub:      hub,
		Log:      log,
		EventDir: eventDir,
	}
}
