package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
)

// handleHealth returns a liveness response
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]string{"status": "ok"})
}

// handleOpenEvent opens (creating if necessary) an event database and seeds
// its class configuration from the global store. Any previously open event
// is closed first.
func (h *Handlers) handleOpenEvent(w http.ResponseWriter, r *http.Request) {
	var req OpenEventRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, BadRequest("Event name is required"))
		return
	}

	path := req.Path
	if path == "" {
		path = filepath.Join(h.EventDir, name+".db")
	}

	store, err := repository.New(path)
	if err != nil {
		h.Log.Error("Failed to open event database", "path", path, "error", err)
		respondError(w, InternalError(err))
		return
	}

	ev := &event.Context{Name: name, Path: path, Store: store}
	// Open only errors when releasing a previously open store; the new
	// event is current either way.
	if err := h.Events.Open(ev); err != nil {
		h.Log.Warn("Failed to release previous event store", "error", err)
	}

	if err := h.Classes.SeedEventFromGlobal(r.Context(), ev); err != nil {
		respondError(w, err)
		return
	}

	h.Log.Info("Opened event", "name", name, "path", path)
	if h.Hub != nil {
		h.Hub.BroadcastEventOpened(name)
	}
	respondOK(w, EventResponse{Name: name, Path: path, Open: true})
}

// handleCloseEvent closes the currently open event, if any
func (h *Handlers) handleCloseEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Events.Close(); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Event closed")
}

// handleCurrentEvent reports the open event, or open=false when none is
func (h *Handlers) handleCurrentEvent(w http.ResponseWriter, r *http.Request) {
	ev := h.Events.Current()
	if ev == nil {
		respondOK(w, EventResponse{Open: false})
		return
	}
	respondOK(w, EventResponse{Name: ev.Name, Path: ev.Path, Open: true})
}
