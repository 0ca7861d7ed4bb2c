package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
)

// requireEvent returns the open event context or a conflict error
func (h *Handlers) requireEvent() (*event.Context, error) {
	ev := h.Events.Current()
	if ev == nil || ev.Store == nil {
		return nil, errors.NoActiveContext("no event is open")
	}
	return ev, nil
}

// handleImport uploads a program export CSV into the open event
func (h *Handlers) handleImport(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	body := r.Body
	// Accept either a raw CSV body or a multipart form with a "file" field
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			respondError(w, BadRequest("Missing file upload"))
			return
		}
		defer file.Close()
		body = file
	}

	result, err := h.Importer.Import(r.Context(), ev, body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, result)
}

// handleGetRoutines lists the open event's routines in program order
func (h *Handlers) handleGetRoutines(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	routines, err := ev.Store.ListRoutines(r.Context())
	if err != nil {
		respondError(w, errors.Storage(err, "failed to list routines"))
		return
	}
	respondOK(w, routines)
}

// handleGetProgramLock reports whether program order is locked
func (h *Handlers) handleGetProgramLock(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	locked, err := ev.Store.IsProgramLocked(r.Context())
	if err != nil {
		respondError(w, errors.Storage(err, "failed to read program lock"))
		return
	}
	respondOK(w, ProgramLockResponse{Locked: locked})
}

// handleSetProgramLock sets the program lock flag
func (h *Handlers) handleSetProgramLock(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	var req ProgramLockRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := ev.Store.SetProgramLocked(r.Context(), req.Locked); err != nil {
		respondError(w, errors.Storage(err, "failed to set program lock"))
		return
	}
	respondOK(w, ProgramLockResponse{Locked: req.Locked})
}

// handleSaveScores saves a sheet of score cells for a routine and records
// it as the routine's latest sheet
func (h *Handlers) handleSaveScores(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	routineID := chi.URLParam(r, "id")
	var req SaveScoresRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if req.SheetKey == "" {
		respondError(w, BadRequest("sheet_key is required"))
		return
	}
	if len(req.Cells) == 0 {
		respondError(w, BadRequest("at least one score cell is required"))
		return
	}

	cells := make([]models.ScoreCell, 0, len(req.Cells))
	for _, c := range req.Cells {
		cells = append(cells, models.ScoreCell{
			JudgeIndex: c.JudgeIndex,
			Criterion:  c.Criterion,
			Value:      c.Value,
		})
	}

	if err := ev.Store.SaveScoreCells(r.Context(), routineID, req.SheetKey, cells); err != nil {
		respondError(w, errors.Storage(err, "failed to save scores"))
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastScoresChanged(routineID)
	}
	respondSuccess(w, "Scores saved")
}

// handleGetScores returns the latest score sheet for a routine
func (h *Handlers) handleGetScores(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	routineID := chi.URLParam(r, "id")
	sheetKey, err := ev.Store.GetLastSheetKey(r.Context(), routineID)
	if stderrors.Is(err, repository.ErrNotFound) || (err == nil && sheetKey == "") {
		respondError(w, NotFound("Routine has no scores"))
		return
	}
	if err != nil {
		respondError(w, errors.Storage(err, "failed to read score status"))
		return
	}

	cells, err := ev.Store.ScoreCells(r.Context(), routineID, sheetKey)
	if err != nil {
		respondError(w, errors.Storage(err, "failed to load score cells"))
		return
	}
	respondOK(w, map[string]interface{}{"sheet_key": sheetKey, "cells": cells})
}

// handleClearScores wipes all recorded scores for the open event
func (h *Handlers) handleClearScores(w http.ResponseWriter, r *http.Request) {
	ev, err := h.requireEvent()
	if err != nil {
		respondError(w, err)
		return
	}

	if err := ev.Store.ClearAllScores(r.Context()); err != nil {
		respondError(w, errors.Storage(err, "failed to clear scores"))
		return
	}
	h.Log.Info("Cleared all scores", "event", ev.Name)
	respondSuccess(w, "All scores cleared")
}
