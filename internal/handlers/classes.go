package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
)

// handleGetClassDefinitions lists the open event's class definitions
func (h *Handlers) handleGetClassDefinitions(w http.ResponseWriter, r *http.Request) {
	defs, err := h.Classes.ListDefinitions(r.Context(), h.Events.Current())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, defs)
}

// handleUpsertClassDefinition creates or updates a class definition
func (h *Handlers) handleUpsertClassDefinition(w http.ResponseWriter, r *http.Request) {
	var req ClassDefinitionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	def := models.ClassDefinition{
		ClassKey:    req.ClassKey,
		DisplayName: req.DisplayName,
		Bucket:      req.Bucket,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	}
	if err := h.Classes.UpsertDefinition(r.Context(), h.Events.Current(), def, req.PropagateGlobally); err != nil {
		respondError(w, err)
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastClassConfigChanged()
	}
	respondOK(w, def)
}

// handleDeleteClassDefinition removes a class definition. Deleting a key
// that does not exist succeeds without effect.
func (h *Handlers) handleDeleteClassDefinition(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	global := r.URL.Query().Get("global") == "true"

	if err := h.Classes.DeleteDefinition(r.Context(), h.Events.Current(), key, global); err != nil {
		respondError(w, err)
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastClassConfigChanged()
	}
	respondDeleted(w)
}

// handleGetClassAliases lists the open event's class aliases
func (h *Handlers) handleGetClassAliases(w http.ResponseWriter, r *http.Request) {
	aliases, err := h.Classes.ListAliases(r.Context(), h.Events.Current())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, aliases)
}

// handleUpsertClassAlias creates or updates an alias mapping
func (h *Handlers) handleUpsertClassAlias(w http.ResponseWriter, r *http.Request) {
	var req ClassAliasRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Classes.UpsertAlias(r.Context(), h.Events.Current(), req.Alias, req.ClassKey, req.PropagateGlobally); err != nil {
		respondError(w, err)
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastClassConfigChanged()
	}
	respondOK(w, models.ClassAlias{Alias: req.Alias, ClassKey: req.ClassKey})
}

// handleDeleteClassAlias removes an alias mapping
func (h *Handlers) handleDeleteClassAlias(w http.ResponseWriter, r *http.Request) {
	alias := chi.URLParam(r, "alias")
	global := r.URL.Query().Get("global") == "true"

	if err := h.Classes.DeleteAlias(r.Context(), h.Events.Current(), alias, global); err != nil {
		respondError(w, err)
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastClassConfigChanged()
	}
	respondDeleted(w)
}

// handleGetUnmappedClasses lists distinct routine class text with no alias
// or definition match
func (h *Handlers) handleGetUnmappedClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.Classes.UnmappedClasses(r.Context(), h.Events.Current())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, UnmappedClassesResponse{Classes: classes})
}

// handleResolveClass resolves raw class text against aliases and definitions
func (h *Handlers) handleResolveClass(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	key, ok, err := h.Classes.Resolve(r.Context(), h.Events.Current(), text)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ResolveResponse{Text: text, ClassKey: key, Resolved: ok})
}
