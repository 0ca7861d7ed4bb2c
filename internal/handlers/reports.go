package handlers

import (
	"context"
	"net/http"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/services"
)

func (h *Handlers) handleReport(w http.ResponseWriter, r *http.Request,
	generate func(context.Context, *event.Context) (*services.Report, error)) {

	report, err := generate(r.Context(), h.Events.Current())
	if err != nil {
		respondError(w, err)
		return
	}

	if h.Hub != nil {
		h.Hub.BroadcastReportRefreshed(report.Category)
	}
	respondOK(w, report)
}

func (h *Handlers) handleSoloReport(w http.ResponseWriter, r *http.Request) {
	h.handleReport(w, r, h.Awards.GenerateSoloReport)
}

func (h *Handlers) handleDuetReport(w http.ResponseWriter, r *http.Request) {
	h.handleReport(w, r, h.Awards.GenerateDuetReport)
}

func (h *Handlers) handleTrioReport(w http.ResponseWriter, r *http.Request) {
	h.handleReport(w, r, h.Awards.GenerateTrioReport)
}

func (h *Handlers) handleEnsembleReport(w http.ResponseWriter, r *http.Request) {
	h.handleReport(w, r, h.Awards.GenerateEnsembleReport)
}
