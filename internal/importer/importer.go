package importer

import (
	"context"
	stderrors "errors"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
)

// Result summarizes what an import run did.
type Result struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

// Importer loads program export files into an event database. Routines
// are matched by content fingerprint, so re-importing an amended export
// updates rows in place instead of duplicating them.
type Importer struct {
	log logger.Logger
}

// New creates a new Importer
func New(log logger.Logger) *Importer {
	return &Importer{log: log}
}

// Import parses a program export and upserts its routines into the event.
// When the program order is locked, program numbers of existing routines
// are left untouched; new routines still import with their numbers.
func (im *Importer) Import(ctx context.Context, ev *event.Context, r io.Reader) (*Result, error) {
	if ev == nil || ev.Store == nil {
		return nil, errors.NoActiveContext("no event is open")
	}

	rows, err := ParseCSV(r)
	if err != nil {
		return nil, err
	}

	locked, err := ev.Store.IsProgramLocked(ctx)
	if err != nil {
		return nil, errors.Storage(err, "failed to read program lock")
	}
	if locked {
		im.log.Info("Program order is locked; keeping existing program numbers")
	}

	result := &Result{Total: len(rows)}
	for _, row := range rows {
		participants := SplitAndNormalizeParticipants(row.Participants)
		fp := Fingerprint(row.StudioName, row.RoutineTitle, row.EntryType,
			row.Category, row.Class, participants)

		routine := models.Routine{
			ProgramNumber: row.ProgramNumber,
			StartTime:     row.StartTime,
			EntryType:     row.EntryType,
			Category:      row.Category,
			Class:         row.Class,
			StudioName:    row.StudioName,
			RoutineTitle:  row.RoutineTitle,
			Participants:  strings.Join(participants, ", "),
		}

		existingID, err := ev.Store.FindRoutineByFingerprint(ctx, fp)
		switch {
		case err == nil:
			routine.RoutineID = existingID
			if err := ev.Store.UpdateRoutine(ctx, routine, !locked); err != nil {
				return nil, errors.Storage(err, "failed to update routine")
			}
			result.Updated++
		case stderrors.Is(err, repository.ErrNotFound):
			routine.RoutineID = uuid.New().String()
			if err := ev.Store.InsertRoutine(ctx, routine, fp); err != nil {
				return nil, errors.Storage(err, "failed to insert routine")
			}
			result.Inserted++
		default:
			return nil, errors.Storage(err, "failed to look up routine fingerprint")
		}

		if err := ev.Store.ReplaceRoutineParticipants(ctx, routine.RoutineID, participants); err != nil {
			return nil, errors.Storage(err, "failed to update routine participants")
		}
	}

	im.log.Info("Imported program file",
		"total", result.Total, "inserted", result.Inserted, "updated", result.Updated)
	return result, nil
}
