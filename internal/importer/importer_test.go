package importer_test

import (
	"context"
	"strings"
	"testing"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/importer"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/testutil"
)

const sampleCSV = `StartTime,EntryID,EntryType,Category,Class,Participants,StudioName,Routine Title
9:00 AM,1,Solo,Dance,Worlds,Jane Doe,Studio X,Morning Star
9:05 AM,2,Duet,Dance,Worlds,"Jane Doe, Adam Lee",Studio X,Double Time
`

func TestParseCSV(t *testing.T) {
	rows, err := importer.ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.ProgramNumber != 1 || first.EntryType != "Solo" || first.RoutineTitle != "Morning Star" {
		t.Errorf("first row = %+v", first)
	}
	if rows[1].Participants != "Jane Doe, Adam Lee" {
		t.Errorf("quoted participants = %q, want comma-joined pair", rows[1].Participants)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	bad := "StartTime,EntryID,EntryType\n9:00,1,Solo\n"
	_, err := importer.ParseCSV(strings.NewReader(bad))
	if errors.KindOf(err) != errors.ErrValidation {
		t.Errorf("ParseCSV with missing columns: kind = %v, want ErrValidation", errors.KindOf(err))
	}
}

func TestParseCSV_BadEntryID(t *testing.T) {
	bad := strings.Replace(sampleCSV, "9:00 AM,1,", "9:00 AM,one,", 1)
	_, err := importer.ParseCSV(strings.NewReader(bad))
	if errors.KindOf(err) != errors.ErrValidation {
		t.Errorf("ParseCSV with bad EntryID: kind = %v, want ErrValidation", errors.KindOf(err))
	}
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := importer.ParseCSV(strings.NewReader(""))
	if errors.KindOf(err) != errors.ErrValidation {
		t.Errorf("ParseCSV of empty file: kind = %v, want ErrValidation", errors.KindOf(err))
	}
}

func TestImport_InsertsNewRoutines(t *testing.T) {
	ctx := context.Background()
	ev := testutil.NewTestEvent(t)
	imp := importer.New(logger.New())

	result, err := imp.Import(ctx, ev, strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Inserted != 2 || result.Updated != 0 {
		t.Errorf("result = %+v, want 2 inserted, 0 updated", result)
	}

	routines, err := ev.Store.ListRoutines(ctx)
	if err != nil {
		t.Fatalf("ListRoutines failed: %v", err)
	}
	if len(routines) != 2 {
		t.Fatalf("got %d routines, want 2", len(routines))
	}
	if routines[0].Participants != "JANE DOE" {
		t.Errorf("participants = %q, want normalized JANE DOE", routines[0].Participants)
	}
}

func TestImport_ReimportUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	ev := testutil.NewTestEvent(t)
	imp := importer.New(logger.New())

	if _, err := imp.Import(ctx, ev, strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("first Import failed: %v", err)
	}

	// Same routines, renumbered: fingerprints match, so nothing duplicates.
	renumbered := strings.NewReplacer("9:00 AM,1,", "9:00 AM,5,", "9:05 AM,2,", "9:05 AM,6,").Replace(sampleCSV)
	result, err := imp.Import(ctx, ev, strings.NewReader(renumbered))
	if err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	if result.Inserted != 0 || result.Updated != 2 {
		t.Errorf("result = %+v, want 0 inserted, 2 updated", result)
	}

	routines, err := ev.Store.ListRoutines(ctx)
	if err != nil {
		t.Fatalf("ListRoutines failed: %v", err)
	}
	if len(routines) != 2 {
		t.Fatalf("got %d routines after reimport, want 2", len(routines))
	}
	if routines[0].ProgramNumber != 5 {
		t.Errorf("program number = %d, want renumbered to 5", routines[0].ProgramNumber)
	}
}

func TestImport_LockedProgramKeepsNumbers(t *testing.T) {
	ctx := context.Background()
	ev := testutil.NewTestEvent(t)
	imp := importer.New(logger.New())

	if _, err := imp.Import(ctx, ev, strings.NewReader(sampleCSV)); err != nil {
		t.Fatalf("first Import failed: %v", err)
	}
	if err := ev.Store.SetProgramLocked(ctx, true); err != nil {
		t.Fatalf("SetProgramLocked failed: %v", err)
	}

	renumbered := strings.Replace(sampleCSV, "9:00 AM,1,", "9:00 AM,5,", 1)
	if _, err := imp.Import(ctx, ev, strings.NewReader(renumbered)); err != nil {
		t.Fatalf("second Import failed: %v", err)
	}

	routines, err := ev.Store.ListRoutines(ctx)
	if err != nil {
		t.Fatalf("ListRoutines failed: %v", err)
	}
	for _, r := range routines {
		if r.ProgramNumber > 2 {
			t.Errorf("routine %s renumbered to %d while locked", r.RoutineTitle, r.ProgramNumber)
		}
	}
}

func TestImport_NoEventOpen(t *testing.T) {
	imp := importer.New(logger.New())

	_, err := imp.Import(context.Background(), nil, strings.NewReader(sampleCSV))
	if errors.KindOf(err) != errors.ErrNoActiveContext {
		t.Errorf("Import without event: kind = %v, want ErrNoActiveContext", errors.KindOf(err))
	}
}
