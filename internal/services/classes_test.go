package services_test

import (
	"context"
	"testing"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/services"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/testutil"
)

func newClassFixture(t *testing.T) (*services.ClassService, *repository.Store, *event.Context) {
	t.Helper()

	master := testutil.NewTestMaster(t)
	ev := testutil.NewTestEvent(t)
	svc := services.NewClassService(logger.New(), master)
	return svc, master, ev
}

func seedDefinition(t *testing.T, ctx context.Context, store repository.ClassStore, key, display, bucket string, sortOrder int) {
	t.Helper()

	err := store.UpsertClassDefinition(ctx, models.ClassDefinition{
		ClassKey:    key,
		DisplayName: display,
		Bucket:      bucket,
		SortOrder:   sortOrder,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("UpsertClassDefinition(%s) failed: %v", key, err)
	}
}

func TestSeedEventFromGlobal(t *testing.T) {
	ctx := context.Background()
	svc, master, ev := newClassFixture(t)

	seedDefinition(t, ctx, master, "worlds", "Worlds", "studio", 10)
	seedDefinition(t, ctx, master, "power", "Power", "studio", 20)
	if err := master.UpsertClassAlias(ctx, "WORLDS DIVISION", "worlds"); err != nil {
		t.Fatalf("UpsertClassAlias failed: %v", err)
	}

	if err := svc.SeedEventFromGlobal(ctx, ev); err != nil {
		t.Fatalf("SeedEventFromGlobal failed: %v", err)
	}

	defs, err := ev.Store.ListClassDefinitions(ctx)
	if err != nil {
		t.Fatalf("ListClassDefinitions failed: %v", err)
	}
	if len(defs) != 2 {
		t.Errorf("seeded %d definitions, want 2", len(defs))
	}

	aliases, err := ev.Store.ListClassAliases(ctx)
	if err != nil {
		t.Fatalf("ListClassAliases failed: %v", err)
	}
	if len(aliases) != 1 {
		t.Errorf("seeded %d aliases, want 1", len(aliases))
	}
}

func TestSeedEventFromGlobal_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, master, ev := newClassFixture(t)

	seedDefinition(t, ctx, master, "worlds", "Worlds", "studio", 10)

	if err := svc.SeedEventFromGlobal(ctx, ev); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	if err := svc.SeedEventFromGlobal(ctx, ev); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	defs, err := ev.Store.ListClassDefinitions(ctx)
	if err != nil {
		t.Fatalf("ListClassDefinitions failed: %v", err)
	}
	if len(defs) != 1 {
		t.Errorf("got %d definitions after double seed, want 1", len(defs))
	}
}

func TestUpsertDefinition_EventOnly(t *testing.T) {
	ctx := context.Background()
	svc, master, ev := newClassFixture(t)

	def := models.ClassDefinition{ClassKey: "worlds", DisplayName: "Worlds", Bucket: "studio", SortOrder: 10, IsActive: true}
	if err := svc.UpsertDefinition(ctx, ev, def, false); err != nil {
		t.Fatalf("UpsertDefinition failed: %v", err)
	}

	exists, err := ev.Store.ClassKeyExists(ctx, "worlds")
	if err != nil || !exists {
		t.Errorf("event store: exists=%v err=%v, want definition present", exists, err)
	}

	inMaster, err := master.ClassKeyExists(ctx, "worlds")
	if err != nil {
		t.Fatalf("ClassKeyExists failed: %v", err)
	}
	if inMaster {
		t.Error("definition leaked to global store without propagation")
	}
}

func TestUpsertDefinition_PropagatesGlobally(t *testing.T) {
	ctx := context.Background()
	svc, master, ev := newClassFixture(t)

	def := models.ClassDefinition{ClassKey: "worlds", DisplayName: "Worlds", Bucket: "studio", SortOrder: 10, IsActive: true}
	if err := svc.UpsertDefinition(ctx, ev, def, true); err != nil {
		t.Fatalf("UpsertDefinition failed: %v", err)
	}

	inMaster, err := master.ClassKeyExists(ctx, "worlds")
	if err != nil {
		t.Fatalf("ClassKeyExists failed: %v", err)
	}
	if !inMaster {
		t.Error("definition did not propagate to global store")
	}
}

func TestUpsertDefinition_EmptyKey(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	err := svc.UpsertDefinition(ctx, ev, models.ClassDefinition{ClassKey: "   "}, false)
	if errors.KindOf(err) != errors.ErrValidation {
		t.Errorf("UpsertDefinition with blank key: kind = %v, want ErrValidation", errors.KindOf(err))
	}
}

func TestUpsertDefinition_NoEventOpen(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newClassFixture(t)

	def := models.ClassDefinition{ClassKey: "worlds", DisplayName: "Worlds"}
	err := svc.UpsertDefinition(ctx, nil, def, false)
	if errors.KindOf(err) != errors.ErrNoActiveContext {
		t.Errorf("UpsertDefinition without event: kind = %v, want ErrNoActiveContext", errors.KindOf(err))
	}
}

func TestUpsertAlias_UnknownClassKey(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	err := svc.UpsertAlias(ctx, ev, "WORLDS DIVISION", "missing", false)
	if errors.KindOf(err) != errors.ErrNotFound {
		t.Errorf("UpsertAlias to unknown key: kind = %v, want ErrNotFound", errors.KindOf(err))
	}
}

func TestUpsertAlias_RequiresKeyInEveryTargetScope(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	// Key exists in the event but not globally, so global propagation
	// must be rejected.
	seedDefinition(t, ctx, ev.Store, "worlds", "Worlds", "studio", 10)

	err := svc.UpsertAlias(ctx, ev, "WORLDS DIVISION", "worlds", true)
	if errors.KindOf(err) != errors.ErrNotFound {
		t.Errorf("UpsertAlias propagating to missing global key: kind = %v, want ErrNotFound", errors.KindOf(err))
	}
}

func TestDeleteDefinition_RemovesAliases(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	seedDefinition(t, ctx, ev.Store, "worlds", "Worlds", "studio", 10)
	if err := svc.UpsertAlias(ctx, ev, "WORLDS DIVISION", "worlds", false); err != nil {
		t.Fatalf("UpsertAlias failed: %v", err)
	}

	if err := svc.DeleteDefinition(ctx, ev, "worlds", false); err != nil {
		t.Fatalf("DeleteDefinition failed: %v", err)
	}

	aliases, err := ev.Store.ListClassAliases(ctx)
	if err != nil {
		t.Fatalf("ListClassAliases failed: %v", err)
	}
	if len(aliases) != 0 {
		t.Errorf("got %d aliases after definition delete, want 0", len(aliases))
	}
}

func TestDeleteDefinition_MissingKeyIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	if err := svc.DeleteDefinition(ctx, ev, "nope", false); err != nil {
		t.Errorf("DeleteDefinition of missing key: %v, want nil", err)
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	seedDefinition(t, ctx, ev.Store, "worlds", "Worlds", "studio", 10)
	seedDefinition(t, ctx, ev.Store, "power", "Power", "studio", 20)
	if err := svc.UpsertAlias(ctx, ev, "WORLDS DIVISION", "worlds", false); err != nil {
		t.Fatalf("UpsertAlias failed: %v", err)
	}
	// Alias that happens to collide with a different class key: the alias
	// must win over the direct key match.
	if err := svc.UpsertAlias(ctx, ev, "power", "worlds", false); err != nil {
		t.Fatalf("UpsertAlias failed: %v", err)
	}

	tests := []struct {
		name     string
		raw      string
		wantKey  string
		resolved bool
	}{
		{"alias match", "WORLDS DIVISION", "worlds", true},
		{"alias match with padding", "  WORLDS DIVISION  ", "worlds", true},
		{"direct key match", "worlds", "worlds", true},
		{"alias beats key collision", "power", "worlds", true},
		{"unknown text", "Teen Studio", "", false},
		{"empty text", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok, err := svc.Resolve(ctx, ev, tt.raw)
			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.raw, err)
			}
			if ok != tt.resolved || key != tt.wantKey {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.raw, key, ok, tt.wantKey, tt.resolved)
			}
		})
	}
}

func TestUnmappedClasses(t *testing.T) {
	ctx := context.Background()
	svc, _, ev := newClassFixture(t)

	seedDefinition(t, ctx, ev.Store, "worlds", "Worlds", "studio", 10)

	insertRoutine(t, ctx, ev.Store, models.Routine{
		RoutineID: "r1", ProgramNumber: 1, EntryType: "Solo", Class: "worlds", RoutineTitle: "A",
	})
	insertRoutine(t, ctx, ev.Store, models.Routine{
		RoutineID: "r2", ProgramNumber: 2, EntryType: "Solo", Class: "Teen Studio", RoutineTitle: "B",
	})
	insertRoutine(t, ctx, ev.Store, models.Routine{
		RoutineID: "r3", ProgramNumber: 3, EntryType: "Solo", Class: " Teen Studio ", RoutineTitle: "C",
	})

	unmapped, err := svc.UnmappedClasses(ctx, ev)
	if err != nil {
		t.Fatalf("UnmappedClasses failed: %v", err)
	}
	if len(unmapped) != 1 || unmapped[0] != "Teen Studio" {
		t.Errorf("UnmappedClasses = %v, want [Teen Studio]", unmapped)
	}
}

func insertRoutine(t *testing.T, ctx context.Context, store repository.RoutineRepository, r models.Routine) {
	t.Helper()

	if err := store.InsertRoutine(ctx, r, "fp-"+r.RoutineID); err != nil {
		t.Fatalf("InsertRoutine(%s) failed: %v", r.RoutineID, err)
	}
}
