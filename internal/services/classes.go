package services

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/logger"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/models"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
)

// ClassService resolves raw, staff-entered class text to canonical class
// keys and maintains the two-tier class configuration: every mutation
// writes the event store, and optionally also the global (master) store.
// Dual writes are always explicit, never implicit replication.
type ClassService struct {
	log    logger.Logger
	master repository.ClassStore
}

// NewClassService creates a new ClassService over the global class store
func NewClassService(log logger.Logger, master repository.ClassStore) *ClassService {
	return &ClassService{log: log, master: master}
}

func requireEvent(ev *event.Context) error {
	if ev == nil || ev.Store == nil {
		return errors.NoActiveContext("no event is open")
	}
	return nil
}

// SeedEventFromGlobal merges every global definition and alias into the
// event store, insert-or-update by key. Event-only rows are never deleted,
// so re-seeding is idempotent and cannot regress local edits for keys the
// global set does not carry.
func (s *ClassService) SeedEventFromGlobal(ctx context.Context, ev *event.Context) error {
	if err := requireEvent(ev); err != nil {
		return err
	}

	defs, err := s.master.ListClassDefinitions(ctx)
	if err != nil {
		return errors.Storage(err, "failed to read global class definitions")
	}
	aliases, err := s.master.ListClassAliases(ctx)
	if err != nil {
		return errors.Storage(err, "failed to read global class aliases")
	}

	// Definitions first so alias foreign keys are satisfiable
	for _, def := range defs {
		if err := ev.Store.UpsertClassDefinition(ctx, def); err != nil {
			return errors.Storage(err, "failed to seed class definition")
		}
	}
	for _, a := range aliases {
		if err := ev.Store.UpsertClassAlias(ctx, a.Alias, a.ClassKey); err != nil {
			return errors.Storage(err, "failed to seed class alias")
		}
	}

	s.log.Info("Seeded event class config from global set",
		"event", ev.Name, "definitions", len(defs), "aliases", len(aliases))
	return nil
}

// UpsertDefinition writes a class definition to the event store, and to the
// global store as well when propagateGlobally is set.
func (s *ClassService) UpsertDefinition(ctx context.Context, ev *event.Context, def models.ClassDefinition, propagateGlobally bool) error {
	if err := requireEvent(ev); err != nil {
		return err
	}
	def.ClassKey = strings.TrimSpace(def.ClassKey)
	if def.ClassKey == "" {
		return errors.Validation("class key cannot be empty")
	}

	if err := ev.Store.UpsertClassDefinition(ctx, def); err != nil {
		return errors.Storage(err, "failed to upsert class definition")
	}
	if propagateGlobally {
		if err := s.master.UpsertClassDefinition(ctx, def); err != nil {
			return errors.Storage(err, "failed to upsert global class definition")
		}
	}
	return nil
}

// UpsertAlias maps a raw class spelling to a class key. The key must exist
// in each scope being written; the check happens at call time so the
// failure mode is deterministic rather than a storage constraint error.
func (s *ClassService) UpsertAlias(ctx context.Context, ev *event.Context, alias, classKey string, propagateGlobally bool) error {
	if err := requireEvent(ev); err != nil {
		return err
	}
	alias = strings.TrimSpace(alias)
	classKey = strings.TrimSpace(classKey)
	if alias == "" {
		return errors.Validation("alias cannot be empty")
	}
	if classKey == "" {
		return errors.Validation("class key cannot be empty")
	}

	exists, err := ev.Store.ClassKeyExists(ctx, classKey)
	if err != nil {
		return errors.Storage(err, "failed to check class key")
	}
	if !exists {
		return errors.NotFoundf("class key %q not found in event", classKey)
	}
	if err := ev.Store.UpsertClassAlias(ctx, alias, classKey); err != nil {
		return errors.Storage(err, "failed to upsert class alias")
	}

	if propagateGlobally {
		exists, err := s.master.ClassKeyExists(ctx, classKey)
		if err != nil {
			return errors.Storage(err, "failed to check global class key")
		}
		if !exists {
			return errors.NotFoundf("class key %q not found in global set", classKey)
		}
		if err := s.master.UpsertClassAlias(ctx, alias, classKey); err != nil {
			return errors.Storage(err, "failed to upsert global class alias")
		}
	}
	return nil
}

// DeleteDefinition removes a class definition and all aliases referencing
// it, aliases first. Deleting an absent key is a no-op.
func (s *ClassService) DeleteDefinition(ctx context.Context, ev *event.Context, classKey string, propagateGlobally bool) error {
	if err := requireEvent(ev); err != nil {
		return err
	}
	classKey = strings.TrimSpace(classKey)
	if classKey == "" {
		return errors.Validation("class key cannot be empty")
	}

	if err := ev.Store.DeleteClassDefinition(ctx, classKey); err != nil {
		return errors.Storage(err, "failed to delete class definition")
	}
	if propagateGlobally {
		if err := s.master.DeleteClassDefinition(ctx, classKey); err != nil {
			return errors.Storage(err, "failed to delete global class definition")
		}
	}
	return nil
}

// DeleteAlias removes an alias mapping from the event store and optionally
// from the global store.
func (s *ClassService) DeleteAlias(ctx context.Context, ev *event.Context, alias string, propagateGlobally bool) error {
	if err := requireEvent(ev); err != nil {
		return err
	}
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return errors.Validation("alias cannot be empty")
	}

	if err := ev.Store.DeleteClassAlias(ctx, alias); err != nil {
		return errors.Storage(err, "failed to delete class alias")
	}
	if propagateGlobally {
		if err := s.master.DeleteClassAlias(ctx, alias); err != nil {
			return errors.Storage(err, "failed to delete global class alias")
		}
	}
	return nil
}

// Resolve maps raw class text to a canonical class key using the event
// snapshot: alias match first, then an exact class-key match. Unmapped
// input is a normal outcome, reported as ok=false, never an error.
func (s *ClassService) Resolve(ctx context.Context, ev *event.Context, rawText string) (string, bool, error) {
	if err := requireEvent(ev); err != nil {
		return "", false, err
	}

	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return "", false, nil
	}

	classKey, err := ev.Store.LookupAlias(ctx, trimmed)
	if err == nil {
		return classKey, true, nil
	}
	if !stderrors.Is(err, repository.ErrNotFound) {
		return "", false, errors.Storage(err, "failed to look up class alias")
	}

	exists, err := ev.Store.ClassKeyExists(ctx, trimmed)
	if err != nil {
		return "", false, errors.Storage(err, "failed to check class key")
	}
	if exists {
		return trimmed, true, nil
	}
	return "", false, nil
}

// ListDefinitions returns the event's class definitions in display order
func (s *ClassService) ListDefinitions(ctx context.Context, ev *event.Context) ([]models.ClassDefinition, error) {
	if err := requireEvent(ev); err != nil {
		return nil, err
	}
	defs, err := ev.Store.ListClassDefinitions(ctx)
	if err != nil {
		return nil, errors.Storage(err, "failed to list class definitions")
	}
	return defs, nil
}

// ListAliases returns the event's alias mappings
func (s *ClassService) ListAliases(ctx context.Context, ev *event.Context) ([]models.ClassAlias, error) {
	if err := requireEvent(ev); err != nil {
		return nil, err
	}
	aliases, err := ev.Store.ListClassAliases(ctx)
	if err != nil {
		return nil, errors.Storage(err, "failed to list class aliases")
	}
	return aliases, nil
}

// UnmappedClasses returns the distinct raw class texts on the event's
// routines that no alias or class key covers.
func (s *ClassService) UnmappedClasses(ctx context.Context, ev *event.Context) ([]string, error) {
	if err := requireEvent(ev); err != nil {
		return nil, err
	}
	texts, err := ev.Store.UnmappedClasses(ctx)
	if err != nil {
		return nil, errors.Storage(err, "failed to list unmapped classes")
	}
	return texts, nil
}
