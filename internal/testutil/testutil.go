package testutil

import (
	"testing"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/event"
	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
)

// NewTestStore creates a new in-memory event store for testing.
// Each call creates a fresh database with all migrations applied.
func NewTestStore(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// NewTestMaster creates a new in-memory global class store for testing
func NewTestMaster(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.NewMaster(":memory:")
	if err != nil {
		t.Fatalf("failed to create test master store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// NewTestEvent wraps a fresh in-memory event store in an event context
func NewTestEvent(t *testing.T) *event.Context {
	t.Helper()

	return &event.Context{
		Name:  "test-event",
		Path:  ":memory:",
		Store: NewTestStore(t),
	}
}
