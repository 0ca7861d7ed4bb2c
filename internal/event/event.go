// Package event models the explicitly threaded event context: which event
// database a resolver or ranking call operates on. There is no ambient
// "current event" in the core; callers pass a *Context to every operation
// that needs one.
package event

import (
	"sync"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/repository"
)

// Context is a handle to one open event database plus its metadata.
type Context struct {
	Name  string
	Path  string
	Store *repository.Store
}

// Close releases the event database connection.
func (c *Context) Close() error {
	if c == nil || c.Store == nil {
		return nil
	}
	return c.Store.Close()
}

// Manager tracks the currently open event context for the API surface.
// The core never reads it; only the handler layer asks it for the handle
// to thread into service calls.
type Manager struct {
	mu      sync.RWMutex
	current *Context
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Open makes ctx the current event context, closing any previous one.
func (m *Manager) Open(ctx *Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	if m.current != nil {
		err = m.current.Close()
	}
	m.current = ctx
	return err
}

// Close closes and clears the current event context, if any.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	err := m.current.Close()
	m.current = nil
	return err
}

// Current returns the open event context, or nil when none is open.
func (m *Manager) Current() *Context {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}
