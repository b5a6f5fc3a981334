// Package manager owns one session's working state: the in-memory profile
// set, the dependency graph over it, and the store it loads from. All
// operations are synchronous and the manager is not safe for concurrent
// use; each CLI invocation or TUI instance owns exactly one Manager.
package manager

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/graph"
	"github.com/arthur-debert/envman/pkg/logging"
	"github.com/arthur-debert/envman/pkg/profile"
	"github.com/arthur-debert/envman/pkg/store"
)

// Manager is the session-scoped profile manager. Profiles enter the
// in-memory set either lazily through Load or eagerly through LoadAll;
// the graph mirrors the set's declared dependencies at all times.
type Manager struct {
	store    store.Store
	profiles map[string]*profile.Profile
	graph    *graph.Graph
	logger   zerolog.Logger
}

// New creates an empty manager over the given store. Nothing is loaded
// until Load or LoadAll is called.
func New(s store.Store) *Manager {
	return &Manager{
		store:    s,
		profiles: make(map[string]*profile.Profile),
		graph:    graph.New(),
		logger:   logging.GetLogger("manager"),
	}
}

// NewFull creates a manager and eagerly loads every stored profile
func NewFull(s store.Store) (*Manager, error) {
	m := New(s)
	if err := m.LoadAll(); err != nil {
		return nil, err
	}
	return m, nil
}

// Profile returns the loaded profile for name, or false when it has not
// been loaded (or committed) yet.
func (m *Manager) Profile(name string) (*profile.Profile, bool) {
	p, ok := m.profiles[name]
	return p, ok
}

// HasProfile reports whether name is in the loaded set
func (m *Manager) HasProfile(name string) bool {
	_, ok := m.profiles[name]
	return ok
}

// LoadedNames returns the names of all loaded profiles, sorted
func (m *Manager) LoadedNames() []string {
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddProfile places p in the loaded set and registers its graph node.
// Declared dependencies are not wired; use AddEdge or Rebuild after
// editing.
func (m *Manager) AddProfile(name string, p *profile.Profile) {
	m.profiles[name] = p
	m.graph.AddNode(name)
}

// RemoveProfile drops name from the loaded set and the graph, with all
// its incident edges. Removing an unloaded profile is a no-op.
func (m *Manager) RemoveProfile(name string) {
	if _, ok := m.profiles[name]; !ok {
		return
	}
	delete(m.profiles, name)
	// Node must exist: AddProfile and the loader register it.
	_ = m.graph.RemoveNode(name)
}

// RenameProfile relabels a loaded profile in place, preserving its
// dependants and dependencies.
func (m *Manager) RenameProfile(oldName, newName string) error {
	p, ok := m.profiles[oldName]
	if !ok {
		return errors.NewProfileNotFound(oldName)
	}
	if err := m.graph.RenameNode(oldName, newName); err != nil {
		return err
	}
	delete(m.profiles, oldName)
	m.profiles[newName] = p

	m.logger.Debug().
		Str("from", oldName).
		Str("to", newName).
		Msg("Profile renamed")
	return nil
}

// Resolve returns the activation order for name: its transitive
// dependency closure deepest-first, name last.
func (m *Manager) Resolve(name string) ([]string, error) {
	return m.graph.Resolve(name)
}

// Parents returns the profiles that declare name as a dependency
func (m *Manager) Parents(name string) ([]string, error) {
	return m.graph.Parents(name)
}

// FindPath returns a dependency path start -> ... -> end, or nil. Callers
// use it to pre-validate edits: a non-nil FindPath(d, p) means adding the
// edge p -> d would close a cycle.
func (m *Manager) FindPath(start, end string) []string {
	return m.graph.FindPath(start, end)
}

// AddEdge records that parent depends on dependency, rejecting edges that
// would close a cycle. The profile records themselves are not modified.
func (m *Manager) AddEdge(parent, dependency string) error {
	return m.graph.AddEdge(parent, dependency)
}

// RemoveEdge removes the parent -> dependency edge; absent edges are a
// no-op.
func (m *Manager) RemoveEdge(parent, dependency string) error {
	return m.graph.RemoveEdge(parent, dependency)
}

// Rebuild reconstructs the graph from the loaded profile set in one shot,
// discarding any edges added outside the declared dependency lists.
func (m *Manager) Rebuild() error {
	g, err := graph.Build(m.profiles)
	if err != nil {
		return err
	}
	m.graph = g
	return nil
}
