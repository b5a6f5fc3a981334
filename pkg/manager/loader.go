package manager

import (
	"github.com/arthur-debert/envman/pkg/errors"
)

// Load brings name and its transitive dependencies from the store into
// the session, memoized: profiles already loaded are not re-read.
//
// The loader is deliberately fault tolerant across sibling dependencies:
// each dependency failure is wrapped with the profile that pulled it in
// and loading continues with the remaining siblings, so one broken
// dependency cannot hide unrelated problems. A single failure is returned
// as-is, several are aggregated into one MultiError. A profile whose
// dependencies failed is not committed to the loaded set, but siblings
// that loaded cleanly stay loaded.
func (m *Manager) Load(name string) error {
	return m.load(name, make(map[string]bool))
}

// load is the recursive worker. visiting tracks names in progress on this
// call stack; re-encountering one short-circuits as a success and leaves
// the cycle determination to the edge insertion on unwind.
func (m *Manager) load(name string, visiting map[string]bool) error {
	if _, ok := m.profiles[name]; ok {
		return nil
	}
	if visiting[name] {
		return nil
	}

	visiting[name] = true
	defer delete(visiting, name)

	p, err := m.store.Read(name)
	if err != nil {
		return err
	}

	m.graph.AddNode(name)

	var failures []error
	for _, dep := range p.Profiles {
		if err := m.load(dep, visiting); err != nil {
			failures = append(failures, errors.Chain(name, err))
			continue
		}
		if err := m.graph.AddEdge(name, dep); err != nil {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		m.logger.Warn().
			Str("profile", name).
			Int("failures", len(failures)).
			Msg("Profile not committed, dependency failures")
		return errors.Collect(failures)
	}

	m.profiles[name] = p
	m.logger.Debug().
		Str("profile", name).
		Int("dependencies", len(p.Profiles)).
		Msg("Profile loaded")
	return nil
}

// LoadAll loads every profile the store knows about. Load is memoized,
// so the result does not depend on listing order; failures from distinct
// profiles are aggregated rather than aborting the sweep.
func (m *Manager) LoadAll() error {
	names, err := m.store.List()
	if err != nil {
		return err
	}

	var failures []error
	for _, name := range names {
		if err := m.Load(name); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Collect(failures)
}
