package manager

import (
	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/profile"
)

// CollectVars merges the variables of every profile in names and their
// transitive dependencies into one mapping. Profiles are visited in
// activation order (dependencies first), merging left to right, so a
// profile closer to the root overwrites a deeper dependency for the same
// key. Every named profile and dependency must be loaded.
func (m *Manager) CollectVars(names []string) (map[string]string, error) {
	ordered := make([]string, 0, len(names))
	seen := make(map[string]bool)

	for _, name := range names {
		deps, err := m.graph.Resolve(name)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if !seen[dep] {
				seen[dep] = true
				ordered = append(ordered, dep)
			}
		}
	}

	// The named profiles themselves, if resolution didn't already place
	// them.
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			ordered = append(ordered, name)
		}
	}

	vars := make(map[string]string)
	for _, name := range ordered {
		p, ok := m.profiles[name]
		if !ok {
			return nil, errors.NewProfileNotFound(name)
		}
		for key, value := range p.Variables {
			vars[key] = value
		}
	}
	return vars, nil
}

// EffectiveVars returns the full variable mapping a profile activates:
// everything inherited through its dependency list, with the profile's
// own variables layered last so its own settings always win.
func (m *Manager) EffectiveVars(p *profile.Profile) (map[string]string, error) {
	vars, err := m.CollectVars(p.Profiles)
	if err != nil {
		return nil, err
	}
	for key, value := range p.Variables {
		vars[key] = value
	}
	return vars, nil
}
