package graph

import (
	"github.com/arthur-debert/envman/pkg/errors"
)

// Resolve returns the full transitive dependency closure of name in
// activation order: every profile appears after all of its own
// dependencies, with name itself last. A shared dependency is ordered
// once, at its first (deepest) completion. Resolution independently
// detects live cycles during traversal, so a corrupted graph can never
// produce a bogus order. An unregistered name fails PROFILE_NOT_FOUND.
func (g *Graph) Resolve(name string) ([]string, error) {
	resolved := make(map[string]bool)
	visiting := make([]string, 0, 8)
	result := make([]string, 0, 8)

	if err := g.resolve(name, &visiting, resolved, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// resolve is the depth-first post-order walk. visiting holds the current
// path for live-cycle detection, resolved memoizes completed subtrees.
func (g *Graph) resolve(name string, visiting *[]string, resolved map[string]bool, result *[]string) error {
	idx, ok := g.index[name]
	if !ok {
		// The graph's own mutations guarantee registered endpoints; this
		// consistency check covers callers resolving unknown names.
		return errors.NewProfileNotFound(name)
	}

	*visiting = append(*visiting, name)

	for _, childIdx := range g.nodes[idx].children {
		dep := g.nodes[childIdx].name

		if resolved[dep] {
			continue
		}

		if pos := position(*visiting, dep); pos >= 0 {
			// dep is already on the current path: a live cycle from its
			// first occurrence through the current node and back.
			cycle := make([]string, 0, len(*visiting)-pos+1)
			cycle = append(cycle, (*visiting)[pos:]...)
			cycle = append(cycle, dep)
			return errors.NewCircularDependency(cycle)
		}

		if err := g.resolve(dep, visiting, resolved, result); err != nil {
			return err
		}
	}

	*visiting = (*visiting)[:len(*visiting)-1]

	if !resolved[name] {
		resolved[name] = true
		*result = append(*result, name)
	}
	return nil
}

func position(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
