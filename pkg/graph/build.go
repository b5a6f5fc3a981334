package graph

import (
	"sort"

	"github.com/arthur-debert/envman/pkg/logging"
	"github.com/arthur-debert/envman/pkg/profile"
)

// Build constructs a graph from a full profile set in one shot. Every name
// is registered as a node before any edge is added, so declaration order
// between profiles does not matter. The first dependency naming a profile
// outside the set fails DEPENDENCY_NOT_FOUND; the first edge that would
// close a loop fails CIRCULAR_DEPENDENCY with the reconstructed cycle
// path. Profiles are processed in sorted name order so failures are
// deterministic.
func Build(profiles map[string]*profile.Profile) (*Graph, error) {
	logger := logging.GetLogger("graph")

	g := New()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		g.AddNode(name)
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, dep := range profiles[name].Profiles {
			if err := g.AddEdge(name, dep); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug().
		Int("nodes", g.NodeCount()).
		Int("edges", g.EdgeCount()).
		Msg("Dependency graph built")

	return g, nil
}
