// pkg/graph/resolve_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test topological dependency resolution and live-cycle detection

package graph_test

import (
	"testing"

	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLinearChain(t *testing.T) {
	g := chain(t)

	order, err := g.Resolve("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, order)
}

func TestResolveSingleNode(t *testing.T) {
	g := graph.New()
	g.AddNode("base")

	order, err := g.Resolve("base")
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, order)
}

func TestResolveSharedDependencyOrderedOnce(t *testing.T) {
	// work -> tools -> base, work -> base: base appears exactly once,
	// before everything depending on it.
	g := graph.New()
	for _, name := range []string{"work", "tools", "base"} {
		g.AddNode(name)
	}
	require.NoError(t, g.AddEdge("work", "tools"))
	require.NoError(t, g.AddEdge("work", "base"))
	require.NoError(t, g.AddEdge("tools", "base"))

	order, err := g.Resolve("work")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "tools", "work"}, order)
}

func TestResolveIsValidTopologicalOrder(t *testing.T) {
	// Random-ish diamond-with-tail shape; verify the ordering property
	// instead of one fixed permutation.
	g := graph.New()
	deps := map[string][]string{
		"app":    {"web", "db"},
		"web":    {"base"},
		"db":     {"base"},
		"base":   {"sys"},
		"sys":    {},
		"orphan": {},
	}
	for name := range deps {
		g.AddNode(name)
	}
	for name, ds := range deps {
		for _, d := range ds {
			require.NoError(t, g.AddEdge(name, d))
		}
	}

	order, err := g.Resolve("app")
	require.NoError(t, err)

	require.Equal(t, "app", order[len(order)-1])
	assert.NotContains(t, order, "orphan")

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	for name, ds := range deps {
		if _, ok := pos[name]; !ok {
			continue
		}
		for _, d := range ds {
			assert.Less(t, pos[d], pos[name],
				"dependency %s must come before %s", d, name)
		}
	}
}

func TestResolveUnknownProfile(t *testing.T) {
	g := graph.New()

	_, err := g.Resolve("ghost")
	assert.True(t, errors.IsErrorCode(err, errors.ErrProfileNotFound))
}

func TestResolveAfterRejectedCycleEdge(t *testing.T) {
	g := chain(t)
	require.Error(t, g.AddEdge("c", "a"))

	// The rejected edge must not leak into resolution results.
	order, err := g.Resolve("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, order)
}
