// pkg/graph/build_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test one-shot graph construction from a full profile set

package graph_test

import (
	"testing"

	"github.com/arthur-debert/envman/pkg/errors"
	"github.com/arthur-debert/envman/pkg/graph"
	"github.com/arthur-debert/envman/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWithDeps(deps ...string) *profile.Profile {
	p := profile.New()
	p.Profiles = deps
	return p
}

func TestBuild(t *testing.T) {
	profiles := map[string]*profile.Profile{
		"base":  profileWithDeps(),
		"tools": profileWithDeps("base"),
		"work":  profileWithDeps("tools", "base"),
	}

	g, err := graph.Build(profiles)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	order, err := g.Resolve("work")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "tools", "work"}, order)
}

func TestBuildEmptySet(t *testing.T) {
	g, err := graph.Build(map[string]*profile.Profile{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.NodeCount())
}

func TestBuildMissingReference(t *testing.T) {
	profiles := map[string]*profile.Profile{
		"work": profileWithDeps("ghost"),
	}

	_, err := graph.Build(profiles)
	require.True(t, errors.IsErrorCode(err, errors.ErrDependencyNotFound))
	assert.Contains(t, err.Error(), "'work'")
	assert.Contains(t, err.Error(), "'ghost'")
}

func TestBuildTwoNodeCycle(t *testing.T) {
	profiles := map[string]*profile.Profile{
		"a": profileWithDeps("b"),
		"b": profileWithDeps("a"),
	}

	_, err := graph.Build(profiles)
	require.True(t, errors.IsErrorCode(err, errors.ErrCircularDependency))

	path := errors.CyclePath(err)
	assert.Contains(t, path, "a")
	assert.Contains(t, path, "b")
}

func TestBuildDuplicateDeclaredDependencies(t *testing.T) {
	// Duplicates in the declaration are tolerated; the graph keeps at most
	// one edge per ordered pair.
	profiles := map[string]*profile.Profile{
		"base": profileWithDeps(),
		"work": profileWithDeps("base", "base"),
	}

	g, err := graph.Build(profiles)
	require.NoError(t, err)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestBuildOrderIndependent(t *testing.T) {
	// A profile may reference a dependency that sorts after it; all nodes
	// are registered before any edge is added.
	profiles := map[string]*profile.Profile{
		"aaa": profileWithDeps("zzz"),
		"zzz": profileWithDeps(),
	}

	g, err := graph.Build(profiles)
	require.NoError(t, err)

	order, err := g.Resolve("aaa")
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz", "aaa"}, order)
}
