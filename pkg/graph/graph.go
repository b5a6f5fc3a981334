package graph

import (
	"github.com/arthur-debert/envman/pkg/errors"
)

// node is one arena slot. Adjacency is stored by arena index in both
// directions so parent lookups don't scan the whole arena. Dead slots stay
// in place and are recycled through the free list.
type node struct {
	name     string
	children []int
	parents  []int
	alive    bool
}

// Graph is the in-memory DAG over profile names. Nodes are profile names,
// a directed edge (parent -> dependency) means the parent inherits the
// dependency's variables. Every mutation either commits fully or leaves
// the graph untouched; no operation may leave an observable cycle.
//
// A Graph is owned by a single session and is not safe for concurrent use.
type Graph struct {
	nodes []node
	index map[string]int
	free  []int
	edges int
}

// New returns an empty dependency graph
func New() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// HasNode reports whether name is registered
func (g *Graph) HasNode(name string) bool {
	_, ok := g.index[name]
	return ok
}

// NodeCount returns the number of registered profiles
func (g *Graph) NodeCount() int {
	return len(g.index)
}

// EdgeCount returns the number of dependency edges
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Nodes returns the names of all registered profiles, in arena order
func (g *Graph) Nodes() []string {
	names := make([]string, 0, len(g.index))
	for _, n := range g.nodes {
		if n.alive {
			names = append(names, n.name)
		}
	}
	return names
}

// AddNode registers name as a graph node. Adding an existing node is a
// no-op.
func (g *Graph) AddNode(name string) {
	if _, ok := g.index[name]; ok {
		return
	}
	var idx int
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
		g.nodes[idx] = node{name: name, alive: true}
	} else {
		idx = len(g.nodes)
		g.nodes = append(g.nodes, node{name: name, alive: true})
	}
	g.index[name] = idx
}

// RemoveNode removes name and every edge incident to it. Fails with
// PROFILE_NOT_FOUND if name is not registered.
func (g *Graph) RemoveNode(name string) error {
	idx, ok := g.index[name]
	if !ok {
		return errors.NewProfileNotFound(name)
	}

	for _, child := range g.nodes[idx].children {
		g.nodes[child].parents = removeIndex(g.nodes[child].parents, idx)
		g.edges--
	}
	for _, parent := range g.nodes[idx].parents {
		g.nodes[parent].children = removeIndex(g.nodes[parent].children, idx)
		g.edges--
	}

	g.nodes[idx] = node{}
	delete(g.index, name)
	g.free = append(g.free, idx)
	return nil
}

// RenameNode relabels oldName in place, preserving all edges. Fails with
// PROFILE_NOT_FOUND if oldName is not registered, INVALID_INPUT if newName
// already names a different node.
func (g *Graph) RenameNode(oldName, newName string) error {
	idx, ok := g.index[oldName]
	if !ok {
		return errors.NewProfileNotFound(oldName)
	}
	if other, ok := g.index[newName]; ok && other != idx {
		return errors.Newf(errors.ErrInvalidInput,
			"Profile '%s' already exists.", newName)
	}

	g.nodes[idx].name = newName
	delete(g.index, oldName)
	g.index[newName] = idx
	return nil
}

// AddEdge records that parent depends on dependency. Both endpoints must
// be registered: a missing parent fails PROFILE_NOT_FOUND, a missing
// dependency fails DEPENDENCY_NOT_FOUND. An edge whose insertion would
// close a cycle (self-loops included) is rejected with
// CIRCULAR_DEPENDENCY carrying the reconstructed cycle path, and the
// graph is left unchanged. Adding an edge that already exists is a no-op.
func (g *Graph) AddEdge(parent, dependency string) error {
	parentIdx, ok := g.index[parent]
	if !ok {
		return errors.NewProfileNotFound(parent)
	}
	depIdx, ok := g.index[dependency]
	if !ok {
		return errors.NewDependencyNotFound(parent, dependency)
	}

	if parent == dependency {
		return errors.NewCircularDependency([]string{parent, dependency})
	}

	if containsIndex(g.nodes[parentIdx].children, depIdx) {
		return nil
	}

	// A path dependency -> ... -> parent plus the new edge would close a
	// loop, so reject before touching the adjacency lists.
	if path := g.FindPath(dependency, parent); path != nil {
		cycle := make([]string, 0, len(path)+1)
		cycle = append(cycle, parent)
		cycle = append(cycle, path...)
		return errors.NewCircularDependency(cycle)
	}

	g.nodes[parentIdx].children = append(g.nodes[parentIdx].children, depIdx)
	g.nodes[depIdx].parents = append(g.nodes[depIdx].parents, parentIdx)
	g.edges++
	return nil
}

// RemoveEdge removes the parent -> dependency edge. Removing an edge that
// does not exist is a no-op, but both endpoints must be registered.
func (g *Graph) RemoveEdge(parent, dependency string) error {
	parentIdx, ok := g.index[parent]
	if !ok {
		return errors.NewProfileNotFound(parent)
	}
	depIdx, ok := g.index[dependency]
	if !ok {
		return errors.NewDependencyNotFound(parent, dependency)
	}

	if !containsIndex(g.nodes[parentIdx].children, depIdx) {
		return nil
	}

	g.nodes[parentIdx].children = removeIndex(g.nodes[parentIdx].children, depIdx)
	g.nodes[depIdx].parents = removeIndex(g.nodes[depIdx].parents, parentIdx)
	g.edges--
	return nil
}

// Parents returns the profiles that declare name as a dependency. An
// isolated node yields an empty slice; only an unregistered name is an
// error.
func (g *Graph) Parents(name string) ([]string, error) {
	idx, ok := g.index[name]
	if !ok {
		return nil, errors.NewProfileNotFound(name)
	}

	parents := make([]string, 0, len(g.nodes[idx].parents))
	for _, parentIdx := range g.nodes[idx].parents {
		parents = append(parents, g.nodes[parentIdx].name)
	}
	return parents, nil
}

// Dependencies returns the profiles name directly depends on, in edge
// insertion order.
func (g *Graph) Dependencies(name string) ([]string, error) {
	idx, ok := g.index[name]
	if !ok {
		return nil, errors.NewProfileNotFound(name)
	}

	deps := make([]string, 0, len(g.nodes[idx].children))
	for _, childIdx := range g.nodes[idx].children {
		deps = append(deps, g.nodes[childIdx].name)
	}
	return deps, nil
}

func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}

func removeIndex(indices []int, idx int) []int {
	kept := indices[:0]
	for _, i := range indices {
		if i != idx {
			kept = append(kept, i)
		}
	}
	return kept
}
