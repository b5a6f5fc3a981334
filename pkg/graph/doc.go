// Package graph implements the dependency DAG behind profile inheritance.
//
// Profiles are nodes, a directed edge (parent -> dependency) means the
// parent inherits the dependency's variables. The package handles:
//
//   - Cycle-safe structural mutation (nodes, edges, in-place renames)
//   - Reachability search for cycle diagnostics (FindPath)
//   - Topological dependency resolution for activation order (Resolve)
//   - One-shot construction from a full profile set (Build)
//
// The graph is stored as an arena of nodes plus a name-to-index table,
// with adjacency lists by index in both directions. Rejected mutations
// leave the graph exactly as it was.
package graph
