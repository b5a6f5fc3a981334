package graph

// FindPath returns the first DFS-discovered path start -> ... -> end,
// inclusive of both endpoints, or nil when no path exists or either
// endpoint is unregistered. The path is not necessarily the shortest;
// it only needs to witness reachability for cycle diagnostics.
func (g *Graph) FindPath(start, end string) []string {
	startIdx, ok := g.index[start]
	if !ok {
		return nil
	}
	endIdx, ok := g.index[end]
	if !ok {
		return nil
	}

	visited := make(map[int]bool)
	stack := []int{startIdx}
	if found := g.findPath(endIdx, &stack, visited); found != nil {
		return found
	}
	return nil
}

// findPath extends the path on top of stack one child at a time, returning
// the named path as soon as end is reached. visited is scoped to this
// search so the walk terminates on any acyclic graph.
func (g *Graph) findPath(end int, stack *[]int, visited map[int]bool) []string {
	current := (*stack)[len(*stack)-1]
	visited[current] = true

	for _, child := range g.nodes[current].children {
		if visited[child] {
			continue
		}

		*stack = append(*stack, child)

		if child == end {
			path := make([]string, len(*stack))
			for i, idx := range *stack {
				path[i] = g.nodes[idx].name
			}
			*stack = (*stack)[:len(*stack)-1]
			return path
		}

		if found := g.findPath(end, stack, visited); found != nil {
			*stack = (*stack)[:len(*stack)-1]
			return found
		}

		*stack = (*stack)[:len(*stack)-1]
	}

	delete(visited, current)
	return nil
}
