package graphsearch

// Node is a search tree entry: a state, the actions that reached it from the
// start and their accumulated cost. Nodes are never mutated after construction.
type Node[S comparable, A any] struct {
	State     S
	Path      []A
	Cost      float64
	Heuristic float64

	// borrowed for expansion only
	problem Problem[S, A]
}

func newStartNode[S comparable, A any](problem Problem[S, A]) *Node[S, A] {
	return &Node[S, A]{
		State:   problem.StartState(),
		Path:    []A{},
		problem: problem,
	}
}

// Expand returns one child per successor of the node's state. Each child owns
// its own copy of the path. A nil heuristic leaves child estimates at zero.
func (node *Node[S, A]) Expand(heuristic Heuristic[S, A]) []*Node[S, A] {
	successors := node.problem.Successors(node.State)
	children := make([]*Node[S, A], 0, len(successors))
	for _, successor := range successors {
		path := make([]A, len(node.Path)+1)
		copy(path, node.Path)
		path[len(node.Path)] = successor.Action

		child := &Node[S, A]{
			State:   successor.State,
			Path:    path,
			Cost:    node.Cost + successor.Cost,
			problem: node.problem,
		}
		if heuristic != nil {
			child.Heuristic = heuristic(successor.State, node.problem)
		}
		children = append(children, child)
	}
	return children
}
