package graphsearch

// Problem describes a search space. S must be comparable so states can key the
// visited set.
type Problem[S comparable, A any] interface {
	StartState() S
	IsGoalState(state S) bool
	Successors(state S) []Successor[S, A]
	// CostOfActions returns the total cost of a sequence of legal actions.
	CostOfActions(actions []A) float64
}

// Successor is a state reachable from another in one action.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// It is never checked for admissibility or consistency.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic always estimates zero. AStar with it behaves as UniformCost.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }
