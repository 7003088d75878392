package graphsearch

import "slices"

// StepOutcome describes what a single Step did with the node it popped.
type StepOutcome int

const (
	// StepExpanded means the popped state was marked visited and expanded.
	StepExpanded StepOutcome = iota + 1
	// StepDiscarded means the popped state had already been visited.
	StepDiscarded
	// StepGoal means the popped state passed the goal test.
	StepGoal
	// StepExhausted means the frontier was empty.
	StepExhausted
	// StepLimited means the expansion budget ran out.
	StepLimited
)

func (outcome StepOutcome) String() string {
	switch outcome {
	case StepExpanded:
		return "expanded"
	case StepDiscarded:
		return "discarded"
	case StepGoal:
		return "goal"
	case StepExhausted:
		return "exhausted"
	case StepLimited:
		return "limited"
	default:
		return "unknown"
	}
}

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[S comparable, A any] struct {
	StepIndex    int
	Current      S
	Outcome      StepOutcome
	FrontierSize int
	VisitedCount int
	Done         bool
	Found        bool
	// Actions and Cost are set once a goal has been popped.
	Actions []A
	Cost    float64
}

// Stepper runs the search loop one frontier pop at a time. It is not safe for
// concurrent use.
type Stepper[S comparable, A any] struct {
	problem       Problem[S, A]
	strategy      Strategy
	heuristic     Heuristic[S, A]
	maxExpansions int

	frontier frontier[S, A]
	visited  map[S]struct{}

	stepCount int
	expanded  int
	done      bool
	found     bool
	limited   bool
	goal      *Node[S, A]
	last      StepSnapshot[S, A]
}

// NewStepper creates a stepper with the start node already on the frontier.
// A nil heuristic means NullHeuristic for AStar and no estimate otherwise.
func NewStepper[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) (*Stepper[S, A], error) {
	return newStepper(problem, strategy, heuristic, newOptions(options))
}

func newStepper[S comparable, A any](
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options *Options,
) (*Stepper[S, A], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	open, err := newFrontier[S, A](strategy)
	if err != nil {
		return nil, err
	}
	if strategy == AStar && heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}

	s := &Stepper[S, A]{
		problem:       problem,
		strategy:      strategy,
		heuristic:     heuristic,
		maxExpansions: options.MaxExpansions,
		frontier:      open,
		visited:       make(map[S]struct{}),
	}
	s.frontier.Push(newStartNode(problem))
	return s, nil
}

// Done reports whether the search has finished.
func (s *Stepper[S, A]) Done() bool { return s.done }

// Expanded returns the number of states expanded so far.
func (s *Stepper[S, A]) Expanded() int { return s.expanded }

// Step pops one node and advances the search. After the search is done it keeps
// returning the terminal snapshot.
func (s *Stepper[S, A]) Step() StepSnapshot[S, A] {
	if s.done {
		return s.last
	}
	if s.frontier.Len() == 0 {
		s.done = true
		var none S
		return s.snapshot(none, StepExhausted)
	}

	s.stepCount++
	node := s.frontier.Pop()

	// goal test happens on removal, never on insertion
	if s.problem.IsGoalState(node.State) {
		s.done = true
		s.found = true
		s.goal = node
		return s.snapshot(node.State, StepGoal)
	}

	if _, seen := s.visited[node.State]; seen {
		return s.snapshot(node.State, StepDiscarded)
	}

	if s.maxExpansions > 0 && s.expanded >= s.maxExpansions {
		s.done = true
		s.limited = true
		return s.snapshot(node.State, StepLimited)
	}

	s.visited[node.State] = struct{}{}
	s.expanded++
	for _, child := range node.Expand(s.heuristic) {
		s.frontier.Push(child)
	}
	return s.snapshot(node.State, StepExpanded)
}

// Result returns the outcome of a finished search, with the same errors Search
// returns.
func (s *Stepper[S, A]) Result() (Result[S, A], error) {
	result := Result[S, A]{ExpandedNodes: s.expanded}
	switch {
	case s.found:
		result.Found = true
		result.Actions = slices.Clone(s.goal.Path)
		result.Cost = s.goal.Cost
		result.Goal = s.goal.State
		return result, nil
	case s.limited:
		return result, ErrExpansionLimit
	case s.done:
		return result, ErrNoPath
	default:
		return result, ErrSearchRunning
	}
}

func (s *Stepper[S, A]) snapshot(current S, outcome StepOutcome) StepSnapshot[S, A] {
	snap := StepSnapshot[S, A]{
		StepIndex:    s.stepCount,
		Current:      current,
		Outcome:      outcome,
		FrontierSize: s.frontier.Len(),
		VisitedCount: len(s.visited),
		Done:         s.done,
		Found:        s.found,
	}
	if s.found {
		snap.Actions = slices.Clone(s.goal.Path)
		snap.Cost = s.goal.Cost
	}
	s.last = snap
	return snap
}
