// Package graphproblem implements graphsearch.Problem over an explicit,
// edge-listed directed graph with string states and string actions.
package graphproblem

import (
	"math"

	"github.com/pdrpinto/graphsearch"
)

// Problem is a directed graph with one start state and a set of goal states.
// Successors are returned in edge insertion order.
type Problem struct {
	start     string
	goals     map[string]bool
	edges     map[string][]graphsearch.Successor[string, string]
	heuristic map[string]float64
}

var _ graphsearch.Problem[string, string] = (*Problem)(nil)

// New creates a problem without edges.
func New(start string, goals ...string) *Problem {
	p := &Problem{
		start:     start,
		goals:     make(map[string]bool, len(goals)),
		edges:     make(map[string][]graphsearch.Successor[string, string]),
		heuristic: make(map[string]float64),
	}
	for _, goal := range goals {
		p.goals[goal] = true
	}
	return p
}

// AddEdge adds a transition. An empty action is named "from->to".
func (p *Problem) AddEdge(from, to, action string, cost float64) *Problem {
	if action == "" {
		action = from + "->" + to
	}
	p.edges[from] = append(p.edges[from], graphsearch.Successor[string, string]{
		State:  to,
		Action: action,
		Cost:   cost,
	})
	return p
}

// SetEstimate records the heuristic estimate for state.
func (p *Problem) SetEstimate(state string, estimate float64) *Problem {
	p.heuristic[state] = estimate
	return p
}

func (p *Problem) StartState() string { return p.start }

func (p *Problem) IsGoalState(state string) bool { return p.goals[state] }

func (p *Problem) Successors(state string) []graphsearch.Successor[string, string] {
	return p.edges[state]
}

// CostOfActions replays actions from the start state. A sequence containing an
// illegal move costs +Inf.
func (p *Problem) CostOfActions(actions []string) float64 {
	_, cost, err := Replay[string, string](p, actions)
	if err != nil {
		return math.Inf(1)
	}
	return cost
}

// Heuristic returns the estimate table as a graphsearch.Heuristic. States
// without an estimate get zero.
func (p *Problem) Heuristic() graphsearch.Heuristic[string, string] {
	table := make(map[string]float64, len(p.heuristic))
	for state, estimate := range p.heuristic {
		table[state] = estimate
	}
	return func(state string, _ graphsearch.Problem[string, string]) float64 {
		return table[state]
	}
}
