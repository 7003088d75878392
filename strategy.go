package graphsearch

import (
	"fmt"
	"strings"
)

// Strategy selects the frontier discipline used by the driver.
type Strategy int

const (
	// DepthFirst pops the most recently pushed node first.
	DepthFirst Strategy = iota + 1
	// BreadthFirst pops the least recently pushed node first.
	BreadthFirst
	// UniformCost pops the node with the lowest accumulated cost.
	UniformCost
	// AStar pops the node with the lowest cost plus heuristic estimate.
	AStar
)

var strategyNames = map[Strategy]string{
	DepthFirst:   "dfs",
	BreadthFirst: "bfs",
	UniformCost:  "ucs",
	AStar:        "astar",
}

var strategyAliases = map[string]Strategy{
	"dfs":           DepthFirst,
	"depth-first":   DepthFirst,
	"bfs":           BreadthFirst,
	"breadth-first": BreadthFirst,
	"ucs":           UniformCost,
	"uniform-cost":  UniformCost,
	"astar":         AStar,
	"a*":            AStar,
	"a-star":        AStar,
}

func (strategy Strategy) String() string {
	if name, ok := strategyNames[strategy]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(strategy))
}

// Valid reports whether strategy is one of the four known disciplines.
func (strategy Strategy) Valid() bool {
	_, ok := strategyNames[strategy]
	return ok
}

// ParseStrategy accepts the short tags (dfs, bfs, ucs, astar) and the long
// names (depth-first, breadth-first, uniform-cost, a*, a-star), ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	if strategy, ok := strategyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return strategy, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

func (strategy Strategy) MarshalText() ([]byte, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	return []byte(strategy.String()), nil
}

func (strategy *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*strategy = parsed
	return nil
}

// Set and Type let a Strategy be bound directly as a command line flag.
func (strategy *Strategy) Set(value string) error { return strategy.UnmarshalText([]byte(value)) }

func (strategy *Strategy) Type() string { return "strategy" }
