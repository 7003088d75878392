package graphsearch

import "errors"

var (
	// ErrNoPath is returned when the frontier empties before a goal is popped.
	ErrNoPath = errors.New("no path found")

	// ErrNilProblem is returned when the supplied problem is nil.
	ErrNilProblem = errors.New("search problem not implemented")

	// ErrUnknownStrategy is returned for a Strategy outside the four known ones.
	ErrUnknownStrategy = errors.New("unknown search strategy")

	// ErrExpansionLimit is returned when WithMaxExpansions is reached before a goal.
	ErrExpansionLimit = errors.New("expansion limit reached")

	// ErrSearchRunning is returned by Stepper.Result before the search is done.
	ErrSearchRunning = errors.New("search still running")
)
