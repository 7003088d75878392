package graphproblem

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/graphsearch"
)

// ErrIllegalAction is returned by Replay when an action is not offered by the
// successors of the current state.
var ErrIllegalAction = errors.New("illegal action")

// Replay walks actions from the problem's start state through its successor
// function and returns the state reached and the summed step cost. When two
// successors share an action the first one wins.
func Replay[S comparable, A comparable](
	problem graphsearch.Problem[S, A],
	actions []A,
) (S, float64, error) {
	current := problem.StartState()
	total := 0.0
	for i, action := range actions {
		next, cost, ok := follow(problem, current, action)
		if !ok {
			return current, total, fmt.Errorf("%w: step %d: %v from %v", ErrIllegalAction, i, action, current)
		}
		current = next
		total += cost
	}
	return current, total, nil
}

func follow[S comparable, A comparable](problem graphsearch.Problem[S, A], state S, action A) (S, float64, bool) {
	for _, successor := range problem.Successors(state) {
		if successor.Action == action {
			return successor.State, successor.Cost, true
		}
	}
	var none S
	return none, 0, false
}
