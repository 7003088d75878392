package graphsearch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Result contains the outcome of a search
type Result[S comparable, A any] struct {
	Actions       []A
	Cost          float64
	Goal          S
	ExpandedNodes int
	Found         bool
}

// Search runs graph search from the problem's start state with the frontier
// discipline chosen by strategy.
//
// The first node popped whose state passes the goal test wins. A state popped
// after it has been expanded once is discarded without looking at its cost.
// When no goal is reachable Search returns ErrNoPath with Found unset.
func Search[S comparable, A any](
	ctx context.Context,
	problem Problem[S, A],
	strategy Strategy,
	heuristic Heuristic[S, A],
	options ...Option,
) (Result[S, A], error) {
	searchOptions := newOptions(options)
	runID := uuid.NewString()
	telemetry := newSearchTelemetry(searchOptions)

	ctx, span := telemetry.tracer.Start(ctx, "graphsearch.Search", trace.WithAttributes(
		attribute.String("graphsearch.strategy", strategy.String()),
		attribute.String("graphsearch.run_id", runID),
	))
	defer span.End()

	logger := searchOptions.Logger.With("run_id", runID, "strategy", strategy.String())
	started := time.Now()

	stepper, err := newStepper(problem, strategy, heuristic, searchOptions)
	if err != nil {
		telemetry.finish(ctx, span, strategy, false, 0, 0, err, time.Since(started))
		logger.ErrorContext(ctx, "search rejected", "error", err)
		return Result[S, A]{}, err
	}
	logger.DebugContext(ctx, "search started")

	for !stepper.Done() {
		if err := ctx.Err(); err != nil {
			result := Result[S, A]{ExpandedNodes: stepper.Expanded()}
			telemetry.finish(ctx, span, strategy, false, result.ExpandedNodes, 0, err, time.Since(started))
			logger.WarnContext(ctx, "search cancelled", "expanded_nodes", result.ExpandedNodes, "error", err)
			return result, err
		}
		stepper.Step()
	}

	result, err := stepper.Result()
	elapsed := time.Since(started)
	telemetry.finish(ctx, span, strategy, result.Found, result.ExpandedNodes, len(result.Actions), err, elapsed)
	logger.DebugContext(ctx, "search finished",
		"found", result.Found,
		"expanded_nodes", result.ExpandedNodes,
		"path_length", len(result.Actions),
		"cost", result.Cost,
		"duration", elapsed,
	)
	return result, err
}

// DepthFirstSearch searches the deepest nodes first.
func DepthFirstSearch[S comparable, A any](problem Problem[S, A]) (Result[S, A], error) {
	return Search(context.Background(), problem, DepthFirst, nil)
}

// BreadthFirstSearch searches the shallowest nodes first.
func BreadthFirstSearch[S comparable, A any](problem Problem[S, A]) (Result[S, A], error) {
	return Search(context.Background(), problem, BreadthFirst, nil)
}

// UniformCostSearch searches the node of least total cost first.
func UniformCostSearch[S comparable, A any](problem Problem[S, A]) (Result[S, A], error) {
	return Search(context.Background(), problem, UniformCost, nil)
}

// AStarSearch searches the node with the lowest cost plus heuristic first.
// A nil heuristic is NullHeuristic.
func AStarSearch[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) (Result[S, A], error) {
	return Search(context.Background(), problem, AStar, heuristic)
}
