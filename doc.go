// Package graphsearch provides generic graph search over abstract search problems.
//
// A single driver runs depth-first, breadth-first, uniform-cost and A* search;
// the strategy only selects the frontier discipline:
//
//   - Search: run the driver to completion and get a Result.
//   - Stepper: advance the same driver one frontier pop at a time.
//   - DepthFirstSearch, BreadthFirstSearch, UniformCostSearch, AStarSearch:
//     convenience entry points bound to each strategy.
//
// States are suppressed by identity when they are popped a second time, so
// UniformCost and AStar return optimal paths for non-negative step costs and
// consistent heuristics. DepthFirst and BreadthFirst return some valid path.
package graphsearch
