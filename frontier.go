package graphsearch

import (
	"container/heap"
	"fmt"
)

// frontier is the open list. Every discipline exposes the same contract so the
// driver loop is identical for all strategies.
type frontier[S comparable, A any] interface {
	Push(node *Node[S, A])
	Pop() *Node[S, A]
	Len() int
}

func newFrontier[S comparable, A any](strategy Strategy) (frontier[S, A], error) {
	switch strategy {
	case DepthFirst:
		return &stackFrontier[S, A]{}, nil
	case BreadthFirst:
		return &queueFrontier[S, A]{}, nil
	case UniformCost:
		return newPriorityFrontier(func(node *Node[S, A]) float64 { return node.Cost }), nil
	case AStar:
		return newPriorityFrontier(func(node *Node[S, A]) float64 { return node.Cost + node.Heuristic }), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}

type stackFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
}

func (stack *stackFrontier[S, A]) Push(node *Node[S, A]) { stack.nodes = append(stack.nodes, node) }
func (stack *stackFrontier[S, A]) Len() int               { return len(stack.nodes) }
func (stack *stackFrontier[S, A]) Pop() *Node[S, A] {
	n := len(stack.nodes)
	node := stack.nodes[n-1]
	stack.nodes[n-1] = nil
	stack.nodes = stack.nodes[:n-1]
	return node
}

type queueFrontier[S comparable, A any] struct {
	nodes []*Node[S, A]
	head  int
}

func (queue *queueFrontier[S, A]) Push(node *Node[S, A]) { queue.nodes = append(queue.nodes, node) }
func (queue *queueFrontier[S, A]) Len() int               { return len(queue.nodes) - queue.head }
func (queue *queueFrontier[S, A]) Pop() *Node[S, A] {
	node := queue.nodes[queue.head]
	queue.nodes[queue.head] = nil
	queue.head++
	// compact once the consumed prefix dominates the backing array
	if queue.head > 32 && queue.head*2 >= len(queue.nodes) {
		queue.nodes = append(queue.nodes[:0], queue.nodes[queue.head:]...)
		queue.head = 0
	}
	return node
}

type priorityFrontier[S comparable, A any] struct {
	queue    PriorityQueue[S, A]
	priority func(*Node[S, A]) float64
	sequence uint64
}

func newPriorityFrontier[S comparable, A any](priority func(*Node[S, A]) float64) *priorityFrontier[S, A] {
	pf := &priorityFrontier[S, A]{
		queue:    make(PriorityQueue[S, A], 0),
		priority: priority,
	}
	heap.Init(&pf.queue)
	return pf
}

func (pf *priorityFrontier[S, A]) Push(node *Node[S, A]) {
	heap.Push(&pf.queue, &PriorityQueueItem[S, A]{
		Node:     node,
		Priority: pf.priority(node),
		Sequence: pf.sequence,
	})
	pf.sequence++
}

func (pf *priorityFrontier[S, A]) Len() int { return pf.queue.Len() }

func (pf *priorityFrontier[S, A]) Pop() *Node[S, A] {
	return heap.Pop(&pf.queue).(*PriorityQueueItem[S, A]).Node
}
