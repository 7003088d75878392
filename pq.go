package graphsearch

type PriorityQueueItem[S comparable, A any] struct {
	Node         *Node[S, A]
	Priority     float64
	Sequence     uint64
	IndexInQueue int
}

// PriorityQueue orders by Priority, then by push Sequence so equal priorities
// pop in insertion order.
type PriorityQueue[S comparable, A any] []*PriorityQueueItem[S, A]

func (queue PriorityQueue[S, A]) Len() int { return len(queue) }
func (queue PriorityQueue[S, A]) Less(i, j int) bool {
	if queue[i].Priority != queue[j].Priority {
		return queue[i].Priority < queue[j].Priority
	}
	return queue[i].Sequence < queue[j].Sequence
}
func (queue PriorityQueue[S, A]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[S, A]) Push(x any) {
	item := x.(*PriorityQueueItem[S, A])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[S, A]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.IndexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}
