package graphsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(f frontier[string, string]) []string {
	var out []string
	for f.Len() > 0 {
		out = append(out, f.Pop().State)
	}
	return out
}

func TestFrontierDisciplines(t *testing.T) {
	nodes := []*Node[string, string]{
		{State: "a", Cost: 3, Heuristic: 0},
		{State: "b", Cost: 1, Heuristic: 5},
		{State: "c", Cost: 2, Heuristic: 0},
		{State: "d", Cost: 1, Heuristic: 1},
	}

	tests := []struct {
		name     string
		strategy Strategy
		want     []string
	}{
		{name: "depth first is LIFO", strategy: DepthFirst, want: []string{"d", "c", "b", "a"}},
		{name: "breadth first is FIFO", strategy: BreadthFirst, want: []string{"a", "b", "c", "d"}},
		{name: "uniform cost orders by cost then insertion", strategy: UniformCost, want: []string{"b", "d", "c", "a"}},
		{name: "astar orders by cost plus heuristic", strategy: AStar, want: []string{"c", "d", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := newFrontier[string, string](tt.strategy)
			require.NoError(t, err)
			for _, node := range nodes {
				f.Push(node)
			}
			assert.Equal(t, len(nodes), f.Len())
			assert.Equal(t, tt.want, drain(f))
			assert.Zero(t, f.Len())
		})
	}
}

func TestFrontierUnknownStrategy(t *testing.T) {
	_, err := newFrontier[string, string](Strategy(42))
	assert.ErrorIs(t, err, ErrUnknownStrategy)

	_, err = newFrontier[string, string](Strategy(0))
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestPriorityFrontierTiesPopInInsertionOrder(t *testing.T) {
	f, err := newFrontier[string, string](UniformCost)
	require.NoError(t, err)

	for _, state := range []string{"p", "q", "r", "s", "t"} {
		f.Push(&Node[string, string]{State: state, Cost: 7})
	}
	assert.Equal(t, []string{"p", "q", "r", "s", "t"}, drain(f))
}

func TestQueueFrontierInterleaved(t *testing.T) {
	q := &queueFrontier[string, string]{}
	var popped []string

	// enough traffic to trigger compaction several times
	for i := 0; i < 200; i++ {
		q.Push(&Node[string, string]{State: string(rune('a' + i%26))})
		q.Push(&Node[string, string]{State: string(rune('A' + i%26))})
		popped = append(popped, q.Pop().State)
	}
	assert.Equal(t, 200, q.Len())
	assert.Len(t, popped, 200)
	assert.Equal(t, "a", popped[0])
	assert.Equal(t, "A", popped[1])
	assert.Equal(t, "b", popped[2])
}
