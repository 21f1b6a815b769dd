// Package core_test verifies the documented concurrency contract: a
// fully built Graph is safe for any number of concurrent readers.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

// TestConcurrentReaders hammers a finished graph with parallel lookups,
// snapshots and clones. Run with -race to make the check meaningful.
func TestConcurrentReaders(t *testing.T) {
	const leaves = 100
	g := core.New[string](core.WithVertexCapacity(leaves + 1))
	require.NoError(t, g.AddVertex("hub"))
	for i := 0; i < leaves; i++ {
		leaf := fmt.Sprintf("V%d", i)
		require.NoError(t, g.AddVertex(leaf))
		require.NoError(t, g.AddBidirectionalEdge("hub", leaf, float64(i+1)))
	}

	const readers = 32
	degrees := make([]int, readers)
	snapshots := make([]int, readers)
	cloneSizes := make([]int, readers)

	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			if v, ok := g.FindVertex(fmt.Sprintf("V%d", slot%leaves)); ok {
				degrees[slot] = v.Degree()
			}
			snapshots[slot] = len(g.EdgeSet())
			cloneSizes[slot] = g.Clone().NumVertices()
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		assert.Equal(t, 1, degrees[i], "reader %d saw a wrong degree", i)
		assert.Equal(t, 2*leaves, snapshots[i], "reader %d saw a short edge set", i)
		assert.Equal(t, leaves+1, cloneSizes[i], "reader %d got a short clone", i)
	}
}

// TestCloneIsolatesWriters verifies that goroutines may mutate private
// clones while others keep reading the shared original.
func TestCloneIsolatesWriters(t *testing.T) {
	g := core.New[string]()
	for _, p := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(p))
	}
	require.NoError(t, g.AddBidirectionalEdge("A", "B", 1))
	require.NoError(t, g.AddBidirectionalEdge("B", "C", 2))

	const writers = 8
	grown := make([]int, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			own := g.Clone()
			for j := 0; j < 10; j++ {
				payload := fmt.Sprintf("w%d-%d", slot, j)
				if own.AddVertex(payload) == nil {
					_ = own.AddBidirectionalEdge("A", payload, float64(j+1))
				}
			}
			grown[slot] = own.NumVertices()
		}(i)
	}
	wg.Wait()

	// Every writer grew its own copy; the shared original never moved.
	for i := 0; i < writers; i++ {
		assert.Equal(t, 13, grown[i], "writer %d lost vertices", i)
	}
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges())
}
