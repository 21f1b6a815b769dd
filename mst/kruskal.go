// Package mst provides an implementation of Kruskal's Minimum Spanning
// Tree algorithm. It assumes a purely bidirectional, weighted *core.Graph
// and selects edges globally cheapest-first under a disjoint-set cycle
// check, then rebuilds parent annotations from the anchor vertex.
package mst

import (
	"sort"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/unionfind"
)

// Kruskal computes a minimum spanning tree of a purely bidirectional,
// weighted graph. On disconnected input the selected edges form the
// minimum spanning forest of the whole graph, while parent and distance
// annotations cover the anchor's component.
//
// Error Conditions:
//   - ErrNilGraph      : graph is nil.
//   - ErrEmptyGraph    : graph has no vertices.
//   - ErrDirectedGraph : graph contains an edge without a reverse half.
//   - ErrRootNotFound  : WithRoot named a payload with no vertex.
//
// Steps:
//  1. Validate the graph and resolve the anchor vertex.
//  2. Collect one canonical half per undirected pair (From < To),
//     skipping self-loops: they can never join a tree.
//  3. Stable-sort candidates by ascending weight so equal weights keep
//     edge insertion order.
//  4. Walk every candidate with a disjoint-set: an edge whose endpoints
//     lie in different sets is admitted and the sets merge. The walk
//     never stops early, which is what makes the disconnected case a
//     complete forest.
//  5. Rebuild parent, distance, and reach annotations by an iterative
//     depth-first walk from the anchor over selected edges only.
//
// Complexity: O(E log E) time dominated by the sort, O(V + E) memory.
func Kruskal[T comparable](g *core.Graph[T], opts ...Option[T]) (*Tree[T], error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	root, err := validate(g, cfg)
	if err != nil {
		return nil, err
	}
	tree := newTree(g, root.Index())

	// 2) One candidate per undirected pair, in edge insertion order.
	candidates := make([]*core.Edge[T], 0, g.NumEdges()/2)
	for _, e := range g.EdgeSet() {
		if e.From() < e.To() {
			candidates = append(candidates, e)
		}
	}

	// 3) Stable sort: ties resolve by insertion order, keeping runs
	//    deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight() < candidates[j].Weight()
	})

	// 4) Disjoint-set walk over all candidates.
	dsu := unionfind.New(g.NumVertices())
	for _, e := range candidates {
		if dsu.Union(e.From(), e.To()) {
			tree.selectEdge(e)
		}
	}

	// 5) Turn the selected edge set into parent annotations.
	tree.buildFromSelected()

	return tree, nil
}

// buildFromSelected walks the selected edges depth-first from the anchor
// with an explicit stack, assigning parent, distance, and reach count
// for the anchor's component.
func (t *Tree[T]) buildFromSelected() {
	t.dist[t.root] = 0
	t.reached = 1

	visited := make([]bool, t.g.NumVertices())
	visited[t.root] = true

	// Explicit stack: selected trees can be a single long path, so
	// recursion depth would grow with |V|.
	stack := make([]int, 0, t.g.NumVertices())
	stack = append(stack, t.root)

	var u, v int
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, e := range t.g.Vertex(u).Edges() {
			v = e.To()
			if visited[v] || !t.selected[e.Index()] {
				continue
			}
			visited[v] = true
			t.parent[v] = u
			t.dist[v] = e.Weight()
			t.reached++
			stack = append(stack, v)
		}
	}
}
