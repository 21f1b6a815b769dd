// Package mst provides an implementation of Prim's Minimum Spanning Tree
// (MST) algorithm. It assumes a purely bidirectional, weighted
// *core.Graph and grows the tree from a root vertex using an indexed
// min-heap with decrease-key.
package mst

import (
	"math"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/pqueue"
)

// Prim computes a minimum spanning tree of a purely bidirectional,
// weighted graph by growing outwards from the anchor vertex.
//
// Error Conditions:
//   - ErrNilGraph      : graph is nil.
//   - ErrEmptyGraph    : graph has no vertices.
//   - ErrDirectedGraph : graph contains an edge without a reverse half.
//   - ErrRootNotFound  : WithRoot named a payload with no vertex.
//
// Steps:
//  1. Validate the graph and resolve the anchor (first-inserted vertex
//     unless WithRoot says otherwise).
//  2. Allocate fresh per-run state: +Inf distances, no parents, nothing
//     visited, an empty indexed heap sized to |V|.
//  3. Seed the anchor at distance zero and queue it.
//  4. While the queue is non-empty: extract the closest vertex, admit its
//     recorded connection into the tree, then relax its outgoing edges.
//     A strictly cheaper edge to an unvisited neighbor updates distance
//     and parent: first discovery inserts the neighbor, later
//     improvements lower its key in place.
//  5. On disconnected input the loop drains early; unreached vertices
//     keep +Inf distance and no parent, and Reached reports the spanned
//     count.
//
// Complexity: O((V + E) log V) time, O(V) extra memory.
func Prim[T comparable](g *core.Graph[T], opts ...Option[T]) (*Tree[T], error) {
	// 1) Build options and validate input.
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}
	root, err := validate(g, cfg)
	if err != nil {
		return nil, err
	}

	// 2) Fresh per-run state; nothing survives between runs.
	r := &primRunner[T]{
		g:          g,
		tree:       newTree(g, root.Index()),
		pq:         pqueue.New(g.NumVertices()),
		visited:    make([]bool, g.NumVertices()),
		parentEdge: make([]*core.Edge[T], g.NumVertices()),
	}

	// 3) Run the growth loop.
	if err = r.run(root.Index()); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// primRunner holds the mutable state for a single Prim execution.
type primRunner[T comparable] struct {
	g          *core.Graph[T]  // input graph; read-only during the run
	tree       *Tree[T]        // result under construction
	pq         *pqueue.Queue   // frontier keyed by cheapest connection weight
	visited    []bool          // vertex index → already part of the tree
	parentEdge []*core.Edge[T] // vertex index → cheapest known connection
}

// run seeds the anchor and drains the frontier.
func (r *primRunner[T]) run(root int) error {
	// The anchor joins at distance zero.
	r.tree.dist[root] = 0
	if err := r.pq.Insert(root, 0); err != nil {
		return err
	}

	var (
		u   int
		err error
	)
	for !r.pq.Empty() {
		// 1) The cheapest frontier vertex is final: no later edge can
		//    undercut its key.
		u, _, err = r.pq.ExtractMin()
		if err != nil {
			return err
		}

		// 2) Admit it, then offer its edges to the rest of the frontier.
		r.visit(u)
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// visit finalizes u: it joins the tree through its recorded cheapest
// connection (the anchor joins with none).
func (r *primRunner[T]) visit(u int) {
	r.visited[u] = true
	r.tree.reached++
	if e := r.parentEdge[u]; e != nil {
		r.tree.selectEdge(e)
	}
}

// relax scans u's outgoing edges and offers every unvisited neighbor a
// connection through u, keeping only strict improvements. Ties keep the
// incumbent edge.
func (r *primRunner[T]) relax(u int) error {
	var (
		v   int
		w   float64
		err error
	)
	for _, e := range r.g.Vertex(u).Edges() {
		v = e.To()
		// Visited neighbors are already in the tree; self-loops and both
		// halves of parallel pairs land here too once v is admitted.
		if r.visited[v] {
			continue
		}
		w = e.Weight()
		if w >= r.tree.dist[v] {
			continue
		}

		// First discovery still carries the +Inf sentinel; later
		// improvements lower the existing key in place.
		first := math.IsInf(r.tree.dist[v], 1)
		r.tree.dist[v] = w
		r.tree.parent[v] = u
		r.parentEdge[v] = e
		if first {
			err = r.pq.Insert(v, w)
		} else {
			err = r.pq.DecreaseKey(v, w)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
