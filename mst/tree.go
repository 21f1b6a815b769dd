// Package mst: the per-run spanning-tree result type.
package mst

import (
	"math"

	"github.com/katalvlaran/spantree/core"
)

// Tree is the outcome of a single MST run. All mutable state of a run
// lives here; the input graph is never touched, so any number of runs
// may read the same graph concurrently and their Trees never interfere.
//
// Parent links and distances annotate the component of the anchor
// vertex. Vertices outside it stay unreached: no parent, +Inf distance.
// For Kruskal on disconnected input the selected edges still cover every
// component (the minimum spanning forest).
type Tree[T comparable] struct {
	g    *core.Graph[T]
	root int

	parent   []int           // vertex index → parent vertex index, -1 for none
	dist     []float64       // vertex index → weight of the parent edge
	selected []bool          // edge index → true when part of the tree
	edges    []*core.Edge[T] // canonical halves in selection order

	total   float64
	reached int
}

// newTree allocates cleared per-run state sized to g: every vertex
// parentless at +Inf, no edge selected.
func newTree[T comparable](g *core.Graph[T], root int) *Tree[T] {
	t := &Tree[T]{
		g:        g,
		root:     root,
		parent:   make([]int, g.NumVertices()),
		dist:     make([]float64, g.NumVertices()),
		selected: make([]bool, g.NumEdges()),
	}
	for i := range t.parent {
		t.parent[i] = -1
		t.dist[i] = math.Inf(1)
	}

	return t
}

// selectEdge admits e into the tree: both halves of the pair are flagged,
// the canonical half (From < To) is appended to the selection log, and
// the total weight grows.
func (t *Tree[T]) selectEdge(e *core.Edge[T]) {
	t.selected[e.Index()] = true
	if rev := e.Reverse(); rev != nil {
		t.selected[rev.Index()] = true
	}

	canonical := e
	if e.From() > e.To() {
		canonical = e.Reverse()
	}
	t.edges = append(t.edges, canonical)
	t.total += e.Weight()
}

// Root returns the vertex the run was anchored at.
func (t *Tree[T]) Root() *core.Vertex[T] { return t.g.Vertex(t.root) }

// Parent returns v's parent in the tree. The anchor vertex and unreached
// vertices have none; so does a vertex from some other graph.
func (t *Tree[T]) Parent(v *core.Vertex[T]) (*core.Vertex[T], bool) {
	if v == nil || v.Index() >= len(t.parent) {
		return nil, false
	}
	p := t.parent[v.Index()]
	if p < 0 {
		return nil, false
	}

	return t.g.Vertex(p), true
}

// Distance returns the weight of the edge connecting v to its parent:
// zero for the anchor vertex, +Inf for unreached vertices.
func (t *Tree[T]) Distance(v *core.Vertex[T]) float64 {
	if v == nil || v.Index() >= len(t.dist) {
		return math.Inf(1)
	}

	return t.dist[v.Index()]
}

// Selected reports whether e was chosen for the tree. Both halves of a
// bidirectional pair answer identically.
func (t *Tree[T]) Selected(e *core.Edge[T]) bool {
	if e == nil || e.Index() >= len(t.selected) {
		return false
	}

	return t.selected[e.Index()]
}

// Edges returns the tree edges in selection order, one canonical record
// per undirected pair (the half with From() < To()). The slice is a
// fresh copy.
func (t *Tree[T]) Edges() []*core.Edge[T] {
	out := make([]*core.Edge[T], len(t.edges))
	copy(out, t.edges)

	return out
}

// TotalWeight returns the sum of the selected edge weights.
func (t *Tree[T]) TotalWeight() float64 { return t.total }

// Reached returns how many vertices carry tree annotations, the anchor
// included.
func (t *Tree[T]) Reached() int { return t.reached }
