// Package core: Graph construction and query methods.
//
// This file provides the operations on the Graph type defined in
// types.go. Vertices and edges are stored in append-only arenas, so
// every insertion is O(1) amortized and every handed-out index stays
// valid for the life of the graph.

package core

import "math"

// AddVertex inserts a new vertex carrying the given payload.
// Returns ErrDuplicateVertex if the payload is already present; the
// graph is left unchanged.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(payload T) error {
	// Payload equality is vertex identity.
	if _, exists := g.lookup[payload]; exists {
		return ErrDuplicateVertex
	}

	v := &Vertex[T]{payload: payload, index: len(g.vertices)}
	g.lookup[payload] = v.index
	g.vertices = append(g.vertices, v)

	return nil
}

// FindVertex resolves a payload to its vertex.
// Complexity: O(1).
func (g *Graph[T]) FindVertex(payload T) (*Vertex[T], bool) {
	i, ok := g.lookup[payload]
	if !ok {
		return nil, false
	}

	return g.vertices[i], true
}

// Vertex returns the vertex at arena index i, or nil when i is out of
// range.
// Complexity: O(1).
func (g *Graph[T]) Vertex(i int) *Vertex[T] {
	if i < 0 || i >= len(g.vertices) {
		return nil
	}

	return g.vertices[i]
}

// AddEdge inserts one directed edge record from one payload to another.
// Returns ErrVertexNotFound if either endpoint is missing and
// ErrBadWeight for a NaN or infinite weight; on any error the graph is
// left unchanged.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddEdge(from, to T, weight float64) error {
	// 1) Both endpoints must already exist.
	fi, ti, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	// 2) Weights must be finite: +Inf is the unreached sentinel and NaN
	//    breaks ordering.
	if !validWeight(weight) {
		return ErrBadWeight
	}

	// 3) Append the record to the edge arena and the origin's adjacency.
	g.appendEdge(fi, ti, weight)
	g.unpaired++

	return nil
}

// AddBidirectionalEdge inserts a mirrored pair of directed edge records
// with mutual Reverse links, one per direction, both carrying the given
// weight. Failure modes match AddEdge; on any error neither half is
// added.
// Complexity: O(1) amortized.
func (g *Graph[T]) AddBidirectionalEdge(from, to T, weight float64) error {
	// 1) Validate everything before touching either arena.
	fi, ti, err := g.endpoints(from, to)
	if err != nil {
		return err
	}
	if !validWeight(weight) {
		return ErrBadWeight
	}

	// 2) Append both halves, then cross-link them.
	forward := g.appendEdge(fi, ti, weight)
	backward := g.appendEdge(ti, fi, weight)
	forward.reverse = backward
	backward.reverse = forward

	return nil
}

// endpoints resolves two payloads to arena indices in one pass.
func (g *Graph[T]) endpoints(from, to T) (int, int, error) {
	fi, ok := g.lookup[from]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	ti, ok := g.lookup[to]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return fi, ti, nil
}

// validWeight reports whether w may enter the graph. NaN and ±Inf are
// rejected: +Inf doubles as the unreached-distance sentinel downstream.
func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0)
}

// appendEdge creates one directed record and wires it into the arena
// and the origin's adjacency list.
func (g *Graph[T]) appendEdge(fi, ti int, weight float64) *Edge[T] {
	e := &Edge[T]{from: fi, to: ti, weight: weight, index: len(g.edges)}
	g.edges = append(g.edges, e)
	g.vertices[fi].adj = append(g.vertices[fi].adj, e)

	return e
}

// VertexSet returns all vertices in insertion order. The slice is a
// fresh copy; the vertices it points at are the graph's own.
// Complexity: O(V).
func (g *Graph[T]) VertexSet() []*Vertex[T] {
	out := make([]*Vertex[T], len(g.vertices))
	copy(out, g.vertices)

	return out
}

// EdgeSet returns all directed edge records in insertion order. The
// slice is a fresh copy; the edges it points at are the graph's own.
// Complexity: O(E).
func (g *Graph[T]) EdgeSet() []*Edge[T] {
	out := make([]*Edge[T], len(g.edges))
	copy(out, g.edges)

	return out
}

// NumVertices returns the number of vertices. O(1).
func (g *Graph[T]) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of directed edge records; a bidirectional
// edge counts twice. O(1).
func (g *Graph[T]) NumEdges() int { return len(g.edges) }

// HasDirectedEdges reports whether any edge record lacks a reverse half,
// i.e. the graph is not purely bidirectional. O(1).
func (g *Graph[T]) HasDirectedEdges() bool { return g.unpaired > 0 }

// Clone returns a deep copy of the graph: fresh vertex and edge records
// with identical payloads, indices, weights, adjacency order and reverse
// links. Mutating either graph never affects the other.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		vertices: make([]*Vertex[T], len(g.vertices)),
		lookup:   make(map[T]int, len(g.vertices)),
		edges:    make([]*Edge[T], len(g.edges)),
		unpaired: g.unpaired,
	}

	// 1) Duplicate vertices, keeping indices.
	for i, v := range g.vertices {
		clone.vertices[i] = &Vertex[T]{
			payload: v.payload,
			index:   i,
			adj:     make([]*Edge[T], 0, len(v.adj)),
		}
		clone.lookup[v.payload] = i
	}

	// 2) Duplicate edge records first, then resolve reverse links by
	//    index so either half may come first.
	for i, e := range g.edges {
		clone.edges[i] = &Edge[T]{from: e.from, to: e.to, weight: e.weight, index: i}
	}
	for i, e := range g.edges {
		if e.reverse != nil {
			clone.edges[i].reverse = clone.edges[e.reverse.index]
		}
	}

	// 3) Rebuild adjacency in the original order.
	for i, v := range g.vertices {
		for _, e := range v.adj {
			clone.vertices[i].adj = append(clone.vertices[i].adj, clone.edges[e.index])
		}
	}

	return clone
}
