// Package core defines the central Graph, Vertex, and Edge types for
// weighted graphs over an arbitrary comparable payload type.
//
// This file declares Vertex, Edge, Graph, GraphOption, sentinel errors,
// and the New constructor.
//
// Errors:
//
//	ErrDuplicateVertex - payload already present in the graph.
//	ErrVertexNotFound  - an edge endpoint does not exist.
//	ErrBadWeight       - edge weight is NaN or infinite.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates AddVertex was called with a payload that
	// is already present. The graph is left unchanged.
	ErrDuplicateVertex = errors.New("core: vertex already present")

	// ErrVertexNotFound indicates an operation referenced a payload with no
	// vertex behind it.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight that is NaN or infinite. The
	// +Inf value is reserved as the unreached-distance sentinel.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Vertex is a node in the graph. It carries the caller's payload, the
// stable arena index assigned at insertion, and the outgoing adjacency
// list in insertion order.
//
// Vertices are created and owned by a Graph; callers only ever hold
// pointers handed out by graph accessors.
type Vertex[T comparable] struct {
	payload T
	index   int
	adj     []*Edge[T]
}

// Payload returns the caller-supplied identity value of the vertex.
func (v *Vertex[T]) Payload() T { return v.payload }

// Index returns the vertex's stable arena index, assigned once at
// insertion. Indices form the permutation 0..NumVertices-1 in insertion
// order and never change.
func (v *Vertex[T]) Index() int { return v.index }

// Edges returns the outgoing edges of the vertex in insertion order.
// The returned slice is owned by the graph; callers must not modify it.
func (v *Vertex[T]) Edges() []*Edge[T] { return v.adj }

// Degree returns the number of outgoing edge records.
func (v *Vertex[T]) Degree() int { return len(v.adj) }

// Edge is a directed, weighted connection between two vertices,
// addressed by their arena indices. Edges created as a bidirectional
// pair hold mutual Reverse links; a plain directed edge has none.
type Edge[T comparable] struct {
	from    int
	to      int
	weight  float64
	index   int
	reverse *Edge[T]
}

// From returns the arena index of the origin vertex.
func (e *Edge[T]) From() int { return e.from }

// To returns the arena index of the destination vertex.
func (e *Edge[T]) To() int { return e.to }

// Weight returns the edge weight. Weights are always finite.
func (e *Edge[T]) Weight() float64 { return e.weight }

// Index returns the edge's stable arena index, assigned once at
// insertion. Each directed record has its own index; the two halves of a
// bidirectional pair are distinct records.
func (e *Edge[T]) Index() int { return e.index }

// Reverse returns the opposite half of a bidirectional pair, or nil for
// a plain directed edge.
func (e *Edge[T]) Reverse() *Edge[T] { return e.reverse }

// graphConfig collects constructor options before allocation.
type graphConfig struct {
	vertexCap int
	edgeCap   int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// WithVertexCapacity pre-sizes the vertex arena and payload lookup for n
// vertices. Values below one are ignored.
func WithVertexCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.vertexCap = n
		}
	}
}

// WithEdgeCapacity pre-sizes the edge arena for n directed edge records.
// A bidirectional edge occupies two records. Values below one are
// ignored.
func WithEdgeCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.edgeCap = n
		}
	}
}

// Graph is an in-memory weighted graph over payloads of type T.
//
// Vertices and edges live in append-only arenas in insertion order and
// are addressed by stable integer indices. Payload equality (T is
// comparable) identifies vertices; a lookup map resolves payloads to
// indices in O(1).
//
// Construction is not safe for concurrent use. Once construction is
// done, any number of goroutines may read the graph concurrently: no
// query method mutates it.
type Graph[T comparable] struct {
	vertices []*Vertex[T]
	lookup   map[T]int
	edges    []*Edge[T]

	// unpaired counts edge records without a reverse half. Arenas are
	// append-only, so it only ever grows.
	unpaired int
}

// New creates an empty Graph with the given options.
// Complexity: O(1).
func New[T comparable](opts ...GraphOption) *Graph[T] {
	var cfg graphConfig
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		vertices: make([]*Vertex[T], 0, cfg.vertexCap),
		lookup:   make(map[T]int, cfg.vertexCap),
		edges:    make([]*Edge[T], 0, cfg.edgeCap),
	}
}
