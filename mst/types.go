// Package mst defines configuration options and sentinel errors for
// minimum-spanning-tree computation. It supports selecting between
// Kruskal's and Prim's algorithms via Options.
package mst

import (
	"errors"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors shared by Prim, Kruskal, and Compute.
var (
	// ErrNilGraph indicates the graph pointer is nil.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrEmptyGraph indicates the graph has no vertices, so no tree (not
	// even a trivial one) exists.
	ErrEmptyGraph = errors.New("mst: graph has no vertices")

	// ErrDirectedGraph indicates the graph contains an edge without a
	// reverse half. MST is defined over purely bidirectional graphs.
	ErrDirectedGraph = errors.New("mst: MST requires a purely bidirectional graph")

	// ErrRootNotFound indicates WithRoot named a payload with no vertex
	// behind it.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrUnknownMethod indicates Compute was asked for a method it does
	// not know.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a root using a
// decrease-key min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and
// union-find).
const MethodKruskal = "kruskal"

// Options configures which MST algorithm to run and which vertex anchors
// the resulting tree. Use DefaultOptions to get the default setup
// (Kruskal, first-inserted vertex as root).
type Options[T comparable] struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the payload of the vertex the tree is anchored at: Prim
	// grows from it, Kruskal rebuilds parent links from it.
	Root T

	// HasRoot records whether Root was set explicitly; the zero payload
	// value may be a legitimate vertex.
	HasRoot bool
}

// Option configures Options. All Option functions modify the pointed
// Options in place.
type Option[T comparable] func(*Options[T])

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal. The payload type cannot be
// inferred from the argument, so call sites name it: WithMethod[string](…).
func WithMethod[T comparable](method string) Option[T] {
	return func(o *Options[T]) {
		o.Method = method
	}
}

// WithRoot returns an Option that anchors the tree at the vertex with
// the given payload. Without it, runs anchor at the first-inserted
// vertex.
func WithRoot[T comparable](root T) Option[T] {
	return func(o *Options[T]) {
		o.Root = root
		o.HasRoot = true
	}
}

// DefaultOptions returns Options initialized for Kruskal with no
// explicit root.
// Complexity: O(1).
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm named by the options.
//
//   - Method == MethodKruskal: runs Kruskal (the default).
//   - Method == MethodPrim:    runs Prim.
//   - Anything else:           ErrUnknownMethod.
//
// Note: this is optional scaffolding; Prim and Kruskal can be called
// directly with the same options.
func Compute[T comparable](g *core.Graph[T], opts ...Option[T]) (*Tree[T], error) {
	cfg := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Dispatch by method name
	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	default:
		return nil, ErrUnknownMethod
	}
}

// validate applies the shared input contract and resolves the anchor
// vertex: the explicit WithRoot payload when given, the first-inserted
// vertex otherwise.
func validate[T comparable](g *core.Graph[T], cfg Options[T]) (*core.Vertex[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}
	if g.HasDirectedEdges() {
		return nil, ErrDirectedGraph
	}
	if cfg.HasRoot {
		v, ok := g.FindVertex(cfg.Root)
		if !ok {
			return nil, ErrRootNotFound
		}

		return v, nil
	}

	return g.Vertex(0), nil
}
