// Package core provides a compact in-memory weighted graph over an
// arbitrary comparable payload type, built for algorithm packages that
// address vertices by dense integer indices.
//
// The Graph G = (V,E) keeps both vertices and edges in append-only
// arenas:
//
//   - Vertex[T] carries the caller's payload plus a stable arena index
//     assigned at insertion; indices form the permutation
//     0..NumVertices-1 in insertion order.
//   - Edge[T] is one directed, float64-weighted record addressed by
//     endpoint indices. AddBidirectionalEdge writes a mirrored pair of
//     records with mutual Reverse links, which is how undirected graphs
//     are modeled.
//   - Payload equality identifies vertices; FindVertex resolves a
//     payload in O(1) via an internal lookup map.
//
// Why arenas and indices?
//
//   - Algorithms allocate their per-run state (distances, parents,
//     visited flags, heap slots) as plain slices keyed by vertex index -
//     no maps, no mutable fields on shared graph records.
//   - Iteration order is deterministic: VertexSet, EdgeSet, and each
//     adjacency list replay insertion order, so algorithm runs over the
//     same graph are reproducible.
//   - Nothing is ever removed, so handed-out pointers and indices stay
//     valid for the life of the graph.
//
// Validation is strict and sentinel-based: AddVertex rejects duplicate
// payloads (ErrDuplicateVertex), AddEdge and AddBidirectionalEdge reject
// missing endpoints (ErrVertexNotFound) and non-finite weights
// (ErrBadWeight; +Inf is reserved as the unreached-distance sentinel).
// Failed operations leave the graph untouched. Self-loops and parallel
// edges are permitted; consumers that cannot use them skip them.
//
// Concurrency: construction is single-threaded by design - build the
// graph first, then share it. Query methods never mutate the graph, so
// finished graphs are safe for any number of concurrent readers. Use
// Clone when a goroutine needs a private mutable copy.
package core
