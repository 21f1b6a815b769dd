// Package mst provides two battle-tested algorithms for computing the
// Minimum Spanning Tree (MST) of a purely bidirectional, weighted
// *core.Graph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST
//     is a subset T ⊆ E that connects all vertices of V with the
//     smallest possible total edge weight.
//
//   - Why MST matters:
//     cost-efficient network design (fiber backbones, road systems),
//     clustering (cut the largest tree edges), and as a subroutine of
//     many approximation algorithms (Steiner trees, TSP bounds).
//
//   - Results are per-run Tree values: parent links, parent-edge
//     distances, selected-edge flags, total weight, and reach count all
//     live on the Tree, never on the graph. Runs over a shared graph are
//     independent and may proceed concurrently.
//
// Algorithms Provided
//
//   - Prim(g, opts...) (*Tree, error)
//
//   - Strategy: grow one tree outwards from an anchor vertex. An indexed
//     min-heap (pqueue) keys every frontier vertex by its cheapest known
//     connection; each extraction finalizes one vertex and relaxes its
//     edges, lowering frontier keys in place via decrease-key.
//
//   - Complexity: O((V + E) log V) time, O(V) extra memory.
//
//   - Kruskal(g, opts...) (*Tree, error)
//
//   - Strategy: stable-sort all undirected edges by weight, then admit
//     each edge whose endpoints a disjoint-set (unionfind) still keeps
//     in different components. A final depth-first pass over the
//     selected edges rebuilds parent annotations from the anchor.
//
//   - Complexity: O(E log E) ≈ O(E log V) time, O(V + E) memory.
//
//   - Compute(g, opts...) dispatches between them by WithMethod
//     (Kruskal is the default).
//
// Anchor and disconnected input
//
// The anchor vertex defaults to the first-inserted vertex and may be
// chosen with WithRoot. Disconnected graphs are not an error: both
// algorithms span what the anchor can reach (Tree.Reached tells how
// much), unreached vertices stay at +Inf with no parent, and Kruskal's
// selected edges additionally cover every other component, forming the
// minimum spanning forest.
//
// Error Conditions
//
//   - ErrNilGraph      : graph pointer is nil.
//   - ErrEmptyGraph    : graph has no vertices.
//   - ErrDirectedGraph : some edge lacks a reverse half; MST needs a
//     purely bidirectional graph.
//   - ErrRootNotFound  : WithRoot named an unknown payload.
//   - ErrUnknownMethod : Compute met a method string it does not know.
//
// Determinism
//
// Equal-weight edges never shuffle results between runs: Prim keeps the
// incumbent connection on ties (strict-less relaxation) and Kruskal's
// stable sort resolves ties by edge insertion order. Two runs over an
// unmodified graph produce identical trees.
package mst
