// Package spantree is a generic weighted-graph engine for computing
// Minimum Spanning Trees — the two classical ways.
//
// 🚀 What is spantree?
//
//	A small, focused library that brings together:
//		• Core primitives: a generic, insertion-ordered Graph[T] with
//		  directed and bidirectional weighted edges
//		• Prim's algorithm driven by a true decrease-key priority queue
//		• Kruskal's algorithm driven by a disjoint-set (union-find)
//		• A per-run Tree result: parent links, distances, selected edges
//
// ✨ Why choose spantree?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – insertion order drives iteration, stable sorts
//     break weight ties, identical inputs give identical trees
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – sentinel errors instead of undefined behavior
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types (generic over the
//	             vertex payload, arena-indexed for stable identity)
//	pqueue/    — mutable (decrease-key) indexed min-heap
//	unionfind/ — disjoint-set with path compression and union by rank
//	mst/       — Prim & Kruskal engines plus the Compute dispatcher
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──3──D
//
//	the MST keeps A─B, B─D and D─C for a total weight of 6.
//
// Algorithms never mutate the graph they read: every run returns a fresh
// mst.Tree, so a built graph may serve any number of sequential or
// concurrent computations.
//
//	go get github.com/katalvlaran/spantree
package spantree
