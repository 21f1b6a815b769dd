package mst_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/mst"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A—B, B—C} with total weight 3.
func ExampleKruskal() {
	// 1. Construct the triangle: A—B(1), B—C(2), A—C(4).
	g := core.New[string]()
	for _, p := range []string{"A", "B", "C"} {
		_ = g.AddVertex(p)
	}
	_ = g.AddBidirectionalEdge("A", "B", 1)
	_ = g.AddBidirectionalEdge("B", "C", 2)
	_ = g.AddBidirectionalEdge("A", "C", 4)

	// 2. Run Kruskal's algorithm.
	tree, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the tree edges.
	fmt.Printf("Total: %g, Edges:", tree.TotalWeight())
	for _, e := range tree.Edges() {
		fmt.Printf(" %s-%s", g.Vertex(e.From()).Payload(), g.Vertex(e.To()).Payload())
	}
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim's algorithm on a five-vertex pentagon.
// Vertices: A, B, C, D, E. Edges: A—B(1), A—E(12), B—C(2), C—D(3),
// D—E(5). The MST is {A—B, B—C, C—D, D—E} with total weight 11.
func ExamplePrim() {
	// 1. Construct the pentagon.
	g := core.New[string]()
	for _, p := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddVertex(p)
	}
	_ = g.AddBidirectionalEdge("A", "B", 1)
	_ = g.AddBidirectionalEdge("A", "E", 12)
	_ = g.AddBidirectionalEdge("B", "C", 2)
	_ = g.AddBidirectionalEdge("C", "D", 3)
	_ = g.AddBidirectionalEdge("D", "E", 5)

	// 2. Grow the tree from A.
	tree, err := mst.Prim(g, mst.WithRoot("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the tree edges in selection order.
	fmt.Printf("Total: %g, Edges:", tree.TotalWeight())
	for _, e := range tree.Edges() {
		fmt.Printf(" %s-%s", g.Vertex(e.From()).Payload(), g.Vertex(e.To()).Payload())
	}
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

// ExampleTree_Parent walks parent links back to the anchor, the
// spanning-tree encoding consumers usually read.
func ExampleTree_Parent() {
	// Chain A—B(1), B—C(2) anchored at A: C's path to the anchor is C→B→A.
	g := core.New[string]()
	for _, p := range []string{"A", "B", "C"} {
		_ = g.AddVertex(p)
	}
	_ = g.AddBidirectionalEdge("A", "B", 1)
	_ = g.AddBidirectionalEdge("B", "C", 2)

	tree, err := mst.Prim(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	v, _ := g.FindVertex("C")
	for v != nil {
		fmt.Printf("%s (%g)\n", v.Payload(), tree.Distance(v))
		parent, ok := tree.Parent(v)
		if !ok {
			break
		}
		v = parent
	}
	// Output:
	// C (2)
	// B (1)
	// A (0)
}

// ExampleCompute demonstrates the method dispatcher with options.
func ExampleCompute() {
	g := core.New[string]()
	for _, p := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(p)
	}
	_ = g.AddBidirectionalEdge("A", "B", 1)
	_ = g.AddBidirectionalEdge("B", "C", 2)
	_ = g.AddBidirectionalEdge("A", "C", 4)
	_ = g.AddBidirectionalEdge("C", "D", 3)

	// Kruskal is the default method; Prim is one option away.
	kruskal, _ := mst.Compute(g)
	prim, _ := mst.Compute(g, mst.WithMethod[string](mst.MethodPrim), mst.WithRoot("D"))

	fmt.Printf("kruskal total: %g\n", kruskal.TotalWeight())
	fmt.Printf("prim total:    %g\n", prim.TotalWeight())
	fmt.Println("prim anchor:  ", prim.Root().Payload())
	// Output:
	// kruskal total: 6
	// prim total:    6
	// prim anchor:   D
}
