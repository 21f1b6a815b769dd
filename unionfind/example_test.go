package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/unionfind"
)

// ExampleDisjointSet merges a few sets and uses the Union return value
// the way Kruskal's algorithm does: a false result marks an edge that
// would close a cycle.
func ExampleDisjointSet() {
	// 1. Partition five elements into singletons.
	d := unionfind.New(5)

	// 2. Merge pairs; false flags a redundant merge.
	fmt.Println(d.Union(0, 1))
	fmt.Println(d.Union(2, 3))
	fmt.Println(d.Union(1, 3))
	fmt.Println(d.Union(0, 2))

	// 3. Element 4 never joined anything.
	fmt.Println(d.SameSet(0, 4))
	// Output:
	// true
	// true
	// true
	// false
	// false
}

// ExampleDisjointSet_Find shows that every element of a merged set
// reports the same representative.
func ExampleDisjointSet_Find() {
	d := unionfind.New(4)
	_ = d.Union(0, 1)
	_ = d.Union(1, 2)

	fmt.Println(d.Find(0) == d.Find(2))
	fmt.Println(d.SameSet(0, 3))
	// Output:
	// true
	// false
}
