// Package unionfind implements a slice-based disjoint-set (union-find)
// over dense integer elements with path compression and union by rank.
package unionfind

// DisjointSet partitions the elements 0..n-1 into disjoint sets.
// Every element starts as its own singleton; Union merges two sets and
// Find names the current representative of an element's set.
//
// Element indices outside [0, n) are a caller error and panic via the
// underlying slice bounds. Not safe for concurrent use.
type DisjointSet struct {
	parent []int // parent[x] == x marks a root
	rank   []int // upper bound on the tree height below a root
}

// New returns a partition of 0..n-1 into n singleton sets.
func New(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for x := 0; x < n; x++ {
		d.MakeSet(x)
	}

	return d
}

// Len reports the number of elements in the partition.
func (d *DisjointSet) Len() int { return len(d.parent) }

// MakeSet re-initializes element x as a singleton set with rank zero.
// Detaching a non-root element splits it out of its old set; detaching a
// root orphans nothing (its children keep pointing at it).
func (d *DisjointSet) MakeSet(x int) {
	d.parent[x] = x
	d.rank[x] = 0
}

// Find returns the representative of the set containing x, compressing
// the walked path by re-pointing every visited element at its
// grandparent.
//
// Complexity: amortized near O(1) (inverse Ackermann) combined with
// union by rank.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets containing x and y and reports whether a merge
// happened; false means the two elements already shared a set.
//
// The shorter tree is attached under the taller one (union by rank).
// On a rank tie the second element's root becomes the representative and
// its rank grows by one.
//
// Complexity: amortized near O(1) (inverse Ackermann).
func (d *DisjointSet) Union(x, y int) bool {
	// 1) Resolve both representatives; a shared root means no work.
	rootX := d.Find(x)
	rootY := d.Find(y)
	if rootX == rootY {
		return false
	}

	// 2) Attach the shorter tree under the taller one.
	if d.rank[rootX] > d.rank[rootY] {
		d.parent[rootY] = rootX
		return true
	}
	d.parent[rootX] = rootY
	if d.rank[rootX] == d.rank[rootY] {
		d.rank[rootY]++
	}

	return true
}

// SameSet reports whether x and y currently belong to the same set.
func (d *DisjointSet) SameSet(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
