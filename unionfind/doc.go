// Package unionfind provides a disjoint-set (union-find) structure over
// dense integer elements, with path compression and union by rank.
//
// What & Why
//
//   - A disjoint-set partitions elements 0..n-1 into non-overlapping sets
//     and answers two questions fast: "which set does x belong to?"
//     (Find) and "merge the sets of x and y" (Union).
//
//   - It is the workhorse behind Kruskal's Minimum Spanning Tree
//     algorithm: an edge joins the tree exactly when its endpoints lie in
//     different sets, and Union records the join.
//
// Contract
//
//   - New(n) performs make-set for every element up front; MakeSet(x)
//     re-initializes a single element as its own singleton (self-parent,
//     rank zero).
//   - Find(x) returns the representative of x's set and compresses the
//     visited path, so repeated queries approach O(1).
//   - Union(x, y) links the two roots by rank (smaller under larger; on a
//     rank tie the second argument's root wins and its rank increments).
//     It reports false, changing nothing, when x and y already share a
//     set; callers relying on "did this merge?" read the return value.
//   - Elements are indices into the structure: x and y must be in
//     [0, n). Out-of-range arguments fail loudly via bounds checks.
//
// Complexity
//
//   - Time: O(α(n)) amortized per Find/Union (α = inverse Ackermann,
//     ≤ 5 for any practical n).
//   - Space: O(n) for the parent and rank slices.
//
// No removal operation exists: sets only ever merge.
package unionfind
