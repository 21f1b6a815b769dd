// Package pqueue provides an indexed min-priority queue over float64 keys
// with an O(log n) DecreaseKey operation, built on container/heap.
//
// What & Why
//
//   - The stock container/heap API can reorder an element only if the
//     caller tracked its position through every sift. pqueue does that
//     bookkeeping internally: Swap refreshes a handle→slot table, so the
//     queue always knows where each element lives.
//
//   - Elements are dense integer handles 0..n-1 chosen by the caller
//     (vertex indices, job ids). Membership checks, key lookups and
//     DecreaseKey therefore start from a plain slice read instead of a
//     hash lookup or a linear scan.
//
//   - Typical use is the frontier of a best-first graph search (Prim,
//     Dijkstra): insert a handle the first time it is discovered, then
//     lower its key in place each time a better connection appears, so
//     the heap never accumulates stale duplicate entries.
//
// Operations
//
//   - New(n):              queue for handles 0..n-1
//   - Insert(h, key):      queue a handle with its initial key
//   - ExtractMin():        dequeue the handle with the smallest key
//   - DecreaseKey(h, key): lower a queued handle's key in place
//   - Key(h), Contains(h): O(1) state inspection
//   - Len(), Empty():      O(1) size inspection
//
// Error handling (sentinel errors):
//
//   - ErrHandleRange:   handle outside [0, n)
//   - ErrQueued:        Insert of a handle that is already queued
//   - ErrNotQueued:     DecreaseKey of a handle that is not queued
//   - ErrKeyNotLowered: DecreaseKey with a key larger than the current
//     one (an equal key is accepted as a no-op)
//   - ErrEmptyQueue:    ExtractMin on an empty queue
//
// Performance and complexity:
//
//   - Time:  Insert, ExtractMin and DecreaseKey run in O(log n);
//     Key, Contains, Len and Empty are O(1).
//   - Space: O(n) regardless of how many handles are queued, so a queue
//     sized to a vertex set never reallocates during a search.
//
// Queues are not safe for concurrent use.
package pqueue
