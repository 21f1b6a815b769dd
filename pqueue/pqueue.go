// Package pqueue implements an indexed binary min-heap over float64 keys.
// Handles are dense integers 0..n-1; the heap tracks each handle's slot so
// DecreaseKey can re-heapify in place via heap.Fix.
package pqueue

import (
	"container/heap"
	"errors"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue is returned by ExtractMin when no handles are queued.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
	// ErrQueued is returned by Insert when the handle is already queued.
	ErrQueued = errors.New("pqueue: handle already queued")
	// ErrNotQueued is returned by DecreaseKey when the handle is not queued.
	ErrNotQueued = errors.New("pqueue: handle not queued")
	// ErrKeyNotLowered is returned by DecreaseKey when the new key is larger
	// than the current one. An equal key is accepted as a no-op.
	ErrKeyNotLowered = errors.New("pqueue: key not lowered")
	// ErrHandleRange is returned when a handle lies outside [0, n).
	ErrHandleRange = errors.New("pqueue: handle out of range")
)

// absent marks a handle that currently holds no heap slot.
const absent = -1

// heapCore is the container/heap engine behind Queue. It keeps three
// parallel views of the same state:
//
//	keys[h]  - current key of handle h (meaningful while queued)
//	slots[h] - heap slot of handle h, or absent
//	order[s] - handle stored in heap slot s
//
// Swap is the single place slot bookkeeping happens, so every sift done
// by container/heap keeps slots consistent.
type heapCore struct {
	keys  []float64
	slots []int
	order []int
}

// Len reports the number of queued handles. Part of heap.Interface.
func (c *heapCore) Len() int { return len(c.order) }

// Less orders slots by ascending key. Part of heap.Interface.
func (c *heapCore) Less(i, j int) bool { return c.keys[c.order[i]] < c.keys[c.order[j]] }

// Swap exchanges two slots and refreshes their handle→slot entries.
// Part of heap.Interface.
func (c *heapCore) Swap(i, j int) {
	c.order[i], c.order[j] = c.order[j], c.order[i]
	c.slots[c.order[i]] = i
	c.slots[c.order[j]] = j
}

// Push appends a handle into the last slot. Part of heap.Interface;
// use Queue.Insert instead.
func (c *heapCore) Push(x any) {
	h := x.(int)
	c.slots[h] = len(c.order)
	c.order = append(c.order, h)
}

// Pop removes and returns the handle in the last slot. Part of
// heap.Interface; use Queue.ExtractMin instead.
func (c *heapCore) Pop() any {
	last := len(c.order) - 1
	h := c.order[last]
	c.order = c.order[:last]
	c.slots[h] = absent

	return h
}

// Queue is an indexed min-priority queue over integer handles 0..n-1.
// Each handle is queued at most once and carries one float64 key; the
// smallest key wins ExtractMin, with ties broken arbitrarily.
//
// The zero Queue is not usable; construct with New. Not safe for
// concurrent use.
type Queue struct {
	core heapCore
}

// New returns an empty queue able to hold handles 0..n-1.
func New(n int) *Queue {
	q := &Queue{core: heapCore{
		keys:  make([]float64, n),
		slots: make([]int, n),
		order: make([]int, 0, n),
	}}
	for h := range q.core.slots {
		q.core.slots[h] = absent
	}

	return q
}

// Len reports how many handles are currently queued.
func (q *Queue) Len() int { return q.core.Len() }

// Empty reports whether no handles are queued.
func (q *Queue) Empty() bool { return q.core.Len() == 0 }

// Contains reports whether handle h is currently queued.
func (q *Queue) Contains(h int) bool {
	return h >= 0 && h < len(q.core.slots) && q.core.slots[h] != absent
}

// Key returns the current key of handle h and whether h is queued.
func (q *Queue) Key(h int) (float64, bool) {
	if !q.Contains(h) {
		return 0, false
	}

	return q.core.keys[h], true
}

// Insert queues handle h with the given key.
//
// Returns ErrHandleRange when h lies outside [0, n) and ErrQueued when h
// is already queued. Complexity: O(log n).
func (q *Queue) Insert(h int, key float64) error {
	// 1) Validate the handle.
	if h < 0 || h >= len(q.core.slots) {
		return ErrHandleRange
	}
	if q.core.slots[h] != absent {
		return ErrQueued
	}

	// 2) Record the key, then let container/heap sift the handle up.
	q.core.keys[h] = key
	heap.Push(&q.core, h)

	return nil
}

// ExtractMin dequeues the handle with the smallest key and returns it
// together with that key.
//
// Returns ErrEmptyQueue when nothing is queued. Complexity: O(log n).
func (q *Queue) ExtractMin() (int, float64, error) {
	if q.core.Len() == 0 {
		return 0, 0, ErrEmptyQueue
	}

	h := heap.Pop(&q.core).(int)

	return h, q.core.keys[h], nil
}

// DecreaseKey lowers the key of a queued handle and restores heap order
// in place. An equal key is accepted and changes nothing.
//
// Returns ErrHandleRange when h lies outside [0, n), ErrNotQueued when h
// is not queued, and ErrKeyNotLowered when key is larger than the current
// one. Complexity: O(log n).
func (q *Queue) DecreaseKey(h int, key float64) error {
	// 1) Validate the handle and its membership.
	if h < 0 || h >= len(q.core.slots) {
		return ErrHandleRange
	}
	if q.core.slots[h] == absent {
		return ErrNotQueued
	}

	// 2) Keys may only move down; a raise is a contract violation.
	if key > q.core.keys[h] {
		return ErrKeyNotLowered
	}

	// 3) Update the key and re-heapify from the handle's current slot.
	q.core.keys[h] = key
	heap.Fix(&q.core, q.core.slots[h])

	return nil
}
