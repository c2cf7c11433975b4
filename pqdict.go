// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pqdict provides an indexed priority queue: a mutable mapping
// of keys to priorities backed by a binary heap, with a position index
// that tracks the heap slot of every key. The top priority pair is
// available in O(1) and any pair can be inserted, removed or have its
// priority changed by key in O(log n), which makes the structure usable
// as an updatable schedule (event simulation, Dijkstra relaxation and
// the like).
//
// The structure is not safe for concurrent use; callers requiring
// concurrent access must provide their own synchronization.
package pqdict

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
)

// Order determines whether the queue surfaces the smallest or the
// largest priority first.
type Order bool

// Values for Order.
const (
	Ascending  Order = false
	Descending Order = true
)

// Item represents a single key/priority pair.
type Item[K comparable, P any] struct {
	Key      K
	Priority P
}

// Dict implements the indexed priority queue. It composes two surfaces
// on one structure: a mapping-like surface (Len, Contains, Get, Set,
// Delete, Keys) and a priority-queue surface (Peek, Pop, Add, Update,
// PushPop and the Drain iterators).
type Dict[K comparable, P any] struct {
	heap   []Item[K, P]
	pos    map[K]int
	better func(a, b P) bool
}

// New returns a Dict over an ordered priority type. Ascending order
// surfaces the smallest priority first, Descending the largest.
func New[K comparable, P cmp.Ordered](order Order, opts ...Option[K, P]) (*Dict[K, P], error) {
	better := func(a, b P) bool { return a < b }
	if order == Descending {
		better = func(a, b P) bool { return a > b }
	}
	return newDict(better, opts)
}

// NewFunc returns a Dict ordered by a caller supplied predicate that
// reports whether a should be surfaced before b. The predicate must be
// irreflexive and transitive; the structure does not validate this.
func NewFunc[K comparable, P any](better func(a, b P) bool, opts ...Option[K, P]) (*Dict[K, P], error) {
	return newDict(better, opts)
}

func newDict[K comparable, P any](better func(a, b P) bool, opts []Option[K, P]) (*Dict[K, P], error) {
	var o options[K, P]
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(better == nil); err != nil {
		return nil, err
	}
	sz := o.sliceCap
	if n := len(o.items) + len(o.m); n > sz {
		sz = n
	}
	d := &Dict[K, P]{
		heap:   make([]Item[K, P], 0, sz),
		pos:    make(map[K]int, sz),
		better: better,
	}
	// A repeated key in the seed data overwrites its earlier slot in
	// place (last occurrence wins) so that the heap array and the
	// position index remain a bijection.
	for _, it := range o.items {
		if i, ok := d.pos[it.Key]; ok {
			d.heap[i].Priority = it.Priority
			continue
		}
		d.pos[it.Key] = len(d.heap)
		d.heap = append(d.heap, it)
	}
	for k, p := range o.m {
		d.pos[k] = len(d.heap)
		d.heap = append(d.heap, Item[K, P]{Key: k, Priority: p})
	}
	d.heapify()
	return d, nil
}

// Len returns the number of pairs currently stored.
func (d *Dict[K, P]) Len() int {
	return len(d.heap)
}

// Contains returns true if key is present.
func (d *Dict[K, P]) Contains(key K) bool {
	_, ok := d.pos[key]
	return ok
}

// Get returns the priority of key, or ErrNotFound if it is absent.
func (d *Dict[K, P]) Get(key K) (P, error) {
	i, ok := d.pos[key]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	return d.heap[i].Priority, nil
}

// Set assigns a priority to key, inserting the pair if the key is
// absent and repositioning it otherwise.
func (d *Dict[K, P]) Set(key K, pri P) {
	i, ok := d.pos[key]
	if !ok {
		n := len(d.heap)
		d.heap = append(d.heap, Item[K, P]{Key: key, Priority: pri})
		d.pos[key] = n
		d.swim(n, 0)
		return
	}
	d.heap[i].Priority = pri
	d.fix(i)
}

// Add inserts a new pair, or returns ErrExists if key is already
// present.
func (d *Dict[K, P]) Add(key K, pri P) error {
	if _, ok := d.pos[key]; ok {
		return fmt.Errorf("%w: %v", ErrExists, key)
	}
	d.Set(key, pri)
	return nil
}

// Update changes the priority of an existing pair, or returns
// ErrNotFound if key is absent.
func (d *Dict[K, P]) Update(key K, pri P) error {
	if _, ok := d.pos[key]; !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	d.Set(key, pri)
	return nil
}

// Delete removes key and returns the priority it had, or ErrNotFound
// if it is absent.
func (d *Dict[K, P]) Delete(key K) (P, error) {
	i, ok := d.pos[key]
	if !ok {
		var zero P
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	pri := d.heap[i].Priority
	delete(d.pos, key)
	n := len(d.heap) - 1
	last := d.heap[n]
	d.heap = d.heap[:n]
	if i != n {
		// The relocated entry's position relative to its new
		// neighbours is unknown, so fix in either direction.
		d.heap[i] = last
		d.pos[last.Key] = i
		d.fix(i)
	}
	return pri, nil
}

// Peek returns the top priority pair without removing it, or ErrEmpty.
func (d *Dict[K, P]) Peek() (K, P, error) {
	if len(d.heap) == 0 {
		var k K
		var p P
		return k, p, ErrEmpty
	}
	top := d.heap[0]
	return top.Key, top.Priority, nil
}

// Pop removes and returns the top priority pair, or ErrEmpty.
func (d *Dict[K, P]) Pop() (K, P, error) {
	if len(d.heap) == 0 {
		var k K
		var p P
		return k, p, ErrEmpty
	}
	top := d.heap[0]
	delete(d.pos, top.Key)
	n := len(d.heap) - 1
	last := d.heap[n]
	d.heap = d.heap[:n]
	if n > 0 {
		d.heap[0] = last
		d.pos[last.Key] = 0
		d.sink(0)
	}
	return top.Key, top.Priority, nil
}

// PushPop is equivalent to Set of a new pair followed by Pop, but in a
// single pass. If the queue is non-empty and its top pair is better
// than the new one, the new pair replaces the top (restoring the heap
// by sinking) and the old top is returned; otherwise the new pair is
// returned unchanged and the queue is untouched. A key that is already
// present is rejected with ErrExists before any mutation.
func (d *Dict[K, P]) PushPop(key K, pri P) (K, P, error) {
	if _, ok := d.pos[key]; ok {
		var k K
		var p P
		return k, p, fmt.Errorf("%w: %v", ErrExists, key)
	}
	if len(d.heap) > 0 && d.better(d.heap[0].Priority, pri) {
		top := d.heap[0]
		delete(d.pos, top.Key)
		d.heap[0] = Item[K, P]{Key: key, Priority: pri}
		d.pos[key] = 0
		d.sink(0)
		return top.Key, top.Priority, nil
	}
	return key, pri, nil
}

// Copy returns an independent Dict with the same pairs and ordering.
func (d *Dict[K, P]) Copy() *Dict[K, P] {
	return &Dict[K, P]{
		heap:   slices.Clone(d.heap),
		pos:    maps.Clone(d.pos),
		better: d.better,
	}
}

// Equal returns true if a and b contain exactly the same key/priority
// pairs, irrespective of their internal layout or ordering strategy.
func Equal[K, P comparable](a, b *Dict[K, P]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, it := range a.heap {
		i, ok := b.pos[it.Key]
		if !ok || b.heap[i].Priority != it.Priority {
			return false
		}
	}
	return true
}

func (d *Dict[K, P]) heapify() {
	n := len(d.heap)
	for i := n/2 - 1; i >= 0; i-- {
		d.sink(i)
	}
}

// fix restores the heap around an entry whose priority just changed,
// comparing against the parent first and the better child second so
// that an update which does not move the entry costs O(1).
func (d *Dict[K, P]) fix(i int) {
	if parent := (i - 1) / 2; i > 0 && d.less(i, parent) {
		d.swim(i, 0)
		return
	}
	n := len(d.heap)
	c := (2 * i) + 1
	if c >= n {
		return
	}
	if r := c + 1; r < n && !d.less(c, r) {
		c = r
	}
	if d.less(c, i) {
		d.sink(i)
	}
}

// swim moves the entry at i up towards floor, sifting parents down
// until the entry fits. The moved entry's index is written once, at
// its final slot.
func (d *Dict[K, P]) swim(i, floor int) {
	e := d.heap[i]
	for i > floor {
		parent := (i - 1) / 2
		pe := d.heap[parent]
		if !d.better(e.Priority, pe.Priority) {
			break
		}
		d.heap[i] = pe
		d.pos[pe.Key] = i
		i = parent
	}
	d.heap[i] = e
	d.pos[e.Key] = i
}

// sink uses Floyd's sink-to-the-bottom-then-swim scheme: hoist the
// better child up at each level down to a leaf, place the displaced
// entry in the vacated slot and let it swim back up to top. This
// reduces comparisons when sinking heavy entries from the root and
// also handles arbitrary-position fixups, where the entry may belong
// above the slot it was left in.
func (d *Dict[K, P]) sink(top int) {
	n := len(d.heap)
	i := top
	e := d.heap[i]
	c := (2 * i) + 1
	for c < n {
		if r := c + 1; r < n && !d.less(c, r) {
			c = r
		}
		ce := d.heap[c]
		d.heap[i] = ce
		d.pos[ce.Key] = i
		i = c
		c = (2 * i) + 1
	}
	d.heap[i] = e
	d.pos[e.Key] = i
	d.swim(i, top)
}

func (d *Dict[K, P]) less(i, j int) bool {
	return d.better(d.heap[i].Priority, d.heap[j].Priority)
}
