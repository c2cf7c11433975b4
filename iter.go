// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqdict

import "iter"

// Keys returns a non-destructive iterator over the stored keys. The
// order of iteration is unspecified; use Drain or DrainKeys for
// priority order.
func (d *Dict[K, P]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, it := range d.heap {
			if !yield(it.Key) {
				return
			}
		}
	}
}

// Drain returns a single-use iterator that repeatedly pops the top
// pair, yielding the contents in priority order. Draining consumes the
// queue: once the iterator is exhausted the queue is empty.
func (d *Dict[K, P]) Drain() iter.Seq2[K, P] {
	return func(yield func(K, P) bool) {
		for {
			k, p, err := d.Pop()
			if err != nil {
				return
			}
			if !yield(k, p) {
				return
			}
		}
	}
}

// DrainKeys is like Drain but yields keys only.
func (d *Dict[K, P]) DrainKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range d.Drain() {
			if !yield(k) {
				return
			}
		}
	}
}

// DrainPriorities is like Drain but yields priorities only.
func (d *Dict[K, P]) DrainPriorities() iter.Seq[P] {
	return func(yield func(P) bool) {
		for _, p := range d.Drain() {
			if !yield(p) {
				return
			}
		}
	}
}
