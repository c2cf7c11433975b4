// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqdict

import "cmp"

// SortByValue heapsorts an arbitrary mapping by its values, returning
// the pairs ordered per order.
func SortByValue[K comparable, V cmp.Ordered](m map[K]V, order Order) []Item[K, V] {
	d, _ := New[K, V](order, WithMap(m)) // options are known valid
	items := make([]Item[K, V], 0, d.Len())
	for k, v := range d.Drain() {
		items = append(items, Item[K, V]{Key: k, Priority: v})
	}
	return items
}
