// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqdict

import (
	"fmt"

	"cloudeng.io/errors"
)

type options[K comparable, P any] struct {
	sliceCap int
	items    []Item[K, P]
	haveMap  bool
	m        map[K]P
}

// Option represents the options that can be passed to New and NewFunc.
type Option[K comparable, P any] func(*options[K, P])

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap entries.
func WithSliceCap[K comparable, P any](n int) Option[K, P] {
	return func(o *options[K, P]) {
		o.sliceCap = n
	}
}

// WithItems seeds the queue from an ordered sequence of pairs. If a key
// occurs more than once the last occurrence wins. The seeded data is
// heapified in O(n).
func WithItems[K comparable, P any](items []Item[K, P]) Option[K, P] {
	return func(o *options[K, P]) {
		o.items = items
	}
}

// WithMap seeds the queue from an existing key to priority mapping.
// The seeded data is heapified in O(n).
func WithMap[K comparable, P any](m map[K]P) Option[K, P] {
	return func(o *options[K, P]) {
		o.haveMap = true
		o.m = m
	}
}

// validate reports every misconfiguration at once rather than just the
// first one encountered.
func (o *options[K, P]) validate(nilPredicate bool) error {
	errs := errors.M{}
	if nilPredicate {
		errs.Append(fmt.Errorf("%w: nil ordering predicate", ErrInvalidOption))
	}
	if o.items != nil && o.haveMap {
		errs.Append(fmt.Errorf("%w: WithItems and WithMap are mutually exclusive", ErrInvalidOption))
	}
	if o.sliceCap < 0 {
		errs.Append(fmt.Errorf("%w: negative slice capacity", ErrInvalidOption))
	}
	return errs.Err()
}
