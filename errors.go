// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pqdict

import "cloudeng.io/errors"

var (
	// ErrNotFound is returned by Get, Update and Delete for a key
	// that is not present.
	ErrNotFound = errors.New("pqdict: key not found")
	// ErrExists is returned by Add and PushPop for a key that is
	// already present.
	ErrExists = errors.New("pqdict: key already exists")
	// ErrEmpty is returned by Peek and Pop when the queue contains
	// no pairs.
	ErrEmpty = errors.New("pqdict: empty")
	// ErrInvalidOption is returned by the constructors for
	// conflicting or malformed options.
	ErrInvalidOption = errors.New("pqdict: invalid option")
)
