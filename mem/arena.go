// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package mem provides contiguous per-frame arenas for flat GPU records.
//
// Instance and vertex data is rebuilt every time the camera or a curve
// changes; records are plain values copied into one contiguous backing
// slice in draw order, never individually owned. Resetting an arena keeps
// its backing storage so steady-state frames do not allocate.
package mem

type Arena[T any] struct {
	buf []T
}

func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		buf: make([]T, 0, capacity),
	}
}

// Append copies values into the arena and returns the index of the first
// appended record.
func (a *Arena[T]) Append(values ...T) int {
	idx := len(a.buf)
	a.buf = append(a.buf, values...)
	return idx
}

// Values returns the records appended since the last Reset, in draw order.
// The slice aliases the arena and is invalidated by the next Append or
// Reset.
func (a *Arena[T]) Values() []T {
	return a.buf
}

func (a *Arena[T]) Len() int {
	return len(a.buf)
}

// Reset discards all records but keeps the backing storage.
func (a *Arena[T]) Reset() {
	a.buf = a.buf[:0]
}
