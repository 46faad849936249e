// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// Vector is a rank-1 block tensor: a column of entry handles. The zero
// Vector is empty and unusable; construct with NewVector.
type Vector[T Numeric[T]] struct {
	rows, cols, slices int
	data               []T
}

// NewVector creates a block vector with rows entries. With no entries the
// handles start zero-valued; otherwise exactly rows entries are required.
// Invalid extents or a wrong entry count panic with ErrShape.
func NewVector[T Numeric[T]](rows int, entries ...T) Vector[T] {
	return Vector[T](newBase(rows, 1, 1, entries))
}

// Rows returns the number of entries.
func (v Vector[T]) Rows() int { return v.rows }

// Rank returns 1.
func (Vector[T]) Rank() int { return 1 }

// NumEntries returns the number of entries.
func (v Vector[T]) NumEntries() int { return len(v.data) }

// Dims returns the extents, here just the row count.
func (v Vector[T]) Dims() []int { return []int{v.rows} }

// Entry returns the entry at linear index idx.
func (v Vector[T]) Entry(idx int) T {
	base[T](v).checkIndex(idx)
	return v.data[idx]
}

// SetEntry replaces the entry at linear index idx and returns the stored
// value.
func (v Vector[T]) SetEntry(idx int, e T) T {
	base[T](v).checkIndex(idx)
	v.data[idx] = e
	return e
}

// At returns the entry at index r, panicking with ErrIndex out of range.
func (v Vector[T]) At(r int) T {
	base[T](v).checkIndex(r)
	return v.data[r]
}

// Set replaces the entry at index r. The change is visible through every
// block sharing this storage.
func (v Vector[T]) Set(r int, e T) {
	base[T](v).checkIndex(r)
	v.data[r] = e
}

// Entries returns the backing entry table in index order. Mutating it
// mutates the vector.
func (v Vector[T]) Entries() []T { return v.data }

// Clone returns a vector with a fresh handle table over the same entries.
func (v Vector[T]) Clone() Vector[T] {
	return Vector[T](base[T](v).shallow())
}

// Equal reports whether both vectors have the same extent and entrywise
// equal contents.
func (v Vector[T]) Equal(o Vector[T]) bool {
	return equalEntries(base[T](v), base[T](o))
}

func (v Vector[T]) String() string {
	return base[T](v).format("Vector", 1)
}
