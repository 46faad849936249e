// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// Matrix is a rank-2 block tensor: a row-major table of entry handles. The
// zero Matrix is empty and unusable; construct with NewMatrix.
type Matrix[T Numeric[T]] struct {
	rows, cols, slices int
	data               []T
}

// NewMatrix creates a rows-by-cols block matrix. With no entries the handles
// start zero-valued; otherwise exactly rows*cols entries are required, in
// row-major order. Invalid extents or a wrong entry count panic with
// ErrShape.
func NewMatrix[T Numeric[T]](rows, cols int, entries ...T) Matrix[T] {
	return Matrix[T](newBase(rows, cols, 1, entries))
}

// Rows returns the row extent.
func (m Matrix[T]) Rows() int { return m.rows }

// Cols returns the column extent.
func (m Matrix[T]) Cols() int { return m.cols }

// Rank returns 2.
func (Matrix[T]) Rank() int { return 2 }

// NumEntries returns rows*cols.
func (m Matrix[T]) NumEntries() int { return len(m.data) }

// Dims returns the extents as {rows, cols}.
func (m Matrix[T]) Dims() []int { return []int{m.rows, m.cols} }

// Entry returns the entry at linear (row-major) index idx.
func (m Matrix[T]) Entry(idx int) T {
	base[T](m).checkIndex(idx)
	return m.data[idx]
}

// SetEntry replaces the entry at linear index idx and returns the stored
// value.
func (m Matrix[T]) SetEntry(idx int, e T) T {
	base[T](m).checkIndex(idx)
	m.data[idx] = e
	return e
}

// At returns the entry at row r, column c, panicking with ErrIndex out of
// range.
func (m Matrix[T]) At(r, c int) T {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(ErrIndex)
	}
	return m.data[m.cols*r+c]
}

// Set replaces the entry at row r, column c.
func (m Matrix[T]) Set(r, c int, e T) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(ErrIndex)
	}
	m.data[m.cols*r+c] = e
}

// Entries returns the backing entry table in row-major order. Mutating it
// mutates the matrix.
func (m Matrix[T]) Entries() []T { return m.data }

// T returns the transpose as an aliasing view: the result shares every entry
// handle with m under swapped indices.
func (m Matrix[T]) T() Matrix[T] {
	data := make([]T, len(m.data))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			data[m.rows*c+r] = m.data[m.cols*r+c]
		}
	}
	return Matrix[T]{rows: m.cols, cols: m.rows, slices: 1, data: data}
}

// Clone returns a matrix with a fresh handle table over the same entries.
func (m Matrix[T]) Clone() Matrix[T] {
	return Matrix[T](base[T](m).shallow())
}

// Equal reports whether both matrices have the same extents and entrywise
// equal contents.
func (m Matrix[T]) Equal(o Matrix[T]) bool {
	return equalEntries(base[T](m), base[T](o))
}

func (m Matrix[T]) String() string {
	return base[T](m).format("Matrix", 2)
}
