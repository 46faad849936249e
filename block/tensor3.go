// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// Tensor3 is a rank-3 block tensor: a stack of row-major matrix slices. The
// linear layout is slice-major, so slice k occupies a contiguous rows*cols
// region. The zero Tensor3 is empty and unusable; construct with NewTensor3.
type Tensor3[T Numeric[T]] struct {
	rows, cols, slices int
	data               []T
}

// NewTensor3 creates a rows-by-cols-by-slices block tensor. With no entries
// the handles start zero-valued; otherwise exactly rows*cols*slices entries
// are required, slice-major and row-major within each slice. Invalid extents
// or a wrong entry count panic with ErrShape.
func NewTensor3[T Numeric[T]](rows, cols, slices int, entries ...T) Tensor3[T] {
	return Tensor3[T](newBase(rows, cols, slices, entries))
}

// Rows returns the row extent.
func (t Tensor3[T]) Rows() int { return t.rows }

// Cols returns the column extent.
func (t Tensor3[T]) Cols() int { return t.cols }

// Slices returns the slice extent.
func (t Tensor3[T]) Slices() int { return t.slices }

// Rank returns 3.
func (Tensor3[T]) Rank() int { return 3 }

// NumEntries returns rows*cols*slices.
func (t Tensor3[T]) NumEntries() int { return len(t.data) }

// Dims returns the extents as {rows, cols, slices}.
func (t Tensor3[T]) Dims() []int { return []int{t.rows, t.cols, t.slices} }

// Entry returns the entry at linear (layout-order) index idx.
func (t Tensor3[T]) Entry(idx int) T {
	base[T](t).checkIndex(idx)
	return t.data[idx]
}

// SetEntry replaces the entry at linear index idx and returns the stored
// value.
func (t Tensor3[T]) SetEntry(idx int, e T) T {
	base[T](t).checkIndex(idx)
	t.data[idx] = e
	return e
}

func (t Tensor3[T]) index(r, c, k int) int {
	if r < 0 || r >= t.rows || c < 0 || c >= t.cols || k < 0 || k >= t.slices {
		panic(ErrIndex)
	}
	return t.rows*t.cols*k + t.cols*r + c
}

// At returns the entry at row r, column c, slice k, panicking with ErrIndex
// out of range.
func (t Tensor3[T]) At(r, c, k int) T {
	return t.data[t.index(r, c, k)]
}

// Set replaces the entry at row r, column c, slice k.
func (t Tensor3[T]) Set(r, c, k int, e T) {
	t.data[t.index(r, c, k)] = e
}

// Entries returns the backing entry table in layout order. Mutating it
// mutates the tensor.
func (t Tensor3[T]) Entries() []T { return t.data }

// Slice returns slice k as an aliasing rows-by-cols matrix view: it shares
// every entry handle with t.
func (t Tensor3[T]) Slice(k int) Matrix[T] {
	if k < 0 || k >= t.slices {
		panic(ErrIndex)
	}
	n := t.rows * t.cols
	data := make([]T, n)
	copy(data, t.data[n*k:n*(k+1)])
	return Matrix[T]{rows: t.rows, cols: t.cols, slices: 1, data: data}
}

// permute builds an aliasing view with extents (rows, cols, slices) whose
// entry at (r, c, k) is resolved by at against the original tensor.
func (t Tensor3[T]) permute(rows, cols, slices int, at func(r, c, k int) T) Tensor3[T] {
	out := Tensor3[T]{rows: rows, cols: cols, slices: slices, data: make([]T, rows*cols*slices)}
	for k := 0; k < slices; k++ {
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out.data[rows*cols*k+cols*r+c] = at(r, c, k)
			}
		}
	}
	return out
}

// ReorderIKJ swaps the column and slice axes: the result's entry (r, c, k)
// aliases t's entry (r, k, c).
func (t Tensor3[T]) ReorderIKJ() Tensor3[T] {
	return t.permute(t.rows, t.slices, t.cols, func(r, c, k int) T { return t.At(r, k, c) })
}

// ReorderJIK swaps the row and column axes: the result's entry (r, c, k)
// aliases t's entry (c, r, k).
func (t Tensor3[T]) ReorderJIK() Tensor3[T] {
	return t.permute(t.cols, t.rows, t.slices, func(r, c, k int) T { return t.At(c, r, k) })
}

// ReorderKJI swaps the row and slice axes: the result's entry (r, c, k)
// aliases t's entry (k, c, r).
func (t Tensor3[T]) ReorderKJI() Tensor3[T] {
	return t.permute(t.slices, t.cols, t.rows, func(r, c, k int) T { return t.At(k, c, r) })
}

// ReorderKIJ cycles the axes: the result's entry (r, c, k) aliases t's
// entry (c, k, r).
func (t Tensor3[T]) ReorderKIJ() Tensor3[T] {
	return t.permute(t.slices, t.rows, t.cols, func(r, c, k int) T { return t.At(c, k, r) })
}

// Clone returns a tensor with a fresh handle table over the same entries.
func (t Tensor3[T]) Clone() Tensor3[T] {
	return Tensor3[T](base[T](t).shallow())
}

// Equal reports whether both tensors have the same extents and entrywise
// equal contents.
func (t Tensor3[T]) Equal(o Tensor3[T]) bool {
	return equalEntries(base[T](t), base[T](o))
}

func (t Tensor3[T]) String() string {
	return base[T](t).format("Tensor3", 3)
}
