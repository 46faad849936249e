// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// Block composition: matrix products over the block structure, with the
// inner contraction delegated to the entry type. Entries of different rank
// are reconciled before multiplying, so a matrix of per-point arrays can be
// composed with a matrix of plain scalars.

// mulEntries multiplies two entry handles, first raising the lower-rank
// operand with trailing unit axes until the ranks agree. The unit axes then
// broadcast inside the entry multiplication.
func mulEntries[T Numeric[T]](x, y T) T {
	for x.Rank() < y.Rank() {
		x = x.Unsqueeze(x.Rank())
	}
	for y.Rank() < x.Rank() {
		y = y.Unsqueeze(y.Rank())
	}
	return x.Mul(y)
}

// MatMul computes the block matrix product a·b, contracting a's columns
// against b's rows. Mismatched inner extents panic with ErrShape.
func MatMul[T Numeric[T]](a, b Matrix[T]) Matrix[T] {
	if a.cols != b.rows {
		panic(ErrShape)
	}
	out := NewMatrix[T](a.rows, b.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.cols; c++ {
			s := mulEntries(a.data[a.cols*r], b.data[c])
			for k := 1; k < a.cols; k++ {
				s = s.Add(mulEntries(a.data[a.cols*r+k], b.data[b.cols*k+c]), 1)
			}
			out.data[b.cols*r+c] = s
		}
	}
	return out
}

// MatMulT3 computes the slice-wise product a·b of a block matrix with a
// rank-3 block tensor: slice k of the result is a·Slice(k).
func MatMulT3[T Numeric[T]](a Matrix[T], b Tensor3[T]) Tensor3[T] {
	if a.cols != b.rows {
		panic(ErrShape)
	}
	out := NewTensor3[T](a.rows, b.cols, b.slices)
	for k := 0; k < b.slices; k++ {
		p := MatMul(a, b.Slice(k))
		copy(out.data[out.rows*out.cols*k:], p.data)
	}
	return out
}

// T3MatMul computes the slice-wise product a·b of a rank-3 block tensor
// with a block matrix: slice k of the result is Slice(k)·b.
func T3MatMul[T Numeric[T]](a Tensor3[T], b Matrix[T]) Tensor3[T] {
	if a.cols != b.rows {
		panic(ErrShape)
	}
	out := NewTensor3[T](a.rows, b.cols, a.slices)
	for k := 0; k < a.slices; k++ {
		p := MatMul(a.Slice(k), b)
		copy(out.data[out.rows*out.cols*k:], p.data)
	}
	return out
}
