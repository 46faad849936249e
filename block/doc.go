// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package block implements fixed-shape block tensors: small rank-1/2/3
// containers whose entries are themselves opaque numeric arrays.
//
// # Overview
//
// A block tensor is a Vector, Matrix, or Tensor3 of entry handles. The entry
// type is generic; anything satisfying the Numeric constraint can be an
// entry (package tensor provides the canonical implementation). Rank is part
// of the type, so composing blocks of the wrong rank is a compile error;
// row/column/slice extents are fixed at construction and checked at call
// sites.
//
// The package provides three layers on top of the storage core:
//
//   - an entrywise operator family (Sin, Exp, Add, Igamma, ...) lifted from
//     the entry type to whole blocks of any rank,
//   - closed-form dense linear algebra on matrices up to 4x4 (Det, Inv,
//     InvT, GInv, GInvT, Trace) via hand-unrolled cofactor expansion, plus
//     Norm, Dot, and Normalize for any shape,
//   - block composition (MatMul, MatMulT3, T3MatMul) with shared-dimension
//     contraction and rank broadcasting between heterogeneous entries.
//
// # Basic Usage
//
//	e := func(v float64) *tensor.Tensor { return tensor.Scalar(v) }
//
//	a := block.NewMatrix(2, 2, e(1), e(2), e(3), e(4))
//	det := a.Det()      // -2
//	inv := a.Inv()      // closed-form 2x2 inverse
//	tr := a.Trace()     // 1x1 block holding 5
//	s := block.Sin(a)   // entrywise sine, same shape
//
// # Aliasing
//
// Transpose, Slice, and the Reorder operations are zero-copy views: the
// result holds the same entry handles under a permuted index map, so writing
// into an entry's array through one alias is visible through every alias.
// Rebinding a slot with Set affects only the block it is called on. All
// other operations allocate fresh entries.
//
// Entry handles are not synchronized; block tensors are meant for
// single-threaded numeric pipelines. Concurrent mutation of aliased entries
// requires external coordination.
//
// # Failure Model
//
// Extent mismatches and index bounds violations are programming errors and
// panic with ErrShape or ErrIndex. Det, Inv, InvT, and Trace support square
// sizes 1 through 4 only and panic with ErrUnsupportedDim beyond that: the
// contract is closed-form or nothing, never a silent fallback to an
// iterative algorithm. Singular matrices and zero norms are not detected;
// Inf/NaN propagate through the entry arithmetic.
package block
