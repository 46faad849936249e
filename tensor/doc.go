// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense numeric n-dimensional array used as the
// entry type of block tensors.
//
// # Overview
//
// A Tensor is an opaque numeric array: dtype, shape with row-major strides,
// and a flat buffer shared between views. It exposes exactly the capability
// set the block algebra requires (alpha-scaled Add/Sub, Mul, Div, Reciprocal,
// Pow, Neg, Sqrt, Equal, Rank, Unsqueeze) plus the pointwise function family
// lifted entrywise by package block.
//
// # Basic Usage
//
//	a, _ := tensor.FromFloat64([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b := tensor.Full(tensor.Shape{2, 2}, 0.5, tensor.Float64)
//
//	c := a.Add(b, 1)  // a + 1*b
//	d := a.Sin()      // entrywise sine
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules: shapes are compared
// trailing-first, and dimensions of extent 1 (or missing dimensions) stretch
// to match the other operand:
//
//	col, _ := tensor.FromFloat64([]float64{1, 2, 3}, tensor.Shape{3, 1})
//	row, _ := tensor.FromFloat64([]float64{10, 20}, tensor.Shape{1, 2})
//	sum := col.Add(row, 1) // shape [3, 2]
//
// # Views
//
// Unsqueeze and Squeeze return views that share the underlying buffer with
// the source; no numeric data is copied. Mutating a view mutates every
// holder of the buffer. Tensors are not synchronized; concurrent mutation of
// shared buffers requires external coordination.
//
// # Failure Model
//
// Shape, dtype, and bounds violations are programming errors and panic.
// Numeric degeneracy (division by zero, log of a negative) is not detected;
// it produces Inf/NaN exactly as the underlying float arithmetic does.
package tensor
