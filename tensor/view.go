// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "fmt"

// view returns a tensor that shares this tensor's buffer under a new shape.
// The new shape must describe the same number of elements.
func (t *Tensor) view(shape Shape) *Tensor {
	if shape.NumElements() != t.NumElements() {
		panic(fmt.Sprintf("view shape %v incompatible with %v", shape, t.shape))
	}
	return &Tensor{
		data:   t.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  t.dtype,
	}
}

// Unsqueeze returns a view with a unit axis inserted at the given position.
// axis may range from 0 to Rank() inclusive; Rank() appends a trailing unit
// axis. The view shares the underlying buffer; no data is copied.
//
// Example:
//
//	t, _ := tensor.FromFloat64([]float64{1, 2, 3}, tensor.Shape{3})
//	u := t.Unsqueeze(1) // shape [3, 1], same buffer
func (t *Tensor) Unsqueeze(axis int) *Tensor {
	if axis < 0 || axis > len(t.shape) {
		panic(fmt.Sprintf("unsqueeze axis %d out of range for rank-%d tensor", axis, len(t.shape)))
	}
	shape := make(Shape, 0, len(t.shape)+1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, t.shape[axis:]...)
	return t.view(shape)
}

// Squeeze returns a view with the given unit axis removed.
// Panics if the axis extent is not 1.
func (t *Tensor) Squeeze(axis int) *Tensor {
	if axis < 0 || axis >= len(t.shape) {
		panic(fmt.Sprintf("squeeze axis %d out of range for rank-%d tensor", axis, len(t.shape)))
	}
	if t.shape[axis] != 1 {
		panic(fmt.Sprintf("squeeze axis %d has extent %d, want 1", axis, t.shape[axis]))
	}
	shape := make(Shape, 0, len(t.shape)-1)
	shape = append(shape, t.shape[:axis]...)
	shape = append(shape, t.shape[axis+1:]...)
	return t.view(shape)
}
