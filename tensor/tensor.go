// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"strings"
	"unsafe"
)

// Tensor is a dense numeric n-dimensional array.
//
// The flat buffer may be shared between tensors: views created by Unsqueeze
// and Squeeze reinterpret the same memory under a different shape. A Tensor
// with an empty shape is a 0-d scalar holding one element.
type Tensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// newTensor allocates a zero-initialized tensor.
func newTensor(shape Shape, dtype DataType) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: invalid shape: %v", err))
	}
	return &Tensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType) *Tensor {
	return newTensor(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *Tensor {
	return Full(shape, 1, dtype)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(tensor.Shape{3, 3}, 3.14, tensor.Float64)
func Full(shape Shape, value float64, dtype DataType) *Tensor {
	t := newTensor(shape, dtype)
	for i := 0; i < t.NumElements(); i++ {
		t.store(i, value)
	}
	return t
}

// Scalar creates a 0-d Float64 tensor holding a single value.
func Scalar(value float64) *Tensor {
	t := newTensor(Shape{}, Float64)
	t.store(0, value)
	return t
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
func FromSlice[T DType](data []T, shape Shape) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	var dummy T
	t := newTensor(shape, inferDataType(dummy))
	for i, v := range data {
		t.store(i, float64(v))
	}
	return t, nil
}

// FromFloat64 creates a Float64 tensor from a slice. The slice is copied.
func FromFloat64(data []float64, shape Shape) (*Tensor, error) {
	return FromSlice(data, shape)
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's memory strides.
func (t *Tensor) Strides() []int {
	return t.stride
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// Rank returns the number of dimensions. A scalar has rank 0.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Dim returns the extent of dimension i.
// Panics if i is out of range.
func (t *Tensor) Dim(i int) int {
	if i < 0 || i >= len(t.shape) {
		panic(fmt.Sprintf("dimension %d out of range for rank-%d tensor", i, len(t.shape)))
	}
	return t.shape[i]
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (t *Tensor) AsFloat32() []float32 {
	if t.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", t.dtype))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (t *Tensor) AsFloat64() []float64 {
	if t.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", t.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (t *Tensor) AsInt32() []int32 {
	if t.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", t.dtype))
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (t *Tensor) AsInt64() []int64 {
	if t.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", t.dtype))
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&t.data[0])), t.NumElements())
}

// load reads the element at linear index i as float64.
func (t *Tensor) load(i int) float64 {
	switch t.dtype {
	case Float32:
		return float64(t.AsFloat32()[i])
	case Float64:
		return t.AsFloat64()[i]
	case Int32:
		return float64(t.AsInt32()[i])
	default:
		return float64(t.AsInt64()[i])
	}
}

// store writes the element at linear index i, converting from float64.
func (t *Tensor) store(i int, v float64) {
	switch t.dtype {
	case Float32:
		t.AsFloat32()[i] = float32(v)
	case Float64:
		t.AsFloat64()[i] = v
	case Int32:
		t.AsInt32()[i] = int32(v)
	default:
		t.AsInt64()[i] = int64(v)
	}
}

// loadInt reads the element at linear index i as int64.
// Panics for floating-point dtypes.
func (t *Tensor) loadInt(i int) int64 {
	switch t.dtype {
	case Int32:
		return int64(t.AsInt32()[i])
	case Int64:
		return t.AsInt64()[i]
	default:
		panic(fmt.Sprintf("integer access on %s tensor", t.dtype))
	}
}

// storeInt writes the element at linear index i from int64.
func (t *Tensor) storeInt(i int, v int64) {
	switch t.dtype {
	case Int32:
		t.AsInt32()[i] = int32(v)
	default:
		t.AsInt64()[i] = v
	}
}

// offsetOf converts multi-dimensional indices to a linear offset.
// Panics if indices are out of bounds.
func (t *Tensor) offsetOf(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// At returns the element at the given indices as float64.
// Panics if indices are out of bounds.
//
// Example:
//
//	t, _ := tensor.FromFloat64([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	v := t.At(1, 0) // 3
func (t *Tensor) At(indices ...int) float64 {
	return t.load(t.offsetOf(indices))
}

// SetAt sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) SetAt(value float64, indices ...int) {
	t.store(t.offsetOf(indices), value)
}

// Item returns the value of a single-element tensor as float64.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.load(0)
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := newTensor(t.shape, t.dtype)
	copy(c.data, t.data)
	return c
}

// Equal reports whether both tensors have the same dtype, shape, and
// elements. NaN entries compare unequal, as in float comparison.
func (t *Tensor) Equal(other *Tensor) bool {
	if t.dtype != other.dtype || !t.shape.Equal(other.shape) {
		return false
	}
	for i := 0; i < t.NumElements(); i++ {
		if t.load(i) != other.load(i) {
			return false
		}
	}
	return true
}

// String returns a human-readable representation. Small tensors include
// their elements.
func (t *Tensor) String() string {
	const maxInline = 16
	if t.NumElements() > maxInline {
		return fmt.Sprintf("Tensor[%s]%v", t.dtype, t.shape)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor[%s]%v [", t.dtype, t.shape)
	for i := 0; i < t.NumElements(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g", t.load(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
