// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math"
	"strings"
	"testing"
)

// Test helpers

func assertEqualFloat(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertPanics(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	f()
}

func fromFloat64(t *testing.T, data []float64, shape Shape) *Tensor {
	t.Helper()
	tt, err := FromFloat64(data, shape)
	if err != nil {
		t.Fatalf("FromFloat64: %v", err)
	}
	return tt
}

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		str   string
	}{
		{Float32, "float32"},
		{Float64, "float64"},
		{Int32, "int32"},
		{Int64, "int64"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.str {
			t.Errorf("%s.String() = %q, want %q", tt.dtype, got, tt.str)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if dt := inferDataType(float32(0)); dt != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", dt)
	}
	if dt := inferDataType(float64(0)); dt != Float64 {
		t.Errorf("inferDataType(float64) = %v, want Float64", dt)
	}
	if dt := inferDataType(int32(0)); dt != Int32 {
		t.Errorf("inferDataType(int32) = %v, want Int32", dt)
	}
	if dt := inferDataType(int64(0)); dt != Int64 {
		t.Errorf("inferDataType(int64) = %v, want Int64", dt)
	}
}

// Creation Tests

func TestZerosAndOnes(t *testing.T) {
	z := Zeros(Shape{2, 3}, Float32)
	assertEqualShape(t, Shape{2, 3}, z.Shape(), "Zeros shape")
	for i := 0; i < z.NumElements(); i++ {
		assertEqualFloat(t, 0, z.load(i), "Zeros element")
	}

	o := Ones(Shape{4}, Int64)
	for i := 0; i < 4; i++ {
		assertEqualFloat(t, 1, o.load(i), "Ones element")
	}
}

func TestFull(t *testing.T) {
	f := Full(Shape{2, 2}, 3.5, Float64)
	for i := 0; i < 4; i++ {
		assertEqualFloat(t, 3.5, f.load(i), "Full element")
	}
	if f.DType() != Float64 {
		t.Errorf("Full dtype = %v, want Float64", f.DType())
	}
}

func TestScalar(t *testing.T) {
	s := Scalar(2.5)
	if s.Rank() != 0 {
		t.Errorf("Scalar rank = %d, want 0", s.Rank())
	}
	if s.NumElements() != 1 {
		t.Errorf("Scalar elements = %d, want 1", s.NumElements())
	}
	assertEqualFloat(t, 2.5, s.Item(), "Scalar value")
}

func TestFromSlice(t *testing.T) {
	tt, err := FromSlice([]int32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if tt.DType() != Int32 {
		t.Errorf("dtype = %v, want Int32", tt.DType())
	}
	assertEqualFloat(t, 6, tt.At(1, 2), "At(1,2)")

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("FromSlice with wrong element count should fail")
	}
}

// Access Tests

func TestAtSetAt(t *testing.T) {
	tt := fromFloat64(t, []float64{1, 2, 3, 4}, Shape{2, 2})
	assertEqualFloat(t, 3, tt.At(1, 0), "At(1,0)")
	tt.SetAt(9, 0, 1)
	assertEqualFloat(t, 9, tt.At(0, 1), "after SetAt")

	assertPanics(t, "out-of-bounds At", func() { tt.At(2, 0) })
	assertPanics(t, "wrong index count", func() { tt.At(1) })
}

func TestItemRequiresSingleElement(t *testing.T) {
	tt := fromFloat64(t, []float64{1, 2}, Shape{2})
	assertPanics(t, "Item on multi-element tensor", func() { tt.Item() })
}

func TestTypedViewsShareBuffer(t *testing.T) {
	tt := fromFloat64(t, []float64{1, 2, 3}, Shape{3})
	tt.AsFloat64()[1] = 7
	assertEqualFloat(t, 7, tt.At(1), "write through AsFloat64")

	assertPanics(t, "AsFloat32 on float64 tensor", func() { tt.AsFloat32() })
}

func TestCloneIsDeep(t *testing.T) {
	tt := fromFloat64(t, []float64{1, 2}, Shape{2})
	c := tt.Clone()
	c.SetAt(5, 0)
	assertEqualFloat(t, 1, tt.At(0), "original after clone write")
	assertEqualFloat(t, 5, c.At(0), "clone after write")
}

func TestEqual(t *testing.T) {
	a := fromFloat64(t, []float64{1, 2}, Shape{2})
	b := fromFloat64(t, []float64{1, 2}, Shape{2})
	if !a.Equal(b) {
		t.Error("identical tensors should be Equal")
	}

	b.SetAt(3, 1)
	if a.Equal(b) {
		t.Error("different values should not be Equal")
	}

	c := fromFloat64(t, []float64{1, 2}, Shape{2, 1})
	if a.Equal(c) {
		t.Error("different shapes should not be Equal")
	}

	d, _ := FromSlice([]float32{1, 2}, Shape{2})
	if a.Equal(d) {
		t.Error("different dtypes should not be Equal")
	}
}

func TestString(t *testing.T) {
	tt := fromFloat64(t, []float64{1, 2}, Shape{2})
	s := tt.String()
	if !strings.Contains(s, "float64") || !strings.Contains(s, "1 2") {
		t.Errorf("unexpected String: %q", s)
	}

	big := Zeros(Shape{100}, Float32)
	if strings.Contains(big.String(), "0 0") {
		t.Errorf("large tensor should not inline elements: %q", big.String())
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{3, 4}, 12},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("strides = %v, want %v", strides, want)
			break
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b, want Shape
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{}, Shape{2, 2}, Shape{2, 2}},
		{Shape{4}, Shape{4}, Shape{4}},
	}

	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		if err != nil {
			t.Errorf("BroadcastShapes(%v, %v): %v", tt.a, tt.b, err)
			continue
		}
		assertEqualShape(t, tt.want, got, "broadcast result")
	}

	if _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5}); err == nil {
		t.Error("incompatible shapes should fail")
	}
}
