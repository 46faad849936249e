// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
)

// incIndex advances a multi-dimensional index in row-major order.
func incIndex(idx []int, shape Shape) {
	for d := len(idx) - 1; d >= 0; d-- {
		idx[d]++
		if idx[d] < shape[d] {
			return
		}
		idx[d] = 0
	}
}

// broadcastOffset maps a result index to a linear offset in t, treating
// extent-1 and missing dimensions as stretched.
func (t *Tensor) broadcastOffset(idx []int) int {
	offset := 0
	lead := len(idx) - len(t.shape)
	for i := range t.shape {
		if t.shape[i] != 1 {
			offset += idx[lead+i] * t.stride[i]
		}
	}
	return offset
}

// unary applies an elementwise function. ff handles floating dtypes, fi
// integer dtypes; a nil handler means the dtype is unsupported for op.
func (t *Tensor) unary(op string, ff func(float64) float64, fi func(int64) int64) *Tensor {
	out := newTensor(t.shape, t.dtype)
	n := t.NumElements()
	if t.dtype.IsFloat() {
		if ff == nil {
			panic(fmt.Sprintf("%s: unsupported dtype %s", op, t.dtype))
		}
		for i := 0; i < n; i++ {
			out.store(i, ff(t.load(i)))
		}
		return out
	}
	if fi == nil {
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, t.dtype))
	}
	for i := 0; i < n; i++ {
		out.storeInt(i, fi(t.loadInt(i)))
	}
	return out
}

// binary applies an elementwise function to two tensors with NumPy-style
// broadcasting. Operands must share a dtype.
func (t *Tensor) binary(op string, other *Tensor, ff func(a, b float64) float64, fi func(a, b int64) int64) *Tensor {
	if t.dtype != other.dtype {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", op, t.dtype, other.dtype))
	}
	shape, err := BroadcastShapes(t.shape, other.shape)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	out := newTensor(shape, t.dtype)
	n := out.NumElements()
	idx := make([]int, len(shape))

	if t.dtype.IsFloat() {
		if ff == nil {
			panic(fmt.Sprintf("%s: unsupported dtype %s", op, t.dtype))
		}
		for i := 0; i < n; i++ {
			out.store(i, ff(t.load(t.broadcastOffset(idx)), other.load(other.broadcastOffset(idx))))
			incIndex(idx, shape)
		}
		return out
	}
	if fi == nil {
		panic(fmt.Sprintf("%s: unsupported dtype %s", op, t.dtype))
	}
	for i := 0; i < n; i++ {
		out.storeInt(i, fi(t.loadInt(t.broadcastOffset(idx)), other.loadInt(other.broadcastOffset(idx))))
		incIndex(idx, shape)
	}
	return out
}

// Add returns t + alpha*other, elementwise with broadcasting.
func (t *Tensor) Add(other *Tensor, alpha float64) *Tensor {
	return t.binary("add", other,
		func(a, b float64) float64 { return a + alpha*b },
		func(a, b int64) int64 { return a + int64(alpha)*b })
}

// Sub returns t - alpha*other, elementwise with broadcasting.
func (t *Tensor) Sub(other *Tensor, alpha float64) *Tensor {
	return t.binary("sub", other,
		func(a, b float64) float64 { return a - alpha*b },
		func(a, b int64) int64 { return a - int64(alpha)*b })
}

// Mul returns the elementwise product with broadcasting.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.binary("mul", other,
		func(a, b float64) float64 { return a * b },
		func(a, b int64) int64 { return a * b })
}

// Div returns the elementwise quotient with broadcasting. Integer division
// truncates; float division by zero produces Inf/NaN, which is not checked.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return t.binary("div", other,
		func(a, b float64) float64 { return a / b },
		func(a, b int64) int64 { return a / b })
}

// Neg returns the elementwise negation.
func (t *Tensor) Neg() *Tensor {
	return t.unary("neg",
		func(x float64) float64 { return -x },
		func(x int64) int64 { return -x })
}

// Reciprocal returns 1/x elementwise. Zero entries produce Inf.
func (t *Tensor) Reciprocal() *Tensor {
	return t.unary("reciprocal", func(x float64) float64 { return 1 / x }, nil)
}

// Pow raises t to the elementwise power given by other.
func (t *Tensor) Pow(other *Tensor) *Tensor {
	return t.binary("pow", other, math.Pow, func(a, b int64) int64 {
		return int64(math.Pow(float64(a), float64(b)))
	})
}

// Sqrt returns the elementwise square root. Negative entries produce NaN.
func (t *Tensor) Sqrt() *Tensor {
	return t.unary("sqrt", math.Sqrt, nil)
}

// AddScalar returns t + alpha*s, elementwise.
func (t *Tensor) AddScalar(s, alpha float64) *Tensor {
	return t.unary("add",
		func(x float64) float64 { return x + alpha*s },
		func(x int64) int64 { return x + int64(alpha*s) })
}

// SubScalar returns t - alpha*s, elementwise.
func (t *Tensor) SubScalar(s, alpha float64) *Tensor {
	return t.AddScalar(s, -alpha)
}

// MulScalar returns t*s, elementwise.
func (t *Tensor) MulScalar(s float64) *Tensor {
	return t.unary("mul",
		func(x float64) float64 { return x * s },
		func(x int64) int64 { return x * int64(s) })
}

// DivScalar returns t/s, elementwise.
func (t *Tensor) DivScalar(s float64) *Tensor {
	return t.unary("div",
		func(x float64) float64 { return x / s },
		func(x int64) int64 { return x / int64(s) })
}
