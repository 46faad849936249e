// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

// Bitwise operations, defined for integer dtypes only; floating-point
// tensors panic with "unsupported dtype".

// BitwiseNot returns the elementwise bitwise NOT.
func (t *Tensor) BitwiseNot() *Tensor {
	return t.unary("bitwise_not", nil, func(x int64) int64 { return ^x })
}

// BitwiseAnd returns the elementwise bitwise AND.
func (t *Tensor) BitwiseAnd(other *Tensor) *Tensor {
	return t.binary("bitwise_and", other, nil, func(a, b int64) int64 { return a & b })
}

// BitwiseOr returns the elementwise bitwise OR.
func (t *Tensor) BitwiseOr(other *Tensor) *Tensor {
	return t.binary("bitwise_or", other, nil, func(a, b int64) int64 { return a | b })
}

// BitwiseXor returns the elementwise bitwise XOR.
func (t *Tensor) BitwiseXor(other *Tensor) *Tensor {
	return t.binary("bitwise_xor", other, nil, func(a, b int64) int64 { return a ^ b })
}

// BitwiseLeftShift returns t shifted left elementwise by other bits.
func (t *Tensor) BitwiseLeftShift(other *Tensor) *Tensor {
	return t.binary("bitwise_left_shift", other, nil, func(a, b int64) int64 { return a << uint64(b) })
}

// BitwiseRightShift returns t arithmetically shifted right elementwise by
// other bits.
func (t *Tensor) BitwiseRightShift(other *Tensor) *Tensor {
	return t.binary("bitwise_right_shift", other, nil, func(a, b int64) int64 { return a >> uint64(b) })
}
