// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "testing"

func TestBitwiseOps(t *testing.T) {
	a, _ := FromSlice([]int64{0b1100}, Shape{1})
	b, _ := FromSlice([]int64{0b1010}, Shape{1})

	assertEqualFloat(t, 0b1000, a.BitwiseAnd(b).At(0), "and")
	assertEqualFloat(t, 0b1110, a.BitwiseOr(b).At(0), "or")
	assertEqualFloat(t, 0b0110, a.BitwiseXor(b).At(0), "xor")
	assertEqualFloat(t, -0b1101, a.BitwiseNot().At(0), "not")
}

func TestBitwiseShifts(t *testing.T) {
	a, _ := FromSlice([]int32{3, -8}, Shape{2})
	n, _ := FromSlice([]int32{2, 1}, Shape{2})

	assertEqualFloat(t, 12, a.BitwiseLeftShift(n).At(0), "left shift")
	assertEqualFloat(t, -4, a.BitwiseRightShift(n).At(1), "arithmetic right shift")
}

func TestBitwiseFloatPanics(t *testing.T) {
	a := fromFloat64(t, []float64{1}, Shape{1})
	assertPanics(t, "bitwise_not on float tensor", func() { a.BitwiseNot() })
	assertPanics(t, "bitwise_and on float tensor", func() { a.BitwiseAnd(a) })
}
