// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// Numeric is the capability set the storage core and linear algebra require
// of an entry type. T is expected to be a pointerlike handle: holding a T in
// two blocks shares the underlying array.
//
// Add and Sub take an alpha scale applied to the second operand
// (input + alpha*other). Unsqueeze inserts a unit axis and must return a
// view over the same data; it drives rank broadcasting during block
// multiplication.
type Numeric[T any] interface {
	Add(other T, alpha float64) T
	Sub(other T, alpha float64) T
	Mul(other T) T
	Div(other T) T
	Neg() T
	Reciprocal() T
	Pow(other T) T
	Sqrt() T
	Equal(other T) bool
	Rank() int
	Unsqueeze(axis int) T
}

// Elementwise extends Numeric with the full pointwise function family
// lifted entrywise by this package. Only the operator library requires it;
// the storage core and linear algebra keep the minimal Numeric contract.
type Elementwise[T any] interface {
	Numeric[T]

	Abs() T
	Acos() T
	Acosh() T
	Angle() T
	Asin() T
	Asinh() T
	Atan() T
	Atanh() T
	BitwiseNot() T
	Ceil() T
	ConjPhysical() T
	Cos() T
	Cosh() T
	Deg2Rad() T
	Digamma() T
	Erf() T
	Erfc() T
	Erfinv() T
	Exp() T
	Exp2() T
	Expm1() T
	Floor() T
	Frac() T
	Lgamma() T
	Log() T
	Log10() T
	Log1p() T
	Log2() T
	LogicalNot() T
	Positive() T
	Rad2Deg() T
	Real() T
	Round() T
	Rsqrt() T
	Sigmoid() T
	Sign() T
	Sgn() T
	Signbit() T
	Sin() T
	Sinc() T
	Sinh() T
	Square() T
	Tan() T
	Tanh() T
	Trunc() T

	Atan2(other T) T
	BitwiseAnd(other T) T
	BitwiseOr(other T) T
	BitwiseXor(other T) T
	BitwiseLeftShift(other T) T
	BitwiseRightShift(other T) T
	Copysign(other T) T
	FloatPower(other T) T
	Fmod(other T) T
	Hypot(other T) T
	Igamma(other T) T
	Igammac(other T) T
	Ldexp(other T) T
	Logaddexp(other T) T
	Logaddexp2(other T) T
	LogicalAnd(other T) T
	LogicalOr(other T) T
	LogicalXor(other T) T
	Nextafter(other T) T
	Remainder(other T) T
	Xlogy(other T) T

	AddScalar(s, alpha float64) T
	SubScalar(s, alpha float64) T
	MulScalar(s float64) T
	DivScalar(s float64) T
	Clamp(min, max float64) T
	Addcdiv(t1, t2 T, value float64) T
	Addcmul(t1, t2 T, value float64) T
}
