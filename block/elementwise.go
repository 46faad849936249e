// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// The entrywise operator family, lifted from the entry type to whole blocks.
// Every function here works on any block kind (Vector, Matrix, Tensor3) and
// returns a block of the same kind and extents with fresh entries; binary
// functions panic with ErrShape when the extents differ. Several operations
// carry a second name matching their conventional math alias (Acos/Arccos,
// Trunc/Fix, ...).

// lift1 applies f to every entry of b.
func lift1[B Grid[T], T Elementwise[T]](b B, f func(T) T) B {
	bb := base[T](b)
	data := make([]T, len(bb.data))
	for i, e := range bb.data {
		data[i] = f(e)
	}
	return B(bb.withData(data))
}

// lift2 applies f to corresponding entries of a and b.
func lift2[B Grid[T], T Elementwise[T]](a, b B, f func(x, y T) T) B {
	ab, bb := base[T](a), base[T](b)
	if !ab.sameShape(bb) {
		panic(ErrShape)
	}
	data := make([]T, len(ab.data))
	for i := range ab.data {
		data[i] = f(ab.data[i], bb.data[i])
	}
	return B(ab.withData(data))
}

// Add computes a + alpha*b entrywise.
func Add[B Grid[T], T Elementwise[T]](a, b B, alpha float64) B {
	return lift2(a, b, func(x, y T) T { return x.Add(y, alpha) })
}

// Sub computes a - alpha*b entrywise.
func Sub[B Grid[T], T Elementwise[T]](a, b B, alpha float64) B {
	return lift2(a, b, func(x, y T) T { return x.Sub(y, alpha) })
}

// Subtract is an alias for Sub.
func Subtract[B Grid[T], T Elementwise[T]](a, b B, alpha float64) B {
	return Sub(a, b, alpha)
}

// Mul computes the entrywise product.
func Mul[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Mul(y) })
}

// Multiply is an alias for Mul.
func Multiply[B Grid[T], T Elementwise[T]](a, b B) B { return Mul(a, b) }

// Div computes the entrywise quotient.
func Div[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Div(y) })
}

// Divide is an alias for Div.
func Divide[B Grid[T], T Elementwise[T]](a, b B) B { return Div(a, b) }

// Pow raises a to the entrywise power b.
func Pow[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Pow(y) })
}

// AddScalar computes b + alpha*s entrywise.
func AddScalar[B Grid[T], T Elementwise[T]](b B, s, alpha float64) B {
	return lift1(b, func(e T) T { return e.AddScalar(s, alpha) })
}

// ScalarAdd is an alias for AddScalar.
func ScalarAdd[B Grid[T], T Elementwise[T]](b B, s, alpha float64) B {
	return AddScalar(b, s, alpha)
}

// SubScalar computes b - alpha*s entrywise.
func SubScalar[B Grid[T], T Elementwise[T]](b B, s, alpha float64) B {
	return lift1(b, func(e T) T { return e.SubScalar(s, alpha) })
}

// ScalarSub is an alias for SubScalar.
func ScalarSub[B Grid[T], T Elementwise[T]](b B, s, alpha float64) B {
	return SubScalar(b, s, alpha)
}

// MulScalar scales every entry by s.
func MulScalar[B Grid[T], T Elementwise[T]](b B, s float64) B {
	return lift1(b, func(e T) T { return e.MulScalar(s) })
}

// DivScalar divides every entry by s.
func DivScalar[B Grid[T], T Elementwise[T]](b B, s float64) B {
	return lift1(b, func(e T) T { return e.DivScalar(s) })
}

// Clamp limits every entry to [min, max].
func Clamp[B Grid[T], T Elementwise[T]](b B, min, max float64) B {
	return lift1(b, func(e T) T { return e.Clamp(min, max) })
}

// Clip is an alias for Clamp.
func Clip[B Grid[T], T Elementwise[T]](b B, min, max float64) B {
	return Clamp(b, min, max)
}

// Addcdiv computes b + value*(t1/t2) entrywise.
func Addcdiv[B Grid[T], T Elementwise[T]](b, t1, t2 B, value float64) B {
	bb, b1, b2 := base[T](b), base[T](t1), base[T](t2)
	if !bb.sameShape(b1) || !bb.sameShape(b2) {
		panic(ErrShape)
	}
	data := make([]T, len(bb.data))
	for i := range bb.data {
		data[i] = bb.data[i].Addcdiv(b1.data[i], b2.data[i], value)
	}
	return B(bb.withData(data))
}

// Addcmul computes b + value*(t1*t2) entrywise.
func Addcmul[B Grid[T], T Elementwise[T]](b, t1, t2 B, value float64) B {
	bb, b1, b2 := base[T](b), base[T](t1), base[T](t2)
	if !bb.sameShape(b1) || !bb.sameShape(b2) {
		panic(ErrShape)
	}
	data := make([]T, len(bb.data))
	for i := range bb.data {
		data[i] = bb.data[i].Addcmul(b1.data[i], b2.data[i], value)
	}
	return B(bb.withData(data))
}

// Abs computes the entrywise absolute value.
func Abs[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Abs() })
}

// Absolute is an alias for Abs.
func Absolute[B Grid[T], T Elementwise[T]](b B) B { return Abs(b) }

// Acos computes the entrywise arccosine.
func Acos[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Acos() })
}

// Arccos is an alias for Acos.
func Arccos[B Grid[T], T Elementwise[T]](b B) B { return Acos(b) }

// Acosh computes the entrywise inverse hyperbolic cosine.
func Acosh[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Acosh() })
}

// Arccosh is an alias for Acosh.
func Arccosh[B Grid[T], T Elementwise[T]](b B) B { return Acosh(b) }

// Angle computes the entrywise argument (0 for non-negative reals, pi for
// negative).
func Angle[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Angle() })
}

// Asin computes the entrywise arcsine.
func Asin[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Asin() })
}

// Arcsin is an alias for Asin.
func Arcsin[B Grid[T], T Elementwise[T]](b B) B { return Asin(b) }

// Asinh computes the entrywise inverse hyperbolic sine.
func Asinh[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Asinh() })
}

// Arcsinh is an alias for Asinh.
func Arcsinh[B Grid[T], T Elementwise[T]](b B) B { return Asinh(b) }

// Atan computes the entrywise arctangent.
func Atan[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Atan() })
}

// Arctan is an alias for Atan.
func Arctan[B Grid[T], T Elementwise[T]](b B) B { return Atan(b) }

// Atanh computes the entrywise inverse hyperbolic tangent.
func Atanh[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Atanh() })
}

// Arctanh is an alias for Atanh.
func Arctanh[B Grid[T], T Elementwise[T]](b B) B { return Atanh(b) }

// BitwiseNot computes the entrywise bitwise NOT (integer entries only).
func BitwiseNot[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.BitwiseNot() })
}

// Ceil rounds every entry up to the nearest integer.
func Ceil[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Ceil() })
}

// ConjPhysical computes the entrywise complex conjugate; for real entries
// this is a copy.
func ConjPhysical[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.ConjPhysical() })
}

// Cos computes the entrywise cosine.
func Cos[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Cos() })
}

// Cosh computes the entrywise hyperbolic cosine.
func Cosh[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Cosh() })
}

// Deg2Rad converts every entry from degrees to radians.
func Deg2Rad[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Deg2Rad() })
}

// Digamma computes the entrywise logarithmic derivative of the gamma
// function.
func Digamma[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Digamma() })
}

// Erf computes the entrywise error function.
func Erf[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Erf() })
}

// Erfc computes the entrywise complementary error function.
func Erfc[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Erfc() })
}

// Erfinv computes the entrywise inverse error function.
func Erfinv[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Erfinv() })
}

// Exp computes the entrywise natural exponential.
func Exp[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Exp() })
}

// Exp2 computes the entrywise base-2 exponential.
func Exp2[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Exp2() })
}

// Expm1 computes exp(x)-1 entrywise, accurate near zero.
func Expm1[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Expm1() })
}

// Floor rounds every entry down to the nearest integer.
func Floor[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Floor() })
}

// Frac computes the entrywise fractional part.
func Frac[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Frac() })
}

// Lgamma computes the entrywise log of the absolute gamma function.
func Lgamma[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Lgamma() })
}

// Log computes the entrywise natural logarithm.
func Log[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Log() })
}

// Log10 computes the entrywise base-10 logarithm.
func Log10[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Log10() })
}

// Log1p computes log(1+x) entrywise, accurate near zero.
func Log1p[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Log1p() })
}

// Log2 computes the entrywise base-2 logarithm.
func Log2[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Log2() })
}

// LogicalNot computes the entrywise logical NOT (1 where zero, else 0).
func LogicalNot[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.LogicalNot() })
}

// Neg negates every entry.
func Neg[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Neg() })
}

// Negative is an alias for Neg.
func Negative[B Grid[T], T Elementwise[T]](b B) B { return Neg(b) }

// Positive returns every entry unchanged, as a fresh copy.
func Positive[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Positive() })
}

// Rad2Deg converts every entry from radians to degrees.
func Rad2Deg[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Rad2Deg() })
}

// Real returns the entrywise real part; for real entries this is a copy.
func Real[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Real() })
}

// Reciprocal computes 1/x entrywise.
func Reciprocal[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Reciprocal() })
}

// Round rounds every entry to the nearest integer, ties to even.
func Round[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Round() })
}

// Rsqrt computes the entrywise reciprocal square root.
func Rsqrt[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Rsqrt() })
}

// Sigmoid computes the entrywise logistic function.
func Sigmoid[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sigmoid() })
}

// Expit is an alias for Sigmoid.
func Expit[B Grid[T], T Elementwise[T]](b B) B { return Sigmoid(b) }

// Sign computes the entrywise sign (-1, 0, or 1).
func Sign[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sign() })
}

// Sgn is an alias for Sign on real entries.
func Sgn[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sgn() })
}

// Signbit reports the entrywise sign bit as 0/1.
func Signbit[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Signbit() })
}

// Sin computes the entrywise sine.
func Sin[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sin() })
}

// Sinc computes the entrywise normalized sinc, sin(pi*x)/(pi*x).
func Sinc[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sinc() })
}

// Sinh computes the entrywise hyperbolic sine.
func Sinh[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sinh() })
}

// Sqrt computes the entrywise square root.
func Sqrt[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Sqrt() })
}

// Square computes the entrywise square.
func Square[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Square() })
}

// Tan computes the entrywise tangent.
func Tan[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Tan() })
}

// Tanh computes the entrywise hyperbolic tangent.
func Tanh[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Tanh() })
}

// Trunc truncates every entry toward zero.
func Trunc[B Grid[T], T Elementwise[T]](b B) B {
	return lift1(b, func(e T) T { return e.Trunc() })
}

// Fix is an alias for Trunc.
func Fix[B Grid[T], T Elementwise[T]](b B) B { return Trunc(b) }

// Atan2 computes the entrywise two-argument arctangent atan2(a, b).
func Atan2[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Atan2(y) })
}

// Arctan2 is an alias for Atan2.
func Arctan2[B Grid[T], T Elementwise[T]](a, b B) B { return Atan2(a, b) }

// BitwiseAnd computes the entrywise bitwise AND (integer entries only).
func BitwiseAnd[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.BitwiseAnd(y) })
}

// BitwiseOr computes the entrywise bitwise OR (integer entries only).
func BitwiseOr[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.BitwiseOr(y) })
}

// BitwiseXor computes the entrywise bitwise XOR (integer entries only).
func BitwiseXor[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.BitwiseXor(y) })
}

// BitwiseLeftShift shifts a left entrywise by b bits (integer entries only).
func BitwiseLeftShift[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.BitwiseLeftShift(y) })
}

// BitwiseRightShift shifts a right entrywise by b bits (integer entries
// only).
func BitwiseRightShift[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.BitwiseRightShift(y) })
}

// Copysign returns entries with a's magnitude and b's sign.
func Copysign[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Copysign(y) })
}

// FloatPower raises a to the power b entrywise in double precision.
func FloatPower[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.FloatPower(y) })
}

// Fmod computes the entrywise floating-point remainder with a's sign.
func Fmod[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Fmod(y) })
}

// Hypot computes sqrt(a²+b²) entrywise without undue overflow.
func Hypot[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Hypot(y) })
}

// Igamma computes the entrywise regularized lower incomplete gamma function
// P(a, b).
func Igamma[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Igamma(y) })
}

// Gammainc is an alias for Igamma.
func Gammainc[B Grid[T], T Elementwise[T]](a, b B) B { return Igamma(a, b) }

// Igammac computes the entrywise regularized upper incomplete gamma
// function Q(a, b).
func Igammac[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Igammac(y) })
}

// Gammaincc is an alias for Igammac.
func Gammaincc[B Grid[T], T Elementwise[T]](a, b B) B { return Igammac(a, b) }

// Ldexp computes a * 2^b entrywise.
func Ldexp[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Ldexp(y) })
}

// Logaddexp computes log(exp(a)+exp(b)) entrywise.
func Logaddexp[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Logaddexp(y) })
}

// Logaddexp2 computes log2(2^a+2^b) entrywise.
func Logaddexp2[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Logaddexp2(y) })
}

// LogicalAnd computes the entrywise logical AND as 0/1.
func LogicalAnd[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.LogicalAnd(y) })
}

// LogicalOr computes the entrywise logical OR as 0/1.
func LogicalOr[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.LogicalOr(y) })
}

// LogicalXor computes the entrywise logical XOR as 0/1.
func LogicalXor[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.LogicalXor(y) })
}

// Nextafter returns the next representable value after a toward b,
// entrywise.
func Nextafter[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Nextafter(y) })
}

// Remainder computes the entrywise IEEE 754 remainder.
func Remainder[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Remainder(y) })
}

// Xlogy computes a*log(b) entrywise, with the convention 0*log(0) = 0.
func Xlogy[B Grid[T], T Elementwise[T]](a, b B) B {
	return lift2(a, b, func(x, y T) T { return x.Xlogy(y) })
}
