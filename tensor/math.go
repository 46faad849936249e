// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"fmt"
	"math"
)

// The pointwise function family. Each method returns a new tensor of the
// same shape; trig/exp/log-family functions are defined for floating dtypes
// only and panic on integer tensors.

// Abs returns the elementwise absolute value.
func (t *Tensor) Abs() *Tensor {
	return t.unary("abs", math.Abs, func(x int64) int64 {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Acos returns the elementwise inverse cosine.
func (t *Tensor) Acos() *Tensor { return t.unary("acos", math.Acos, nil) }

// Acosh returns the elementwise inverse hyperbolic cosine.
func (t *Tensor) Acosh() *Tensor { return t.unary("acosh", math.Acosh, nil) }

// Angle returns the elementwise angle in radians: pi for negative entries,
// zero otherwise.
func (t *Tensor) Angle() *Tensor {
	return t.unary("angle", func(x float64) float64 {
		if x < 0 {
			return math.Pi
		}
		return 0
	}, func(x int64) int64 {
		if x < 0 {
			return 3 // truncated pi, matching integer dtype semantics
		}
		return 0
	})
}

// Asin returns the elementwise arcsine.
func (t *Tensor) Asin() *Tensor { return t.unary("asin", math.Asin, nil) }

// Asinh returns the elementwise inverse hyperbolic sine.
func (t *Tensor) Asinh() *Tensor { return t.unary("asinh", math.Asinh, nil) }

// Atan returns the elementwise arctangent.
func (t *Tensor) Atan() *Tensor { return t.unary("atan", math.Atan, nil) }

// Atanh returns the elementwise inverse hyperbolic tangent.
func (t *Tensor) Atanh() *Tensor { return t.unary("atanh", math.Atanh, nil) }

// Atan2 returns the elementwise quadrant-aware arctangent of t/other.
func (t *Tensor) Atan2(other *Tensor) *Tensor {
	return t.binary("atan2", other, math.Atan2, nil)
}

// Ceil returns the smallest integer greater than or equal to each element.
func (t *Tensor) Ceil() *Tensor { return t.unary("ceil", math.Ceil, nil) }

// Clamp limits every element into the range [min, max].
func (t *Tensor) Clamp(min, max float64) *Tensor {
	return t.unary("clamp",
		func(x float64) float64 { return math.Min(math.Max(x, min), max) },
		func(x int64) int64 {
			lo, hi := int64(min), int64(max)
			if x < lo {
				return lo
			}
			if x > hi {
				return hi
			}
			return x
		})
}

// ConjPhysical returns the elementwise complex conjugate; for real tensors
// this is a copy.
func (t *Tensor) ConjPhysical() *Tensor { return t.Clone() }

// Copysign returns elements with the magnitude of t and the sign of other.
func (t *Tensor) Copysign(other *Tensor) *Tensor {
	return t.binary("copysign", other, math.Copysign, nil)
}

// Cos returns the elementwise cosine.
func (t *Tensor) Cos() *Tensor { return t.unary("cos", math.Cos, nil) }

// Cosh returns the elementwise hyperbolic cosine.
func (t *Tensor) Cosh() *Tensor { return t.unary("cosh", math.Cosh, nil) }

// Deg2Rad converts elementwise from degrees to radians.
func (t *Tensor) Deg2Rad() *Tensor {
	return t.unary("deg2rad", func(x float64) float64 { return x * math.Pi / 180 }, nil)
}

// Erf returns the elementwise error function.
func (t *Tensor) Erf() *Tensor { return t.unary("erf", math.Erf, nil) }

// Erfc returns the elementwise complementary error function.
func (t *Tensor) Erfc() *Tensor { return t.unary("erfc", math.Erfc, nil) }

// Erfinv returns the elementwise inverse error function.
func (t *Tensor) Erfinv() *Tensor { return t.unary("erfinv", math.Erfinv, nil) }

// Exp returns the elementwise exponential.
func (t *Tensor) Exp() *Tensor { return t.unary("exp", math.Exp, nil) }

// Exp2 returns the elementwise base-2 exponential.
func (t *Tensor) Exp2() *Tensor { return t.unary("exp2", math.Exp2, nil) }

// Expm1 returns exp(x)-1 elementwise, accurate near zero.
func (t *Tensor) Expm1() *Tensor { return t.unary("expm1", math.Expm1, nil) }

// FloatPower raises t to the elementwise power of other in double
// precision; the result dtype is always Float64.
func (t *Tensor) FloatPower(other *Tensor) *Tensor {
	shape, err := BroadcastShapes(t.shape, other.shape)
	if err != nil {
		panic(fmt.Sprintf("float_power: %v", err))
	}
	out := newTensor(shape, Float64)
	idx := make([]int, len(shape))
	for i := 0; i < out.NumElements(); i++ {
		out.store(i, math.Pow(t.load(t.broadcastOffset(idx)), other.load(other.broadcastOffset(idx))))
		incIndex(idx, shape)
	}
	return out
}

// Floor returns the largest integer less than or equal to each element.
func (t *Tensor) Floor() *Tensor { return t.unary("floor", math.Floor, nil) }

// Fmod returns the elementwise remainder of division, with the sign of t.
func (t *Tensor) Fmod(other *Tensor) *Tensor {
	return t.binary("fmod", other, math.Mod, func(a, b int64) int64 { return a % b })
}

// Frac returns the fractional portion of each element.
func (t *Tensor) Frac() *Tensor {
	return t.unary("frac", func(x float64) float64 { return x - math.Trunc(x) }, nil)
}

// Hypot returns sqrt(t^2 + other^2) elementwise without undue overflow.
func (t *Tensor) Hypot(other *Tensor) *Tensor {
	return t.binary("hypot", other, math.Hypot, nil)
}

// Ldexp multiplies t elementwise by 2**other.
func (t *Tensor) Ldexp(other *Tensor) *Tensor {
	return t.binary("ldexp", other, func(a, b float64) float64 {
		return math.Ldexp(a, int(b))
	}, nil)
}

// Lgamma returns the natural logarithm of the absolute value of the gamma
// function, elementwise.
func (t *Tensor) Lgamma() *Tensor {
	return t.unary("lgamma", func(x float64) float64 {
		v, _ := math.Lgamma(x)
		return v
	}, nil)
}

// Log returns the elementwise natural logarithm.
func (t *Tensor) Log() *Tensor { return t.unary("log", math.Log, nil) }

// Log10 returns the elementwise base-10 logarithm.
func (t *Tensor) Log10() *Tensor { return t.unary("log10", math.Log10, nil) }

// Log1p returns log(1+x) elementwise, accurate near zero.
func (t *Tensor) Log1p() *Tensor { return t.unary("log1p", math.Log1p, nil) }

// Log2 returns the elementwise base-2 logarithm.
func (t *Tensor) Log2() *Tensor { return t.unary("log2", math.Log2, nil) }

// Logaddexp returns log(exp(t)+exp(other)) elementwise, computed stably.
func (t *Tensor) Logaddexp(other *Tensor) *Tensor {
	return t.binary("logaddexp", other, func(a, b float64) float64 {
		if a == b {
			return a + math.Ln2
		}
		m := math.Max(a, b)
		return m + math.Log1p(math.Exp(-math.Abs(a-b)))
	}, nil)
}

// Logaddexp2 returns log2(2^t + 2^other) elementwise, computed stably.
func (t *Tensor) Logaddexp2(other *Tensor) *Tensor {
	return t.binary("logaddexp2", other, func(a, b float64) float64 {
		if a == b {
			return a + 1
		}
		m := math.Max(a, b)
		return m + math.Log2(1+math.Exp2(-math.Abs(a-b)))
	}, nil)
}

// LogicalAnd returns 1 where both operands are non-zero, 0 elsewhere.
func (t *Tensor) LogicalAnd(other *Tensor) *Tensor {
	return t.binary("logical_and", other,
		func(a, b float64) float64 { return b2f(a != 0 && b != 0) },
		func(a, b int64) int64 { return b2i(a != 0 && b != 0) })
}

// LogicalNot returns 1 where the operand is zero, 0 elsewhere.
func (t *Tensor) LogicalNot() *Tensor {
	return t.unary("logical_not",
		func(x float64) float64 { return b2f(x == 0) },
		func(x int64) int64 { return b2i(x == 0) })
}

// LogicalOr returns 1 where either operand is non-zero, 0 elsewhere.
func (t *Tensor) LogicalOr(other *Tensor) *Tensor {
	return t.binary("logical_or", other,
		func(a, b float64) float64 { return b2f(a != 0 || b != 0) },
		func(a, b int64) int64 { return b2i(a != 0 || b != 0) })
}

// LogicalXor returns 1 where exactly one operand is non-zero, 0 elsewhere.
func (t *Tensor) LogicalXor(other *Tensor) *Tensor {
	return t.binary("logical_xor", other,
		func(a, b float64) float64 { return b2f((a != 0) != (b != 0)) },
		func(a, b int64) int64 { return b2i((a != 0) != (b != 0)) })
}

// Nextafter returns the next representable value after t towards other.
func (t *Tensor) Nextafter(other *Tensor) *Tensor {
	return t.binary("nextafter", other, math.Nextafter, nil)
}

// Positive returns a copy of the tensor.
func (t *Tensor) Positive() *Tensor { return t.Clone() }

// Rad2Deg converts elementwise from radians to degrees.
func (t *Tensor) Rad2Deg() *Tensor {
	return t.unary("rad2deg", func(x float64) float64 { return x * 180 / math.Pi }, nil)
}

// Real returns the real part of each element; for real tensors a copy.
func (t *Tensor) Real() *Tensor { return t.Clone() }

// Remainder returns t - other*floor(t/other) elementwise, with the sign of
// the divisor.
func (t *Tensor) Remainder(other *Tensor) *Tensor {
	return t.binary("remainder", other, func(a, b float64) float64 {
		return a - b*math.Floor(a/b)
	}, func(a, b int64) int64 {
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r
	})
}

// Round rounds each element to the nearest integer, ties to even.
func (t *Tensor) Round() *Tensor { return t.unary("round", math.RoundToEven, nil) }

// Rsqrt returns the elementwise reciprocal square root.
func (t *Tensor) Rsqrt() *Tensor {
	return t.unary("rsqrt", func(x float64) float64 { return 1 / math.Sqrt(x) }, nil)
}

// Sigmoid returns the elementwise logistic function 1/(1+exp(-x)).
func (t *Tensor) Sigmoid() *Tensor {
	return t.unary("sigmoid", func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, nil)
}

// Sign returns the elementwise sign: -1, 0, or 1.
func (t *Tensor) Sign() *Tensor {
	return t.unary("sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return x
		}
	}, func(x int64) int64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	})
}

// Sgn is the extension of Sign to complex values; for real tensors it is
// identical to Sign.
func (t *Tensor) Sgn() *Tensor { return t.Sign() }

// Signbit returns 1 where the sign bit is set, 0 elsewhere.
func (t *Tensor) Signbit() *Tensor {
	return t.unary("signbit",
		func(x float64) float64 { return b2f(math.Signbit(x)) },
		func(x int64) int64 { return b2i(x < 0) })
}

// Sin returns the elementwise sine.
func (t *Tensor) Sin() *Tensor { return t.unary("sin", math.Sin, nil) }

// Sinc returns the normalized sinc sin(pi*x)/(pi*x), with Sinc(0) = 1.
func (t *Tensor) Sinc() *Tensor {
	return t.unary("sinc", func(x float64) float64 {
		if x == 0 {
			return 1
		}
		return math.Sin(math.Pi*x) / (math.Pi * x)
	}, nil)
}

// Sinh returns the elementwise hyperbolic sine.
func (t *Tensor) Sinh() *Tensor { return t.unary("sinh", math.Sinh, nil) }

// Square returns the elementwise square.
func (t *Tensor) Square() *Tensor {
	return t.unary("square",
		func(x float64) float64 { return x * x },
		func(x int64) int64 { return x * x })
}

// Tan returns the elementwise tangent.
func (t *Tensor) Tan() *Tensor { return t.unary("tan", math.Tan, nil) }

// Tanh returns the elementwise hyperbolic tangent.
func (t *Tensor) Tanh() *Tensor { return t.unary("tanh", math.Tanh, nil) }

// Trunc returns the truncated integer value of each element.
func (t *Tensor) Trunc() *Tensor { return t.unary("trunc", math.Trunc, nil) }

// Xlogy returns t*log(other) elementwise, with the convention 0*log(y) = 0.
func (t *Tensor) Xlogy(other *Tensor) *Tensor {
	return t.binary("xlogy", other, func(a, b float64) float64 {
		if a == 0 {
			return 0
		}
		return a * math.Log(b)
	}, nil)
}

// Addcdiv returns t + value*(t1/t2), elementwise with broadcasting.
func (t *Tensor) Addcdiv(t1, t2 *Tensor, value float64) *Tensor {
	return t.Add(t1.Div(t2), value)
}

// Addcmul returns t + value*(t1*t2), elementwise with broadcasting.
func (t *Tensor) Addcmul(t1, t2 *Tensor, value float64) *Tensor {
	return t.Add(t1.Mul(t2), value)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
