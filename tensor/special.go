// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "gonum.org/v1/gonum/mathext"

// Special functions backed by gonum's mathext package.

// Digamma returns the logarithmic derivative of the gamma function,
// elementwise.
func (t *Tensor) Digamma() *Tensor {
	return t.unary("digamma", mathext.Digamma, nil)
}

// Igamma returns the regularized lower incomplete gamma function P(t, other),
// elementwise.
func (t *Tensor) Igamma(other *Tensor) *Tensor {
	return t.binary("igamma", other, mathext.GammaIncReg, nil)
}

// Igammac returns the regularized upper incomplete gamma function Q(t, other),
// elementwise.
func (t *Tensor) Igammac(other *Tensor) *Tensor {
	return t.binary("igammac", other, mathext.GammaIncRegComp, nil)
}
