// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package geometry derives differential-geometric quantities of a
// parametric map from sampled partial derivatives.
//
// A map x(ξ) from parDim parameters into geoDim coordinates, evaluated at a
// batch of points, yields geoDim*parDim sample arrays ∂xᵢ/∂ξⱼ. Jacobian
// packs them into a block matrix; Metric, VolumeForm, and JacobianInverse
// compute the first fundamental form JᵀJ, the integration weight
// sqrt(det JᵀJ), and the (pseudo-)inverse used to pull gradients back to
// physical space. All entry arithmetic is elementwise over the sample batch,
// so one call handles every evaluation point at once.
package geometry

import (
	"github.com/mosaic-ml/mosaic/block"
	"github.com/mosaic-ml/mosaic/tensor"
)

// Jacobian assembles the geoDim-by-parDim Jacobian block matrix from partial
// derivative samples given row-major: derivs[parDim*i+j] holds ∂xᵢ/∂ξⱼ.
// The entry count must match, and parDim must not exceed geoDim (the map may
// embed a lower-dimensional parameter domain, never flatten a higher one);
// violations panic with block.ErrShape.
func Jacobian(geoDim, parDim int, derivs ...*tensor.Tensor) block.Matrix[*tensor.Tensor] {
	if parDim > geoDim {
		panic(block.ErrShape)
	}
	return block.NewMatrix(geoDim, parDim, derivs...)
}

// Metric computes the first fundamental form JᵀJ, a parDim-by-parDim block
// matrix. For a square Jacobian its determinant is (det J)².
func Metric(j block.Matrix[*tensor.Tensor]) block.Matrix[*tensor.Tensor] {
	return block.MatMul(j.T(), j)
}

// VolumeForm computes sqrt(det JᵀJ), the integration weight of the map. For
// a square Jacobian this equals |det J|.
func VolumeForm(j block.Matrix[*tensor.Tensor]) *tensor.Tensor {
	return Metric(j).Det().Sqrt()
}

// JacobianInverse computes the inverse of a square Jacobian or the
// Moore-Penrose pseudo-inverse of a rectangular one, the parDim-by-geoDim
// block used to transform parametric gradients into physical ones.
func JacobianInverse(j block.Matrix[*tensor.Tensor]) block.Matrix[*tensor.Tensor] {
	return j.GInv()
}
