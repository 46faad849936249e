// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosaic-ml/mosaic/tensor"
)

// mat builds a matrix of 0-d entries from plain values, row-major.
func mat(rows, cols int, vals ...float64) Matrix[*tensor.Tensor] {
	entries := make([]*tensor.Tensor, len(vals))
	for i, v := range vals {
		entries[i] = entry(v)
	}
	return NewMatrix(rows, cols, entries...)
}

// ident builds an identity matrix of 0-d entries.
func ident(n int) Matrix[*tensor.Tensor] {
	m := NewMatrix[*tensor.Tensor](n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r == c {
				m.Set(r, c, entry(1))
			} else {
				m.Set(r, c, entry(0))
			}
		}
	}
	return m
}

// assertMatrixApprox checks every entry value against want (row-major).
func assertMatrixApprox(t *testing.T, want []float64, m Matrix[*tensor.Tensor]) {
	t.Helper()
	require.Len(t, want, m.NumEntries())
	for i, w := range want {
		assert.InDelta(t, w, m.Entry(i).Item(), 1e-9, "entry %d", i)
	}
}

// TestMatrix_Transpose tests aliasing and the round trip.
func TestMatrix_Transpose(t *testing.T) {
	m := mat(2, 3, 1, 2, 3, 4, 5, 6)
	mt := m.T()

	assert.Equal(t, 3, mt.Rows())
	assert.Equal(t, 2, mt.Cols())
	assert.Equal(t, 4.0, mt.At(0, 1).Item())
	assert.True(t, m.Equal(mt.T()))

	// The transpose holds the same handles: writing into an entry array
	// through one side is visible through the other.
	m.At(0, 2).SetAt(9)
	assert.Equal(t, 9.0, mt.At(2, 0).Item())
}

// TestMatrix_Det tests the closed-form determinants per size.
func TestMatrix_Det(t *testing.T) {
	assert.InDelta(t, 7, mat(1, 1, 7).Det().Item(), 1e-9)
	assert.InDelta(t, -2, mat(2, 2, 1, 2, 3, 4).Det().Item(), 1e-9)
	assert.InDelta(t, 25, mat(3, 3,
		2, 0, 1,
		1, 3, 0,
		0, 1, 4).Det().Item(), 1e-9)
	// Block diagonal: det is the product of the block determinants.
	assert.InDelta(t, -6, mat(4, 4,
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 2, 1,
		0, 0, 1, 2).Det().Item(), 1e-9)
}

// TestMatrix_DetIdentity tests det(I) = 1 for every supported size.
func TestMatrix_DetIdentity(t *testing.T) {
	for n := 1; n <= 4; n++ {
		assert.InDelta(t, 1, ident(n).Det().Item(), 1e-9, "size %d", n)
	}
}

// TestMatrix_DetFailureModes tests the shape and size contracts.
func TestMatrix_DetFailureModes(t *testing.T) {
	assert.PanicsWithValue(t, ErrShape, func() {
		NewMatrix[*tensor.Tensor](2, 3).Det()
	})
	assert.PanicsWithValue(t, ErrUnsupportedDim, func() {
		NewMatrix[*tensor.Tensor](5, 5).Det()
	})
	assert.PanicsWithValue(t, ErrUnsupportedDim, func() {
		NewMatrix[*tensor.Tensor](5, 5).Inv()
	})
	assert.PanicsWithValue(t, ErrUnsupportedDim, func() {
		NewMatrix[*tensor.Tensor](5, 5).Trace()
	})
}

// TestMatrix_Inv2x2 tests the concrete adjugate values.
func TestMatrix_Inv2x2(t *testing.T) {
	inv := mat(2, 2, 1, 2, 3, 4).Inv()
	assertMatrixApprox(t, []float64{-2, 1, 1.5, -0.5}, inv)
}

// TestMatrix_InvTimesOriginal tests A·A⁻¹ ≈ I for sizes 1 through 4.
func TestMatrix_InvTimesOriginal(t *testing.T) {
	cases := []Matrix[*tensor.Tensor]{
		mat(1, 1, 2),
		mat(2, 2, 1, 2, 3, 4),
		mat(3, 3,
			2, 0, 1,
			1, 3, 0,
			0, 1, 4),
		mat(4, 4,
			4, 1, 0, 0,
			1, 4, 1, 0,
			0, 1, 4, 1,
			0, 0, 1, 4),
	}

	for _, a := range cases {
		n := a.Rows()
		p := MatMul(a, a.Inv())
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				want := 0.0
				if r == c {
					want = 1
				}
				assert.InDelta(t, want, p.At(r, c).Item(), 1e-9, "size %d (%d,%d)", n, r, c)
			}
		}
	}
}

// TestMatrix_ScaledIdentity tests a 2x2 diagonal case end to end.
func TestMatrix_ScaledIdentity(t *testing.T) {
	a := mat(2, 2, 2, 0, 0, 2)
	assert.InDelta(t, 4, a.Det().Item(), 1e-9)
	assert.InDelta(t, 4, a.Trace().At(0, 0).Item(), 1e-9)
	assertMatrixApprox(t, []float64{0.5, 0, 0, 0.5}, a.Inv())
}

// TestMatrix_InvT tests that InvT equals the transposed inverse.
func TestMatrix_InvT(t *testing.T) {
	a := mat(3, 3,
		2, 0, 1,
		1, 3, 0,
		0, 1, 4)

	invT := a.InvT()
	viaTranspose := a.Inv().T()
	for i := 0; i < a.NumEntries(); i++ {
		assert.InDelta(t, viaTranspose.Entry(i).Item(), invT.Entry(i).Item(), 1e-9)
	}
}

// TestMatrix_Inv1x1 tests the reciprocal shortcut.
func TestMatrix_Inv1x1(t *testing.T) {
	assertMatrixApprox(t, []float64{0.25}, mat(1, 1, 4).Inv())
	assertMatrixApprox(t, []float64{0.25}, mat(1, 1, 4).InvT())
}

// TestMatrix_GInvRectangular tests the left pseudo-inverse of a column.
func TestMatrix_GInvRectangular(t *testing.T) {
	a := mat(3, 1, 1, 0, 1)

	ginv := a.GInv()
	assert.Equal(t, 1, ginv.Rows())
	assert.Equal(t, 3, ginv.Cols())
	assertMatrixApprox(t, []float64{0.5, 0, 0.5}, ginv)

	// Left inverse: GInv·A = I.
	p := MatMul(ginv, a)
	assert.InDelta(t, 1, p.At(0, 0).Item(), 1e-9)

	// GInvT is the transpose of GInv.
	ginvT := a.GInvT()
	assert.Equal(t, 3, ginvT.Rows())
	assertMatrixApprox(t, []float64{0.5, 0, 0.5}, ginvT.T())
}

// TestMatrix_GInvSquare tests that square inputs reduce to Inv.
func TestMatrix_GInvSquare(t *testing.T) {
	a := mat(2, 2, 1, 2, 3, 4)
	assertMatrixApprox(t, []float64{-2, 1, 1.5, -0.5}, a.GInv())
}

// TestMatrix_Trace tests the diagonal sum and the 1x1 aliasing shortcut.
func TestMatrix_Trace(t *testing.T) {
	tr := mat(2, 2, 1, 2, 3, 4).Trace()
	assert.Equal(t, 1, tr.Rows())
	assert.Equal(t, 1, tr.Cols())
	assert.InDelta(t, 5, tr.At(0, 0).Item(), 1e-9)

	e := entry(3)
	single := NewMatrix(1, 1, e)
	assert.Same(t, e, single.Trace().At(0, 0))
}

// TestNorm tests the Frobenius norm over vectors and matrices.
func TestNorm(t *testing.T) {
	v := NewVector(2, entry(3), entry(4))
	assert.InDelta(t, 5, Norm(v).Item(), 1e-9)

	m := mat(2, 2, 1, 1, 1, 1)
	assert.InDelta(t, 2, Norm(m).Item(), 1e-9)
}

// TestDot tests the entrywise inner product and its shape contract.
func TestDot(t *testing.T) {
	a := NewVector(2, entry(1), entry(2))
	b := NewVector(2, entry(3), entry(4))
	assert.InDelta(t, 11, Dot(a, b).Item(), 1e-9)

	short := NewVector(1, entry(1))
	assert.PanicsWithValue(t, ErrShape, func() { Dot(a, short) })
}

// TestNormalize tests scaling to unit norm.
func TestNormalize(t *testing.T) {
	v := NewVector(2, entry(3), entry(4))
	u := Normalize(v)
	assert.InDelta(t, 0.6, u.At(0).Item(), 1e-9)
	assert.InDelta(t, 0.8, u.At(1).Item(), 1e-9)
	assert.InDelta(t, 1, Norm(u).Item(), 1e-9)
}

// TestMatrix_DetBatchEntries tests that the closed forms are elementwise
// over entry arrays: one call computes the determinant at every sample.
func TestMatrix_DetBatchEntries(t *testing.T) {
	// Two samples: [[1,2],[3,4]] and [[2,0],[0,2]].
	a := NewMatrix(2, 2,
		batch(t, 1, 2),
		batch(t, 2, 0),
		batch(t, 3, 0),
		batch(t, 4, 2))

	det := a.Det()
	assert.InDelta(t, -2, det.At(0), 1e-9)
	assert.InDelta(t, 4, det.At(1), 1e-9)

	inv := a.Inv()
	assert.InDelta(t, -2, inv.At(0, 0).At(0), 1e-9)
	assert.InDelta(t, 0.5, inv.At(0, 0).At(1), 1e-9)
}

// TestMatrix_SingularPropagates tests that degeneracy is not checked.
func TestMatrix_SingularPropagates(t *testing.T) {
	singular := mat(2, 2, 1, 2, 2, 4)
	inv := singular.Inv()
	for i := 0; i < 4; i++ {
		v := inv.Entry(i).Item()
		assert.True(t, math.IsInf(v, 0) || math.IsNaN(v), "entry %d = %v", i, v)
	}
}
