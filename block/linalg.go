// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

// Closed-form dense linear algebra on block matrices. Everything here is
// hand-unrolled cofactor expansion; square operations support sizes 1
// through 4 and panic with ErrUnsupportedDim beyond that.

func (m Matrix[T]) mustSquare() int {
	if m.rows != m.cols {
		panic(ErrShape)
	}
	if m.rows > 4 {
		panic(ErrUnsupportedDim)
	}
	return m.rows
}

// det2 computes the determinant of [[a b] [c d]].
func det2[T Numeric[T]](a, b, c, d T) T {
	return a.Mul(d).Sub(b.Mul(c), 1)
}

// det3 computes the determinant of a 3x3 matrix given row-major.
func det3[T Numeric[T]](e []T) T {
	t0 := e[0].Mul(det2(e[4], e[5], e[7], e[8]))
	t1 := e[1].Mul(det2(e[3], e[5], e[6], e[8]))
	t2 := e[2].Mul(det2(e[3], e[4], e[6], e[7]))
	return t0.Sub(t1, 1).Add(t2, 1)
}

// minorDet computes the determinant of the submatrix of m obtained by
// deleting row r and column c. m must be square of size 2 to 4.
func (m Matrix[T]) minorDet(r, c int) T {
	n := m.rows
	sub := make([]T, 0, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		if i == r {
			continue
		}
		for j := 0; j < n; j++ {
			if j == c {
				continue
			}
			sub = append(sub, m.data[n*i+j])
		}
	}
	switch n - 1 {
	case 1:
		return sub[0]
	case 2:
		return det2(sub[0], sub[1], sub[2], sub[3])
	default:
		return det3(sub)
	}
}

// cofactor computes the (r, c) cofactor: the signed minor determinant.
func (m Matrix[T]) cofactor(r, c int) T {
	d := m.minorDet(r, c)
	if (r+c)%2 == 1 {
		d = d.Neg()
	}
	return d
}

// Det computes the determinant. Each entry of the result is the determinant
// of the corresponding pointwise scalar matrix, so the entry arithmetic is
// fully elementwise. Non-square matrices panic with ErrShape; sizes above 4
// panic with ErrUnsupportedDim.
func (m Matrix[T]) Det() T {
	n := m.mustSquare()
	switch n {
	case 1:
		return m.data[0]
	case 2:
		return det2(m.data[0], m.data[1], m.data[2], m.data[3])
	case 3:
		return det3(m.data)
	default:
		d := m.data[0].Mul(m.minorDet(0, 0))
		d = d.Sub(m.data[1].Mul(m.minorDet(0, 1)), 1)
		d = d.Add(m.data[2].Mul(m.minorDet(0, 2)), 1)
		return d.Sub(m.data[3].Mul(m.minorDet(0, 3)), 1)
	}
}

// Inv computes the inverse via the adjugate: entry (r, c) is
// cofactor(c, r) / det. Singularity is not detected; a zero determinant
// yields Inf/NaN entries. Non-square matrices panic with ErrShape; sizes
// above 4 panic with ErrUnsupportedDim.
func (m Matrix[T]) Inv() Matrix[T] {
	n := m.mustSquare()
	if n == 1 {
		return NewMatrix(1, 1, m.data[0].Reciprocal())
	}
	det := m.Det()
	out := NewMatrix[T](n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.data[n*r+c] = m.cofactor(c, r).Div(det)
		}
	}
	return out
}

// InvT computes the transpose of the inverse directly, without forming the
// inverse first: entry (r, c) is cofactor(r, c) / det.
func (m Matrix[T]) InvT() Matrix[T] {
	n := m.mustSquare()
	if n == 1 {
		return NewMatrix(1, 1, m.data[0].Reciprocal())
	}
	det := m.Det()
	out := NewMatrix[T](n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.data[n*r+c] = m.cofactor(r, c).Div(det)
		}
	}
	return out
}

// GInv computes the Moore-Penrose generalized inverse for a full-column-rank
// matrix, inv(AᵀA)·Aᵀ. Square matrices reduce to Inv. The Gram matrix AᵀA
// must be at most 4x4, so at most 4 columns are supported.
func (m Matrix[T]) GInv() Matrix[T] {
	if m.rows == m.cols {
		return m.Inv()
	}
	mt := m.T()
	return MatMul(MatMul(mt, m).Inv(), mt)
}

// GInvT computes the transpose of the generalized inverse, A·invT(AᵀA),
// again without forming GInv itself.
func (m Matrix[T]) GInvT() Matrix[T] {
	if m.rows == m.cols {
		return m.InvT()
	}
	return MatMul(m, MatMul(m.T(), m).InvT())
}

// Trace computes the sum of the diagonal entries, returned as a 1x1 block.
// For a 1x1 matrix the result aliases the single entry.
func (m Matrix[T]) Trace() Matrix[T] {
	n := m.mustSquare()
	if n == 1 {
		return NewMatrix(1, 1, m.data[0])
	}
	s := m.data[0]
	for i := 1; i < n; i++ {
		s = s.Add(m.data[n*i+i], 1)
	}
	return NewMatrix(1, 1, s)
}

// Norm computes the Frobenius norm over the block, sqrt of the sum of
// squared entries. The entry arithmetic is elementwise, so the result has
// the shape of a single entry.
func Norm[B Grid[T], T Numeric[T]](b B) T {
	bb := base[T](b)
	s := bb.data[0].Mul(bb.data[0])
	for _, e := range bb.data[1:] {
		s = s.Add(e.Mul(e), 1)
	}
	return s.Sqrt()
}

// Dot computes the sum of entrywise products of two same-shape blocks,
// panicking with ErrShape on mismatched extents.
func Dot[B Grid[T], T Numeric[T]](a, b B) T {
	ab, bb := base[T](a), base[T](b)
	if !ab.sameShape(bb) {
		panic(ErrShape)
	}
	s := ab.data[0].Mul(bb.data[0])
	for i := 1; i < len(ab.data); i++ {
		s = s.Add(ab.data[i].Mul(bb.data[i]), 1)
	}
	return s
}

// Normalize divides every entry by the block's Norm. A zero norm is not
// detected and yields Inf/NaN entries.
func Normalize[B Grid[T], T Numeric[T]](b B) B {
	n := Norm[B, T](b)
	bb := base[T](b)
	data := make([]T, len(bb.data))
	for i, e := range bb.data {
		data[i] = e.Div(n)
	}
	return B(bb.withData(data))
}
