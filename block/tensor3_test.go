// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosaic-ml/mosaic/tensor"
)

// t3 builds a 2x3x4 block whose entry at (r, c, k) holds 100r + 10c + k.
func t3() Tensor3[*tensor.Tensor] {
	b := NewTensor3[*tensor.Tensor](2, 3, 4)
	for k := 0; k < 4; k++ {
		for r := 0; r < 2; r++ {
			for c := 0; c < 3; c++ {
				b.Set(r, c, k, entry(float64(100*r+10*c+k)))
			}
		}
	}
	return b
}

// TestTensor3_Slice tests matrix extraction and its aliasing.
func TestTensor3_Slice(t *testing.T) {
	b := t3()
	s := b.Slice(2)

	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, float64(100*r+10*c+2), s.At(r, c).Item())
		}
	}

	// The slice shares entry handles with the tensor.
	s.At(1, 1).SetAt(-1)
	assert.Equal(t, -1.0, b.At(1, 1, 2).Item())
}

// TestTensor3_Reorders tests every axis permutation against the index maps.
func TestTensor3_Reorders(t *testing.T) {
	b := t3()

	ikj := b.ReorderIKJ()
	assert.Equal(t, []int{2, 4, 3}, ikj.Dims())
	jik := b.ReorderJIK()
	assert.Equal(t, []int{3, 2, 4}, jik.Dims())
	kji := b.ReorderKJI()
	assert.Equal(t, []int{4, 3, 2}, kji.Dims())
	kij := b.ReorderKIJ()
	assert.Equal(t, []int{4, 2, 3}, kij.Dims())

	for k := 0; k < 4; k++ {
		for r := 0; r < 2; r++ {
			for c := 0; c < 3; c++ {
				want := b.At(r, c, k).Item()
				assert.Equal(t, want, ikj.At(r, k, c).Item(), "ikj")
				assert.Equal(t, want, jik.At(c, r, k).Item(), "jik")
				assert.Equal(t, want, kji.At(k, c, r).Item(), "kji")
				assert.Equal(t, want, kij.At(k, r, c).Item(), "kij")
			}
		}
	}
}

// TestTensor3_ReorderAliases tests that permuted views share entry handles.
func TestTensor3_ReorderAliases(t *testing.T) {
	b := t3()
	jik := b.ReorderJIK()

	b.At(1, 2, 3).SetAt(-7)
	assert.Equal(t, -7.0, jik.At(2, 1, 3).Item())
}

// TestTensor3_ReorderInvolutions tests that axis swaps undo themselves.
func TestTensor3_ReorderInvolutions(t *testing.T) {
	b := t3()
	assert.True(t, b.Equal(b.ReorderIKJ().ReorderIKJ()))
	assert.True(t, b.Equal(b.ReorderJIK().ReorderJIK()))
	assert.True(t, b.Equal(b.ReorderKJI().ReorderKJI()))
	// KIJ cycles the axes, so it takes three applications.
	assert.True(t, b.Equal(b.ReorderKIJ().ReorderKIJ().ReorderKIJ()))
}
