// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

import (
	"fmt"
	"strings"
)

// base is the entry storage core shared by all block-tensor kinds: a flat,
// row-major (slice-major for rank 3) table of entry handles. Vector, Matrix,
// and Tensor3 are defined with this exact underlying struct so that the
// operator library can be written once against the Grid constraint.
type base[T any] struct {
	rows, cols, slices int
	data               []T
}

// Grid constrains the block-tensor kinds defined by this package. Its core
// type is the shared storage struct; the unexported fields make the
// constraint impossible to satisfy outside the package.
type Grid[T any] interface {
	~struct {
		rows, cols, slices int
		data               []T
	}
}

// newBase validates extents and builds the storage table. With no entries
// the table is allocated but unset (zero-valued handles), to be filled via
// Set; otherwise exactly rows*cols*slices entries are required.
func newBase[T any](rows, cols, slices int, entries []T) base[T] {
	if rows < 1 || cols < 1 || slices < 1 {
		panic(ErrShape)
	}
	n := rows * cols * slices
	data := make([]T, n)
	if len(entries) > 0 {
		if len(entries) != n {
			panic(ErrShape)
		}
		copy(data, entries)
	}
	return base[T]{rows: rows, cols: cols, slices: slices, data: data}
}

func (b base[T]) checkIndex(idx int) {
	if idx < 0 || idx >= len(b.data) {
		panic(ErrIndex)
	}
}

// sameShape reports equal extents.
func (b base[T]) sameShape(o base[T]) bool {
	return b.rows == o.rows && b.cols == o.cols && b.slices == o.slices
}

// shallow returns a copy of the base sharing all entry handles but owning
// its own handle table.
func (b base[T]) shallow() base[T] {
	data := make([]T, len(b.data))
	copy(data, b.data)
	return base[T]{rows: b.rows, cols: b.cols, slices: b.slices, data: data}
}

// withData returns a base with the same extents over a fresh handle table.
func (b base[T]) withData(data []T) base[T] {
	return base[T]{rows: b.rows, cols: b.cols, slices: b.slices, data: data}
}

// equalEntries compares two same-shape bases entrywise.
func equalEntries[T Numeric[T]](a, b base[T]) bool {
	if !a.sameShape(b) {
		return false
	}
	for i := range a.data {
		if !a.data[i].Equal(b.data[i]) {
			return false
		}
	}
	return true
}

// format renders a block tensor in the "[indices] = entry" layout used by
// all three kinds' String methods.
func (b base[T]) format(name string, rank int) string {
	var sb strings.Builder
	switch rank {
	case 1:
		fmt.Fprintf(&sb, "%s(%d)\n", name, b.rows)
		for r := 0; r < b.rows; r++ {
			fmt.Fprintf(&sb, "[%d] =\n%v\n", r, b.data[r])
		}
	case 2:
		fmt.Fprintf(&sb, "%s(%dx%d)\n", name, b.rows, b.cols)
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				fmt.Fprintf(&sb, "[%d,%d] =\n%v\n", r, c, b.data[b.cols*r+c])
			}
		}
	default:
		fmt.Fprintf(&sb, "%s(%dx%dx%d)\n", name, b.rows, b.cols, b.slices)
		for k := 0; k < b.slices; k++ {
			for r := 0; r < b.rows; r++ {
				for c := 0; c < b.cols; c++ {
					fmt.Fprintf(&sb, "[%d,%d,%d] =\n%v\n", r, c, k, b.data[b.rows*b.cols*k+b.cols*r+c])
				}
			}
		}
	}
	return sb.String()
}
