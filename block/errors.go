// Copyright 2026 Mosaic ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package block

import "errors"

var (
	// ErrShape indicates mismatched extents between block tensors, or a
	// constructor called with the wrong number of entries.
	ErrShape = errors.New("block: dimension mismatch")
	// ErrIndex indicates an entry index outside the block's extents.
	ErrIndex = errors.New("block: index out of range")
	// ErrUnsupportedDim indicates a closed-form operation on a square block
	// larger than 4x4. There is deliberately no general fallback.
	ErrUnsupportedDim = errors.New("block: unsupported block tensor dimension")
)
