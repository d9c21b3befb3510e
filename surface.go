// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import "github.com/gogpu/gg"

// Surface is the drawing target of the render pass.
//
// The engine only writes to a Surface; it never reads back. Adapters for gg
// contexts, image surfaces and recorders live in the surface sub-package.
type Surface interface {
	// Width and Height are the drawable extent used by RenderAndFit.
	Width() int
	Height() int

	// BeginPath discards any pending path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)

	// Stroke and Fill paint the pending path and clear it.
	Stroke() error
	Fill() error

	SetLineWidth(width float64)
	SetStrokeColor(c gg.RGBA)
	SetFillColor(c gg.RGBA)
	SetBlendMode(mode gg.BlendMode)

	// Transform post-multiplies the current transform by m.
	Transform(m gg.Matrix)
}
