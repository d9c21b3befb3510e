// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"math"

	"github.com/gogpu/gg"
)

// leafSize is the drawn length of a leaf for the given base size and
// stroke thickness.
func leafSize(baseSize, thickness float64) float64 {
	return baseSize * math.Pow(1.03, thickness) * 0.9
}

// leafShape is a leaf outline made of two cubic Béziers:
// Base -> (C1, C2) -> Tip -> (C3, C4) -> Base.
type leafShape struct {
	Base, Tip      gg.Point
	C1, C2, C3, C4 gg.Point
}

func newLeafShape(c Cursor, baseSize float64) leafShape {
	s := leafSize(baseSize, c.Thickness)
	sin, cos := math.Sincos(c.Heading)

	// along is measured on the heading, side perpendicular to it.
	at := func(along, side float64) gg.Point {
		return gg.Pt(
			c.X+(cos*along-sin*side)*s,
			c.Y+(sin*along+cos*side)*s,
		)
	}
	return leafShape{
		Base: gg.Pt(c.X, c.Y),
		Tip:  at(1, 0),
		C1:   at(0.25, 0.35),
		C2:   at(0.75, 0.35),
		C3:   at(0.75, -0.35),
		C4:   at(0.25, -0.35),
	}
}

// hull returns the points whose bounding box contains the whole outline.
func (l leafShape) hull() [6]gg.Point {
	return [6]gg.Point{l.Base, l.Tip, l.C1, l.C2, l.C3, l.C4}
}

func (l leafShape) trace(s Surface) {
	s.MoveTo(l.Base.X, l.Base.Y)
	s.CubicTo(l.C1.X, l.C1.Y, l.C2.X, l.C2.Y, l.Tip.X, l.Tip.Y)
	s.CubicTo(l.C3.X, l.C3.Y, l.C4.X, l.C4.Y, l.Base.X, l.Base.Y)
}
