// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// FitOptions controls how RenderAndFit maps measured bounds onto a surface.
// The zero value stretches the bounds to fill the whole surface.
type FitOptions struct {
	// Padding is left free on every side, in surface units.
	Padding float64

	// Uniform keeps the aspect ratio, using the smaller of the two axis
	// scales and centering the drawing on the other axis.
	Uniform bool
}

// FitTransform returns the matrix that maps b onto a width x height area.
// Points are shifted by (-MinX, -MinY), scaled, then offset by the padding.
// It fails with a *BoundsError if b has no area or the result is not
// finite, and with ErrEmptySurface if padding leaves no room.
func FitTransform(b Bounds, width, height float64, fit FitOptions) (gg.Matrix, error) {
	if b.IsDegenerate() {
		return gg.Matrix{}, &BoundsError{Bounds: b}
	}

	pad := math.Max(fit.Padding, 0)
	availW := width - 2*pad
	availH := height - 2*pad
	if !(availW > 0) || !(availH > 0) {
		return gg.Matrix{}, fmt.Errorf("%w: %gx%g with padding %g", ErrEmptySurface, width, height, pad)
	}
	sx := availW / b.Width()
	sy := availH / b.Height()

	offX, offY := pad, pad
	if fit.Uniform {
		k := math.Min(sx, sy)
		offX += (availW - b.Width()*k) / 2
		offY += (availH - b.Height()*k) / 2
		sx, sy = k, k
	}

	m := gg.Translate(offX, offY).
		Multiply(gg.Scale(sx, sy)).
		Multiply(gg.Translate(-b.MinX, -b.MinY))
	for _, v := range [...]float64{m.A, m.B, m.C, m.D, m.E, m.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return gg.Matrix{}, &BoundsError{Bounds: b}
		}
	}
	return m, nil
}

// RenderAndFit measures axiom, transforms surf so the drawing fills it,
// and renders. Both passes see the same tables: AddRule and Define wait
// until RenderAndFit returns.
//
// surf is left untouched when measuring or fitting fails; with degenerate
// bounds the returned error wraps ErrDegenerateBounds. Once the transform
// is applied, only a failing Stroke or Fill on surf can stop the render,
// and surf then keeps the transform.
func (s *System) RenderAndFit(axiom []Literal, surf Surface, depth int) error {
	if surf == nil {
		return fmt.Errorf("lsystem: render: nil surface")
	}
	if err := validateInput(axiom, depth); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	bounds, err := s.measure(axiom, depth)
	if err != nil {
		return err
	}
	m, err := FitTransform(bounds, float64(surf.Width()), float64(surf.Height()), s.opts.fit)
	if err != nil {
		return err
	}
	Logger().Info("lsystem: fit",
		"minX", bounds.MinX, "maxX", bounds.MaxX,
		"minY", bounds.MinY, "maxY", bounds.MaxY,
		"scaleX", m.A, "scaleY", m.E)

	surf.Transform(m)
	return s.render(axiom, surf, depth)
}
