// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	ggsurface "github.com/gogpu/gg/surface"
)

// ImageTarget draws on gg's CPU image surface.
//
// The image surface has no transform state, so the target maps every
// point through its own matrix and scales line widths by the matrix's
// mean scale factor. Only source-over blending is available; other blend
// modes are stored and reported but not applied.
type ImageTarget struct {
	s     *ggsurface.ImageSurface
	path  *ggsurface.Path
	m     gg.Matrix
	width float64

	stroke gg.RGBA
	fill   gg.RGBA
	blend  gg.BlendMode
}

var _ Target = (*ImageTarget)(nil)

// NewImageTarget creates an image target of the given size.
func NewImageTarget(width, height int) *ImageTarget {
	return &ImageTarget{
		s:      ggsurface.NewImageSurface(width, height),
		path:   ggsurface.NewPath(),
		m:      gg.Identity(),
		width:  1,
		stroke: gg.RGB(0, 0, 0),
		fill:   gg.RGB(0, 0, 0),
	}
}

func (t *ImageTarget) Width() int  { return t.s.Width() }
func (t *ImageTarget) Height() int { return t.s.Height() }
func (t *ImageTarget) BeginPath()  { t.path.Clear() }

func (t *ImageTarget) MoveTo(x, y float64) {
	p := t.m.TransformPoint(gg.Pt(x, y))
	t.path.MoveTo(p.X, p.Y)
}

func (t *ImageTarget) LineTo(x, y float64) {
	p := t.m.TransformPoint(gg.Pt(x, y))
	t.path.LineTo(p.X, p.Y)
}

func (t *ImageTarget) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c1 := t.m.TransformPoint(gg.Pt(c1x, c1y))
	c2 := t.m.TransformPoint(gg.Pt(c2x, c2y))
	p := t.m.TransformPoint(gg.Pt(x, y))
	t.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

func (t *ImageTarget) Stroke() error {
	if t.s.Image() == nil {
		return ErrClosed
	}
	style := ggsurface.DefaultStrokeStyle().
		WithColor(t.stroke.Color()).
		WithWidth(t.width * t.scale())
	t.s.Stroke(t.path, style)
	return nil
}

func (t *ImageTarget) Fill() error {
	if t.s.Image() == nil {
		return ErrClosed
	}
	t.s.Fill(t.path, ggsurface.DefaultFillStyle().WithColor(t.fill.Color()))
	return nil
}

func (t *ImageTarget) SetLineWidth(width float64)     { t.width = width }
func (t *ImageTarget) SetStrokeColor(c gg.RGBA)       { t.stroke = c }
func (t *ImageTarget) SetFillColor(c gg.RGBA)         { t.fill = c }
func (t *ImageTarget) SetBlendMode(mode gg.BlendMode) { t.blend = mode }
func (t *ImageTarget) Transform(m gg.Matrix)          { t.m = t.m.Multiply(m) }

// BlendMode returns the last blend mode set.
func (t *ImageTarget) BlendMode() gg.BlendMode { return t.blend }

// Matrix returns the accumulated transform.
func (t *ImageTarget) Matrix() gg.Matrix { return t.m }

// Clear fills the surface with c.
func (t *ImageTarget) Clear(c gg.RGBA) { t.s.Clear(c.Color()) }

// Image returns a snapshot of the surface pixels.
func (t *ImageTarget) Image() (image.Image, error) {
	img := t.s.Snapshot()
	if img == nil {
		return nil, ErrClosed
	}
	return img, nil
}

// Close releases the surface.
func (t *ImageTarget) Close() error { return t.s.Close() }

// scale is the geometric mean of the matrix's axis scale factors.
func (t *ImageTarget) scale() float64 {
	return math.Sqrt(math.Abs(t.m.A*t.m.E - t.m.B*t.m.D))
}
