// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/lsystem"
)

// Target is a drawing surface that can also be cleared and read back
// as an image once rendering is done.
type Target interface {
	lsystem.Surface

	// Clear paints the whole target with c, ignoring the current transform.
	Clear(c gg.RGBA)

	// Image returns the rendered pixels.
	Image() (image.Image, error)

	// Close releases the target. Close is idempotent.
	Close() error
}

// ErrClosed is returned when a closed target is asked for its image.
var ErrClosed = errors.New("surface: target closed")

// ContextTarget draws directly on a *gg.Context.
//
// gg uses one brush for fill and stroke, so the target keeps both colors
// and installs the matching one before each Stroke or Fill.
type ContextTarget struct {
	dc     *gg.Context
	stroke gg.RGBA
	fill   gg.RGBA
	closed bool
}

var _ Target = (*ContextTarget)(nil)

// NewContextTarget wraps dc. The target does not own dc until Close is called.
func NewContextTarget(dc *gg.Context) *ContextTarget {
	return &ContextTarget{
		dc:     dc,
		stroke: gg.RGB(0, 0, 0),
		fill:   gg.RGB(0, 0, 0),
	}
}

// Context returns the wrapped drawing context.
func (t *ContextTarget) Context() *gg.Context { return t.dc }

func (t *ContextTarget) Width() int  { return t.dc.Width() }
func (t *ContextTarget) Height() int { return t.dc.Height() }
func (t *ContextTarget) BeginPath()  { t.dc.ClearPath() }

func (t *ContextTarget) MoveTo(x, y float64) { t.dc.MoveTo(x, y) }
func (t *ContextTarget) LineTo(x, y float64) { t.dc.LineTo(x, y) }

func (t *ContextTarget) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	t.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Stroke strokes the pending path with the stroke color.
func (t *ContextTarget) Stroke() error {
	t.dc.SetStrokeBrush(gg.Solid(t.stroke))
	return t.dc.Stroke()
}

// Fill fills the pending path with the fill color.
func (t *ContextTarget) Fill() error {
	t.dc.SetFillBrush(gg.Solid(t.fill))
	return t.dc.Fill()
}

func (t *ContextTarget) SetLineWidth(width float64)     { t.dc.SetLineWidth(width) }
func (t *ContextTarget) SetStrokeColor(c gg.RGBA)       { t.stroke = c }
func (t *ContextTarget) SetFillColor(c gg.RGBA)         { t.fill = c }
func (t *ContextTarget) SetBlendMode(mode gg.BlendMode) { t.dc.SetBlendMode(mode) }
func (t *ContextTarget) Transform(m gg.Matrix)          { t.dc.Transform(m) }

// Clear fills the context with c.
func (t *ContextTarget) Clear(c gg.RGBA) { t.dc.ClearWithColor(c) }

// Image returns the context pixels.
func (t *ContextTarget) Image() (image.Image, error) {
	if t.closed {
		return nil, ErrClosed
	}
	return t.dc.Image(), nil
}

// Close closes the wrapped context.
func (t *ContextTarget) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.dc.Close()
}

// RecorderTarget captures drawing commands on a *recording.Recorder.
// Blend modes are accepted but not recorded; the recording format has no
// blend state.
type RecorderTarget struct {
	rec    *recording.Recorder
	blend  gg.BlendMode
	closed bool
}

var _ Target = (*RecorderTarget)(nil)

// NewRecorderTarget creates a recording target of the given size.
func NewRecorderTarget(width, height int) *RecorderTarget {
	return &RecorderTarget{rec: recording.NewRecorder(width, height)}
}

// Recorder returns the underlying recorder.
func (t *RecorderTarget) Recorder() *recording.Recorder { return t.rec }

func (t *RecorderTarget) Width() int  { return t.rec.Width() }
func (t *RecorderTarget) Height() int { return t.rec.Height() }
func (t *RecorderTarget) BeginPath()  { t.rec.ClearPath() }

func (t *RecorderTarget) MoveTo(x, y float64) { t.rec.MoveTo(x, y) }
func (t *RecorderTarget) LineTo(x, y float64) { t.rec.LineTo(x, y) }

func (t *RecorderTarget) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	t.rec.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Stroke records a stroke of the pending path. It never fails.
func (t *RecorderTarget) Stroke() error {
	t.rec.Stroke()
	return nil
}

// Fill records a fill of the pending path. It never fails.
func (t *RecorderTarget) Fill() error {
	t.rec.Fill()
	return nil
}

func (t *RecorderTarget) SetLineWidth(width float64) { t.rec.SetLineWidth(width) }

func (t *RecorderTarget) SetStrokeColor(c gg.RGBA) {
	t.rec.SetStrokeRGBA(c.R, c.G, c.B, c.A)
}

func (t *RecorderTarget) SetFillColor(c gg.RGBA) {
	t.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
}

// SetBlendMode stores mode; see BlendMode.
func (t *RecorderTarget) SetBlendMode(mode gg.BlendMode) { t.blend = mode }

// BlendMode returns the last mode passed to SetBlendMode.
func (t *RecorderTarget) BlendMode() gg.BlendMode { return t.blend }

// Transform post-multiplies the recorder transform by m.
func (t *RecorderTarget) Transform(m gg.Matrix) {
	t.rec.Transform(recording.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
}

// Clear records a full-size rectangle fill in c. The recorder state is
// saved and restored around it, so colors and transform are unaffected.
func (t *RecorderTarget) Clear(c gg.RGBA) {
	t.rec.Push()
	t.rec.Identity()
	t.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	t.rec.FillRectangle(0, 0, float64(t.rec.Width()), float64(t.rec.Height()))
	t.rec.Pop()
}

// Recording finishes the capture and returns the recorded commands.
func (t *RecorderTarget) Recording() *recording.Recording {
	return t.rec.FinishRecording()
}

// Image plays the recording back through gg's raster backend.
func (t *RecorderTarget) Image() (image.Image, error) {
	if t.closed {
		return nil, ErrClosed
	}
	backend := raster.NewBackend()
	if err := t.Recording().Playback(backend); err != nil {
		return nil, err
	}
	return backend.Image(), nil
}

// Close marks the target closed. The recorder holds no external resources.
func (t *RecorderTarget) Close() error {
	t.closed = true
	return nil
}
