// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"github.com/gogpu/gg"
)

// surfaceCall is one recorded Surface method invocation.
type surfaceCall struct {
	Op   string
	Args []float64
}

// fakeSurface records every call made by the render pass.
type fakeSurface struct {
	width, height int
	calls         []surfaceCall
	transforms    []gg.Matrix
	strokeErr     error
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{width: w, height: h}
}

func (f *fakeSurface) record(op string, args ...float64) {
	f.calls = append(f.calls, surfaceCall{Op: op, Args: args})
}

func (f *fakeSurface) Width() int  { return f.width }
func (f *fakeSurface) Height() int { return f.height }
func (f *fakeSurface) BeginPath()  { f.record("BeginPath") }

func (f *fakeSurface) MoveTo(x, y float64) { f.record("MoveTo", x, y) }
func (f *fakeSurface) LineTo(x, y float64) { f.record("LineTo", x, y) }

func (f *fakeSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	f.record("CubicTo", c1x, c1y, c2x, c2y, x, y)
}

func (f *fakeSurface) Stroke() error {
	f.record("Stroke")
	return f.strokeErr
}

func (f *fakeSurface) Fill() error {
	f.record("Fill")
	return nil
}

func (f *fakeSurface) SetLineWidth(w float64)      { f.record("SetLineWidth", w) }
func (f *fakeSurface) SetStrokeColor(c gg.RGBA)    { f.record("SetStrokeColor", c.R, c.G, c.B, c.A) }
func (f *fakeSurface) SetFillColor(c gg.RGBA)      { f.record("SetFillColor", c.R, c.G, c.B, c.A) }
func (f *fakeSurface) SetBlendMode(m gg.BlendMode) { f.record("SetBlendMode", float64(m)) }
func (f *fakeSurface) Transform(m gg.Matrix)       { f.transforms = append(f.transforms, m) }

// drawingCalls returns the recorded calls that touch paths or paint,
// skipping the per-render setup of colors and blend mode.
func (f *fakeSurface) drawingCalls() []surfaceCall {
	var out []surfaceCall
	for _, c := range f.calls {
		switch c.Op {
		case "SetStrokeColor", "SetFillColor", "SetBlendMode":
			continue
		}
		out = append(out, c)
	}
	return out
}

// count returns how many times op was called.
func (f *fakeSurface) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// visited returns the bounds of all MoveTo and LineTo points.
func (f *fakeSurface) visited() Bounds {
	b := boundsAt(gg.Pt(0, 0))
	for _, c := range f.calls {
		if c.Op == "MoveTo" || c.Op == "LineTo" {
			b.include(c.Args[0], c.Args[1])
		}
	}
	return b
}

// scriptedRandom returns values from a fixed list, cycling.
type scriptedRandom struct {
	values []float64
	next   int
}

func (s *scriptedRandom) Uniform(lo, hi float64) float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return lo + v*(hi-lo)
}

// stepRecorder collects trace steps.
type stepRecorder struct {
	steps []Step
}

func (r *stepRecorder) record(s Step) { r.steps = append(r.steps, s) }

// ofPass returns the recorded steps for one pass.
func (r *stepRecorder) ofPass(p Pass) []Step {
	var out []Step
	for _, s := range r.steps {
		if s.Pass == p {
			out = append(out, s)
		}
	}
	return out
}
