// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFitTransform(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		fit  FitOptions
		want gg.Matrix
	}{
		{
			name: "stretch",
			b:    Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5},
			want: gg.Matrix{A: 10, E: 20},
		},
		{
			name: "stretch with offset",
			b:    Bounds{MinX: -5, MaxX: 5, MinY: 2, MaxY: 7},
			want: gg.Matrix{A: 10, C: 50, E: 20, F: -40},
		},
		{
			name: "uniform centers on the loose axis",
			b:    Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5},
			fit:  FitOptions{Uniform: true},
			want: gg.Matrix{A: 10, E: 10, F: 25},
		},
		{
			name: "padding",
			b:    Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10},
			fit:  FitOptions{Padding: 10},
			want: gg.Matrix{A: 8, C: 10, E: 8, F: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitTransform(tt.b, 100, 100, tt.fit)
			if err != nil {
				t.Fatalf("FitTransform: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("matrix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFitTransformMapsCorners(t *testing.T) {
	b := Bounds{MinX: -3, MaxX: 9, MinY: -1, MaxY: 2}
	m, err := FitTransform(b, 640, 480, FitOptions{})
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}
	lo := m.TransformPoint(gg.Pt(b.MinX, b.MinY))
	hi := m.TransformPoint(gg.Pt(b.MaxX, b.MaxY))
	if math.Abs(lo.X) > 1e-9 || math.Abs(lo.Y) > 1e-9 {
		t.Errorf("min corner -> %v, want (0, 0)", lo)
	}
	if math.Abs(hi.X-640) > 1e-9 || math.Abs(hi.Y-480) > 1e-9 {
		t.Errorf("max corner -> %v, want (640, 480)", hi)
	}
}

func TestFitTransformErrors(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		fit  FitOptions
		want error
	}{
		{"zero width", Bounds{MaxY: 3}, FitOptions{}, ErrDegenerateBounds},
		{"zero height", Bounds{MaxX: 3}, FitOptions{}, ErrDegenerateBounds},
		{"nan", Bounds{MaxX: math.NaN(), MaxY: 1}, FitOptions{}, ErrDegenerateBounds},
		{"infinite", Bounds{MaxX: math.Inf(1), MaxY: 1}, FitOptions{}, ErrDegenerateBounds},
		{"padding eats surface", Bounds{MaxX: 1, MaxY: 1}, FitOptions{Padding: 60}, ErrEmptySurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitTransform(tt.b, 100, 100, tt.fit)
			if !errors.Is(err, tt.want) {
				t.Errorf("FitTransform error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRenderAndFitDegenerate(t *testing.T) {
	sys := New()
	surf := newFakeSurface(200, 200)

	err := sys.RenderAndFit([]Literal{Rotate{Angle: 90}}, surf, 1)
	if !errors.Is(err, ErrDegenerateBounds) {
		t.Fatalf("RenderAndFit error = %v, want ErrDegenerateBounds", err)
	}
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("RenderAndFit error %T is not a *BoundsError", err)
	}
	if be.Bounds != (Bounds{}) {
		t.Errorf("BoundsError.Bounds = %+v, want zero bounds", be.Bounds)
	}
	if len(surf.transforms) != 0 || len(surf.calls) != 0 {
		t.Errorf("surface touched on degenerate bounds: %d transforms, %d calls", len(surf.transforms), len(surf.calls))
	}
}

func TestRenderAndFit(t *testing.T) {
	sys := New()
	sys.AddRule("S", Draw{Distance: 2}, Rotate{Angle: 90}, Draw{Distance: 1})
	surf := newFakeSurface(200, 100)

	if err := sys.RenderAndFit(Refs("S"), surf, 1); err != nil {
		t.Fatalf("RenderAndFit: %v", err)
	}
	if len(surf.transforms) != 1 {
		t.Fatalf("%d transforms applied, want 1", len(surf.transforms))
	}
	want := gg.Matrix{A: 100, E: 100}
	if diff := cmp.Diff(want, surf.transforms[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("transform mismatch (-want +got):\n%s", diff)
	}
	if n := surf.count("Stroke"); n != 2 {
		t.Errorf("Stroke called %d times, want 2", n)
	}
}

func TestRenderAndFitNilSurface(t *testing.T) {
	if err := New().RenderAndFit([]Literal{Draw{Distance: 1}}, nil, 1); err == nil {
		t.Fatal("RenderAndFit accepted a nil surface")
	}
}

func TestRenderAndFitHoldsTablesAcrossPasses(t *testing.T) {
	var (
		sys   *System
		once  sync.Once
		added = make(chan struct{})
	)
	sys = New(WithTrace(func(s Step) {
		if s.Pass != PassMeasure {
			return
		}
		once.Do(func() {
			go func() {
				sys.AddRule("F", Draw{Distance: 100})
				close(added)
			}()
			// Let the writer queue up behind the read lock.
			time.Sleep(20 * time.Millisecond)
		})
	}))
	if err := sys.Define("F", Draw{Distance: 1}, Rotate{Angle: 90}, Draw{Distance: 1}); err != nil {
		t.Fatal(err)
	}

	surf := newFakeSurface(100, 100)
	if err := sys.RenderAndFit(Refs("F"), surf, 1); err != nil {
		t.Fatalf("RenderAndFit: %v", err)
	}
	want := []surfaceCall{
		{Op: "BeginPath"},
		{Op: "SetLineWidth", Args: []float64{1}},
		{Op: "MoveTo", Args: []float64{0, 0}},
		{Op: "LineTo", Args: []float64{1, 0}},
		{Op: "Stroke"},
		{Op: "BeginPath"},
		{Op: "SetLineWidth", Args: []float64{1}},
		{Op: "MoveTo", Args: []float64{1, 0}},
		{Op: "LineTo", Args: []float64{1, 1}},
		{Op: "Stroke"},
	}
	if diff := cmp.Diff(want, surf.drawingCalls(), cmpopts.EquateEmpty(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("render pass saw a rule added during measure (-want +got):\n%s", diff)
	}

	<-added
	b, err := sys.Measure(Refs("F"), 1)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if b.MaxX != 100 {
		t.Errorf("MaxX after AddRule = %v, want 100", b.MaxX)
	}
}

func TestInvalidInputLeavesSurfaceUntouched(t *testing.T) {
	sys := New()
	sys.AddRule("F", Draw{Distance: 1})
	tests := []struct {
		name  string
		axiom []Literal
		depth int
	}{
		{"negative depth", Refs("F"), -1},
		{"nil literal", []Literal{Ref("F"), nil}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surf := newFakeSurface(10, 10)
			if err := sys.Render(tt.axiom, surf, tt.depth); err == nil {
				t.Error("Render succeeded")
			}
			if err := sys.RenderAndFit(tt.axiom, surf, tt.depth); err == nil {
				t.Error("RenderAndFit succeeded")
			}
			if len(surf.calls) != 0 || len(surf.transforms) != 0 {
				t.Errorf("surface touched: %d calls, %d transforms", len(surf.calls), len(surf.transforms))
			}
		})
	}
}

func TestRenderAndFitStrokeErrorKeepsTransform(t *testing.T) {
	sys := New()
	sys.AddRule("F", Draw{Distance: 1}, Rotate{Angle: 90}, Draw{Distance: 1})
	surf := newFakeSurface(10, 10)
	surf.strokeErr = errors.New("device lost")

	err := sys.RenderAndFit(Refs("F"), surf, 1)
	if !errors.Is(err, surf.strokeErr) {
		t.Fatalf("RenderAndFit error = %v, want stroke error", err)
	}
	if len(surf.transforms) != 1 {
		t.Errorf("%d transforms applied, want 1", len(surf.transforms))
	}
}
