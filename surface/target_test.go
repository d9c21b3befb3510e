// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/lsystem"
)

// koch returns a Koch curve system and its axiom.
func koch() (*lsystem.System, []lsystem.Literal) {
	sys := lsystem.New(lsystem.WithFit(lsystem.FitOptions{Padding: 4, Uniform: true}))
	sys.AddRule("F",
		lsystem.Ref("F"), lsystem.Rotate{Angle: -60}, lsystem.Ref("F"),
		lsystem.Rotate{Angle: 120}, lsystem.Ref("F"), lsystem.Rotate{Angle: -60}, lsystem.Ref("F"))
	_ = sys.Define("F", lsystem.Draw{Distance: 1})
	return sys, lsystem.Refs("F")
}

// inked reports whether img has a pixel that is not opaque white.
func inked(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff || a != 0xffff {
				return true
			}
		}
	}
	return false
}

func TestContextTargetRender(t *testing.T) {
	sys, axiom := koch()
	tgt := NewContextTarget(gg.NewContext(64, 64))
	defer tgt.Close()

	tgt.Clear(gg.RGB(1, 1, 1))
	if err := sys.RenderAndFit(axiom, tgt, 2); err != nil {
		t.Fatalf("RenderAndFit: %v", err)
	}
	img, err := tgt.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 64 {
		t.Errorf("image size %v, want 64x64", img.Bounds())
	}
	if !inked(img) {
		t.Error("rendered image is blank")
	}
}

func TestContextTargetColors(t *testing.T) {
	tgt := NewContextTarget(gg.NewContext(8, 8))
	tgt.SetStrokeColor(gg.RGB(1, 0, 0))
	tgt.SetFillColor(gg.RGB(0, 0, 1))
	if tgt.stroke != gg.RGB(1, 0, 0) || tgt.fill != gg.RGB(0, 0, 1) {
		t.Errorf("colors = %v / %v", tgt.stroke, tgt.fill)
	}
	if tgt.Context() == nil {
		t.Error("Context() returned nil")
	}
}

func TestContextTargetClosed(t *testing.T) {
	tgt := NewContextTarget(gg.NewContext(8, 8))
	if err := tgt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := tgt.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := tgt.Image(); !errors.Is(err, ErrClosed) {
		t.Errorf("Image after Close error = %v, want ErrClosed", err)
	}
}

func TestRecorderTargetCapturesSegments(t *testing.T) {
	sys, axiom := koch()
	tgt := NewRecorderTarget(64, 64)
	tgt.Clear(gg.RGB(1, 1, 1))
	if err := sys.RenderAndFit(axiom, tgt, 2); err != nil {
		t.Fatalf("RenderAndFit: %v", err)
	}

	var strokes, rects int
	for _, cmd := range tgt.Recording().Commands() {
		switch cmd.(type) {
		case recording.StrokePathCommand:
			strokes++
		case recording.FillRectCommand:
			rects++
		}
	}
	if strokes != 16 {
		t.Errorf("%d stroke commands, want 16", strokes)
	}
	if rects != 1 {
		t.Errorf("%d fill-rect commands, want 1", rects)
	}

	img, err := tgt.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if !inked(img) {
		t.Error("played back image is blank")
	}
}

func TestRecorderTargetBlendMode(t *testing.T) {
	tgt := NewRecorderTarget(8, 8)
	tgt.SetBlendMode(gg.BlendMultiply)
	if tgt.BlendMode() != gg.BlendMultiply {
		t.Errorf("BlendMode() = %v, want BlendMultiply", tgt.BlendMode())
	}
	if tgt.Recorder() == nil {
		t.Error("Recorder() returned nil")
	}
}

func TestTargetsRejectDegenerateAxiom(t *testing.T) {
	sys, _ := koch()
	for _, name := range List() {
		tgt, err := NewTargetByName(name, 32, 32)
		if err != nil {
			t.Fatalf("NewTargetByName(%q): %v", name, err)
		}
		err = sys.RenderAndFit([]lsystem.Literal{lsystem.Rotate{Angle: 90}}, tgt, 3)
		if !errors.Is(err, lsystem.ErrDegenerateBounds) {
			t.Errorf("%s: error = %v, want ErrDegenerateBounds", name, err)
		}
		_ = tgt.Close()
	}
}

func TestImageTargetRender(t *testing.T) {
	sys, axiom := koch()
	tgt := NewImageTarget(64, 48)
	defer tgt.Close()

	tgt.Clear(gg.RGB(1, 1, 1))
	if err := sys.RenderAndFit(axiom, tgt, 2); err != nil {
		t.Fatalf("RenderAndFit: %v", err)
	}
	if m := tgt.Matrix(); m.IsIdentity() {
		t.Error("fit transform was not applied")
	}
	img, err := tgt.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 48 {
		t.Errorf("image size %v, want 64x48", img.Bounds())
	}
	if !inked(img) {
		t.Error("rendered image is blank")
	}
}

func TestImageTargetTransformsPoints(t *testing.T) {
	tgt := NewImageTarget(10, 10)
	tgt.Transform(gg.Translate(1, 2))
	tgt.Transform(gg.Scale(3, 3))
	want := gg.Matrix{A: 3, E: 3, C: 1, F: 2}
	if got := tgt.Matrix(); got != want {
		t.Errorf("Matrix() = %+v, want %+v", got, want)
	}
	if got := tgt.scale(); got != 3 {
		t.Errorf("scale() = %v, want 3", got)
	}
}

func TestImageTargetClosed(t *testing.T) {
	tgt := NewImageTarget(8, 8)
	tgt.SetBlendMode(gg.BlendScreen)
	if tgt.BlendMode() != gg.BlendScreen {
		t.Errorf("BlendMode() = %v, want BlendScreen", tgt.BlendMode())
	}
	if err := tgt.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := tgt.Image(); !errors.Is(err, ErrClosed) {
		t.Errorf("Image after Close = %v, want ErrClosed", err)
	}
	if err := tgt.Stroke(); !errors.Is(err, ErrClosed) {
		t.Errorf("Stroke after Close = %v, want ErrClosed", err)
	}
}
