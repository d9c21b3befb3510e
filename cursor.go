// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"math"

	"github.com/gogpu/gg"
)

// Cursor is the turtle state threaded through one evaluation run.
// Heading is in radians; 0 points along +X.
type Cursor struct {
	X, Y      float64
	Heading   float64
	Thickness float64
}

// NewCursor returns the initial cursor: origin, heading 0, thickness 1.
func NewCursor() Cursor {
	return Cursor{Thickness: 1}
}

// Position returns the cursor position as a gg.Point.
func (c Cursor) Position() gg.Point {
	return gg.Pt(c.X, c.Y)
}

// advance moves the cursor distance units along its heading.
func (c *Cursor) advance(distance float64) {
	c.X += distance * math.Cos(c.Heading)
	c.Y += distance * math.Sin(c.Heading)
}

// Bounds is an axis-aligned bounding box of visited positions.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// boundsAt returns zero-extent bounds containing only p.
func boundsAt(p gg.Point) Bounds {
	return Bounds{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// IsDegenerate reports whether the box has no usable area: zero or
// negative extent on either axis, or a non-finite coordinate.
func (b Bounds) IsDegenerate() bool {
	for _, v := range [...]float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return !(b.Width() > 0) || !(b.Height() > 0)
}

// include grows b to contain (x, y).
func (b *Bounds) include(x, y float64) {
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// Environment is the per-run context shared by all literals of one
// evaluation: the save stack, the drawing surface (render pass only)
// and the bounds accumulator (measure pass only).
//
// An Environment belongs to exactly one run and is never reused.
type Environment struct {
	stack   []Cursor
	surface Surface
	bounds  Bounds
	random  RandomSource
}

func (e *Environment) push(c Cursor) {
	e.stack = append(e.stack, c)
}

func (e *Environment) pop() (Cursor, error) {
	if len(e.stack) == 0 {
		return Cursor{}, ErrUnbalancedSaveRestore
	}
	c := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return c, nil
}

// Depth returns the number of saved cursors.
func (e *Environment) Depth() int { return len(e.stack) }

// Bounds returns the bounds accumulated so far.
func (e *Environment) Bounds() Bounds { return e.bounds }
