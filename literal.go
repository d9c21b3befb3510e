// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal is one element of an axiom or substitution.
// The set of literals is closed: only the types in this file implement it.
type Literal interface {
	isLiteral()
	String() string
}

// Leaf draws a filled leaf shape at the cursor without moving it.
// The drawn size grows with the current thickness.
type Leaf struct {
	BaseSize float64
}

func (Leaf) isLiteral() {}

// Rotate turns the heading by Angle degrees.
type Rotate struct {
	Angle float64
}

func (Rotate) isLiteral() {}

// RandomRotate turns the heading by a uniformly sampled angle in [Min, Max] degrees.
type RandomRotate struct {
	Min, Max float64
}

func (RandomRotate) isLiteral() {}

// SetThickness sets the stroke thickness. Negative values become 0.
type SetThickness struct {
	Value float64
}

func (SetThickness) isLiteral() {}

// ScaleThickness multiplies the stroke thickness. Negative factors become 0.
type ScaleThickness struct {
	Factor float64
}

func (ScaleThickness) isLiteral() {}

// Save pushes a snapshot of the cursor.
type Save struct{}

func (Save) isLiteral() {}

// Restore pops the most recent cursor snapshot.
type Restore struct{}

func (Restore) isLiteral() {}

// Move advances the cursor along its heading without drawing.
type Move struct {
	Distance float64
}

func (Move) isLiteral() {}

// Draw advances the cursor along its heading and strokes the segment.
type Draw struct {
	Distance float64
}

func (Draw) isLiteral() {}

// SymbolRef names a symbol that is resolved against the rule and
// definition tables at evaluation time.
type SymbolRef struct {
	Name string
}

func (SymbolRef) isLiteral() {}

// Ref is shorthand for SymbolRef{Name: name}.
func Ref(name string) SymbolRef {
	return SymbolRef{Name: name}
}

// Refs returns one SymbolRef per name.
func Refs(names ...string) []Literal {
	out := make([]Literal, len(names))
	for i, n := range names {
		out[i] = SymbolRef{Name: n}
	}
	return out
}

func (l Leaf) String() string           { return "leaf(" + ftoa(l.BaseSize) + ")" }
func (l Rotate) String() string         { return "rotate(" + ftoa(l.Angle) + ")" }
func (l RandomRotate) String() string   { return "rrotate(" + ftoa(l.Min) + "," + ftoa(l.Max) + ")" }
func (l SetThickness) String() string   { return "thickness(" + ftoa(l.Value) + ")" }
func (l ScaleThickness) String() string { return "sthickness(" + ftoa(l.Factor) + ")" }
func (Save) String() string             { return "[" }
func (Restore) String() string          { return "]" }
func (l Move) String() string           { return "move(" + ftoa(l.Distance) + ")" }
func (l Draw) String() string           { return "draw(" + ftoa(l.Distance) + ")" }
func (l SymbolRef) String() string      { return l.Name }

// FormatSequence renders a literal sequence as a space separated string.
func FormatSequence(seq []Literal) string {
	var b strings.Builder
	for i, l := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		if l == nil {
			b.WriteString("<nil>")
			continue
		}
		b.WriteString(l.String())
	}
	return b.String()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// clampNonNegative returns v, or 0 when v is negative.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// validateSequence reports the first nil literal in seq.
func validateSequence(seq []Literal) error {
	for i, l := range seq {
		if l == nil {
			return fmt.Errorf("lsystem: nil literal at position %d", i)
		}
	}
	return nil
}
