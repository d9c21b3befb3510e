// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lsystem evaluates and draws Lindenmayer-system fractals.
//
// # Overview
//
// A System holds ordered production rules and terminal definitions.
// An axiom (a sequence of Literal values) is expanded recursively to a
// given depth and interpreted as turtle-graphics commands. The expanded
// string is never built: each SymbolRef is resolved when it is reached.
//
//	sys := lsystem.New()
//	sys.AddRule("F",
//	    lsystem.Ref("F"), lsystem.Rotate{Angle: 60}, lsystem.Ref("F"),
//	    lsystem.Rotate{Angle: -120}, lsystem.Ref("F"), lsystem.Rotate{Angle: 60}, lsystem.Ref("F"))
//	_ = sys.Define("F", lsystem.Draw{Distance: 1})
//
//	dc := gg.NewContext(800, 300)
//	err := sys.RenderAndFit(lsystem.Refs("F"), surface.NewContextTarget(dc), 5)
//
// # Depth and multi-branch rules
//
// Every rule has an index equal to its insertion position. When a SymbolRef
// is reached inside the substitution of rule k, rules for that symbol with
// an index greater than k continue the same generation at the same depth,
// while rules with an index at or below k start the next generation at
// depth-1. Several consecutive rules for one symbol therefore behave as the
// branches of a single production. When no rule applies with a positive
// depth, the symbol's definition (if any) is drawn; otherwise it is dropped.
//
// # Passes
//
// Measure interprets the axiom without drawing and returns its Bounds.
// Render draws on a Surface. RenderAndFit runs both, fitting the measured
// bounds to the surface in between.
//
// # Coordinate System
//
// The cursor starts at the origin with heading 0 (pointing along +X) and
// thickness 1. Angles in literals are degrees; positive angles turn from
// +X toward +Y, which points down on gg surfaces.
package lsystem
