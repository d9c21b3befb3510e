// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"errors"
	"fmt"
)

// Errors.
var (
	// ErrDuplicateDefinition is returned by Define when the symbol already
	// has a terminal definition.
	ErrDuplicateDefinition = errors.New("lsystem: duplicate definition")

	// ErrDegenerateBounds is returned by RenderAndFit when the measured
	// bounding box has zero width or height.
	ErrDegenerateBounds = errors.New("lsystem: degenerate bounds")

	// ErrUnbalancedSaveRestore is returned when a Restore runs with an
	// empty save stack.
	ErrUnbalancedSaveRestore = errors.New("lsystem: restore without matching save")

	// ErrUnresolvedSymbol is returned for symbols with no rule and no
	// definition, only when strict symbol resolution is enabled.
	ErrUnresolvedSymbol = errors.New("lsystem: unresolved symbol")

	// ErrEmptySurface is returned by RenderAndFit when the surface has no
	// drawable area left after padding.
	ErrEmptySurface = errors.New("lsystem: surface has no drawable area")

	// ErrNegativeDepth is returned when an evaluation is started with depth < 0.
	ErrNegativeDepth = errors.New("lsystem: negative depth")
)

// DefinitionError reports a rejected redefinition.
type DefinitionError struct {
	Symbol string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("lsystem: duplicate definition for %q", e.Symbol)
}

// Unwrap returns ErrDuplicateDefinition.
func (e *DefinitionError) Unwrap() error { return ErrDuplicateDefinition }

// BoundsError reports a bounding box that cannot be fitted to a surface.
type BoundsError struct {
	Bounds Bounds
}

func (e *BoundsError) Error() string {
	b := e.Bounds
	return fmt.Sprintf("lsystem: degenerate bounds x=[%g, %g] y=[%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// Unwrap returns ErrDegenerateBounds.
func (e *BoundsError) Unwrap() error { return ErrDegenerateBounds }
