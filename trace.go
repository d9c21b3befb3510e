// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

// Pass identifies which interpretation of the literals is running.
type Pass uint8

const (
	// PassMeasure tracks bounds and never touches a surface.
	PassMeasure Pass = iota
	// PassRender draws on a surface and does not track bounds.
	PassRender
)

// String returns the pass name.
func (p Pass) String() string {
	switch p {
	case PassMeasure:
		return "measure"
	case PassRender:
		return "render"
	default:
		return "unknown"
	}
}

// StepKind classifies how a symbol reference was resolved.
type StepKind uint8

const (
	// StepRule means a production was applied.
	StepRule StepKind = iota
	// StepDefinition means the terminal definition was applied.
	StepDefinition
	// StepDropped means the symbol had no applicable rule or definition.
	StepDropped
)

// String returns the step kind name.
func (k StepKind) String() string {
	switch k {
	case StepRule:
		return "rule"
	case StepDefinition:
		return "definition"
	case StepDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Step describes one symbol resolution. It is delivered to the function
// registered with WithTrace, in evaluation order.
type Step struct {
	Pass   Pass
	Kind   StepKind
	Symbol string

	// Rule is the index of the applied rule, or -1.
	Rule int

	// Depth is the effective depth the substitution runs at
	// (0 for definitions and dropped symbols).
	Depth int

	// LastRule is the last-applied rule index in effect when the
	// reference was met.
	LastRule int
}
