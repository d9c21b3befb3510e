// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"fmt"
	"sync"
)

// System holds the rule and definition tables of one L-system and
// evaluates axioms against them.
//
// Evaluations (Measure, Render, RenderAndFit) may run concurrently with
// each other. AddRule and Define block until in-flight evaluations finish,
// so a WithTrace hook must not call them on its own goroutine.
type System struct {
	mu    sync.RWMutex
	rules *RuleTable
	defs  *DefinitionTable
	opts  options
}

// New creates an empty System.
func New(opts ...Option) *System {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &System{
		rules: NewRuleTable(),
		defs:  NewDefinitionTable(),
		opts:  o,
	}
}

// AddRule appends a production for symbol and returns its index.
func (s *System) AddRule(symbol string, substitution ...Literal) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rules.Add(symbol, substitution)
}

// Define sets the terminal substitution for symbol.
// Redefining a symbol fails with an error wrapping ErrDuplicateDefinition
// and leaves the first definition in place.
func (s *System) Define(symbol string, substitution ...Literal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defs.Define(symbol, substitution)
}

// Rules returns a copy of the rules in index order.
func (s *System) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules.InOrder()
}

// Lookup returns the terminal definition of symbol.
func (s *System) Lookup(symbol string) ([]Literal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defs.Lookup(symbol)
}

// Definitions returns the defined symbol names, sorted.
func (s *System) Definitions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defs.Symbols()
}

// Measure evaluates axiom to the given depth without drawing and returns
// the bounding box of every visited position. The box always contains
// the origin, where the cursor starts.
func (s *System) Measure(axiom []Literal, depth int) (Bounds, error) {
	if err := validateInput(axiom, depth); err != nil {
		return Bounds{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.measure(axiom, depth)
}

// Render evaluates axiom to the given depth and draws it on surf using
// the surface's current transform. Invalid input is rejected before surf
// is touched.
func (s *System) Render(axiom []Literal, surf Surface, depth int) error {
	if surf == nil {
		return fmt.Errorf("lsystem: render: nil surface")
	}
	if err := validateInput(axiom, depth); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.render(axiom, surf, depth)
}

// validateInput checks the arguments shared by every evaluation.
func validateInput(axiom []Literal, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	return validateSequence(axiom)
}

// measure and render run one pass. The caller holds s.mu for reading.
func (s *System) measure(axiom []Literal, depth int) (Bounds, error) {
	e, err := s.evaluate(measurer{}, axiom, nil, depth)
	if err != nil {
		return Bounds{}, err
	}
	return e.env.bounds, nil
}

func (s *System) render(axiom []Literal, surf Surface, depth int) error {
	surf.SetBlendMode(s.opts.blendMode)
	surf.SetStrokeColor(s.opts.strokeColor)
	surf.SetFillColor(s.opts.leafColor)
	_, err := s.evaluate(renderer{}, axiom, surf, depth)
	return err
}

// evaluate runs one pass over a validated axiom with a fresh cursor and
// environment.
func (s *System) evaluate(interp interpreter, axiom []Literal, surf Surface, depth int) (*evaluation, error) {
	cursor := NewCursor()
	e := &evaluation{
		rules:  s.rules,
		defs:   s.defs,
		interp: interp,
		trace:  s.opts.trace,
		strict: s.opts.strict,
		cursor: cursor,
		env: Environment{
			surface: surf,
			bounds:  boundsAt(cursor.Position()),
			random:  s.opts.randomFor(),
		},
	}
	if err := e.run(axiom, depth, -1); err != nil {
		return nil, fmt.Errorf("lsystem: %s pass: %w", interp.pass(), err)
	}

	log := Logger()
	log.Debug("lsystem: pass complete",
		"pass", interp.pass().String(),
		"depth", depth,
		"literals", e.literals,
		"rules", e.ruleSteps,
		"definitions", e.definitions,
		"dropped", e.dropped)
	if n := e.env.Depth(); n > 0 {
		log.Warn("lsystem: save stack not empty after pass",
			"pass", interp.pass().String(),
			"saved", n)
	}
	return e, nil
}
