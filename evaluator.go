// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"fmt"
	"math"
	"slices"
)

// interpreter applies one non-symbol literal. The measure and render
// passes differ only in their interpreter; symbol resolution is shared.
type interpreter interface {
	pass() Pass
	apply(lit Literal, c *Cursor, env *Environment) error
}

// evaluation is one run of one pass over an axiom. It owns its cursor
// and environment; the tables are only read.
type evaluation struct {
	rules  *RuleTable
	defs   *DefinitionTable
	interp interpreter
	trace  func(Step)
	strict bool

	cursor Cursor
	env    Environment

	// expanding holds the symbols whose definitions are being expanded.
	expanding []string

	literals    int
	ruleSteps   int
	definitions int
	dropped     int
}

// run interprets seq at the given depth and last-applied rule index.
func (e *evaluation) run(seq []Literal, depth, lastRule int) error {
	for _, lit := range seq {
		if ref, ok := lit.(SymbolRef); ok {
			if err := e.resolve(ref.Name, depth, lastRule); err != nil {
				return err
			}
			continue
		}
		e.literals++
		if err := e.interp.apply(lit, &e.cursor, &e.env); err != nil {
			return err
		}
	}
	return nil
}

// resolve expands a symbol reference: through a rule when one applies at
// the current depth, else through its terminal definition, else not at all.
func (e *evaluation) resolve(name string, depth, lastRule int) error {
	if rule, effDepth, ok := e.selectRule(name, depth, lastRule); ok {
		e.ruleSteps++
		e.emit(StepRule, name, rule.Index, effDepth, lastRule)
		return e.run(rule.Substitution, effDepth, rule.Index)
	}

	if sub, ok := e.defs.lookup(name); ok && !slices.Contains(e.expanding, name) {
		e.definitions++
		e.emit(StepDefinition, name, -1, 0, lastRule)
		e.expanding = append(e.expanding, name)
		err := e.run(sub, 0, -1)
		e.expanding = e.expanding[:len(e.expanding)-1]
		return err
	}

	e.dropped++
	e.emit(StepDropped, name, -1, 0, lastRule)
	if e.strict {
		return fmt.Errorf("%w: %q", ErrUnresolvedSymbol, name)
	}
	return nil
}

// selectRule picks the rule for name. Rules with an index above lastRule
// continue the current generation and keep depth; scanning then wraps to
// the lowest index, which starts a new generation at depth-1. The first
// candidate whose effective depth is positive wins.
func (e *evaluation) selectRule(name string, depth, lastRule int) (Rule, int, bool) {
	indices := e.rules.forSymbol(name)
	if len(indices) == 0 {
		return Rule{}, 0, false
	}
	start, _ := slices.BinarySearch(indices, lastRule+1)
	for i := range indices {
		idx := indices[(start+i)%len(indices)]
		effDepth := depth
		if idx <= lastRule {
			effDepth = depth - 1
		}
		if effDepth > 0 {
			return e.rules.rules[idx], effDepth, true
		}
	}
	return Rule{}, 0, false
}

func (e *evaluation) emit(kind StepKind, symbol string, rule, depth, lastRule int) {
	if e.trace == nil {
		return
	}
	e.trace(Step{
		Pass:     e.interp.pass(),
		Kind:     kind,
		Symbol:   symbol,
		Rule:     rule,
		Depth:    depth,
		LastRule: lastRule,
	})
}

// applyCursor handles the literals that only touch the cursor or the save
// stack. They behave the same in every pass.
func applyCursor(lit Literal, c *Cursor, env *Environment) error {
	switch l := lit.(type) {
	case Rotate:
		c.Heading += l.Angle * math.Pi / 180
	case RandomRotate:
		c.Heading += env.random.Uniform(l.Min, l.Max) * math.Pi / 180
	case SetThickness:
		c.Thickness = clampNonNegative(l.Value)
	case ScaleThickness:
		c.Thickness *= clampNonNegative(l.Factor)
	case Save:
		env.push(*c)
	case Restore:
		saved, err := env.pop()
		if err != nil {
			return err
		}
		*c = saved
	default:
		return fmt.Errorf("lsystem: unexpected literal %T", lit)
	}
	return nil
}

// measurer grows the environment bounds to every visited position.
type measurer struct{}

func (measurer) pass() Pass { return PassMeasure }

func (measurer) apply(lit Literal, c *Cursor, env *Environment) error {
	switch l := lit.(type) {
	case Move:
		c.advance(l.Distance)
		env.bounds.include(c.X, c.Y)
	case Draw:
		c.advance(l.Distance)
		env.bounds.include(c.X, c.Y)
	case Leaf:
		for _, p := range newLeafShape(*c, l.BaseSize).hull() {
			env.bounds.include(p.X, p.Y)
		}
	default:
		return applyCursor(lit, c, env)
	}
	return nil
}

// renderer draws on the environment surface.
type renderer struct{}

func (renderer) pass() Pass { return PassRender }

func (renderer) apply(lit Literal, c *Cursor, env *Environment) error {
	s := env.surface
	switch l := lit.(type) {
	case Move:
		c.advance(l.Distance)
	case Draw:
		x0, y0 := c.X, c.Y
		c.advance(l.Distance)
		s.BeginPath()
		s.SetLineWidth(c.Thickness)
		s.MoveTo(x0, y0)
		s.LineTo(c.X, c.Y)
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("lsystem: stroke: %w", err)
		}
	case Leaf:
		s.BeginPath()
		newLeafShape(*c, l.BaseSize).trace(s)
		if err := s.Fill(); err != nil {
			return fmt.Errorf("lsystem: fill leaf: %w", err)
		}
	default:
		return applyCursor(lit, c, env)
	}
	return nil
}
