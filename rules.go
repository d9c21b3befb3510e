// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import "slices"

// Rule is one production. Index is the insertion position in its
// RuleTable and never changes. Several rules may share a Symbol.
type Rule struct {
	Index        int
	Symbol       string
	Substitution []Literal
}

// RuleTable is an append-only, insertion-ordered list of productions.
//
// RuleTable is not safe for concurrent mutation; System serializes
// access to the tables it owns.
type RuleTable struct {
	rules []Rule
	// bySymbol keeps the rule indices of each symbol in ascending order.
	bySymbol map[string][]int
}

// NewRuleTable creates an empty rule table.
func NewRuleTable() *RuleTable {
	return &RuleTable{bySymbol: make(map[string][]int)}
}

// Add appends a rule for symbol and returns its index.
func (t *RuleTable) Add(symbol string, substitution []Literal) int {
	if t.bySymbol == nil {
		t.bySymbol = make(map[string][]int)
	}
	idx := len(t.rules)
	t.rules = append(t.rules, Rule{
		Index:        idx,
		Symbol:       symbol,
		Substitution: slices.Clone(substitution),
	})
	t.bySymbol[symbol] = append(t.bySymbol[symbol], idx)
	return idx
}

// Len returns the number of rules.
func (t *RuleTable) Len() int { return len(t.rules) }

// InOrder returns a copy of all rules in index order. Substitutions are
// copied too, so the result can be modified freely.
func (t *RuleTable) InOrder() []Rule {
	out := make([]Rule, len(t.rules))
	for i, r := range t.rules {
		r.Substitution = slices.Clone(r.Substitution)
		out[i] = r
	}
	return out
}

// forSymbol returns the rules for symbol in index order.
// The result aliases internal storage and must not be modified.
func (t *RuleTable) forSymbol(symbol string) []int {
	return t.bySymbol[symbol]
}

// DefinitionTable maps a symbol to its terminal substitution.
type DefinitionTable struct {
	defs map[string][]Literal
}

// NewDefinitionTable creates an empty definition table.
func NewDefinitionTable() *DefinitionTable {
	return &DefinitionTable{defs: make(map[string][]Literal)}
}

// Define stores the terminal substitution for symbol.
// It fails with a *DefinitionError if symbol is already defined.
func (t *DefinitionTable) Define(symbol string, substitution []Literal) error {
	if t.defs == nil {
		t.defs = make(map[string][]Literal)
	}
	if _, ok := t.defs[symbol]; ok {
		return &DefinitionError{Symbol: symbol}
	}
	t.defs[symbol] = slices.Clone(substitution)
	return nil
}

// Lookup returns a copy of the substitution defined for symbol.
func (t *DefinitionTable) Lookup(symbol string) ([]Literal, bool) {
	sub, ok := t.defs[symbol]
	return slices.Clone(sub), ok
}

// lookup returns the stored substitution without copying.
// The result must not be modified.
func (t *DefinitionTable) lookup(symbol string) ([]Literal, bool) {
	sub, ok := t.defs[symbol]
	return sub, ok
}

// Len returns the number of definitions.
func (t *DefinitionTable) Len() int { return len(t.defs) }

// Symbols returns the defined symbol names, sorted.
func (t *DefinitionTable) Symbols() []string {
	names := make([]string, 0, len(t.defs))
	for name := range t.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
