// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import "testing"

func TestPCGSourceDeterministic(t *testing.T) {
	a := NewPCGSource(42)
	b := NewPCGSource(42)
	for i := 0; i < 100; i++ {
		va, vb := a.Uniform(-10, 10), b.Uniform(-10, 10)
		if va != vb {
			t.Fatalf("sample %d: %v != %v", i, va, vb)
		}
		if va < -10 || va >= 10 {
			t.Fatalf("sample %d = %v, outside [-10, 10)", i, va)
		}
	}
}

func TestPCGSourceEdges(t *testing.T) {
	s := NewPCGSource(1)
	if got := s.Uniform(3, 3); got != 3 {
		t.Errorf("Uniform(3, 3) = %v, want 3", got)
	}
	for i := 0; i < 50; i++ {
		if v := s.Uniform(5, -5); v < -5 || v >= 5 {
			t.Fatalf("Uniform(5, -5) = %v, outside [-5, 5)", v)
		}
	}
}

func TestSeedOptionGivesEachRunFreshSource(t *testing.T) {
	o := defaultOptions()
	WithSeed(9)(&o)
	r1, r2 := o.randomFor(), o.randomFor()
	if r1 == r2 {
		t.Fatal("seeded runs share one source")
	}
	if r1.Uniform(0, 1) != r2.Uniform(0, 1) {
		t.Error("seeded runs produced different first samples")
	}

	shared := NewPCGSource(1)
	WithRandomSource(shared)(&o)
	if o.randomFor() != RandomSource(shared) {
		t.Error("WithRandomSource did not override WithSeed")
	}
}
