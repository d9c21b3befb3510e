// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import "math/rand/v2"

// RandomSource produces uniformly distributed floats.
type RandomSource interface {
	// Uniform returns a value in [lo, hi). When lo == hi it returns lo.
	Uniform(lo, hi float64) float64
}

// PCGSource is a RandomSource backed by a PCG generator.
// It is not safe for concurrent use.
type PCGSource struct {
	r *rand.Rand
}

// NewPCGSource returns a deterministic source for seed.
func NewPCGSource(seed uint64) *PCGSource {
	return &PCGSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform implements RandomSource.
func (s *PCGSource) Uniform(lo, hi float64) float64 {
	if lo == hi {
		return lo
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + s.r.Float64()*(hi-lo)
}
