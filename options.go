// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// Option configures a System during creation.
//
// Example:
//
//	sys := lsystem.New(
//	    lsystem.WithSeed(42),
//	    lsystem.WithPalette(gg.Hex("#3b2a1a"), gg.Hex("#4f9a3a")),
//	)
type Option func(*options)

type options struct {
	random RandomSource
	seed   uint64
	seeded bool

	strokeColor gg.RGBA
	leafColor   gg.RGBA
	blendMode   gg.BlendMode

	fit    FitOptions
	trace  func(Step)
	strict bool
}

func defaultOptions() options {
	return options{
		strokeColor: gg.RGB(0, 0, 0),
		leafColor:   gg.RGBA2(0.23, 0.49, 0.17, 0.85),
		blendMode:   gg.BlendNormal,
	}
}

// WithRandomSource makes every evaluation run sample RandomRotate from src.
// Measure and render draw independent samples from the shared source.
// src must be safe for concurrent use if runs overlap.
func WithRandomSource(src RandomSource) Option {
	return func(o *options) {
		o.random = src
		o.seeded = false
	}
}

// WithSeed gives every evaluation run its own generator seeded with seed,
// so measure and render replay identical RandomRotate samples.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
		o.random = nil
	}
}

// WithPalette sets the stroke color for Draw and the fill color for Leaf.
func WithPalette(stroke, leaf gg.RGBA) Option {
	return func(o *options) {
		o.strokeColor = stroke
		o.leafColor = leaf
	}
}

// WithBlendMode sets the blend mode applied to the surface before rendering.
func WithBlendMode(mode gg.BlendMode) Option {
	return func(o *options) {
		o.blendMode = mode
	}
}

// WithFit configures how RenderAndFit maps bounds onto the surface.
func WithFit(fit FitOptions) Option {
	return func(o *options) {
		o.fit = fit
	}
}

// WithTrace registers fn to observe every symbol resolution.
// fn runs synchronously on the evaluating goroutine.
func WithTrace(fn func(Step)) Option {
	return func(o *options) {
		o.trace = fn
	}
}

// WithStrictSymbols makes evaluation fail with ErrUnresolvedSymbol
// instead of dropping symbols that have neither a rule nor a definition.
func WithStrictSymbols() Option {
	return func(o *options) {
		o.strict = true
	}
}

// randomFor returns the source used by one evaluation run.
func (o *options) randomFor() RandomSource {
	switch {
	case o.random != nil:
		return o.random
	case o.seeded:
		return NewPCGSource(o.seed)
	default:
		return NewPCGSource(rand.Uint64())
	}
}
