// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads L-system descriptions from YAML.
//
// A description holds the axiom, rules and definitions as structured
// literal lists (see Sequence) plus render settings:
//
//	name: koch
//	depth: 4
//	axiom: [F]
//	rules:
//	  - symbol: F
//	    substitution: [F, {rotate: -60}, F, {rotate: 120}, F, {rotate: -60}, F]
//	definitions:
//	  - symbol: F
//	    substitution: [{draw: 1}]
//	render:
//	  width: 800
//	  height: 400
//
// Before parsing, ${VAR} and $VAR references are replaced with the
// values of the named environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gg"
	"github.com/gogpu/lsystem"
)

// Defaults applied by Parse to fields left empty.
const (
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultTarget     = "raster"
	DefaultBackground = "#ffffff"
	DefaultStroke     = "#000000"
	DefaultLeaf       = "#3b7d2cd9"
)

// File is a parsed L-system description.
type File struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Depth       int          `yaml:"depth"`
	Axiom       Sequence     `yaml:"axiom"`
	Rules       []Production `yaml:"rules"`
	Definitions []Production `yaml:"definitions"`
	Render      Render       `yaml:"render"`
}

// Production is one rule or definition entry.
type Production struct {
	Symbol       string   `yaml:"symbol"`
	Substitution Sequence `yaml:"substitution"`
}

// Render holds output settings.
type Render struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Target     string  `yaml:"target"`
	Background string  `yaml:"background"`
	Stroke     string  `yaml:"stroke"`
	Leaf       string  `yaml:"leaf"`
	Blend      string  `yaml:"blend"`
	Padding    float64 `yaml:"padding"`
	Uniform    bool    `yaml:"uniform"`
	Seed       *uint64 `yaml:"seed"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid description")

var (
	envVarPattern = regexp.MustCompile(`\$\{?(\w+)\}?`)
	hexPattern    = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

var blendModes = map[string]gg.BlendMode{
	"":         gg.BlendNormal,
	"normal":   gg.BlendNormal,
	"multiply": gg.BlendMultiply,
	"screen":   gg.BlendScreen,
	"overlay":  gg.BlendOverlay,
}

// interpolateEnvVars replaces ${VAR} and $VAR with environment values.
// Unset variables become empty strings.
func interpolateEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(ref string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(ref, "$"), "{"), "}")
		return os.Getenv(name)
	})
}

// Load reads and parses the description at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a description, applies defaults and validates it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal([]byte(interpolateEnvVars(string(data))), &f); err != nil {
		return nil, err
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	r := &f.Render
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Target == "" {
		r.Target = DefaultTarget
	}
	if r.Background == "" {
		r.Background = DefaultBackground
	}
	if r.Stroke == "" {
		r.Stroke = DefaultStroke
	}
	if r.Leaf == "" {
		r.Leaf = DefaultLeaf
	}
}

// Validate reports the first problem in f.
func (f *File) Validate() error {
	if f.Depth < 0 {
		return fmt.Errorf("%w: negative depth %d", ErrInvalid, f.Depth)
	}
	if len(f.Axiom) == 0 {
		return fmt.Errorf("%w: empty axiom", ErrInvalid)
	}
	for i, p := range f.Rules {
		if p.Symbol == "" {
			return fmt.Errorf("%w: rule %d has no symbol", ErrInvalid, i)
		}
	}
	seen := make(map[string]bool, len(f.Definitions))
	for i, p := range f.Definitions {
		if p.Symbol == "" {
			return fmt.Errorf("%w: definition %d has no symbol", ErrInvalid, i)
		}
		if seen[p.Symbol] {
			return fmt.Errorf("%w: %q defined twice", ErrInvalid, p.Symbol)
		}
		seen[p.Symbol] = true
	}

	r := f.Render
	if r.Width < 0 || r.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, r.Width, r.Height)
	}
	if r.Padding < 0 {
		return fmt.Errorf("%w: negative padding", ErrInvalid)
	}
	for _, c := range []struct{ field, value string }{
		{"background", r.Background},
		{"stroke", r.Stroke},
		{"leaf", r.Leaf},
	} {
		if !hexPattern.MatchString(c.value) {
			return fmt.Errorf("%w: %s color %q is not a hex color", ErrInvalid, c.field, c.value)
		}
	}
	if _, ok := blendModes[r.Blend]; !ok {
		return fmt.Errorf("%w: unknown blend mode %q", ErrInvalid, r.Blend)
	}
	return nil
}

// BackgroundColor returns the parsed background color.
func (r Render) BackgroundColor() gg.RGBA { return gg.Hex(r.Background) }

// BlendMode returns the parsed blend mode.
func (r Render) BlendMode() gg.BlendMode { return blendModes[r.Blend] }

// Options returns the lsystem options described by the render settings.
func (r Render) Options() []lsystem.Option {
	opts := []lsystem.Option{
		lsystem.WithPalette(gg.Hex(r.Stroke), gg.Hex(r.Leaf)),
		lsystem.WithBlendMode(r.BlendMode()),
		lsystem.WithFit(lsystem.FitOptions{Padding: r.Padding, Uniform: r.Uniform}),
	}
	if r.Seed != nil {
		opts = append(opts, lsystem.WithSeed(*r.Seed))
	}
	return opts
}

// Build creates a System holding f's rules and definitions. Rules keep
// their order in the file, which fixes their indices.
func (f *File) Build(extra ...lsystem.Option) (*lsystem.System, error) {
	sys := lsystem.New(append(f.Render.Options(), extra...)...)
	for _, p := range f.Rules {
		sys.AddRule(p.Symbol, p.Substitution...)
	}
	for _, p := range f.Definitions {
		if err := sys.Define(p.Symbol, p.Substitution...); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

// AxiomLiterals returns the axiom as a literal slice.
func (f *File) AxiomLiterals() []lsystem.Literal {
	return []lsystem.Literal(f.Axiom)
}
