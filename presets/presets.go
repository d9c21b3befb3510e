// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package presets bundles ready-made L-system descriptions.
//
// Each preset is a config description embedded in the binary:
//
//	f, err := presets.Load("plant")
//	if err != nil { ... }
//	sys, err := f.Build()
package presets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/gogpu/lsystem/config"
)

//go:embed data/*.yaml
var files embed.FS

// UnknownPresetError is returned by Load for a name with no preset.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("presets: unknown preset %q (have %s)", e.Name, strings.Join(Names(), ", "))
}

// Names returns the preset names in alphabetical order.
func Names() []string {
	entries, err := fs.ReadDir(files, "data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// Load parses the named preset. Every call returns a fresh File.
func Load(name string) (*config.File, error) {
	data, err := Source(name)
	if err != nil {
		return nil, err
	}
	f, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("presets: %s: %w", name, err)
	}
	return f, nil
}

// Source returns the YAML text of the named preset.
func Source(name string) ([]byte, error) {
	if !slices.Contains(Names(), name) {
		return nil, &UnknownPresetError{Name: name}
	}
	return files.ReadFile(path.Join("data", name+".yaml"))
}
