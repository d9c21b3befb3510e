// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gg"
)

// TargetFactory creates a Target of the given size.
type TargetFactory func(width, height int) (Target, error)

// RegistryEntry describes a registered target.
type RegistryEntry struct {
	Name string

	// Priority orders List and picks the default target (higher first).
	Priority int

	Factory TargetFactory
}

// Registry maps target names to factories.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]RegistryEntry
}

// NewRegistry creates an empty registry.
// Most code uses the package-level functions, which share one registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]RegistryEntry)}
}

var defaultRegistry = NewRegistry()

// Register adds a target to the default registry, replacing any entry
// with the same name.
func Register(name string, priority int, factory TargetFactory) {
	defaultRegistry.Register(name, priority, factory)
}

// List returns the names in the default registry, highest priority first.
func List() []string { return defaultRegistry.List() }

// NewTarget creates a target with the highest-priority factory.
func NewTarget(width, height int) (Target, error) {
	return defaultRegistry.NewTarget(width, height)
}

// NewTargetByName creates a target with the named factory.
func NewTargetByName(name string, width, height int) (Target, error) {
	return defaultRegistry.NewTargetByName(name, width, height)
}

// Register adds a target to r.
func (r *Registry) Register(name string, priority int, factory TargetFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]RegistryEntry)
	}
	r.entries[name] = RegistryEntry{Name: name, Priority: priority, Factory: factory}
}

// Unregister removes a target from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns the registered names, highest priority first. Names with
// equal priority are sorted alphabetically.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// NewTarget tries each factory in priority order and returns the first
// target created successfully.
func (r *Registry) NewTarget(width, height int) (Target, error) {
	names := r.List()
	if len(names) == 0 {
		return nil, ErrNoTarget
	}
	var errs []error
	for _, name := range names {
		t, err := r.NewTargetByName(name, width, height)
		if err == nil {
			return t, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewTargetByName creates a target with the named factory.
func (r *Registry) NewTargetByName(name string, width, height int) (Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid target size %dx%d", width, height)
	}
	e, ok := r.Get(name)
	if !ok {
		return nil, &TargetNotFoundError{Name: name}
	}
	return e.Factory(width, height)
}

// ErrNoTarget is returned when the registry is empty.
var ErrNoTarget = errors.New("surface: no target registered")

// TargetNotFoundError indicates a name with no registered factory.
type TargetNotFoundError struct {
	Name string
}

func (e *TargetNotFoundError) Error() string {
	return "surface: target not found: " + e.Name
}

func init() {
	Register("raster", 10, func(w, h int) (Target, error) {
		return NewContextTarget(gg.NewContext(w, h)), nil
	})
	Register("image", 8, func(w, h int) (Target, error) {
		return NewImageTarget(w, h), nil
	})
	Register("recording", 5, func(w, h int) (Target, error) {
		return NewRecorderTarget(w, h), nil
	})
}
