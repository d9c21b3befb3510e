// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/lsystem"
)

// Sequence is a YAML list of literals.
//
// Each item is either a scalar or a single-key mapping:
//
//	- F                 # symbol reference
//	- save              # also "["
//	- restore           # also "]"
//	- ref: save         # symbol reference whose name collides with a keyword
//	- draw: 10
//	- move: 10
//	- rotate: 25
//	- rrotate: [-10, 10]
//	- thickness: 2
//	- sthickness: 0.7
//	- leaf: 4
type Sequence []lsystem.Literal

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sequence) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return nodeErrorf(value, "literal list must be a sequence")
	}
	out := make(Sequence, 0, len(value.Content))
	for _, item := range value.Content {
		lit, err := decodeLiteral(item)
		if err != nil {
			return err
		}
		out = append(out, lit)
	}
	*s = out
	return nil
}

func decodeLiteral(n *yaml.Node) (lsystem.Literal, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Value {
		case "":
			return nil, nodeErrorf(n, "empty literal")
		case "save", "[":
			return lsystem.Save{}, nil
		case "restore", "]":
			return lsystem.Restore{}, nil
		default:
			return lsystem.Ref(n.Value), nil
		}
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, nodeErrorf(n, "literal mapping must have exactly one key")
		}
		return decodeOperation(n.Content[0].Value, n.Content[1])
	default:
		return nil, nodeErrorf(n, "literal must be a scalar or a one-key mapping")
	}
}

func decodeOperation(op string, arg *yaml.Node) (lsystem.Literal, error) {
	if op == "ref" {
		var name string
		if err := arg.Decode(&name); err != nil || name == "" {
			return nil, nodeErrorf(arg, "ref needs a symbol name")
		}
		return lsystem.Ref(name), nil
	}
	if op == "rrotate" {
		var r [2]float64
		if err := arg.Decode(&r); err != nil {
			var m struct {
				Min float64 `yaml:"min"`
				Max float64 `yaml:"max"`
			}
			if err := arg.Decode(&m); err != nil {
				return nil, nodeErrorf(arg, "rrotate needs [min, max]")
			}
			r = [2]float64{m.Min, m.Max}
		}
		return lsystem.RandomRotate{Min: r[0], Max: r[1]}, nil
	}

	var v float64
	if err := arg.Decode(&v); err != nil {
		return nil, nodeErrorf(arg, "%s needs a number", op)
	}
	switch op {
	case "draw":
		return lsystem.Draw{Distance: v}, nil
	case "move":
		return lsystem.Move{Distance: v}, nil
	case "rotate":
		return lsystem.Rotate{Angle: v}, nil
	case "thickness":
		return lsystem.SetThickness{Value: v}, nil
	case "sthickness":
		return lsystem.ScaleThickness{Factor: v}, nil
	case "leaf":
		return lsystem.Leaf{BaseSize: v}, nil
	default:
		return nil, nodeErrorf(arg, "unknown literal %q", op)
	}
}

func nodeErrorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("config: line %d: %s", n.Line, fmt.Sprintf(format, args...))
}
