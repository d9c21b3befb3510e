// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command lsysdemo renders an L-system preset or YAML description to PNG.
//
//	lsysdemo -preset plant -output plant.png
//	lsysdemo -file my.yaml -depth 6 -thumb 128 -caption "my plant"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/lsystem"
	"github.com/gogpu/lsystem/config"
	"github.com/gogpu/lsystem/presets"
	"github.com/gogpu/lsystem/surface"
)

type flags struct {
	preset  string
	file    string
	depth   int
	width   int
	height  int
	output  string
	backend string
	seed    uint64
	seedSet bool
	thumb   int
	caption string
	list    bool
	verbose bool
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("lsysdemo: %v", err)
	}
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("lsysdemo", flag.ContinueOnError)
	fs.StringVar(&f.preset, "preset", "koch", "preset name (see -list)")
	fs.StringVar(&f.file, "file", "", "YAML description; overrides -preset")
	fs.IntVar(&f.depth, "depth", -1, "recursion depth; -1 keeps the description's depth")
	fs.IntVar(&f.width, "width", 0, "image width; 0 keeps the description's width")
	fs.IntVar(&f.height, "height", 0, "image height; 0 keeps the description's height")
	fs.StringVar(&f.output, "output", "lsystem.png", "output file")
	fs.StringVar(&f.backend, "backend", "", "render target (raster, image or recording); empty keeps the description's target")
	fs.Uint64Var(&f.seed, "seed", 0, "seed for random rotations")
	fs.IntVar(&f.thumb, "thumb", 0, "also write a thumbnail this many pixels wide")
	fs.StringVar(&f.caption, "caption", "", "text drawn in the lower left corner")
	fs.BoolVar(&f.list, "list", false, "list presets and exit")
	fs.BoolVar(&f.verbose, "v", false, "log evaluation details")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "seed" {
			f.seedSet = true
		}
	})
	if fs.NArg() > 0 {
		return f, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if f.thumb < 0 {
		return f, errors.New("-thumb must not be negative")
	}
	return f, nil
}

func run(args []string, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}
	if f.list {
		for _, name := range presets.Names() {
			desc := ""
			if p, err := presets.Load(name); err == nil {
				desc = p.Description
			}
			fmt.Fprintf(stdout, "%-12s %s\n", name, desc)
		}
		return nil
	}
	if f.verbose {
		lsystem.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer lsystem.SetLogger(nil)
	}

	desc, err := load(f)
	if err != nil {
		return err
	}

	var extra []lsystem.Option
	if f.seedSet {
		extra = append(extra, lsystem.WithSeed(f.seed))
	}
	sys, err := desc.Build(extra...)
	if err != nil {
		return err
	}

	r := desc.Render
	target, err := surface.NewTargetByName(r.Target, r.Width, r.Height)
	if err != nil {
		return err
	}
	defer target.Close()

	target.Clear(r.BackgroundColor())
	if err := sys.RenderAndFit(desc.AxiomLiterals(), target, desc.Depth); err != nil {
		return err
	}
	img, err := target.Image()
	if err != nil {
		return err
	}

	if err := writePNG(f.output, img, f.caption); err != nil {
		return err
	}
	log.Printf("%s saved to %s (%dx%d, depth %d, %s)", desc.Name, f.output, r.Width, r.Height, desc.Depth, r.Target)

	if f.thumb > 0 {
		path := thumbPath(f.output)
		if err := writeThumbnail(path, img, f.thumb); err != nil {
			return err
		}
		log.Printf("thumbnail saved to %s", path)
	}
	return nil
}

// load reads the description and applies the command line overrides.
func load(f flags) (*config.File, error) {
	var (
		desc *config.File
		err  error
	)
	if f.file != "" {
		desc, err = config.Load(f.file)
	} else {
		desc, err = presets.Load(f.preset)
	}
	if err != nil {
		return nil, err
	}

	if f.depth >= 0 {
		desc.Depth = f.depth
	}
	if f.width > 0 {
		desc.Render.Width = f.width
	}
	if f.height > 0 {
		desc.Render.Height = f.height
	}
	if f.backend != "" {
		desc.Render.Target = f.backend
	}
	if desc.Name == "" {
		desc.Name = f.file
	}
	return desc, nil
}
