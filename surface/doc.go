// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface adapts gg drawing targets to lsystem.Surface.
//
// # Targets
//
//   - ContextTarget: immediate rasterization on a *gg.Context
//   - ImageTarget: gg's CPU image surface; the target applies transforms
//     to points itself
//   - RecorderTarget: command capture on a *recording.Recorder, rasterized
//     on demand through gg's raster recording backend
//
// All implement Target, which adds background clearing and image output
// to the drawing calls the evaluator makes.
//
// # Registry
//
// Targets are created by name, mirroring gg's backend registry:
//
//	t, err := surface.NewTargetByName("raster", 800, 600)
//	if err != nil {
//	    return err
//	}
//	defer t.Close()
//	err = sys.RenderAndFit(axiom, t, depth)
//
// "raster", "image" and "recording" are registered at init. Additional targets can
// be added with Register.
package surface
