// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

const captionSize = 14

// writePNG saves img to path, drawing caption in the lower left corner
// when it is not empty.
func writePNG(path string, img image.Image, caption string) error {
	dc := gg.NewContextForImage(img)
	defer dc.Close()

	if caption != "" {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return fmt.Errorf("caption font: %w", err)
		}
		dc.SetFont(src.Face(captionSize))
		dc.SetRGBA(0, 0, 0, 0.75)
		dc.DrawStringAnchored(caption, captionSize/2, float64(dc.Height())-captionSize/2, 0, 1)
	}
	return dc.SavePNG(path)
}

// writeThumbnail saves a copy of img scaled to width pixels.
func writeThumbnail(path string, img image.Image, width int) error {
	b := img.Bounds()
	height := max(1, b.Dy()*width/b.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	dc := gg.NewContextForImage(dst)
	defer dc.Close()
	return dc.SavePNG(path)
}

// thumbPath returns "name.thumb.png" for "name.png".
func thumbPath(output string) string {
	ext := filepath.Ext(output)
	return strings.TrimSuffix(output, ext) + ".thumb" + ext
}
