// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	"github.com/aedoom/spincube/internal/cube"
)

var (
	// Background is the surface color
	Background = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	// AxesColor is the color of the axes box
	AxesColor = color.RGBA{0xB0, 0xB0, 0xB0, 0xFF}
	// CubeColor is the color of the cube lines
	CubeColor = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
)

const (
	indexBackground = iota
	indexAxes
	indexCube
)

var exportPalette = color.Palette{Background, AxesColor, CubeColor}

// ExportGIF renders one animation cycle of p into a looping gif of
// size x size pixels, one image per frame.
func ExportGIF(w io.Writer, p *cube.Pipeline, v View, size int) error {
	if size <= 0 {
		return fmt.Errorf("export gif: invalid size %d", size)
	}
	delay := int(cube.Interval.Milliseconds() / 10)
	anim := &gif.GIF{LoopCount: 0}
	box := v.AxesBox()
	lines := cube.NewLines()
	frames := cube.Frames()
	for _, frame := range frames {
		img := image.NewPaletted(image.Rect(0, 0, size, size), exportPalette)
		for i := range box {
			drawLine(img, v, &box[i], indexAxes)
		}
		p.Update(frame, lines)
		for i := range lines {
			drawLine(img, v, &lines[i], indexCube)
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export gif: %w", err)
	}
	return nil
}

func drawLine(img *image.Paletted, v View, l *cube.Line, index uint8) {
	bounds := img.Bounds()
	fx0, fy0, fx1, fy1, ok := v.ProjectLine(l, bounds.Dx(), bounds.Dy())
	if !ok {
		return
	}
	// keep far away points from overflowing the raster loop
	limit := float64(4 * (bounds.Dx() + bounds.Dy()))
	if math.Abs(fx0) > limit || math.Abs(fy0) > limit || math.Abs(fx1) > limit || math.Abs(fy1) > limit {
		return
	}
	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(bounds) {
			img.SetColorIndex(x0, y0, index)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
