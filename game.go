// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/aedoom/spincube/internal/cube"
	"github.com/aedoom/spincube/internal/render"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

// orbitStep is how far one tick of an arrow key turns the view in degrees
const orbitStep = 3

type CubeGame struct {
	lock sync.Mutex

	pipeline  *cube.Pipeline
	animation *cube.Animation
	view      render.View
	lines     []cube.Line
	box       []cube.Line

	terminating bool
}

// NewCubeGame creates a game showing frame 0 of p
func NewCubeGame(p *cube.Pipeline) *CubeGame {
	g := &CubeGame{
		pipeline:  p,
		animation: cube.NewAnimation(),
		view:      render.DefaultView(),
		lines:     cube.NewLines(),
	}
	g.box = g.view.AxesBox()
	g.pipeline.Update(g.animation.Frame(), g.lines)
	return g
}

func (g *CubeGame) Update() error {
	g.lock.Lock()
	defer g.lock.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.terminating = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.animation.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.pipeline.SetProjection(g.pipeline.Projection().Next())
	}
	orbits := map[ebiten.Key][2]float64{
		ebiten.KeyLeft:  {-orbitStep, 0},
		ebiten.KeyRight: {orbitStep, 0},
		ebiten.KeyUp:    {0, orbitStep},
		ebiten.KeyDown:  {0, -orbitStep},
	}
	for key, orbit := range orbits {
		if ebiten.IsKeyPressed(key) {
			g.view.Orbit(orbit[0], orbit[1])
		}
	}

	g.pipeline.Update(g.animation.Next(), g.lines)

	if g.terminating {
		return ebiten.Termination
	}
	return nil
}

func (g *CubeGame) Draw(screen *ebiten.Image) {
	g.lock.Lock()
	defer g.lock.Unlock()

	screen.Fill(render.Background)
	g.drawLines(screen, g.box, render.AxesColor, 1)
	g.drawLines(screen, g.lines, render.CubeColor, 2)

	status := fmt.Sprintf("Cube rotation\nframe %d  projection %s", g.animation.Frame(), g.pipeline.Projection())
	if g.animation.Paused() {
		status += "  (paused)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (g *CubeGame) drawLines(screen *ebiten.Image, lines []cube.Line, clr color.Color, width float32) {
	for i := range lines {
		x0, y0, x1, y1, ok := g.view.ProjectLine(&lines[i], screenWidth, screenHeight)
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}

func (g *CubeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
