// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aedoom/spincube/internal/cube"
	"github.com/aedoom/spincube/internal/render"
)

var (
	// FlagProjection is the projection applied after the model view
	FlagProjection = flag.String("projection", "none", "projection: none, perspective or orthographic")
	// FlagExport writes one animation cycle to a gif and exits
	FlagExport = flag.String("export", "", "write the animation to this gif file and exit")
	// FlagFullscreen opens the window fullscreen
	FlagFullscreen = flag.Bool("fullscreen", false, "fullscreen window")
)

// exportSize is the width and height of exported frames
const exportSize = 480

func export(path string, p *cube.Pipeline) error {
	if !CanExport {
		return fmt.Errorf("export is not supported on this platform")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.ExportGIF(out, p, render.DefaultView(), exportSize); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func main() {
	flag.Parse()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		os.Exit(1)
	}()

	projection, err := cube.ParseProjection(*FlagProjection)
	if err != nil {
		log.Fatal(err)
	}
	pipeline := cube.NewPipeline(cube.WithProjection(projection))

	if *FlagExport != "" {
		if err := export(*FlagExport, pipeline); err != nil {
			log.Fatalf("export %s: %v", *FlagExport, err)
		}
		log.Printf("wrote %s", *FlagExport)
		return
	}

	game := NewCubeGame(pipeline)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Cube rotation")
	ebiten.SetFullscreen(*FlagFullscreen)
	ebiten.SetTPS(int(time.Second / cube.Interval))
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
