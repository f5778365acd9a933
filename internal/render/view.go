// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render maps cube lines onto a 2D surface the way a 3D plot axis
// does and exports whole animations.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/aedoom/spincube/internal/cube"
)

const (
	// DefaultAzimuth is the default azimuth in degrees
	DefaultAzimuth = -60
	// DefaultElevation is the default elevation in degrees
	DefaultElevation = 30
	// DefaultLimit bounds every axis to [-3, 3]
	DefaultLimit = 3
)

// View is an orthographic camera looking at the axes box. z is up.
type View struct {
	// Azimuth is the rotation about z in degrees
	Azimuth float64
	// Elevation is the angle above the x-y plane in degrees
	Elevation float64
	// Limit is the half width of the axes box in data units
	Limit float64
	// Zoom scales the drawing
	Zoom float64
}

// DefaultView returns the view a fresh 3D plot opens with
func DefaultView() View {
	return View{
		Azimuth:   DefaultAzimuth,
		Elevation: DefaultElevation,
		Limit:     DefaultLimit,
		Zoom:      1,
	}
}

// Orbit turns the view, keeping the elevation within +-90 degrees
func (v *View) Orbit(azimuth, elevation float64) {
	v.Azimuth = math.Mod(v.Azimuth+azimuth, 360)
	v.Elevation = math.Max(-90, math.Min(90, v.Elevation+elevation))
}

func (v View) basis() (right, up, eye mgl64.Vec3) {
	azim := mgl64.DegToRad(v.Azimuth)
	elev := mgl64.DegToRad(v.Elevation)
	sa, ca := math.Sincos(azim)
	se, ce := math.Sincos(elev)
	right = mgl64.Vec3{-sa, ca, 0}
	up = mgl64.Vec3{-se * ca, -se * sa, ce}
	eye = mgl64.Vec3{ce * ca, ce * sa, se}
	return right, up, eye
}

// Project maps a data point onto a width x height surface. depth grows
// toward the viewer. ok is false for points that are not finite.
func (v View) Project(p mgl64.Vec3, width, height int) (x, y, depth float64, ok bool) {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return 0, 0, 0, false
		}
	}
	limit, zoom := v.Limit, v.Zoom
	if limit <= 0 {
		limit = DefaultLimit
	}
	if zoom <= 0 {
		zoom = 1
	}
	p = p.Mul(1 / limit)
	right, up, eye := v.basis()
	scale := zoom * math.Min(float64(width), float64(height)) / 5
	x = float64(width)/2 + p.Dot(right)*scale
	y = float64(height)/2 - p.Dot(up)*scale
	return x, y, p.Dot(eye), true
}

// ProjectLine maps both ends of a line
func (v View) ProjectLine(l *cube.Line, width, height int) (x0, y0, x1, y1 float64, ok bool) {
	a, b := l.Points()
	x0, y0, _, ok0 := v.Project(a, width, height)
	x1, y1, _, ok1 := v.Project(b, width, height)
	return x0, y0, x1, y1, ok0 && ok1
}

// AxesBox returns the edges of the axes box as lines
func (v View) AxesBox() []cube.Line {
	limit := v.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	lines := make([]cube.Line, len(cube.Edges))
	for i, e := range cube.Edges {
		a, b := cube.Vertices[e[0]].Vec3().Mul(limit), cube.Vertices[e[1]].Vec3().Mul(limit)
		lines[i].SetData([2]float64{a.X(), b.X()}, [2]float64{a.Y(), b.Y()})
		lines[i].Set3DProperties([2]float64{a.Z(), b.Z()})
	}
	return lines
}
