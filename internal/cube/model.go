// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cube holds the wireframe cube and the per frame pipeline that
// moves it.
package cube

import "github.com/go-gl/mathgl/mgl64"

// Edge is a pair of vertex indexes
type Edge [2]int

// Vertices are the corners of the cube in homogeneous coordinates
var Vertices = [8]mgl64.Vec4{
	{-1, -1, 1, 1},
	{1, -1, 1, 1},
	{1, 1, 1, 1},
	{-1, 1, 1, 1},
	{-1, -1, -1, 1},
	{1, -1, -1, 1},
	{1, 1, -1, 1},
	{-1, 1, -1, 1},
}

// Edges are the twelve lines of the wireframe
var Edges = [12]Edge{
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// Line is a drawable segment between two points
type Line struct {
	X, Y, Z [2]float64
}

// SetData sets the x and y coordinates of both ends
func (l *Line) SetData(x, y [2]float64) {
	l.X, l.Y = x, y
}

// Set3DProperties sets the z coordinates of both ends
func (l *Line) Set3DProperties(z [2]float64) {
	l.Z = z
}

// Points returns the two ends of the line
func (l *Line) Points() (a, b mgl64.Vec3) {
	return mgl64.Vec3{l.X[0], l.Y[0], l.Z[0]}, mgl64.Vec3{l.X[1], l.Y[1], l.Z[1]}
}

// NewLines returns one empty line per edge
func NewLines() []Line {
	return make([]Line, len(Edges))
}
