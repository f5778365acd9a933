// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry builds the 4x4 homogeneous transforms used to move and
// project the cube.
package geometry

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidAxis is returned for a rotation axis other than x, y or z
var ErrInvalidAxis = errors.New("axis must be 'x', 'y', or 'z'")

// Rotation returns the right handed rotation of theta radians about axis.
// The axis name is case insensitive.
func Rotation(theta float64, axis string) (mgl64.Mat4, error) {
	c, s := math.Cos(theta), math.Sin(theta)
	switch strings.ToLower(axis) {
	case "x":
		return mgl64.Mat4FromRows(
			mgl64.Vec4{1, 0, 0, 0},
			mgl64.Vec4{0, c, -s, 0},
			mgl64.Vec4{0, s, c, 0},
			mgl64.Vec4{0, 0, 0, 1},
		), nil
	case "y":
		return mgl64.Mat4FromRows(
			mgl64.Vec4{c, 0, s, 0},
			mgl64.Vec4{0, 1, 0, 0},
			mgl64.Vec4{-s, 0, c, 0},
			mgl64.Vec4{0, 0, 0, 1},
		), nil
	case "z":
		return mgl64.Mat4FromRows(
			mgl64.Vec4{c, -s, 0, 0},
			mgl64.Vec4{s, c, 0, 0},
			mgl64.Vec4{0, 0, 1, 0},
			mgl64.Vec4{0, 0, 0, 1},
		), nil
	}
	return mgl64.Mat4{}, fmt.Errorf("rotation about %q: %w", axis, ErrInvalidAxis)
}

// MustRotation is like Rotation but panics on an invalid axis
func MustRotation(theta float64, axis string) mgl64.Mat4 {
	m, err := Rotation(theta, axis)
	if err != nil {
		panic(err)
	}
	return m
}

// Translation returns the transform that moves a point by (x, y, z)
func Translation(x, y, z float64) mgl64.Mat4 {
	return mgl64.Mat4FromRows(
		mgl64.Vec4{1, 0, 0, x},
		mgl64.Vec4{0, 1, 0, y},
		mgl64.Vec4{0, 0, 1, z},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// Perspective returns an OpenGL style perspective projection. fov is the
// vertical field of view in degrees. Degenerate planes (near == far) are not
// rejected and yield infinite or NaN entries.
func Perspective(fov, aspect, near, far float64) mgl64.Mat4 {
	t := math.Tan(mgl64.DegToRad(fov)/2) * math.Abs(near)
	b := -t
	r := t * aspect
	l := -r
	n, f := near, far
	return mgl64.Mat4FromRows(
		mgl64.Vec4{2 * n / (r - l), 0, (r + l) / (r - l), 0},
		mgl64.Vec4{0, 2 * n / (t - b), (t + b) / (t - b), 0},
		mgl64.Vec4{0, 0, -(f + n) / (f - n), -2 * f * n / (f - n)},
		mgl64.Vec4{0, 0, -1, 0},
	)
}

// Orthographic returns an OpenGL style orthographic projection of the box
// bounded by left/right, bottom/top and near/far. Degenerate bounds are not
// rejected.
func Orthographic(left, right, bottom, top, near, far float64) mgl64.Mat4 {
	l, r, b, t, n, f := left, right, bottom, top, near, far
	return mgl64.Mat4FromRows(
		mgl64.Vec4{2 / (r - l), 0, 0, -(r + l) / (r - l)},
		mgl64.Vec4{0, 2 / (t - b), 0, -(t + b) / (t - b)},
		mgl64.Vec4{0, 0, -2 / (f - n), -(f + n) / (f - n)},
		mgl64.Vec4{0, 0, 0, 1},
	)
}

// Transform applies m to every vertex and returns the new vertices
func Transform(m mgl64.Mat4, vertices []mgl64.Vec4) []mgl64.Vec4 {
	out := make([]mgl64.Vec4, len(vertices))
	for i, v := range vertices {
		out[i] = m.Mul4x1(v)
	}
	return out
}

// Normalize divides each vertex by its w coordinate in place
func Normalize(vertices []mgl64.Vec4) {
	for i, v := range vertices {
		w := v.W()
		vertices[i] = mgl64.Vec4{v[0] / w, v[1] / w, v[2] / w, v[3] / w}
	}
}
