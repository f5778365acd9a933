// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func block3(m mgl64.Mat4) mgl64.Mat3 {
	var b mgl64.Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b.Set(row, col, m.At(row, col))
		}
	}
	return b
}

func TestRotationZeroIsIdentity(t *testing.T) {
	for _, axis := range []string{"x", "y", "z", "X", "Y", "Z"} {
		t.Run(axis, func(t *testing.T) {
			m, err := Rotation(0, axis)
			require.NoError(t, err)
			assert.True(t, m.ApproxEqualThreshold(mgl64.Ident4(), eps), "got %v", m)
		})
	}
}

func TestRotationIsOrthogonal(t *testing.T) {
	for _, axis := range []string{"x", "y", "z"} {
		for _, theta := range []float64{0.3, math.Pi / 2, 2.5, -1.1} {
			m, err := Rotation(theta, axis)
			require.NoError(t, err)
			b := block3(m)
			assert.True(t, b.Transpose().ApproxEqualThreshold(b.Inv(), eps),
				"axis %s theta %v: transpose != inverse", axis, theta)
			assert.InDelta(t, 1, b.Det(), eps)
		}
	}
}

func TestRotationMatchesMathgl(t *testing.T) {
	theta := 0.7
	cases := []struct {
		axis string
		want mgl64.Mat4
	}{
		{"x", mgl64.HomogRotate3DX(theta)},
		{"y", mgl64.HomogRotate3DY(theta)},
		{"z", mgl64.HomogRotate3DZ(theta)},
	}
	for _, c := range cases {
		m, err := Rotation(theta, c.axis)
		require.NoError(t, err)
		assert.True(t, m.ApproxEqualThreshold(c.want, eps), "axis %s: got %v want %v", c.axis, m, c.want)
	}
}

func TestRotationInvalidAxis(t *testing.T) {
	_, err := Rotation(1, "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAxis)

	assert.Panics(t, func() { MustRotation(1, "w") })
}

func TestTranslationOfOrigin(t *testing.T) {
	m := Translation(1.5, -2, 7)
	got := m.Mul4x1(mgl64.Vec4{0, 0, 0, 1})
	assert.Equal(t, mgl64.Vec4{1.5, -2, 7, 1}, got)
	assert.True(t, m.ApproxEqualThreshold(mgl64.Translate3D(1.5, -2, 7), eps))
}

func TestOrthographicMapsClipPlanes(t *testing.T) {
	n, f := 1.0, 100.0
	m := Orthographic(-1, 1, -1, 1, n, f)

	near := m.Mul4x1(mgl64.Vec4{0, 0, -n, 1})
	far := m.Mul4x1(mgl64.Vec4{0, 0, -f, 1})
	assert.InDelta(t, -1, near.Z(), eps)
	assert.InDelta(t, 1, far.Z(), eps)
	assert.True(t, m.ApproxEqualThreshold(mgl64.Ortho(-1, 1, -1, 1, n, f), eps))
}

func TestPerspectiveMapsClipPlanes(t *testing.T) {
	n, f := 1.0, 100.0
	m := Perspective(40, 1, n, f)

	vs := Transform(m, []mgl64.Vec4{{0, 0, -n, 1}, {0, 0, -f, 1}})
	Normalize(vs)
	assert.InDelta(t, -1, vs[0].Z(), eps)
	assert.InDelta(t, 1, vs[1].Z(), eps)

	want := mgl64.Perspective(mgl64.DegToRad(40), 1, n, f)
	assert.True(t, m.ApproxEqualThreshold(want, eps), "got %v want %v", m, want)
}

func TestDegenerateProjection(t *testing.T) {
	m := Orthographic(0, 0, -1, 1, 5, 5)
	assert.True(t, math.IsInf(m.At(0, 0), 1))
	assert.True(t, math.IsNaN(m.At(0, 3)))
	assert.True(t, math.IsInf(m.At(2, 2), -1))

	p := Perspective(40, 1, 2, 2)
	assert.True(t, math.IsInf(p.At(2, 3), 0))
}

func TestNormalize(t *testing.T) {
	vs := []mgl64.Vec4{{2, 4, 6, 2}, {1, 1, 1, 1}}
	Normalize(vs)
	assert.Equal(t, mgl64.Vec4{1, 2, 3, 1}, vs[0])
	assert.Equal(t, mgl64.Vec4{1, 1, 1, 1}, vs[1])
}
