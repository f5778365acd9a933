// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/aedoom/spincube/internal/geometry"
)

// ErrUnknownProjection is returned by ParseProjection
var ErrUnknownProjection = errors.New("unknown projection")

type (
	// Projection selects the projection applied after the model view
	Projection uint
)

const (
	// ProjectionNone leaves vertices in view space
	ProjectionNone Projection = iota
	// ProjectionPerspective applies a 40 degree perspective
	ProjectionPerspective
	// ProjectionOrthographic applies a unit orthographic box
	ProjectionOrthographic
	// ProjectionCount is the number of projections
	ProjectionCount
)

var projectionNames = [ProjectionCount]string{"none", "perspective", "orthographic"}

func (p Projection) String() string {
	if p < ProjectionCount {
		return projectionNames[p]
	}
	return fmt.Sprintf("Projection(%d)", uint(p))
}

// Next returns the projection after p, wrapping around
func (p Projection) Next() Projection {
	return (p + 1) % ProjectionCount
}

// Matrix returns the projection transform and whether one applies
func (p Projection) Matrix() (mgl64.Mat4, bool) {
	switch p {
	case ProjectionPerspective:
		return geometry.Perspective(40, 1, 1, 100), true
	case ProjectionOrthographic:
		return geometry.Orthographic(-1, 1, -1, 1, 1, 100), true
	}
	return mgl64.Ident4(), false
}

// ParseProjection parses a projection name
func ParseProjection(name string) (Projection, error) {
	for i, n := range projectionNames {
		if strings.EqualFold(name, n) {
			return Projection(i), nil
		}
	}
	return ProjectionNone, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
}

// Pipeline turns a frame number into cube line positions
type Pipeline struct {
	translation mgl64.Mat4
	projection  Projection
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithTranslation moves the cube by (x, y, z) after rotating it
func WithTranslation(x, y, z float64) Option {
	return func(p *Pipeline) {
		p.translation = geometry.Translation(x, y, z)
	}
}

// WithProjection sets the projection
func WithProjection(projection Projection) Option {
	return func(p *Pipeline) {
		p.projection = projection
	}
}

// NewPipeline creates a pipeline that pushes the cube 5 units along z and
// applies no projection
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		translation: geometry.Translation(0, 0, 5),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Projection returns the current projection
func (p *Pipeline) Projection() Projection {
	return p.projection
}

// SetProjection changes the projection used by later updates
func (p *Pipeline) SetProjection(projection Projection) {
	p.projection = projection
}

// ModelView returns translation * rotation for frame, where the frame is
// the rotation angle in degrees about x after y
func (p *Pipeline) ModelView(frame int) mgl64.Mat4 {
	theta := mgl64.DegToRad(float64(frame))
	rotationY := geometry.MustRotation(theta, "y")
	rotationX := geometry.MustRotation(theta, "x")
	rotation := rotationX.Mul4(rotationY)
	return p.translation.Mul4(rotation)
}

// Vertices returns the w normalized cube vertices for frame
func (p *Pipeline) Vertices(frame int) []mgl64.Vec4 {
	m := p.ModelView(frame)
	if projection, ok := p.projection.Matrix(); ok {
		m = projection.Mul4(m)
	}
	vertices := geometry.Transform(m, Vertices[:])
	geometry.Normalize(vertices)
	return vertices
}

// Update moves lines to the cube edges for frame. Lines are paired with
// edges in order; extra lines or edges are left alone.
func (p *Pipeline) Update(frame int, lines []Line) {
	vertices := p.Vertices(frame)
	for i := 0; i < len(Edges) && i < len(lines); i++ {
		a, b := vertices[Edges[i][0]], vertices[Edges[i][1]]
		lines[i].SetData([2]float64{a.X(), b.X()}, [2]float64{a.Y(), b.Y()})
		lines[i].Set3DProperties([2]float64{a.Z(), b.Z()})
	}
}
