// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cube

import (
	"sync"
	"time"
)

const (
	// FrameStart is the first frame
	FrameStart = 0
	// FrameStop is one past the last frame
	FrameStop = 360
	// FrameStep is the distance between frames
	FrameStep = 2
	// Interval is the time between frames
	Interval = 50 * time.Millisecond
)

// Frames returns the frame numbers of one animation cycle
func Frames() []int {
	frames := make([]int, 0, (FrameStop-FrameStart)/FrameStep)
	for f := FrameStart; f < FrameStop; f += FrameStep {
		frames = append(frames, f)
	}
	return frames
}

// Animation walks the frames of a cycle over and over
type Animation struct {
	lock   sync.Mutex
	frames []int
	index  int
	paused bool
}

// NewAnimation creates an animation at frame 0
func NewAnimation() *Animation {
	return &Animation{frames: Frames()}
}

// Len is the number of frames in a cycle
func (a *Animation) Len() int {
	return len(a.frames)
}

// Frame returns the current frame without advancing
func (a *Animation) Frame() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.frames[a.index]
}

// Next returns the current frame and moves to the next one unless paused
func (a *Animation) Next() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	frame := a.frames[a.index]
	if !a.paused {
		a.index = (a.index + 1) % len(a.frames)
	}
	return frame
}

// Toggle pauses or resumes the animation and reports whether it is paused
func (a *Animation) Toggle() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	a.paused = !a.paused
	return a.paused
}

// Paused reports whether the animation is paused
func (a *Animation) Paused() bool {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.paused
}
