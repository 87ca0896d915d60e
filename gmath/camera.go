// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// glToWGPU remaps clip-space depth from OpenGL's [-1, 1] convention to
// WGPU's [0, 1]. Column-major, like all mgl32 matrices.
var glToWGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0.5,
	0, 0, 0, 1,
}

// Camera describes the host-owned view onto the graph plane. The plane
// lives at z=0; Eye.Z doubles as the zoom level. The camera produces the
// single view-projection matrix both pipelines consume; it performs no
// validation, and a degenerate configuration yields degenerate output
// rather than an error.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	Aspect float32
	// Fovy is the vertical field of view in degrees.
	Fovy  float32
	Znear float32
	Zfar  float32
}

func (c *Camera) ViewProjection() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Eye, c.Target, c.Up)
	proj := mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Znear, c.Zfar)

	return glToWGPU.Mul4(proj).Mul4(view)
}

func (c *Camera) projection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.Fovy), c.Aspect, c.Znear, c.Zfar)

	return glToWGPU.Mul4(proj)
}

// WorldToScreen projects a world-space position to pixel coordinates on a
// viewport of the given size, including the homogeneous divide.
func (c *Camera) WorldToScreen(pos mgl32.Vec3, width, height uint32) mgl32.Vec2 {
	clip := c.ViewProjection().Mul4x1(mgl32.Vec4{pos.X(), pos.Y(), pos.Z(), 1})
	ndc := mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
	return screenFromNDC(ndc, width, height)
}

// ScreenToView maps pixel coordinates back into view space on the graph
// plane. Used by hosts to anchor pan and zoom on the cursor.
func (c *Camera) ScreenToView(pos mgl32.Vec2, width, height uint32) mgl32.Vec2 {
	ndc := ndcFromScreen(pos, width, height)
	inv := c.projection().Inv()
	p := inv.Mul4x1(mgl32.Vec4{ndc.X(), ndc.Y(), 0, 1})
	return mgl32.Vec2{p.X() * 1.5, p.Y() * 1.5}
}

func screenFromNDC(pos mgl32.Vec2, width, height uint32) mgl32.Vec2 {
	x := (float32(width) * (pos.X() + 1)) / 2
	y := (float32(height) * (pos.Y() - 1)) / -2
	return mgl32.Vec2{x, y}
}

func ndcFromScreen(pos mgl32.Vec2, width, height uint32) mgl32.Vec2 {
	x := ((2 / float32(width)) * pos.X()) - 1
	y := ((-2 / float32(height)) * pos.Y()) + 1
	return mgl32.Vec2{x, y}
}
