// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package cpu provides CPU implementations of the render shaders.
//
// These intentionally replicate the WGSL vertex and fragment stages stage
// by stage, including the rasterizer between them. They're a debug tool,
// not a viable fallback.
package cpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/gmath"
)

// CurveVarying is the interpolated data carried from the curve vertex
// stage to the fragment stage: clip position, model-space position before
// the instance transform's projection, and the instance color.
type CurveVarying struct {
	ClipPosition  mgl32.Vec4
	ModelPosition mgl32.Vec3
	Color         [4]float32
}

// CurveVertex runs the curve pipeline's vertex stage for one vertex of one
// instance: clip = camera * model * position.
func CurveVertex(camera gmath.ViewProjection, inst gfx.InstanceRaw, v gfx.Vertex) CurveVarying {
	pos := mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1}
	model := mgl32.Mat4(inst.Model)
	return CurveVarying{
		ClipPosition:  camera.Mat4().Mul4(model).Mul4x1(pos),
		ModelPosition: mgl32.Vec3{v.Position[0], v.Position[1], v.Position[2]},
		Color:         inst.Color,
	}
}

// CurveFragment runs the curve pipeline's fragment stage: the RGB channels
// come from the instance color unchanged, and alpha is 1 inside the
// diagonal stripe and 0 outside, with nothing in between.
func CurveFragment(in CurveVarying) [4]float32 {
	alpha := float32(0)
	if gmath.Abs32(in.ModelPosition.X()-in.ModelPosition.Y()) <= gfx.StripeThreshold {
		alpha = 1
	}
	return [4]float32{in.Color[0], in.Color[1], in.Color[2], alpha}
}

// StaticVertex runs the static pipeline's vertex stage: clip = camera *
// position, no per-vertex varyings beyond the position.
func StaticVertex(camera gmath.ViewProjection, v gfx.Vertex) mgl32.Vec4 {
	pos := mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1}
	return camera.Mat4().Mul4x1(pos)
}

// StaticFragment runs the static pipeline's fragment stage: every fragment
// gets the draw color uniform verbatim.
func StaticFragment(drawColor [4]float32) [4]float32 {
	return drawColor
}
