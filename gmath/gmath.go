// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gmath provides the float32 matrix math shared by the render
// pipelines and the GPU-facing uniform layouts derived from it.
package gmath

import (
	"math"
	"structs"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// Epsilon is the length below which geometry counts as degenerate.
const Epsilon = 1e-6

func Abs32(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// ViewProjection is the GPU representation of the camera uniform. It must
// be kept in sync with the CameraUniform struct in shaders/*.wgsl: one
// column-major mat4x4<f32>, 64 bytes.
type ViewProjection struct {
	_ structs.HostLayout

	Matrix [16]float32
}

var IdentityViewProjection = ViewProjection{
	Matrix: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	},
}

// NewViewProjection reinterprets m as uniform data. mgl32 matrices are
// column-major, which is also what WGSL expects, so this is a plain copy.
func NewViewProjection(m mgl32.Mat4) ViewProjection {
	return ViewProjection{Matrix: [16]float32(m)}
}

func (vp ViewProjection) Mat4() mgl32.Mat4 {
	return mgl32.Mat4(vp.Matrix)
}

// NextPowerOfTwo returns the smallest power of two >= v, with
// NextPowerOfTwo(0) == 1.
func NextPowerOfTwo[T constraints.Unsigned](v T) T {
	if v <= 1 {
		return 1
	}
	p := T(1)
	for p < v {
		p <<= 1
	}
	return p
}
