// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"honnef.co/go/curve"

	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/gmath"
	"github.com/cooperjl/graphing-calculator/mem"
)

// segmentsPerCurve controls how densely a curve is sampled across the
// visible x range. More segments cost instance-buffer space; fewer make
// steep curves visibly angular.
const segmentsPerCurve = 960

// Curve is one plotted function and the color its segments are drawn
// with.
type Curve struct {
	Poly  Polynomial
	Color gfx.Color
}

// Sample appends one quad instance per curve segment across the x range
// visible to the camera, in draw order. Segments whose y values are not
// finite (poles, overflow) are skipped, leaving a gap rather than
// degenerate geometry.
func (c *Curve) Sample(arena *mem.Arena[gfx.InstanceRaw], cam *gmath.Camera) {
	span := cam.Eye.Z() * 1.5
	xMin := float64(cam.Eye.X() - span)
	xMax := float64(cam.Eye.X() + span)
	step := (xMax - xMin) / segmentsPerCurve

	p1 := samplePoint(c.Poly, xMin)
	for i := 1; i <= segmentsPerCurve; i++ {
		p2 := samplePoint(c.Poly, xMin+float64(i)*step)
		if inst, ok := segmentInstance(p1, p2, c.Color); ok {
			arena.Append(inst.Raw())
		}
		p1 = p2
	}
}

func samplePoint(p Polynomial, x float64) curve.Point {
	return curve.Point{X: x, Y: float64(p.Eval(float32(x)))}
}

// segmentInstance places the unit quad so that its (0,0)..(1,1) diagonal
// spans the segment p1..p2: rotate the diagonal onto the segment's
// direction and scale its sqrt(2) length onto the segment's length. The
// stripe rule then renders exactly the segment.
func segmentInstance(p1, p2 curve.Point, color gfx.Color) (gfx.Instance, bool) {
	d := p2.Sub(p1)
	if !isFinite(p1.Y) || !isFinite(p2.Y) {
		return gfx.Instance{}, false
	}
	length := math.Hypot(d.X, d.Y)
	if length < gmath.Epsilon {
		return gfx.Instance{}, false
	}
	theta := math.Atan2(d.Y, d.X)

	return gfx.Instance{
		Position: mgl32.Vec3{float32(p1.X), float32(p1.Y), 0},
		Rotation: float32(theta - math.Pi/4),
		Scale:    float32(length / math.Sqrt2),
		Color:    color,
	}, true
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
