// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"structs"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model-space position. Both pipelines share this layout:
// three consecutive float32, 12 bytes, vertex attribute location 0.
type Vertex struct {
	_ structs.HostLayout

	Position [3]float32
}

func Vtx(x, y, z float32) Vertex {
	return Vertex{Position: [3]float32{x, y, z}}
}

// StripeThreshold is the half-width, in model-space units, of the diagonal
// band the curve pipeline keeps opaque: a fragment is visible iff
// |x - y| <= StripeThreshold for its interpolated model-space position.
//
// The threshold and the unit quad extent are tuned as a pair. UnitQuad spans
// [0,1] in x and y, so its diagonal runs from (0,0) to (1,1) and the band is
// thin relative to the quad. Changing the quad extent without revisiting this
// constant makes curves render too thick or vanish entirely; the same value
// must be kept in sync with shaders/curve.wgsl.
const StripeThreshold = 0.01

// UnitQuad is the shared base shape of the curve pipeline: a quad spanning
// [0,1]x[0,1] at z=0, counter-clockwise, uploaded once and placed per
// instance. The x==y diagonal is the part the stripe rule keeps visible,
// so an instance transform maps (0,0) and (1,1) onto the endpoints of one
// curve segment.
var UnitQuad = [4]Vertex{
	Vtx(0, 0, 0),
	Vtx(1, 0, 0),
	Vtx(1, 1, 0),
	Vtx(0, 1, 0),
}

var UnitQuadIndices = [6]uint16{
	0, 1, 2,
	0, 2, 3,
}

// Instance is one rigid placement of UnitQuad along a curve, plus its
// color. Instances are transient per-frame values; batches of them are
// rebuilt whenever the sampled geometry changes.
type Instance struct {
	Position mgl32.Vec3
	// Rotation is the angle around z, in radians.
	Rotation float32
	// Scale is applied uniformly in x and y so the stripe stays diagonal
	// in model space.
	Scale float32
	Color Color
}

// Raw assembles the per-instance vertex-buffer record. The model matrix is
// translate * rotate * scale, so vertices are scaled and oriented in model
// space before being moved into place.
func (inst Instance) Raw() InstanceRaw {
	model := mgl32.Translate3D(inst.Position.X(), inst.Position.Y(), inst.Position.Z()).
		Mul4(mgl32.HomogRotate3DZ(inst.Rotation)).
		Mul4(mgl32.Scale3D(inst.Scale, inst.Scale, 1))
	return InstanceRaw{
		Model: [16]float32(model),
		Color: inst.Color.Raw(),
	}
}

// InstanceRaw is the wire format of one instance in the instance vertex
// buffer: four column vectors of the model matrix at shader locations 5-8
// followed by the color at location 9. 80 bytes; must match
// shaders/curve.wgsl and the instance buffer layout in the root package.
type InstanceRaw struct {
	_ structs.HostLayout

	Model [16]float32
	Color [4]float32
}
