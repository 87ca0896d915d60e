// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package cpu

import (
	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/gmath"
)

// Pixmap is a straight-alpha RGBA float render target.
type Pixmap struct {
	Width  int
	Height int
	Pix    [][4]float32
}

func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    make([][4]float32, width*height),
	}
}

func (p *Pixmap) At(x, y int) [4]float32 {
	return p.Pix[y*p.Width+x]
}

// blend applies the pipelines' blend state: source-over on color with the
// source's own alpha, and source-over on alpha.
func (p *Pixmap) blend(x, y int, src [4]float32) {
	dst := &p.Pix[y*p.Width+x]
	sa := src[3]
	for i := range 3 {
		dst[i] = src[i]*sa + dst[i]*(1-sa)
	}
	dst[3] = sa + dst[3]*(1-sa)
}

// DrawInstances rasterizes the curve pipeline for a batch of instances:
// both triangles of the shared quad per instance, vertex stage, then the
// stripe fragment stage per covered pixel. Instances draw in order.
func DrawInstances(p *Pixmap, camera gmath.ViewProjection, instances []gfx.InstanceRaw) {
	for _, inst := range instances {
		for tri := 0; tri < len(gfx.UnitQuadIndices); tri += 3 {
			var vs [3]CurveVarying
			for i := range 3 {
				v := gfx.UnitQuad[gfx.UnitQuadIndices[tri+i]]
				vs[i] = CurveVertex(camera, inst, v)
			}
			p.rasterize(vs)
		}
	}
}

// rasterize fills one triangle, interpolating the model-space position
// across it and running the fragment stage per pixel. Coverage uses the
// top-left rule only loosely; pixel centers strictly inside are enough for
// the debug use.
func (p *Pixmap) rasterize(vs [3]CurveVarying) {
	var sx, sy [3]float32
	for i, v := range vs {
		ndcX := v.ClipPosition.X() / v.ClipPosition.W()
		ndcY := v.ClipPosition.Y() / v.ClipPosition.W()
		sx[i] = (ndcX + 1) / 2 * float32(p.Width)
		sy[i] = (1 - ndcY) / 2 * float32(p.Height)
	}

	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 {
		return
	}

	minX := max(int(min(sx[0], sx[1], sx[2])), 0)
	maxX := min(int(max(sx[0], sx[1], sx[2]))+1, p.Width)
	minY := max(int(min(sy[0], sy[1], sy[2])), 0)
	maxY := min(int(max(sy[0], sy[1], sy[2]))+1, p.Height)

	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			cx := float32(x) + 0.5
			cy := float32(y) + 0.5

			w0 := edge(sx[1], sy[1], sx[2], sy[2], cx, cy) / area
			w1 := edge(sx[2], sy[2], sx[0], sy[0], cx, cy) / area
			w2 := edge(sx[0], sy[0], sx[1], sy[1], cx, cy) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			frag := CurveVarying{
				ModelPosition: vs[0].ModelPosition.Mul(w0).
					Add(vs[1].ModelPosition.Mul(w1)).
					Add(vs[2].ModelPosition.Mul(w2)),
				Color: vs[0].Color,
			}
			p.blend(x, y, CurveFragment(frag))
		}
	}
}

func edge(ax, ay, bx, by, cx, cy float32) float32 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}
