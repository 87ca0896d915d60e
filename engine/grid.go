// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package engine generates the geometry the rendering core draws: grid and
// axis lines derived from the camera, and per-segment instance batches
// sampled from polynomial curves.
package engine

import (
	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/gmath"
)

// DefaultBaseSpacing is the on-screen grid density the spacing rule aims
// for before zoom snapping.
const DefaultBaseSpacing = 40.0

type gridClass int

const (
	gridAxis gridClass = iota
	gridMajor
	gridMinor
)

type gridLine struct {
	pos   float32
	class gridClass
}

// gridLines computes the world-space positions of the grid lines visible
// around the camera. Spacing halves every time the zoom level crosses the
// next power of two, so the on-screen density stays stable. Line index 0
// is the axis; every fifth line is major.
func gridLines(cam *gmath.Camera, baseSpacing float32, vertical bool) []gridLine {
	// Converting a negative float to uint32 is implementation-specific in
	// Go; clamp so a camera behind the plane saturates to zoom level 1.
	zoom := max(cam.Eye.Z(), 0)
	sf := baseSpacing / float32(gmath.NextPowerOfTwo(uint32(zoom)))

	var center float32
	if vertical {
		center = cam.Eye.X()
	} else {
		center = cam.Eye.Y()
	}
	offset := int32(center * sf)

	boundL := int32(baseSpacing*-2) + offset
	boundR := int32(baseSpacing*2) + offset

	lines := make([]gridLine, 0, boundR-boundL)
	for i := boundL; i < boundR; i++ {
		class := gridMinor
		switch {
		case i == 0:
			class = gridAxis
		case i%5 == 0:
			class = gridMajor
		}
		lines = append(lines, gridLine{
			pos:   float32(i) / sf,
			class: class,
		})
	}
	return lines
}

// Grid holds the line-list geometry of the reference grid, split by class
// so each class can be drawn with its own color through the static
// pipeline. All slices are rebuilt on every Update.
type Grid struct {
	BaseSpacing float32

	Axes  []gfx.Vertex
	Major []gfx.Vertex
	Minor []gfx.Vertex
}

// Update rebuilds the grid for the current camera. Lines span twice the
// zoom level in each direction around the eye, which covers the visible
// plane with margin for panning.
func (g *Grid) Update(cam *gmath.Camera) {
	base := g.BaseSpacing
	if base == 0 {
		base = DefaultBaseSpacing
	}
	g.Axes = g.Axes[:0]
	g.Major = g.Major[:0]
	g.Minor = g.Minor[:0]

	limit := cam.Eye.Z() * 2

	for _, line := range gridLines(cam, base, true) {
		v0 := gfx.Vtx(line.pos, cam.Eye.Y()-limit, 0)
		v1 := gfx.Vtx(line.pos, cam.Eye.Y()+limit, 0)
		g.push(line.class, v0, v1)
	}
	for _, line := range gridLines(cam, base, false) {
		v0 := gfx.Vtx(cam.Eye.X()-limit, line.pos, 0)
		v1 := gfx.Vtx(cam.Eye.X()+limit, line.pos, 0)
		g.push(line.class, v0, v1)
	}
}

func (g *Grid) push(class gridClass, v0, v1 gfx.Vertex) {
	switch class {
	case gridAxis:
		g.Axes = append(g.Axes, v0, v1)
	case gridMajor:
		g.Major = append(g.Major, v0, v1)
	default:
		g.Minor = append(g.Minor, v0, v1)
	}
}
