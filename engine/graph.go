// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package engine

import (
	"fmt"

	"honnef.co/go/wgpu"

	graphing "github.com/cooperjl/graphing-calculator"
	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/gmath"
	"github.com/cooperjl/graphing-calculator/mem"
)

const (
	// maxGridVertices bounds one grid class: gridLines emits at most
	// 4*baseSpacing lines per orientation, two vertices each.
	maxGridVertices = 1024
	// maxInstances bounds one curve's instance buffer.
	maxInstances = segmentsPerCurve
)

type curveState struct {
	curve Curve
	buf   *wgpu.Buffer
	count uint32
}

// Graph owns everything needed to plot a set of equations: the grid, one
// instance buffer per curve, and the color bindings for the grid classes.
// It rebuilds all transient geometry whenever the camera or an equation
// changes and assembles the per-frame draw list for the renderer.
type Graph struct {
	dev      *wgpu.Device
	renderer *graphing.Renderer

	grid     Grid
	axisBuf  *wgpu.Buffer
	majorBuf *wgpu.Buffer
	minorBuf *wgpu.Buffer

	axisColor  *graphing.ColorBinding
	majorColor *graphing.ColorBinding
	minorColor *graphing.ColorBinding

	curves []*curveState
	arena  *mem.Arena[gfx.InstanceRaw]
}

func NewGraph(dev *wgpu.Device, queue *wgpu.Queue, renderer *graphing.Renderer) *Graph {
	g := &Graph{
		dev:      dev,
		renderer: renderer,

		axisBuf:  graphing.NewVertexBuffer(dev, "axis lines", maxGridVertices),
		majorBuf: graphing.NewVertexBuffer(dev, "major grid lines", maxGridVertices),
		minorBuf: graphing.NewVertexBuffer(dev, "minor grid lines", maxGridVertices),

		axisColor:  graphing.NewColorBinding(dev, renderer.ColorLayout),
		majorColor: graphing.NewColorBinding(dev, renderer.ColorLayout),
		minorColor: graphing.NewColorBinding(dev, renderer.ColorLayout),

		arena: mem.NewArena[gfx.InstanceRaw](maxInstances),
	}

	// Grid classes fade with importance, like paper graph rulings.
	g.axisColor.Set(queue, gfx.RGBA(0, 0, 0, 1))
	g.majorColor.Set(queue, gfx.RGBA(0, 0, 0, 0.7))
	g.minorColor.Set(queue, gfx.RGBA(0, 0, 0, 0.4))

	return g
}

// AddCurve registers a new curve and returns its index.
func (g *Graph) AddCurve(c Curve) int {
	g.curves = append(g.curves, &curveState{
		curve: c,
		buf:   graphing.NewInstanceBuffer(g.dev, "curve instances", maxInstances),
	})
	return len(g.curves) - 1
}

// SetEquation replaces the polynomial of the curve at index with the
// parsed equation. The change takes effect at the next Update.
func (g *Graph) SetEquation(index int, equation string) error {
	if index < 0 || index >= len(g.curves) {
		return fmt.Errorf("no curve at index %d", index)
	}
	poly, err := ParsePolynomial(equation)
	if err != nil {
		return err
	}
	g.curves[index].curve.Poly = poly
	return nil
}

// Update rebuilds all camera-dependent geometry and uploads it: the
// camera uniform, the grid vertex buffers and every curve's instance
// batch. Must be called (and its writes submitted) before rendering a
// frame that should observe the new camera.
func (g *Graph) Update(queue *wgpu.Queue, cam *gmath.Camera) {
	g.renderer.SetCamera(queue, gmath.NewViewProjection(cam.ViewProjection()))

	g.grid.Update(cam)
	graphing.UploadVertices(queue, g.axisBuf, clampVertices(g.grid.Axes))
	graphing.UploadVertices(queue, g.majorBuf, clampVertices(g.grid.Major))
	graphing.UploadVertices(queue, g.minorBuf, clampVertices(g.grid.Minor))

	for _, cs := range g.curves {
		g.arena.Reset()
		cs.curve.Sample(g.arena, cam)
		instances := g.arena.Values()
		if len(instances) > maxInstances {
			instances = instances[:maxInstances]
		}
		graphing.UploadInstances(queue, cs.buf, instances)
		cs.count = uint32(len(instances))
	}
}

func clampVertices(vs []gfx.Vertex) []gfx.Vertex {
	if len(vs) > maxGridVertices {
		return vs[:maxGridVertices]
	}
	return vs
}

// Frame assembles the draw list for the current state: grid classes from
// least to most prominent, then one instanced draw per curve.
func (g *Graph) Frame() *graphing.Frame {
	frame := &graphing.Frame{
		Static: []graphing.StaticDraw{
			{Vertices: g.minorBuf, Count: uint32(min(len(g.grid.Minor), maxGridVertices)), Color: g.minorColor},
			{Vertices: g.majorBuf, Count: uint32(min(len(g.grid.Major), maxGridVertices)), Color: g.majorColor},
			{Vertices: g.axisBuf, Count: uint32(min(len(g.grid.Axes), maxGridVertices)), Color: g.axisColor},
		},
	}
	for _, cs := range g.curves {
		frame.Curves = append(frame.Curves, graphing.CurveDraw{
			Instances: cs.buf,
			Count:     cs.count,
		})
	}
	return frame
}
