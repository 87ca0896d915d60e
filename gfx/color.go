// Copyright 2026 the graphing-calculator authors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gfx holds the flat, GPU-facing data model of the renderer:
// colors, vertices and per-curve instance records.
package gfx

import (
	"honnef.co/go/color"
)

// Color is an RGBA value in linear sRGB with straight (non-premultiplied)
// alpha, the form both pipelines upload to the GPU. Out-of-range components
// are passed through unmodified; clamping is the display's concern.
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// FromColor converts a managed color to the GPU representation.
func FromColor(c *color.Color) Color {
	cc := c.Convert(color.LinearSRGB)
	return Color{
		R: float32(cc.Values[0]),
		G: float32(cc.Values[1]),
		B: float32(cc.Values[2]),
		A: float32(cc.Values[3]),
	}
}

func (c Color) Raw() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}
