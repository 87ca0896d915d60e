package cpu

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/gmath"
)

func identityInstance(color gfx.Color) gfx.InstanceRaw {
	return gfx.Instance{Scale: 1, Color: color}.Raw()
}

func varyingAt(x, y float32, color gfx.Color) CurveVarying {
	return CurveVarying{
		ModelPosition: mgl32.Vec3{x, y, 0},
		Color:         color.Raw(),
	}
}

func TestCurveFragmentStripeBoundary(t *testing.T) {
	red := gfx.Color{R: 1, A: 1}
	tests := []struct {
		name      string
		x, y      float32
		wantAlpha float32
	}{
		{"on diagonal", 0.5, 0.5, 1},
		{"just inside", 0.5, 0.5 - 0.0099, 1},
		{"at threshold", 0.5, 0.5 - 0.01, 1},
		{"just outside", 0.5, 0.5 - 0.0101, 0},
		{"far outside", 0.9, 0.1, 0},
		{"inside below diagonal", 0.5 - 0.0099, 0.5, 1},
		{"outside below diagonal", 0.5 - 0.0101, 0.5, 0},
		{"corner", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurveFragment(varyingAt(tt.x, tt.y, red))
			if got[3] != tt.wantAlpha {
				t.Errorf("alpha = %v, want %v", got[3], tt.wantAlpha)
			}
			// RGB never depends on the stripe test.
			if got[0] != 1 || got[1] != 0 || got[2] != 0 {
				t.Errorf("rgb = %v, want (1, 0, 0)", got[:3])
			}
		})
	}
}

func TestCurveFragmentColorPurity(t *testing.T) {
	colors := []gfx.Color{
		{R: 1, A: 1},
		{G: 0.25, B: 0.75, A: 1},
		{R: 0.1, G: 0.2, B: 0.3, A: 0.4},
	}
	for _, c := range colors {
		inside := CurveFragment(varyingAt(0.5, 0.5, c))
		outside := CurveFragment(varyingAt(0.9, 0.1, c))
		want := c.Raw()
		for i := range 3 {
			if inside[i] != want[i] || outside[i] != want[i] {
				t.Errorf("color %v: rgb in=%v out=%v, want %v", c, inside[:3], outside[:3], want[:3])
			}
		}
		// The instance alpha is ignored; only the stripe decides.
		if inside[3] != 1 || outside[3] != 0 {
			t.Errorf("color %v: alpha in=%v out=%v", c, inside[3], outside[3])
		}
	}
}

func TestCurveVertexTransformOrder(t *testing.T) {
	camera := gmath.NewViewProjection(mgl32.Translate3D(10, 0, 0))
	inst := gfx.Instance{Scale: 2, Color: gfx.Color{A: 1}}.Raw()
	v := gfx.Vtx(1, 1, 0)

	got := CurveVertex(camera, inst, v)

	// camera * (model * v): scale to (2, 2), then camera translation.
	want := mgl32.Vec4{12, 2, 0, 1}
	if got.ClipPosition != want {
		t.Errorf("clip = %v, want %v", got.ClipPosition, want)
	}

	// The reversed order would bake the camera translation into the
	// scaled position instead.
	reversed := mgl32.Mat4(inst.Model).Mul4(camera.Mat4()).Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	if reversed == got.ClipPosition {
		t.Fatal("transform order test is not discriminating")
	}

	if got.ModelPosition != (mgl32.Vec3{1, 1, 0}) {
		t.Errorf("model position = %v, want the untransformed vertex", got.ModelPosition)
	}
}

func TestStaticStages(t *testing.T) {
	camera := gmath.NewViewProjection(mgl32.Scale3D(2, 2, 1))
	clip := StaticVertex(camera, gfx.Vtx(3, -1, 0))
	if want := (mgl32.Vec4{6, -2, 0, 1}); clip != want {
		t.Errorf("clip = %v, want %v", clip, want)
	}

	color := [4]float32{0, 0, 0, 0.7}
	if got := StaticFragment(color); got != color {
		t.Errorf("fragment = %v, want the draw color verbatim", got)
	}
}

func TestDrawInstancesDiagonal(t *testing.T) {
	const size = 64
	p := NewPixmap(size, size)

	// Identity camera, identity model: the quad covers the upper-right
	// NDC quadrant and only the stripe around x == y survives.
	red := identityInstance(gfx.Color{R: 1, A: 1})
	DrawInstances(p, gmath.IdentityViewProjection, []gfx.InstanceRaw{red})

	// Quad pixels: x in [size/2, size), y in [0, size/2). The model
	// diagonal maps to the screen anti-diagonal.
	var opaque int
	for y := range size {
		for x := range size {
			px := p.At(x, y)
			onDiagonal := x-size/2 == size/2-1-y
			inQuad := x >= size/2 && y < size/2
			switch {
			case inQuad && onDiagonal:
				if px != [4]float32{1, 0, 0, 1} {
					t.Fatalf("pixel (%d, %d) = %v, want opaque red", x, y, px)
				}
				opaque++
			case !inQuad:
				if px != [4]float32{} {
					t.Fatalf("pixel (%d, %d) = %v outside the quad, want untouched", x, y, px)
				}
			default:
				if px[3] != 0 {
					t.Fatalf("pixel (%d, %d) = %v off the stripe, want transparent", x, y, px)
				}
			}
		}
	}
	if opaque == 0 {
		t.Fatal("no opaque stripe pixels")
	}
}

func TestDrawInstancesIndependence(t *testing.T) {
	const size = 32
	camera := gmath.IdentityViewProjection

	a := gfx.Instance{Position: mgl32.Vec3{-1, -1, 0}, Scale: 1, Color: gfx.Color{R: 1, A: 1}}.Raw()
	b := gfx.Instance{Scale: 1, Color: gfx.Color{B: 1, A: 1}}.Raw()

	batch := NewPixmap(size, size)
	DrawInstances(batch, camera, []gfx.InstanceRaw{a, b})

	individual := NewPixmap(size, size)
	DrawInstances(individual, camera, []gfx.InstanceRaw{a})
	DrawInstances(individual, camera, []gfx.InstanceRaw{b})

	for i := range batch.Pix {
		if batch.Pix[i] != individual.Pix[i] {
			t.Fatalf("pixel %d: batch %v != individual %v", i, batch.Pix[i], individual.Pix[i])
		}
	}
}
