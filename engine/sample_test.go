package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"honnef.co/go/curve"

	"github.com/cooperjl/graphing-calculator/gfx"
	"github.com/cooperjl/graphing-calculator/mem"
)

func TestSegmentInstanceMapsDiagonal(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 curve.Point
	}{
		{"flat", curve.Point{X: 0, Y: 0}, curve.Point{X: 1, Y: 0}},
		{"steep", curve.Point{X: 2, Y: -1}, curve.Point{X: 2.1, Y: 5}},
		{"backwards", curve.Point{X: 1, Y: 1}, curve.Point{X: 0, Y: 4}},
		{"diagonal", curve.Point{X: -3, Y: -3}, curve.Point{X: 4, Y: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, ok := segmentInstance(tt.p1, tt.p2, gfx.Color{R: 1, A: 1})
			if !ok {
				t.Fatal("segmentInstance rejected a valid segment")
			}
			model := mgl32.Mat4(inst.Raw().Model)

			// The quad corners (0,0) and (1,1) land on the segment
			// endpoints, so the stripe along the diagonal draws it.
			got1 := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
			got2 := model.Mul4x1(mgl32.Vec4{1, 1, 0, 1})

			checkPoint(t, "p1", got1, tt.p1)
			checkPoint(t, "p2", got2, tt.p2)
		})
	}
}

func checkPoint(t *testing.T, label string, got mgl32.Vec4, want curve.Point) {
	t.Helper()
	const eps = 1e-4
	if math.Abs(float64(got.X())-want.X) > eps || math.Abs(float64(got.Y())-want.Y) > eps {
		t.Errorf("%s: transformed to (%v, %v), want (%v, %v)", label, got.X(), got.Y(), want.X, want.Y)
	}
}

func TestSegmentInstanceRejects(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 curve.Point
	}{
		{"nan", curve.Point{X: 0, Y: math.NaN()}, curve.Point{X: 1, Y: 0}},
		{"inf", curve.Point{X: 0, Y: 0}, curve.Point{X: 1, Y: math.Inf(1)}},
		{"zero length", curve.Point{X: 2, Y: 3}, curve.Point{X: 2, Y: 3}},
		{"below epsilon", curve.Point{X: 0, Y: 0}, curve.Point{X: 1e-8, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := segmentInstance(tt.p1, tt.p2, gfx.Color{}); ok {
				t.Error("segmentInstance accepted a degenerate segment")
			}
		})
	}
}

func TestCurveSample(t *testing.T) {
	c := Curve{
		Poly:  Polynomial{0, 1}, // y = x
		Color: gfx.Color{R: 1, A: 1},
	}
	cam := testCamera(0, 0, 4)

	arena := mem.NewArena[gfx.InstanceRaw](segmentsPerCurve)
	c.Sample(arena, cam)

	if arena.Len() != segmentsPerCurve {
		t.Fatalf("got %d instances, want %d", arena.Len(), segmentsPerCurve)
	}
	for i, raw := range arena.Values() {
		if raw.Color != [4]float32{1, 0, 0, 1} {
			t.Fatalf("instance %d color = %v", i, raw.Color)
		}
	}

	// y = x stays on the world diagonal, so every segment's origin
	// corner must sit on it.
	for i, raw := range arena.Values() {
		model := mgl32.Mat4(raw.Model)
		p := model.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
		if math.Abs(float64(p.X()-p.Y())) > 1e-4 {
			t.Fatalf("instance %d origin (%v, %v) off the diagonal", i, p.X(), p.Y())
		}
	}
}

func TestCurveSampleSkipsNonFinite(t *testing.T) {
	// Large even powers overflow float32 away from the origin.
	c := Curve{Poly: make(Polynomial, 201)}
	c.Poly[200] = 1
	cam := testCamera(0, 0, 64)

	arena := mem.NewArena[gfx.InstanceRaw](segmentsPerCurve)
	c.Sample(arena, cam)

	if arena.Len() >= segmentsPerCurve {
		t.Errorf("got %d instances, want fewer than %d", arena.Len(), segmentsPerCurve)
	}
}
