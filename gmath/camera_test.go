package gmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestScreenFromNDC(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl32.Vec2
		want mgl32.Vec2
	}{
		{"center", mgl32.Vec2{0, 0}, mgl32.Vec2{128, 128}},
		{"bottom right", mgl32.Vec2{1, -1}, mgl32.Vec2{256, 256}},
		{"top left", mgl32.Vec2{-1, 1}, mgl32.Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := screenFromNDC(tt.pos, 256, 256)
			if got != tt.want {
				t.Errorf("screenFromNDC(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestNDCFromScreen(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl32.Vec2
		want mgl32.Vec2
	}{
		{"center", mgl32.Vec2{128, 128}, mgl32.Vec2{0, 0}},
		{"bottom right", mgl32.Vec2{256, 256}, mgl32.Vec2{1, -1}},
		{"top left", mgl32.Vec2{0, 0}, mgl32.Vec2{-1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ndcFromScreen(tt.pos, 256, 256)
			if got != tt.want {
				t.Errorf("ndcFromScreen(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

// The projection stage is exactly M * [v,1] with no hidden normalization
// beyond the homogeneous divide, so applying the inverse matrix recovers
// the original point.
func TestViewProjectionInvertible(t *testing.T) {
	cam := Camera{
		Eye:    mgl32.Vec3{3, -2, 8},
		Target: mgl32.Vec3{3, -2, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		Aspect: 16.0 / 9.0,
		Fovy:   45,
		Znear:  0.1,
		Zfar:   100,
	}
	vp := cam.ViewProjection()
	inv := vp.Inv()
	if inv == (mgl32.Mat4{}) {
		t.Fatal("view-projection matrix is not invertible")
	}

	points := []mgl32.Vec4{
		{0, 0, 0, 1},
		{1, 1, 0, 1},
		{-4.5, 2.25, 0, 1},
	}
	for _, p := range points {
		clip := vp.Mul4x1(p)
		back := inv.Mul4x1(clip)
		back = back.Mul(1 / back.W())
		for i := range 4 {
			if Abs32(back[i]-p[i]) > 1e-4 {
				t.Errorf("round trip of %v = %v", p, back)
				break
			}
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		in   uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{20, 32},
		{32, 32},
		{33, 64},
	}
	for _, tt := range tests {
		if got := NextPowerOfTwo(tt.in); got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
