package graphing

import (
	"honnef.co/go/wgpu"

	"github.com/cooperjl/graphing-calculator/gmath"
	"github.com/cooperjl/graphing-calculator/profiler"
)

type RendererOptions struct {
	// SurfaceFormat is the texture format of the render target both
	// pipelines draw into.
	SurfaceFormat wgpu.TextureFormat
}

// Renderer owns the camera binding and both pipelines. It records draws
// into render passes the host begins and submits; it never owns a frame
// loop or a surface.
type Renderer struct {
	Camera *CameraBinding
	Static *StaticPipeline
	Curves *CurvePipeline

	// ColorLayout is shared by all ColorBinding values used with Static.
	ColorLayout *wgpu.BindGroupLayout
}

func NewRenderer(dev *wgpu.Device, queue *wgpu.Queue, options RendererOptions) *Renderer {
	camera := NewCameraBinding(dev)
	colorLayout := ColorBindLayout(dev)

	return &Renderer{
		Camera:      camera,
		Static:      NewStaticPipeline(dev, camera, colorLayout, wgpu.PrimitiveTopologyLineList, options.SurfaceFormat),
		Curves:      NewCurvePipeline(dev, queue, camera, options.SurfaceFormat),
		ColorLayout: colorLayout,
	}
}

// StaticDraw is one static-color draw call: count line-list vertices and
// the color they are drawn with.
type StaticDraw struct {
	Vertices *wgpu.Buffer
	Count    uint32
	Color    *ColorBinding
}

// CurveDraw is one instanced draw call: count instance records for one
// plotted curve.
type CurveDraw struct {
	Instances *wgpu.Buffer
	Count     uint32
}

// Frame is everything the host wants drawn this frame, in draw order:
// static geometry first (axes, grid), then one instanced draw per curve.
type Frame struct {
	Static []StaticDraw
	Curves []CurveDraw
}

// SetCamera uploads the view-projection matrix consumed by every draw in
// subsequent frames until the next write.
func (r *Renderer) SetCamera(queue *wgpu.Queue, vp gmath.ViewProjection) {
	r.Camera.SetViewProjection(queue, vp)
}

// RenderFrame records the frame's draws into pass. All buffer and uniform
// uploads for the frame must have been written to the queue beforehand;
// each draw is a pure function of the resources bound at record time.
func (r *Renderer) RenderFrame(pass *wgpu.RenderPassEncoder, frame *Frame, pgroup profiler.Group) {
	pgroup = pgroup.Start("RenderFrame")
	defer pgroup.End()

	pg := pgroup.Start("static")
	for _, draw := range frame.Static {
		r.Static.Record(pass, r.Camera, draw.Color, draw.Vertices, draw.Count)
	}
	pg.End()

	pg = pgroup.Start("curves")
	for _, draw := range frame.Curves {
		r.Curves.Record(pass, r.Camera, draw.Instances, draw.Count)
	}
	pg.End()
}
