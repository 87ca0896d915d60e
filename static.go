package graphing

import (
	"unsafe"

	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/cooperjl/graphing-calculator/gfx"
)

// StaticPipeline renders world-space line geometry with one uniform color
// per draw call. Vertices are projected by the camera matrix directly;
// there is no per-vertex color and no model transform. Every covered pixel
// receives exactly the bound color.
type StaticPipeline struct {
	pipeline *wgpu.RenderPipeline
}

// NewStaticPipeline builds the pipeline against the given camera and color
// layouts. topology selects the line primitive; axes and grid lines are
// independent segments, so hosts typically pass
// wgpu.PrimitiveTopologyLineList.
func NewStaticPipeline(
	dev *wgpu.Device,
	camera *CameraBinding,
	colorLayout *wgpu.BindGroupLayout,
	topology wgpu.PrimitiveTopology,
	format wgpu.TextureFormat,
) *StaticPipeline {
	layout := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "static pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{camera.Layout, colorLayout},
	})
	pipeline := createRenderPipeline(
		dev,
		"static pipeline",
		staticWGSL,
		layout,
		[]wgpu.VertexBufferLayout{vertexLayout()},
		topology,
		format,
	)
	layout.Release()

	return &StaticPipeline{pipeline: pipeline}
}

// NewVertexBuffer creates a vertex buffer able to hold capacity vertices.
func NewVertexBuffer(dev *wgpu.Device, label string, capacity int) *wgpu.Buffer {
	return dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(capacity) * uint64(unsafe.Sizeof(gfx.Vertex{})),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
}

// UploadVertices writes vertices to the front of buf.
func UploadVertices(queue *wgpu.Queue, buf *wgpu.Buffer, vertices []gfx.Vertex) {
	if len(vertices) == 0 {
		return
	}
	queue.WriteBuffer(buf, 0, safeish.SliceCast[[]byte](vertices))
}

// Record issues one draw of count vertices from buf with the given camera
// and color bindings. Draw calls are independent; changing the bound color
// affects only subsequent calls.
func (p *StaticPipeline) Record(
	pass *wgpu.RenderPassEncoder,
	camera *CameraBinding,
	color *ColorBinding,
	buf *wgpu.Buffer,
	count uint32,
) {
	if count == 0 {
		return
	}
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, camera.Group, nil)
	pass.SetBindGroup(1, color.Group, nil)
	pass.SetVertexBuffer(0, buf, 0, uint64(count)*uint64(unsafe.Sizeof(gfx.Vertex{})))
	pass.Draw(count, 1, 0, 0)
}
