package graphing

import (
	"unsafe"

	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/cooperjl/graphing-calculator/gfx"
)

// CurvePipeline renders one curve per draw call as a batch of instanced
// quads. Each instance carries its own model matrix and color; the
// fragment stage keeps only the quad's diagonal stripe opaque (see
// gfx.StripeThreshold), so a batch of quads reads as a thin continuous
// line.
//
// The pipeline owns the shared unit-quad geometry, uploaded once at
// construction. Instance buffers belong to the host and are exclusively
// owned by whichever draw call binds them.
type CurvePipeline struct {
	pipeline *wgpu.RenderPipeline
	quadVtx  *wgpu.Buffer
	quadIdx  *wgpu.Buffer
}

func NewCurvePipeline(
	dev *wgpu.Device,
	queue *wgpu.Queue,
	camera *CameraBinding,
	format wgpu.TextureFormat,
) *CurvePipeline {
	layout := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "curve pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{camera.Layout},
	})
	pipeline := createRenderPipeline(
		dev,
		"curve pipeline",
		curveWGSL,
		layout,
		[]wgpu.VertexBufferLayout{vertexLayout(), instanceLayout()},
		wgpu.PrimitiveTopologyTriangleList,
		format,
	)
	layout.Release()

	quad := gfx.UnitQuad
	quadVtx := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "unit quad vertices",
		Size:  uint64(unsafe.Sizeof(quad)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	queue.WriteBuffer(quadVtx, 0, safeish.SliceCast[[]byte](quad[:]))

	indices := gfx.UnitQuadIndices
	quadIdx := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "unit quad indices",
		Size:  uint64(unsafe.Sizeof(indices)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	queue.WriteBuffer(quadIdx, 0, safeish.SliceCast[[]byte](indices[:]))

	return &CurvePipeline{
		pipeline: pipeline,
		quadVtx:  quadVtx,
		quadIdx:  quadIdx,
	}
}

// NewInstanceBuffer creates an instance buffer able to hold capacity
// instance records.
func NewInstanceBuffer(dev *wgpu.Device, label string, capacity int) *wgpu.Buffer {
	return dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(capacity) * uint64(unsafe.Sizeof(gfx.InstanceRaw{})),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
}

// UploadInstances writes an instance batch to the front of buf, in draw
// order. The host must not mutate instances between this write and the
// draw that consumes them.
func UploadInstances(queue *wgpu.Queue, buf *wgpu.Buffer, instances []gfx.InstanceRaw) {
	if len(instances) == 0 {
		return
	}
	queue.WriteBuffer(buf, 0, safeish.SliceCast[[]byte](instances))
}

// Record issues one instanced draw of count instances from buf. Instances
// are independent: batching N instances produces the same per-instance
// output as N single-instance draws, up to blending order.
func (p *CurvePipeline) Record(
	pass *wgpu.RenderPassEncoder,
	camera *CameraBinding,
	buf *wgpu.Buffer,
	count uint32,
) {
	if count == 0 {
		return
	}
	pass.SetPipeline(p.pipeline)
	pass.SetBindGroup(0, camera.Group, nil)
	pass.SetVertexBuffer(0, p.quadVtx, 0, p.quadVtx.Size())
	pass.SetVertexBuffer(1, buf, 0, uint64(count)*uint64(unsafe.Sizeof(gfx.InstanceRaw{})))
	pass.SetIndexBuffer(p.quadIdx, wgpu.IndexFormatUint16, 0, p.quadIdx.Size())
	pass.DrawIndexed(uint32(len(gfx.UnitQuadIndices)), count, 0, 0, 0)
}
