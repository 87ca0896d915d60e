package graphing

import (
	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/cooperjl/graphing-calculator/gmath"
)

// CameraBinding holds the view-projection matrix both pipelines consume:
// one uniform buffer in its own bind group (group 0), written by the host
// and read by every draw call issued afterwards.
//
// SetViewProjection performs no validation; uploading a degenerate matrix
// yields degenerate output, not an error. The previous matrix is
// overwritten and the new one is visible to all subsequent draws.
type CameraBinding struct {
	Layout *wgpu.BindGroupLayout
	Group  *wgpu.BindGroup

	buf *wgpu.Buffer
}

func NewCameraBinding(dev *wgpu.Device) *CameraBinding {
	buf := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "camera uniform",
		Size:  uint64(len(gmath.ViewProjection{}.Matrix)) * 4,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	layout := dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "camera bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: &wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	group := dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "camera bind group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Size:    ^uint64(0),
			},
		},
	})

	return &CameraBinding{
		Layout: layout,
		Group:  group,
		buf:    buf,
	}
}

// SetViewProjection uploads a new matrix. The host must call this before
// recording any draw that should observe the new camera; writes and draws
// on the same queue follow last-writer-wins ordering.
func (c *CameraBinding) SetViewProjection(queue *wgpu.Queue, vp gmath.ViewProjection) {
	queue.WriteBuffer(c.buf, 0, safeish.AsBytes(&vp))
}
