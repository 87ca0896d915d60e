package graphing

import (
	"honnef.co/go/safeish"
	"honnef.co/go/wgpu"

	"github.com/cooperjl/graphing-calculator/gfx"
)

// ColorBinding is the solid color consumed by the static pipeline, bound as
// its own uniform group (group 1) so the host can swap colors between draw
// calls without touching the camera binding. One ColorBinding holds one
// color at a time; hosts that interleave colors within a frame either call
// Set between draws or keep one binding per color.
type ColorBinding struct {
	Group *wgpu.BindGroup

	buf *wgpu.Buffer
}

// ColorBindLayout creates the bind group layout shared by all color
// bindings. The static pipeline and every ColorBinding must be created
// from the same layout.
func ColorBindLayout(dev *wgpu.Device) *wgpu.BindGroupLayout {
	return dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "color bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: &wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
}

func NewColorBinding(dev *wgpu.Device, layout *wgpu.BindGroupLayout) *ColorBinding {
	buf := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "color uniform",
		Size:  4 * 4,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	group := dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "color bind group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf,
				Size:    ^uint64(0),
			},
		},
	})
	return &ColorBinding{
		Group: group,
		buf:   buf,
	}
}

// Set uploads a new color. It affects only draws recorded after the queue
// observes the write; draws already submitted keep the color they were
// issued with.
func (c *ColorBinding) Set(queue *wgpu.Queue, color gfx.Color) {
	raw := color.Raw()
	queue.WriteBuffer(c.buf, 0, safeish.AsBytes(&raw))
}
