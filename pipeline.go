// Package graphing implements the rendering core of a GPU-accelerated 2D
// function grapher: a static-color pipeline for reference geometry (axes,
// grid lines) and an instanced pipeline that rasterizes curves as batches
// of quads carrying per-instance transforms and colors.
//
// The core is a pure transform-and-shade layer. It owns no frame loop and
// reports no errors: degenerate matrices or malformed instance data produce
// degenerate pixels, not failures. Hosts serialize all resource writes
// (camera matrix, colors, instance buffers) before issuing the draws that
// depend on them.
package graphing

import (
	"unsafe"

	"honnef.co/go/wgpu"

	"github.com/cooperjl/graphing-calculator/gfx"
)

// alphaBlend composites straight-alpha fragment output over the target.
// The curve pipeline relies on it to discard its alpha=0 fragments.
var alphaBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorSrcAlpha,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		Operation: wgpu.BlendOperationAdd,
	},
}

func createRenderPipeline(
	dev *wgpu.Device,
	label string,
	wgsl []byte,
	layout *wgpu.PipelineLayout,
	buffers []wgpu.VertexBufferLayout,
	topology wgpu.PrimitiveTopology,
	format wgpu.TextureFormat,
) *wgpu.RenderPipeline {
	shader := dev.CreateShaderModule(wgpu.ShaderModuleDescriptor{
		Label:  label,
		Source: wgpu.ShaderSourceWGSL(wgsl),
	})

	return dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label,
		Layout: layout,
		Vertex: &wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     &alphaBlend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: &wgpu.PrimitiveState{
			Topology:         topology,
			StripIndexFormat: wgpu.IndexFormatUndefined,
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeBack,
		},
		Multisample: &wgpu.MultisampleState{
			Count:                  1,
			Mask:                   ^uint32(0),
			AlphaToCoverageEnabled: false,
		},
	})
}

// vertexLayout describes the shared per-vertex position stream: one
// float32x3 at shader location 0.
func vertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(gfx.Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
		},
	}
}

// instanceLayout describes the per-instance stream: the four columns of the
// model matrix at locations 5-8 and the instance color at location 9,
// advancing once per instance.
func instanceLayout() wgpu.VertexBufferLayout {
	const vec4Size = 4 * 4
	attrs := make([]wgpu.VertexAttribute, 0, 5)
	for i := range uint32(5) {
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         wgpu.VertexFormatFloat32x4,
			Offset:         uint64(i) * vec4Size,
			ShaderLocation: 5 + i,
		})
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(gfx.InstanceRaw{})),
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes:  attrs,
	}
}
