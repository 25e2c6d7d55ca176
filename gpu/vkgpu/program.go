// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vkgpu

import (
	"fmt"
	"strings"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/shaders"
	"github.com/cogentcore/webgpu/wgpu"
)

// vertexLayout is the layout of [gpu.RenderVertex]: the position at
// location 0 and the texture coordinates at location 1.
var vertexLayout = wgpu.VertexBufferLayout{
	ArrayStride: uint64(gpu.VertexStride),
	StepMode:    wgpu.VertexStepModeVertex,
	Attributes: []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(gpu.PositionOffset), ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x2, Offset: uint64(gpu.TexCoordsOffset), ShaderLocation: 1},
	},
}

// Program is a render pipeline for a vertex and fragment shader pair.
type Program struct {
	name     string
	modules  []*wgpu.ShaderModule
	layout   *wgpu.PipelineLayout
	pipeline *wgpu.RenderPipeline
}

// NewProgram creates a render pipeline from a vertex and a fragment
// SPIR-V stage. WebGPU has no other stages.
func (sf *Surface) NewProgram(stages ...*shaders.Asset) (gpu.Program, error) {
	var vs, fs *shaders.Asset
	names := make([]string, len(stages))
	for i, st := range stages {
		names[i] = st.Name
		switch st.Kind {
		case shaders.VertexShader:
			vs = st
		case shaders.FragmentShader:
			fs = st
		default:
			return nil, errors.Configuration(fmt.Errorf("vkgpu: shader %s: %v stages are not supported", st.Name, st.Kind))
		}
	}
	if vs == nil || fs == nil {
		return nil, errors.Configuration(fmt.Errorf("vkgpu: program %v needs a vertex and a fragment shader", names))
	}
	pr := &Program{name: strings.Join(names, "+")}
	vm, err := sf.newModule(vs)
	if err != nil {
		pr.Release()
		return nil, err
	}
	pr.modules = append(pr.modules, vm)
	fm, err := sf.newModule(fs)
	if err != nil {
		pr.Release()
		return nil, err
	}
	pr.modules = append(pr.modules, fm)

	pr.layout, err = sf.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pr.name,
		BindGroupLayouts: []*wgpu.BindGroupLayout{sf.layout},
	})
	if err != nil {
		pr.Release()
		return nil, errors.Environment(fmt.Errorf("vkgpu: creating pipeline layout for %s: %w", pr.name, err))
	}
	pr.pipeline, err = sf.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pr.name,
		Layout: pr.layout,
		Vertex: wgpu.VertexState{
			Module:     vm,
			EntryPoint: "main",
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     fm,
			EntryPoint: "main",
			Targets: []wgpu.ColorTargetState{{
				Format:    sf.format,
				Blend:     &wgpu.BlendStateAlphaBlending,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		pr.Release()
		return nil, errors.Environment(fmt.Errorf("vkgpu: creating pipeline for %s: %w", pr.name, err))
	}
	return pr, nil
}

// newModule creates a shader module from the SPIR-V of st.
func (sf *Surface) newModule(st *shaders.Asset) (*wgpu.ShaderModule, error) {
	if !shaders.IsSPIRV(st.Code) {
		return nil, errors.Configuration(fmt.Errorf("vkgpu: shader %s is not SPIR-V", st.Name))
	}
	m, err := sf.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:           st.Name,
		SPIRVDescriptor: &wgpu.ShaderModuleSPIRVDescriptor{Code: st.Bytes()},
	})
	if err != nil {
		return nil, errors.Environment(fmt.Errorf("vkgpu: loading shader %s: %w", st.Name, err))
	}
	return m, nil
}

func (pr *Program) Release() {
	if pr.pipeline != nil {
		pr.pipeline.Release()
		pr.pipeline = nil
	}
	if pr.layout != nil {
		pr.layout.Release()
		pr.layout = nil
	}
	for _, m := range pr.modules {
		m.Release()
	}
	pr.modules = nil
}
