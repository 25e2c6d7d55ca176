// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vkgpu implements [gpu.Surface] with WebGPU running on its
// Vulkan backend only.
package vkgpu

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the format of the depth buffer.
const DepthFormat = wgpu.TextureFormatDepth24Plus

// Surface is a [gpu.Surface] presenting to a window through a
// Vulkan WebGPU device.
type Surface struct {
	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// format is the color format of the window surface.
	format wgpu.TextureFormat

	alphaMode wgpu.CompositeAlphaMode

	size image.Point

	depth     *wgpu.Texture
	depthView *wgpu.TextureView

	// layout is the bind group layout shared by every program:
	// the Material buffer, a texture view and its sampler.
	layout *wgpu.BindGroupLayout

	sampler *wgpu.Sampler

	// blank is bound when a draw has no texture.
	blank *Texture

	// frame is the frame being recorded, between BeginFrame and EndFrame.
	frame *frame
}

// frame holds the state of a frame being recorded.
type frame struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	pass    *wgpu.RenderPassEncoder

	// garbage is released once the frame has been submitted.
	garbage []interface{ Release() }
}

// NewSurface creates a WebGPU instance limited to the Vulkan backend,
// a device compatible with the window surface described by desc,
// and configures the surface for the given size.
func NewSurface(desc *wgpu.SurfaceDescriptor, size image.Point) (*Surface, error) {
	sf := &Surface{size: size}
	sf.instance = wgpu.CreateInstance(&wgpu.InstanceDescriptor{Backends: wgpu.InstanceBackendVulkan})
	sf.surface = sf.instance.CreateSurface(desc)
	if sf.surface == nil {
		sf.Release()
		return nil, errors.Environment(errors.New("vkgpu: creating window surface"))
	}
	var err error
	sf.adapter, err = sf.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: sf.surface,
	})
	if err != nil {
		sf.Release()
		return nil, errors.Environment(fmt.Errorf("vkgpu: no Vulkan adapter for the window: %w", err))
	}
	sf.device, err = sf.adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "tumble"})
	if err != nil {
		sf.Release()
		return nil, errors.Environment(fmt.Errorf("vkgpu: requesting device: %w", err))
	}
	sf.queue = sf.device.GetQueue()

	caps := sf.surface.GetCapabilities(sf.adapter)
	if len(caps.Formats) == 0 {
		sf.Release()
		return nil, errors.Environment(errors.New("vkgpu: window surface supports no formats"))
	}
	sf.format = caps.Formats[0]
	if len(caps.AlphaModes) > 0 {
		sf.alphaMode = caps.AlphaModes[0]
	}
	if err := sf.configure(); err != nil {
		sf.Release()
		return nil, err
	}
	if err := sf.initBindings(); err != nil {
		sf.Release()
		return nil, err
	}
	slog.Info("WebGPU surface", "backend", "Vulkan", "format", sf.format.String(), "size", size)
	return sf, nil
}

// configure sets up the window surface and depth buffer for the current size.
func (sf *Surface) configure() error {
	sf.surface.Configure(sf.adapter, sf.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.format,
		Width:       uint32(sf.size.X),
		Height:      uint32(sf.size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   sf.alphaMode,
	})
	sf.releaseDepth()
	var err error
	sf.depth, err = sf.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "depth",
		Size: wgpu.Extent3D{
			Width:              uint32(sf.size.X),
			Height:             uint32(sf.size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: creating depth buffer: %w", err))
	}
	sf.depthView, err = sf.depth.CreateView(nil)
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: creating depth buffer view: %w", err))
	}
	return nil
}

// initBindings creates the bind group layout, the sampler and the
// blank texture used by every draw.
func (sf *Surface) initBindings() error {
	var err error
	sf.layout, err = sf.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "material",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: materialSize,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: creating bind group layout: %w", err))
	}
	sf.sampler, err = sf.device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	})
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: creating sampler: %w", err))
	}
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.White)
	sf.blank, err = sf.newTexture(white)
	return err
}

func (sf *Surface) Size() image.Point {
	return sf.size
}

// Resize reconfigures the window surface and recreates the depth buffer.
func (sf *Surface) Resize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return errors.Environment(fmt.Errorf("vkgpu: invalid surface size %v", size))
	}
	sf.size = size
	return sf.configure()
}

func (sf *Surface) BeginFrame(clear color.Color) error {
	if sf.frame != nil {
		return errors.New("vkgpu: BeginFrame called twice without EndFrame")
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: acquiring surface texture: %w", err))
	}
	fr := &frame{texture: tex}
	fr.view, err = tex.CreateView(nil)
	if err != nil {
		fr.release()
		return errors.Environment(fmt.Errorf("vkgpu: creating surface view: %w", err))
	}
	fr.encoder, err = sf.device.CreateCommandEncoder(nil)
	if err != nil {
		fr.release()
		return errors.Environment(fmt.Errorf("vkgpu: creating command encoder: %w", err))
	}
	r, g, b, a := gpu.ToFloat32(clear)
	fr.pass = fr.encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       fr.view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: float64(r), G: float64(g), B: float64(b), A: float64(a)},
		}},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            sf.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1,
		},
	})
	sf.frame = fr
	return nil
}

func (sf *Surface) Draw(buf gpu.Buffer, indices []uint32, prog gpu.Program, uniforms *gpu.Uniforms) error {
	fr := sf.frame
	if fr == nil {
		return errors.New("vkgpu: Draw called outside of a frame")
	}
	vb, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("vkgpu: buffer %T is not a WebGPU buffer", buf)
	}
	pr, ok := prog.(*Program)
	if !ok {
		return fmt.Errorf("vkgpu: program %T is not a WebGPU program", prog)
	}
	if len(indices) == 0 {
		return nil
	}
	for _, ix := range indices {
		if int(ix) >= vb.n {
			return errors.Configuration(fmt.Errorf("vkgpu: index %d out of range for %d vertices", ix, vb.n))
		}
	}

	ib, err := sf.newBuffer("indices", gpu.IndexBytes(indices), wgpu.BufferUsageIndex)
	if err != nil {
		return err
	}
	fr.garbage = append(fr.garbage, ib)
	mat, err := sf.newBuffer("material", uniforms.MaterialBytes(), wgpu.BufferUsageUniform)
	if err != nil {
		return err
	}
	fr.garbage = append(fr.garbage, mat)

	tx := sf.blank
	if t, ok := uniforms.Texture.(*Texture); ok && t != nil {
		tx = t
	}
	bg, err := sf.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Layout: sf.layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: mat, Offset: 0, Size: wgpu.WholeSize},
			{Binding: 1, TextureView: tx.view},
			{Binding: 2, Sampler: sf.sampler},
		},
	})
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: creating bind group: %w", err))
	}
	fr.garbage = append(fr.garbage, bg)

	fr.pass.SetPipeline(pr.pipeline)
	fr.pass.SetBindGroup(0, bg, nil)
	fr.pass.SetVertexBuffer(0, vb.buffer, 0, wgpu.WholeSize)
	fr.pass.SetIndexBuffer(ib, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	fr.pass.DrawIndexed(uint32(len(indices)), 1, 0, 0, 0)
	return nil
}

// EndFrame submits the recorded frame and presents it.
func (sf *Surface) EndFrame() error {
	fr := sf.frame
	if fr == nil {
		return errors.New("vkgpu: EndFrame called without BeginFrame")
	}
	sf.frame = nil
	defer fr.release()
	fr.pass.End()
	cmd, err := fr.encoder.Finish(nil)
	if err != nil {
		return errors.Environment(fmt.Errorf("vkgpu: finishing frame: %w", err))
	}
	sf.queue.Submit(cmd)
	cmd.Release()
	sf.surface.Present()
	return nil
}

// release frees the frame resources, including the garbage
// left by draws.
func (fr *frame) release() {
	for _, g := range fr.garbage {
		g.Release()
	}
	fr.garbage = nil
	if fr.pass != nil {
		fr.pass.Release()
	}
	if fr.encoder != nil {
		fr.encoder.Release()
	}
	if fr.view != nil {
		fr.view.Release()
	}
	if fr.texture != nil {
		fr.texture.Release()
	}
}

// deferRelease releases r after the current frame is submitted,
// or at once when no frame is being recorded.
func (sf *Surface) deferRelease(r interface{ Release() }) {
	if sf.frame != nil {
		sf.frame.garbage = append(sf.frame.garbage, r)
		return
	}
	r.Release()
}

func (sf *Surface) releaseDepth() {
	if sf.depthView != nil {
		sf.depthView.Release()
		sf.depthView = nil
	}
	if sf.depth != nil {
		sf.depth.Release()
		sf.depth = nil
	}
}

func (sf *Surface) Release() {
	if sf.frame != nil {
		sf.frame.release()
		sf.frame = nil
	}
	if sf.blank != nil {
		sf.blank.Release()
		sf.blank = nil
	}
	if sf.sampler != nil {
		sf.sampler.Release()
		sf.sampler = nil
	}
	if sf.layout != nil {
		sf.layout.Release()
		sf.layout = nil
	}
	sf.releaseDepth()
	if sf.queue != nil {
		sf.queue.Release()
		sf.queue = nil
	}
	if sf.device != nil {
		sf.device.Release()
		sf.device = nil
	}
	if sf.adapter != nil {
		sf.adapter.Release()
		sf.adapter = nil
	}
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
	if sf.instance != nil {
		sf.instance.Release()
		sf.instance = nil
	}
}
