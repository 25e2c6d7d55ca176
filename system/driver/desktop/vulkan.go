// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

package desktop

import (
	"fmt"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/gpu/vkgpu"
	"cogentcore.org/tumble/system"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/goki/vulkan"
)

// NegotiateVulkan loads the Vulkan loader through glfw and creates,
// then destroys, an instance requesting the given API version, which
// fails if the driver does not support it.
func (p *Platform) NegotiateVulkan(major, minor, patch int) error {
	if !glfw.VulkanSupported() {
		return errors.New("desktop: no Vulkan loader found")
	}
	if !p.vulkanLoaded {
		vk.SetGetInstanceProcAddr(glfw.GetVulkanGetInstanceProcAddress())
		if err := vk.Init(); err != nil {
			return fmt.Errorf("desktop: initializing Vulkan: %w", err)
		}
		p.vulkanLoaded = true
	}
	var inst vk.Instance
	ret := vk.CreateInstance(&vk.InstanceCreateInfo{
		SType: vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: &vk.ApplicationInfo{
			SType:            vk.StructureTypeApplicationInfo,
			ApiVersion:       uint32(vk.MakeVersion(major, minor, patch)),
			PApplicationName: "tumble\x00",
			PEngineName:      "tumble\x00",
		},
	}, nil, &inst)
	if err := vk.Error(ret); err != nil {
		return fmt.Errorf("desktop: creating a Vulkan %d.%d.%d instance: %w", major, minor, patch, err)
	}
	vk.DestroyInstance(inst, nil)
	return nil
}

// NewVulkanSurface returns a WebGPU surface on the Vulkan backend
// presenting to the window.
func (p *Platform) NewVulkanSurface(win system.NativeWindow) (gpu.Surface, error) {
	w, ok := win.(*Window)
	if !ok || w.glw == nil {
		return nil, errors.Configuration(fmt.Errorf("desktop: window %T is not an open glfw window", win))
	}
	if w.hints.API != system.VulkanAPI {
		return nil, errors.Configuration(fmt.Errorf("desktop: window was created for %v, not Vulkan", w.hints.API))
	}
	return vkgpu.NewSurface(wgpuglfw.GetSurfaceDescriptor(w.glw), w.Size())
}
