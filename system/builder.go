// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"github.com/jinzhu/copier"
)

// ErrAlreadyBuilt is returned when a [Builder] is used after Build.
var ErrAlreadyBuilt = errors.New("system: builder has already been built")

// BuilderStates are the states of a [Builder].
type BuilderStates int32

const (
	// Configuring is the initial state, in which the config can be set.
	Configuring BuilderStates = iota

	// Built is the state after Build has been called, whether or not
	// it succeeded. A new builder is needed to try again.
	Built
)

func (bs BuilderStates) String() string {
	if bs == Built {
		return "Built"
	}
	return "Configuring"
}

// Builder creates a native window together with a GPU surface
// for one backend API.
type Builder interface {

	// Version returns the backend version the builder requests.
	Version() BackendVersion

	// Config returns a copy of the native window config.
	Config() NativeConfig

	// SetConfig sets the native window config.
	SetConfig(cfg NativeConfig) error

	// Build creates the window and surface on the given platform.
	// The builder can only be built once.
	Build(p Platform) (NativeWindow, gpu.Surface, error)

	// State returns the current state.
	State() BuilderStates
}

// NewBuilder returns the builder for the API of the given version.
func NewBuilder(bv BackendVersion) (Builder, error) {
	if err := bv.Validate(); err != nil {
		return nil, err
	}
	if bv.API == VulkanAPI {
		return &VulkanBuilder{builderBase: builderBase{version: bv}}, nil
	}
	return &GLBuilder{builderBase: builderBase{version: bv}}, nil
}

type builderBase struct {
	version BackendVersion
	config  NativeConfig
	state   BuilderStates
}

func (b *builderBase) Version() BackendVersion { return b.version }

func (b *builderBase) State() BuilderStates { return b.state }

func (b *builderBase) Config() NativeConfig {
	var nc NativeConfig
	errors.Log(copier.CopyWithOption(&nc, &b.config, copier.Option{DeepCopy: true}))
	return nc
}

func (b *builderBase) SetConfig(cfg NativeConfig) error {
	if b.state == Built {
		return ErrAlreadyBuilt
	}
	b.config = cfg
	return nil
}

// consume moves the builder to [Built], or returns [ErrAlreadyBuilt].
func (b *builderBase) consume() error {
	if b.state == Built {
		return ErrAlreadyBuilt
	}
	b.state = Built
	return nil
}

func (b *builderBase) hints() ContextHints {
	return ContextHints{API: b.version.API, Major: b.version.Major, Minor: b.version.Minor, Patch: b.version.Patch}
}

// newWindow creates the native window. Any failure means the platform
// has no window configuration compatible with the request.
func (b *builderBase) newWindow(p Platform) (NativeWindow, error) {
	cfg := b.Config()
	win, err := p.NewWindow(&cfg, b.hints())
	if err != nil {
		return nil, errors.Configuration(fmt.Errorf("system: no compatible %v window configuration on %s: %w", b.version, p.Name(), err))
	}
	return win, nil
}

// GLBuilder builds windows with an OpenGL core profile context.
type GLBuilder struct {
	builderBase
}

func (b *GLBuilder) Build(p Platform) (NativeWindow, gpu.Surface, error) {
	if err := b.consume(); err != nil {
		return nil, nil, err
	}
	gp, ok := p.(GLPlatform)
	if !ok {
		return nil, nil, errors.Configuration(fmt.Errorf("system: platform %s does not support OpenGL", p.Name()))
	}
	win, err := b.newWindow(gp)
	if err != nil {
		return nil, nil, err
	}
	sf, err := gp.NewGLSurface(win, b.version.Major, b.version.Minor)
	if err != nil {
		win.Destroy()
		return nil, nil, errors.Environment(fmt.Errorf("system: creating %v context: %w", b.version, err))
	}
	slog.Info("created OpenGL window", "version", b.version, "size", win.Size())
	return win, sf, nil
}

// VulkanBuilder builds windows with no client API and a Vulkan surface.
type VulkanBuilder struct {
	builderBase
}

func (b *VulkanBuilder) Build(p Platform) (NativeWindow, gpu.Surface, error) {
	if err := b.consume(); err != nil {
		return nil, nil, err
	}
	vp, ok := p.(VulkanPlatform)
	if !ok {
		return nil, nil, errors.Configuration(fmt.Errorf("system: platform %s does not support Vulkan", p.Name()))
	}
	v := b.version
	if err := vp.NegotiateVulkan(v.Major, v.Minor, v.Patch); err != nil {
		return nil, nil, errors.Configuration(fmt.Errorf("system: negotiating %v: %w", v, err))
	}
	slog.Debug("negotiated Vulkan instance", "version", v)
	win, err := b.newWindow(vp)
	if err != nil {
		return nil, nil, err
	}
	sf, err := vp.NewVulkanSurface(win)
	if err != nil {
		win.Destroy()
		return nil, nil, errors.Environment(fmt.Errorf("system: creating Vulkan surface: %w", err))
	}
	slog.Info("created Vulkan window", "version", v, "size", win.Size())
	return win, sf, nil
}
