// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system_test

import (
	"image"
	"testing"

	"cogentcore.org/tumble/base/config"
	"cogentcore.org/tumble/base/errors"
	. "cogentcore.org/tumble/system"
	"cogentcore.org/tumble/system/driver/offscreen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackendVersion(t *testing.T) {
	tests := map[string]BackendVersion{
		"opengl 4.6":     OpenGL(4, 6),
		"OpenGL 3.3":     OpenGL(3, 3),
		"gl 4":           OpenGL(4, 0),
		"vulkan 1.3.0":   Vulkan(1, 3, 0),
		"  vk   1.2.162": Vulkan(1, 2, 162),
		"Vulkan 1.1":     Vulkan(1, 1, 0),
	}
	for s, want := range tests {
		bv, err := ParseBackendVersion(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, bv, s)
	}
	for _, s := range []string{"", "opengl", "directx 12", "opengl four", "opengl 4.6.1", "vulkan 0.9", "vulkan 1.3.0-rc1", "opengl 4.6 core"} {
		_, err := ParseBackendVersion(s)
		assert.ErrorIs(t, err, errors.ErrConfiguration, s)
	}
	assert.Equal(t, "OpenGL 4.6", OpenGL(4, 6).String())
	assert.Equal(t, "Vulkan 1.3.0", Vulkan(1, 3, 0).String())
}

func TestAtLeast(t *testing.T) {
	assert.True(t, OpenGL(4, 6).AtLeast(OpenGL(4, 5)))
	assert.True(t, OpenGL(4, 6).AtLeast(OpenGL(4, 6)))
	assert.False(t, OpenGL(4, 5).AtLeast(OpenGL(4, 6)))
	assert.False(t, OpenGL(4, 6).AtLeast(Vulkan(1, 0, 0)))
	assert.True(t, Vulkan(1, 3, 0).AtLeast(Vulkan(1, 2, 200)))
	assert.False(t, Vulkan(1, 3, 0).AtLeast(Vulkan(1, 3, 1)))
}

func TestWindowConfigValidate(t *testing.T) {
	ok := []WindowMode{Normal(800, 600), Borderless(1, 1), Fullscreen(), WindowedFullscreen()}
	for _, m := range ok {
		wc := &WindowConfig{Mode: m, Backend: OpenGL(4, 6)}
		assert.NoError(t, wc.Validate(), m.String())
	}
	bad := []*WindowConfig{
		{Mode: Normal(0, 600), Backend: OpenGL(4, 6)},
		{Mode: Borderless(800, -1), Backend: OpenGL(4, 6)},
		{Mode: WindowMode{Mode: 9}, Backend: OpenGL(4, 6)},
		{Mode: Normal(800, 600), Backend: OpenGL(0, 0)},
		{Mode: Normal(800, 600), Backend: BackendVersion{API: OpenGLAPI, Major: 4, Minor: 6, Patch: 1}},
		{Mode: Normal(800, 600), Backend: Vulkan(1, 3, 0), Move: MovePolicy{Kind: MoveInnerMargin, Margin: [4]int{0, -2, 0, 0}}},
	}
	for _, wc := range bad {
		assert.ErrorIs(t, wc.Validate(), errors.ErrConfiguration, wc.Mode.String())
	}
}

func TestClosestVideoMode(t *testing.T) {
	monitor := []DisplayMode{
		{Width: 640, Height: 480, RefreshRate: 60},
		{Width: 1280, Height: 720, RefreshRate: 60},
		{Width: 1920, Height: 1080, RefreshRate: 60},
		{Width: 1920, Height: 1080, RefreshRate: 144},
	}
	tests := []struct {
		name          string
		modes         []DisplayMode
		width, height int
		want          DisplayMode
	}{
		{"smallest area difference", []DisplayMode{{Width: 100, Height: 100}, {Width: 200, Height: 200}, {Width: 50, Height: 300}}, 180, 180, DisplayMode{Width: 200, Height: 200}},
		{"first of equal modes", monitor, 1920, 1080, monitor[2]},
		{"between modes", monitor, 1300, 700, monitor[1]},
		{"below all modes", monitor, 1, 1, monitor[0]},
		// 1200x900 and 1800x600 have the same area
		{"first of equal areas", []DisplayMode{{Width: 1800, Height: 600}, {Width: 1200, Height: 900}}, 1200, 900, DisplayMode{Width: 1800, Height: 600}},
		{"large areas", []DisplayMode{{Width: 100000, Height: 100000}, {Width: 2, Height: 2}}, 100000, 99999, DisplayMode{Width: 100000, Height: 100000}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := ClosestVideoMode(test.modes, test.width, test.height)
			require.NoError(t, err)
			assert.Equal(t, test.want, m)
		})
	}
	assert.Equal(t, int64(10000000000), DisplayMode{Width: 100000, Height: 100000}.Area())

	_, err := ClosestVideoMode(nil, 800, 600)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
}

func TestSettings(t *testing.T) {
	s := &Settings{}
	require.NoError(t, config.SetFromDefaults(s))
	wc, err := s.WindowConfig()
	require.NoError(t, err)
	assert.Equal(t, &WindowConfig{
		Title:   "Tumble",
		Mode:    Normal(800, 600),
		Backend: OpenGL(4, 6),
		Resize:  ResizePolicy{Kind: ResizeAll},
		Move:    MovePolicy{Kind: MoveFull},
	}, wc)

	toml := `
title = "Spin"
backend = "vulkan 1.2.0"
mode = "borderless"
width = 640
height = 480
resize = "left, Bottom"
move = "inner"
margin = [4, 4, 20, 0]
`
	require.NoError(t, config.Read(s, []byte(toml), config.TOML))
	wc, err = s.WindowConfig()
	require.NoError(t, err)
	assert.Equal(t, "Spin", wc.Title)
	assert.Equal(t, Borderless(640, 480), wc.Mode)
	assert.Equal(t, Vulkan(1, 2, 0), wc.Backend)
	assert.Equal(t, Specific(Left, Bottom), wc.Resize)
	assert.Equal(t, MovePolicy{Kind: MoveInnerMargin, Margin: [4]int{4, 4, 20, 0}}, wc.Move)

	for _, bad := range []Settings{
		{Backend: "metal 3", Mode: "normal", Width: 1, Height: 1},
		{Backend: "opengl 4.6", Mode: "maximized", Width: 1, Height: 1},
		{Backend: "opengl 4.6", Mode: "normal", Width: 1, Height: 1, Resize: "diagonal"},
		{Backend: "opengl 4.6", Mode: "normal", Width: 1, Height: 1, Move: "sideways"},
		{Backend: "opengl 4.6", Mode: "normal", Width: 0, Height: 1},
	} {
		_, err := bad.WindowConfig()
		assert.ErrorIs(t, err, errors.ErrConfiguration)
	}
}

func TestBuilderStates(t *testing.T) {
	p := offscreen.New()
	b, err := NewBuilder(OpenGL(4, 6))
	require.NoError(t, err)
	assert.IsType(t, &GLBuilder{}, b)
	assert.Equal(t, Configuring, b.State())

	nc := NativeConfig{Title: "a", Size: image.Pt(10, 20), Decorated: true}
	require.NoError(t, b.SetConfig(nc))
	cp := b.Config()
	cp.Title = "changed"
	assert.Equal(t, "a", b.Config().Title)

	win, sf, err := b.Build(p)
	require.NoError(t, err)
	assert.Equal(t, Built, b.State())
	assert.Equal(t, image.Pt(10, 20), win.Size())
	assert.Equal(t, image.Pt(10, 20), sf.Size())
	assert.Equal(t, ContextHints{API: OpenGLAPI, Major: 4, Minor: 6}, p.Windows[0].Hints)

	_, _, err = b.Build(p)
	assert.ErrorIs(t, err, ErrAlreadyBuilt)
	assert.ErrorIs(t, b.SetConfig(nc), ErrAlreadyBuilt)
	assert.Len(t, p.Windows, 1)

	vb, err := NewBuilder(Vulkan(1, 3, 0))
	require.NoError(t, err)
	assert.IsType(t, &VulkanBuilder{}, vb)
	assert.Equal(t, Vulkan(1, 3, 0), vb.Version())

	_, err = NewBuilder(OpenGL(0, 1))
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}

// glOnly hides all but the base platform methods.
type glOnly struct {
	Platform
}

func TestBuildFailures(t *testing.T) {
	p := offscreen.New()

	// a failed build still consumes the builder
	b := errors.Must1(NewBuilder(OpenGL(4, 6)))
	p.Fail.Window = errors.New("no pixel format")
	_, _, err := b.Build(p)
	assert.ErrorIs(t, err, errors.ErrConfiguration)
	assert.Equal(t, Built, b.State())
	p.Fail.Window = nil
	_, _, err = b.Build(p)
	assert.ErrorIs(t, err, ErrAlreadyBuilt)

	_, _, err = errors.Must1(NewBuilder(OpenGL(4, 6))).Build(glOnly{p})
	assert.ErrorIs(t, err, errors.ErrConfiguration)
	_, _, err = errors.Must1(NewBuilder(Vulkan(1, 0, 0))).Build(glOnly{p})
	assert.ErrorIs(t, err, errors.ErrConfiguration)

	_, _, err = errors.Must1(NewBuilder(OpenGL(4, 7))).Build(p)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.True(t, p.Windows[len(p.Windows)-1].Destroyed)

	n := len(p.Windows)
	_, _, err = errors.Must1(NewBuilder(Vulkan(1, 4, 0))).Build(p)
	assert.ErrorIs(t, err, errors.ErrConfiguration)
	assert.Len(t, p.Windows, n, "no window is created when negotiation fails")

	p.Fail.Surface = errors.New("lost device")
	_, _, err = errors.Must1(NewBuilder(Vulkan(1, 3, 0))).Build(p)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.True(t, p.Windows[len(p.Windows)-1].Destroyed)
	assert.Equal(t, VulkanAPI, p.Windows[len(p.Windows)-1].Hints.API)
}

func TestOpenNormal(t *testing.T) {
	p := offscreen.New()
	w, err := Open(&WindowConfig{Title: "t", Mode: Normal(800, 600), Backend: OpenGL(4, 6), Resize: ResizePolicy{Kind: ResizeNone}}, p)
	require.NoError(t, err)
	ow := p.Windows[0]
	assert.Equal(t, NativeConfig{Title: "t", Size: image.Pt(800, 600), Decorated: true}, ow.Config)
	assert.Equal(t, image.Pt(800, 600), w.Size())
	assert.Empty(t, ow.Surface.Resizes)

	require.NoError(t, w.Resize(image.Pt(1024, 768)))
	assert.Equal(t, image.Pt(1024, 768), w.Size())

	p.Fail.Resize = errors.New("out of memory")
	assert.ErrorIs(t, w.Resize(image.Pt(1, 1)), errors.ErrEnvironment)

	w.Close()
	assert.True(t, ow.Destroyed)
	assert.True(t, ow.Surface.Released)
}

func TestOpenBorderless(t *testing.T) {
	p := offscreen.New()
	_, err := Open(&WindowConfig{Mode: Borderless(300, 200), Backend: Vulkan(1, 2, 0), Resize: ResizePolicy{Kind: ResizeNone}}, p)
	require.NoError(t, err)
	assert.Equal(t, NativeConfig{Size: image.Pt(300, 200), Transparent: true, Resizable: true}, p.Windows[0].Config)
}

func TestOpenFullscreen(t *testing.T) {
	p := offscreen.New()
	p.Monitor.Modes = []DisplayMode{
		{Width: 1280, Height: 720, RefreshRate: 60},
		{Width: 1920, Height: 1200, RefreshRate: 60},
		{Width: 2560, Height: 1440, RefreshRate: 144},
	}
	w, err := Open(&WindowConfig{Mode: Fullscreen(), Backend: OpenGL(4, 6)}, p)
	require.NoError(t, err)
	ow := p.Windows[0]
	assert.Equal(t, image.Pt(1920, 1080), ow.Config.Size, "built at the native size")
	want := DisplayMode{Width: 1920, Height: 1200, RefreshRate: 60}
	require.NotNil(t, ow.Fullscreen)
	assert.Equal(t, want, *ow.Fullscreen)
	assert.Equal(t, want, w.Mode)
	assert.Equal(t, []image.Point{{1920, 1200}}, ow.Surface.Resizes)
	assert.Equal(t, image.Pt(1920, 1200), w.Size())
}

func TestOpenWindowedFullscreen(t *testing.T) {
	p := offscreen.New()
	p.Monitor.Modes = nil
	w, err := Open(&WindowConfig{Mode: WindowedFullscreen(), Backend: Vulkan(1, 3, 0)}, p)
	require.NoError(t, err)
	ow := p.Windows[0]
	assert.True(t, ow.WindowedFullscreen)
	assert.Nil(t, ow.Fullscreen)
	assert.Equal(t, []image.Point{{1920, 1080}}, ow.Surface.Resizes)
	assert.Equal(t, image.Pt(1920, 1080), w.Size())
}

func TestOpenFailures(t *testing.T) {
	p := offscreen.New()
	p.Monitor.Modes = nil
	_, err := Open(&WindowConfig{Mode: Fullscreen(), Backend: OpenGL(4, 6)}, p)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.True(t, p.Windows[0].Destroyed)

	p = offscreen.New()
	p.Fail.Fullscreen = errors.New("display busy")
	_, err = Open(&WindowConfig{Mode: WindowedFullscreen(), Backend: OpenGL(4, 6)}, p)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.True(t, p.Windows[0].Destroyed)

	p = offscreen.New()
	p.Fail.Resize = errors.New("swapchain")
	_, err = Open(&WindowConfig{Mode: Fullscreen(), Backend: Vulkan(1, 3, 0)}, p)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.True(t, p.Windows[0].Destroyed)

	p = offscreen.New()
	p.Monitor = nil
	_, err = Open(&WindowConfig{Mode: Fullscreen(), Backend: Vulkan(1, 3, 0)}, p)
	assert.ErrorIs(t, err, errors.ErrEnvironment)
	assert.Empty(t, p.Windows)

	_, err = Open(&WindowConfig{Mode: Normal(0, 0), Backend: Vulkan(1, 3, 0)}, p)
	assert.ErrorIs(t, err, errors.ErrConfiguration)
}
