// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tumble opens a window and spins three textured quads in it,
// drawn with OpenGL or Vulkan from a precompiled SPIR-V shader cache.
//
// Usage:
//
//	tumble [-config tumble.toml] [-backend "vulkan 1.3.0"] [-mode fullscreen] [-nogui] [-v|-vv|-q]
//
// Run shaderc first to fill the shader cache.
package main

import (
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"time"

	"cogentcore.org/tumble/base/config"
	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/base/logx"
	"cogentcore.org/tumble/scene"
	"cogentcore.org/tumble/system"
	"cogentcore.org/tumble/system/driver"
	"cogentcore.org/tumble/system/driver/offscreen"
)

func init() {
	// glfw and the GPU contexts must stay on the main thread
	runtime.LockOSThread()
}

// DefaultConfigFile is read if it exists and no other file is given.
const DefaultConfigFile = "tumble.toml"

// Config is the configuration of tumble.
type Config struct {
	system.Settings `toml:"window" yaml:"window"`

	// ShaderCache is the directory of compiled shaders written by shaderc.
	ShaderCache string `default:"shaderCache" toml:"shader_cache" yaml:"shader_cache"`

	// Images is the directory of the texture images.
	Images string `default:"assets/images" toml:"images" yaml:"images"`

	// AngularVelocity is the spin rate in radians per microsecond.
	AngularVelocity float32 `default:"5e-7" toml:"angular_velocity" yaml:"angular_velocity"`

	// NoGUI draws offscreen without a display.
	NoGUI bool `toml:"nogui" yaml:"nogui"`

	// Frames is the number of frames drawn without a display.
	Frames int `default:"60" toml:"frames" yaml:"frames"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, code := configure(args)
	if cfg == nil {
		return code
	}
	if err := tumble(cfg); err != nil {
		slog.Error(err.Error())
		return 1
	}
	return 0
}

// configure sets up logging and returns the configuration from the
// defaults, the config file and the command line flags, in increasing
// priority. If it fails, the config is nil and the exit code is returned.
func configure(args []string) (*Config, int) {
	cfg := &Config{}
	if err := config.SetFromDefaults(cfg); err != nil {
		return nil, 1
	}

	fl := flag.NewFlagSet("tumble", flag.ContinueOnError)
	file := fl.String("config", DefaultConfigFile, "read settings from this TOML or YAML file")
	backend := fl.String("backend", "", `GPU API and minimum version, such as "opengl 4.6" or "vulkan 1.3.0"`)
	mode := fl.String("mode", "", "window mode: normal, borderless, fullscreen or windowed-fullscreen")
	nogui := fl.Bool("nogui", false, "draw offscreen without a display")
	vv := fl.Bool("vv", false, "show debug messages")
	v := fl.Bool("v", false, "show info messages")
	q := fl.Bool("q", false, "only show errors")
	if err := fl.Parse(args); err != nil {
		return nil, 2
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	if err := config.Open(cfg, *file); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || *file != DefaultConfigFile {
			slog.Error("reading config", "file", *file, "err", err)
			return nil, 1
		}
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	fl.Visit(func(f *flag.Flag) {
		if f.Name == "nogui" {
			cfg.NoGUI = *nogui
		}
	})
	return cfg, 0
}

// tumble opens the window and runs the frame loop until it is closed.
func tumble(cfg *Config) error {
	wc, err := cfg.WindowConfig()
	if err != nil {
		return err
	}
	p, err := driver.Init(cfg.NoGUI)
	if err != nil {
		return err
	}
	defer p.Terminate()

	win, err := system.Open(wc, p)
	if err != nil {
		return err
	}
	defer win.Close()
	slog.Info("opened window", "platform", p.Name(), "backend", wc.Backend, "mode", wc.Mode, "size", win.Size())

	loop := scene.NewLoop(scene.DemoObjects(cfg.Images)...)
	loop.AngularVelocity = cfg.AngularVelocity
	prog, err := scene.LoadProgram(win.Surface, cfg.ShaderCache, scene.DemoVertex, scene.DemoFragment)
	if err != nil {
		return err
	}
	defer prog.Release()
	loop.Program = prog
	if err := loop.Load(win.Surface, cfg.ShaderCache); err != nil {
		return err
	}
	defer loop.Release()

	if op, ok := p.(*offscreen.Platform); ok {
		for range cfg.Frames {
			op.Post(system.Event{Type: system.Redraw})
		}
	}
	return loop.Run(win, p, scene.NewTimer(time.Now()))
}
