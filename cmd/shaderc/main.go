// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command shaderc compiles every shader in a source directory into a
// SPIR-V cache directory, once or whenever the sources change.
//
// Usage:
//
//	shaderc [-src dir] [-out dir] [-include dir] [-target 1.6]
//		[-compiler glslc|naga] [-args "extra glslc args"] [-watch] [-v|-vv|-q]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/tumble/base/config"
	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/base/logx"
	"cogentcore.org/tumble/shaders"
)

// Config is the configuration of shaderc, read from an optional
// config file and then overridden by flags.
type Config struct {

	// Src is the directory of shader sources.
	Src string `default:"assets/shaders" toml:"src" yaml:"src"`

	// Out is the shader cache directory.
	Out string `default:"shaderCache" toml:"out" yaml:"out"`

	// Compiler is glslc or naga.
	Compiler string `default:"glslc" toml:"compiler" yaml:"compiler"`

	shaders.Options `toml:"options" yaml:"options"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := &Config{}
	errors.Must(config.SetFromDefaults(cfg))

	fs := flag.NewFlagSet("shaderc", flag.ContinueOnError)
	file := fs.String("config", "", "read settings from this TOML or YAML file before applying flags")
	src := fs.String("src", cfg.Src, "directory of shader sources")
	out := fs.String("out", cfg.Out, "shader cache directory")
	include := fs.String("include", cfg.IncludeDir, "directory searched for #include files")
	target := fs.String("target", cfg.Target, "SPIR-V version to generate, 1.0 to 1.6")
	compiler := fs.String("compiler", cfg.Compiler, "compiler to use: glslc or naga")
	extra := fs.String("args", cfg.Args, "extra arguments passed to glslc")
	watch := fs.Bool("watch", false, "rebuild whenever a source changes, until interrupted")
	vv := fs.Bool("vv", false, "show debug messages")
	v := fs.Bool("v", false, "show info messages")
	q := fs.Bool("q", false, "only show errors")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	if *file != "" {
		if err := config.Open(cfg, *file); err != nil {
			slog.Error("reading config", "file", *file, "err", err)
			return 1
		}
	}
	// explicit flags win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "src":
			cfg.Src = *src
		case "out":
			cfg.Out = *out
		case "include":
			cfg.IncludeDir = *include
		case "target":
			cfg.Target = *target
		case "compiler":
			cfg.Compiler = *compiler
		case "args":
			cfg.Args = *extra
		}
	})

	comp, err := shaders.CompilerByName(cfg.Compiler)
	if err != nil {
		slog.Error(err.Error())
		return 1
	}
	if !*watch {
		assets, err := shaders.Build(cfg.Src, cfg.Out, comp, &cfg.Options)
		if err != nil {
			slog.Error("building shaders", "err", err)
			return 1
		}
		for _, a := range assets {
			fmt.Println(a.CacheName())
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = shaders.Watch(ctx, cfg.Src, cfg.Out, comp, &cfg.Options, func(assets []*shaders.Asset, err error) {
		if err != nil {
			slog.Error("building shaders", "err", err)
			return
		}
		slog.Warn("rebuilt shader cache", "dir", cfg.Out, "shaders", len(assets))
	})
	if err != nil {
		slog.Error("watching shaders", "err", err)
		return 1
	}
	return 0
}
