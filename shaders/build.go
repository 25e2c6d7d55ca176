// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/tumble/base/errors"
)

// CompilerByName returns the compiler with the given name: glslc or naga.
func CompilerByName(name string) (Compiler, error) {
	switch name {
	case "glslc", "":
		return &GLSLC{}, nil
	case "naga":
		return &Naga{}, nil
	}
	return nil, errors.Configuration(fmt.Errorf("shaders: unknown compiler %q (must be glslc or naga)", name))
}

// Sources returns every regular file directly in the given directory,
// following symbolic links, in lexical order, classified by kind.
// Subdirectories, such as the include directory, are skipped. Any file with an unsupported extension
// fails the whole listing before any file is read.
func Sources(dir string) ([]*Source, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Configuration(err)
	}
	var srcs []*Source
	for _, ent := range ents {
		path := filepath.Join(dir, ent.Name())
		st, err := os.Stat(path)
		if err != nil {
			return nil, errors.Configuration(err)
		}
		if !st.Mode().IsRegular() {
			continue
		}
		kind, err := KindFromFilename(ent.Name())
		if err != nil {
			return nil, err
		}
		srcs = append(srcs, &Source{Name: ent.Name(), Path: path, Kind: kind})
	}
	return srcs, nil
}

// Build compiles every shader source file in the src directory with
// the given compiler and writes the results to the out directory as
// <name>.spv cache files. All files are classified and compiled before
// anything is written, and the cache files are then replaced together,
// so any failure leaves out untouched.
// Rebuilding unchanged sources rewrites identical files.
func Build(src, out string, comp Compiler, opts *Options) ([]*Asset, error) {
	if opts == nil {
		opts = &Options{}
	}
	if _, err := opts.TargetVersion(); err != nil {
		return nil, err
	}
	srcs, err := Sources(src)
	if err != nil {
		return nil, err
	}
	assets := make([]*Asset, 0, len(srcs))
	for _, s := range srcs {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, errors.BuildFailure(err)
		}
		s.Code = string(b)
		code, err := comp.Compile(s, opts)
		if err != nil {
			return nil, errors.BuildFailure(err)
		}
		assets = append(assets, &Asset{Name: s.Name, Kind: s.Kind, Code: code})
		slog.Debug("compiled shader", "file", s.Name, "kind", s.Kind, "words", len(code))
	}
	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, err
	}
	if err := WriteCache(out, assets...); err != nil {
		return nil, err
	}
	slog.Info("built shader cache", "dir", out, "shaders", len(assets))
	return assets, nil
}
