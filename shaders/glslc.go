// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/base/exec"
)

// GLSLC compiles GLSL shaders with the external glslc program
// from the shaderc project.
type GLSLC struct {

	// Path is the glslc executable. It defaults to glslc on the PATH.
	Path string

	// Exec is the configuration used to run glslc. It defaults to [exec.Minor].
	Exec *exec.Config

	// resolved is the glslc executable found on first use
	resolved string
}

// Args returns the glslc command line arguments for compiling src
// into the given output file.
func (gc *GLSLC) Args(src *Source, opts *Options, output string) ([]string, error) {
	target, err := opts.TargetName()
	if err != nil {
		return nil, err
	}
	args := []string{"-fshader-stage=" + src.Kind.Stage(), "--target-spv=" + target}
	if opts.IncludeDir != "" {
		inc, err := filepath.Abs(opts.IncludeDir)
		if err != nil {
			return nil, errors.Configuration(err)
		}
		args = append(args, "-I", inc)
	}
	extra, err := exec.SplitArgs(opts.Args)
	if err != nil {
		return nil, errors.Configuration(fmt.Errorf("shaders: parsing compiler args %q: %w", opts.Args, err))
	}
	args = append(args, extra...)
	return append(args, "-o", output, src.Path), nil
}

// resolve returns the glslc executable, looking it up on the PATH and
// logging its version the first time. A missing glslc is an
// [errors.ErrConfiguration], since the naga compiler can be chosen instead.
func (gc *GLSLC) resolve() (string, error) {
	if gc.resolved != "" {
		return gc.resolved, nil
	}
	name := gc.Path
	if name == "" {
		name = "glslc"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Configuration(fmt.Errorf("shaders: glslc compiler not found (install shaderc or use the naga compiler): %w", err))
	}
	version, err := (&exec.Config{}).Output(path, "--version")
	if err != nil {
		slog.Warn("could not get glslc version", "path", path, "err", err)
	} else {
		first, _, _ := strings.Cut(version, "\n")
		slog.Info("using glslc", "path", path, "version", strings.TrimSpace(first))
	}
	gc.resolved = path
	return path, nil
}

func (gc *GLSLC) Compile(src *Source, opts *Options) ([]uint32, error) {
	path, err := gc.resolve()
	if err != nil {
		return nil, err
	}
	tmp, err := os.MkdirTemp("", "tumble-glslc")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmp)
	output := filepath.Join(tmp, src.Name+CacheSuffix)
	args, err := gc.Args(src, opts, output)
	if err != nil {
		return nil, err
	}

	cfg := gc.Exec
	if cfg == nil {
		cfg = exec.Minor()
	}
	run := *cfg
	stderr := &bytes.Buffer{}
	run.Stderr = stderr
	if ran, err := run.Exec(path, args...); err != nil {
		if !ran {
			return nil, errors.Environment(fmt.Errorf("%s: %w", src.Name, err))
		}
		return nil, errors.BuildFailure(fmt.Errorf("%s: %w\n%s", src.Name, err, strings.TrimSpace(stderr.String())))
	}
	b, err := os.ReadFile(output)
	if err != nil {
		return nil, errors.BuildFailure(fmt.Errorf("%s: %w", src.Name, err))
	}
	code, err := WordsFromBytes(b, binary.NativeEndian)
	if err != nil {
		return nil, errors.BuildFailure(fmt.Errorf("%s: %w", src.Name, err))
	}
	if !IsSPIRV(code) {
		return nil, errors.BuildFailure(fmt.Errorf("%s: glslc did not produce SPIR-V", src.Name))
	}
	return code, nil
}
