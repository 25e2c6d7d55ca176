// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"encoding/binary"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/tumble/base/errors"
	"github.com/gogpu/naga"
)

// Naga compiles WGSL shaders in process with the pure Go naga compiler.
// Only vertex and fragment shaders are supported. The generated SPIR-V
// version is fixed by naga, so [Options.Target] is only validated.
type Naga struct{}

var nagaStages = map[Kinds]string{
	VertexShader:   "@vertex",
	FragmentShader: "@fragment",
}

func (nc *Naga) Compile(src *Source, opts *Options) ([]uint32, error) {
	if _, err := opts.TargetVersion(); err != nil {
		return nil, err
	}
	attr, ok := nagaStages[src.Kind]
	if !ok {
		return nil, errors.BuildFailure(fmt.Errorf("%s: naga cannot compile %v shaders", src.Name, src.Kind))
	}
	code, err := IncludeFS(src.Code, includeDirs(src, opts)...)
	if err != nil {
		return nil, errors.BuildFailure(fmt.Errorf("%s: %w", src.Name, err))
	}
	if !strings.Contains(code, attr) {
		return nil, errors.BuildFailure(fmt.Errorf("%s: no %s entry point", src.Name, attr))
	}
	b, err := naga.Compile(code)
	if err != nil {
		return nil, errors.BuildFailure(fmt.Errorf("%s: %w", src.Name, err))
	}
	// naga emits little-endian words
	words, err := WordsFromBytes(b, binary.LittleEndian)
	if err != nil {
		return nil, errors.BuildFailure(fmt.Errorf("%s: %w", src.Name, err))
	}
	return words, nil
}

// includeDirs returns the file systems searched for includes:
// the include directory, then the directory of the source file.
func includeDirs(src *Source, opts *Options) []fs.FS {
	var dirs []fs.FS
	if opts.IncludeDir != "" {
		dirs = append(dirs, os.DirFS(opts.IncludeDir))
	}
	if src.Path != "" {
		dirs = append(dirs, os.DirFS(filepath.Dir(src.Path)))
	}
	return dirs
}
