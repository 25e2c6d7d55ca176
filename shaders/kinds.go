// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"strings"

	"cogentcore.org/tumble/base/errors"
)

// Kinds are the pipeline stages a shader source file can target.
type Kinds int32

const (
	// VertexShader is a vertex stage shader, in a .vs file.
	VertexShader Kinds = iota

	// FragmentShader is a fragment stage shader, in a .fs file.
	FragmentShader

	// GeometryShader is a geometry stage shader, in a .gs file.
	GeometryShader

	// TessControlShader is a tessellation control stage shader, in a .tcs file.
	TessControlShader

	// TessEvaluationShader is a tessellation evaluation stage shader, in a .tes file.
	TessEvaluationShader

	kindsN
)

var kindInfo = [kindsN]struct {
	name, ext, stage string
}{
	{"VertexShader", "vs", "vert"},
	{"FragmentShader", "fs", "frag"},
	{"GeometryShader", "gs", "geom"},
	{"TessControlShader", "tcs", "tesc"},
	{"TessEvaluationShader", "tes", "tese"},
}

// KindsValues returns all of the shader kinds.
func KindsValues() []Kinds {
	return []Kinds{VertexShader, FragmentShader, GeometryShader, TessControlShader, TessEvaluationShader}
}

func (k Kinds) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindInfo[k].name
}

// IsValid returns whether k is one of the defined kinds.
func (k Kinds) IsValid() bool {
	return k >= 0 && k < kindsN
}

// Extension returns the source file extension for the kind, without the dot.
func (k Kinds) Extension() string {
	if !k.IsValid() {
		return ""
	}
	return kindInfo[k].ext
}

// Stage returns the glslc -fshader-stage name for the kind.
func (k Kinds) Stage() string {
	if !k.IsValid() {
		return ""
	}
	return kindInfo[k].stage
}

// KindFromFilename returns the shader kind for the given source file name,
// based on the text after its final dot, or the whole name if it has no
// dot, which must be exactly one of vs, fs, gs, tcs or tes. So both
// simple.vs and vs are vertex shaders. Any other name is an
// [errors.ErrConfiguration].
func KindFromFilename(name string) (Kinds, error) {
	ext := name
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		ext = name[i+1:]
	}
	for k := range kindsN {
		if kindInfo[k].ext == ext {
			return k, nil
		}
	}
	return 0, errors.Configuration(fmt.Errorf("shaders: the shader type is not supported or the file name %q is incorrect (must end in .vs, .fs, .gs, .tcs or .tes)", name))
}
