// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/tumble/base/errors"
	"cogentcore.org/tumble/gpu"
	"cogentcore.org/tumble/shaders"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// glStages maps shader kinds to OpenGL shader types.
var glStages = map[shaders.Kinds]uint32{
	shaders.VertexShader:         gl.VERTEX_SHADER,
	shaders.FragmentShader:       gl.FRAGMENT_SHADER,
	shaders.GeometryShader:       gl.GEOMETRY_SHADER,
	shaders.TessControlShader:    gl.TESS_CONTROL_SHADER,
	shaders.TessEvaluationShader: gl.TESS_EVALUATION_SHADER,
}

// Program is a linked OpenGL program.
type Program struct {
	name   string
	handle uint32
}

// NewProgram specializes each SPIR-V stage at its main entry point
// and links them into a program.
func (sf *Surface) NewProgram(stages ...*shaders.Asset) (gpu.Program, error) {
	if len(stages) == 0 {
		return nil, errors.Configuration(errors.New("glgpu: program has no shader stages"))
	}
	names := make([]string, len(stages))
	handles := make([]uint32, 0, len(stages))
	defer func() {
		for _, sh := range handles {
			gl.DeleteShader(sh)
		}
	}()
	for i, st := range stages {
		names[i] = st.Name
		sh, err := loadShader(st)
		if err != nil {
			return nil, err
		}
		handles = append(handles, sh)
	}

	pr := &Program{name: strings.Join(names, "+"), handle: gl.CreateProgram()}
	for _, sh := range handles {
		gl.AttachShader(pr.handle, sh)
	}
	gl.LinkProgram(pr.handle)
	for _, sh := range handles {
		gl.DetachShader(pr.handle, sh)
	}

	var status int32
	gl.GetProgramiv(pr.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(pr.handle, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(pr.handle, lgLength, nil, gl.Str(lg))
		pr.Release()
		return nil, errors.Environment(fmt.Errorf("glgpu: linking program %s: %s", pr.name, strings.TrimRight(lg, "\x00")))
	}
	return pr, nil
}

// loadShader creates a shader object from the SPIR-V binary of st.
func loadShader(st *shaders.Asset) (uint32, error) {
	typ, ok := glStages[st.Kind]
	if !ok {
		return 0, errors.Configuration(fmt.Errorf("glgpu: shader %s has unknown kind %v", st.Name, st.Kind))
	}
	if !shaders.IsSPIRV(st.Code) {
		return 0, errors.Configuration(fmt.Errorf("glgpu: shader %s is not SPIR-V", st.Name))
	}
	sh := gl.CreateShader(typ)
	gl.ShaderBinary(1, &sh, gl.SHADER_BINARY_FORMAT_SPIR_V, unsafe.Pointer(&st.Code[0]), int32(4*len(st.Code)))
	gl.SpecializeShader(sh, gl.Str("main\x00"), 0, nil, nil)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetShaderInfoLog(sh, lgLength, nil, gl.Str(lg))
		gl.DeleteShader(sh)
		return 0, errors.Environment(fmt.Errorf("glgpu: specializing shader %s: %s", st.Name, strings.TrimRight(lg, "\x00")))
	}
	return sh, nil
}

func (pr *Program) Release() {
	if pr.handle != 0 {
		gl.DeleteProgram(pr.handle)
		pr.handle = 0
	}
}
