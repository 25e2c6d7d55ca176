// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"

	"cogentcore.org/tumble/base/errors"
	"github.com/Masterminds/semver/v3"
)

// Source is a shader source file to compile.
type Source struct {

	// Name is the file name, such as simple.vs.
	Name string

	// Path is the path to the file, used for diagnostics and by compilers
	// that read the file themselves.
	Path string

	// Kind is the pipeline stage, from the file name.
	Kind Kinds

	// Code is the contents of the file.
	Code string
}

// Compiler compiles shader source into SPIR-V. Implementations must be
// deterministic: the same source, include directory and target always
// produce the same words. Failures are [errors.ErrBuild] errors.
type Compiler interface {

	// Compile compiles the given source with the given options.
	Compile(src *Source, opts *Options) ([]uint32, error)
}

// Options are the settings shared by all compilers.
type Options struct {

	// IncludeDir is the directory searched for #include files.
	IncludeDir string `default:"assets/shaders/include" toml:"include" yaml:"include"`

	// Target is the SPIR-V version to generate, from 1.0 to 1.6.
	Target string `default:"1.6" toml:"target" yaml:"target"`

	// Args are extra command line arguments passed to external compilers,
	// split following shell quoting rules.
	Args string `toml:"args" yaml:"args"`
}

var supportedTargets = errors.Must1(semver.NewConstraint(">= 1.0, <= 1.6"))

// TargetVersion returns the validated SPIR-V target version.
// An empty target is 1.6.
func (o *Options) TargetVersion() (*semver.Version, error) {
	t := o.Target
	if t == "" {
		t = "1.6"
	}
	v, err := semver.NewVersion(t)
	if err != nil {
		return nil, errors.Configuration(fmt.Errorf("shaders: invalid SPIR-V target %q: %w", o.Target, err))
	}
	if v.Patch() != 0 || v.Prerelease() != "" || !supportedTargets.Check(v) {
		return nil, errors.Configuration(fmt.Errorf("shaders: unsupported SPIR-V target %q (must be 1.0 to 1.6)", o.Target))
	}
	return v, nil
}

// TargetName returns the target in the form spv1.6.
func (o *Options) TargetName() (string, error) {
	v, err := o.TargetVersion()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("spv%d.%d", v.Major(), v.Minor()), nil
}
