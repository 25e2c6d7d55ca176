// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import "fmt"

var (
	// ErrConfiguration marks an error in what the caller asked for:
	// an unsupported shader extension, an invalid window configuration,
	// or a backend version that no available context can satisfy.
	// It is fatal and happens before any window is shown.
	ErrConfiguration = New("configuration error")

	// ErrEnvironment marks a failure of the host system to provide
	// something it should: a monitor with no display modes, a graphics
	// context or surface that cannot be created, or a surface that
	// cannot be resized. It is fatal and never retried.
	ErrEnvironment = New("environment error")

	// ErrBuild marks a shader compilation failure, including a failure
	// to resolve an include. It is fatal to the build step only.
	ErrBuild = New("build error")
)

// kindError attaches one of the error kinds to an underlying error
// while keeping both reachable through [Is].
type kindError struct {
	kind error
	err  error
}

func (ke *kindError) Error() string {
	return fmt.Sprintf("%v: %v", ke.kind, ke.err)
}

func (ke *kindError) Unwrap() []error {
	return []error{ke.kind, ke.err}
}

func withKind(kind, err error) error {
	if err == nil {
		return nil
	}
	if Is(err, kind) {
		return err
	}
	return &kindError{kind: kind, err: err}
}

// Configuration marks the given error as an [ErrConfiguration].
// It returns nil if err is nil.
func Configuration(err error) error {
	return withKind(ErrConfiguration, err)
}

// Environment marks the given error as an [ErrEnvironment].
// It returns nil if err is nil.
func Environment(err error) error {
	return withKind(ErrEnvironment, err)
}

// BuildFailure marks the given error as an [ErrBuild].
// It returns nil if err is nil.
func BuildFailure(err error) error {
	return withKind(ErrBuild, err)
}
