// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs external programs, such as the glslc shader
// compiler, with configurable standard streams.
package exec

import (
	"io"
	"log/slog"
	"os"

	"cogentcore.org/tumble/base/logx"
)

// Config contains the configuration for running a command.
type Config struct {

	// Stdout is the writer for the standard output of the command.
	// It can be nil to discard the standard output.
	Stdout io.Writer

	// Stderr is the writer for the standard error of the command.
	// It can be nil to discard the standard error.
	Stderr io.Writer

	// Commands is the writer that each command line is echoed to before
	// it runs. It can be nil to not echo commands.
	Commands io.Writer
}

// Minor returns a configuration for a helper command: its output and
// command line are only shown at [slog.LevelDebug], and errors are
// always shown.
func Minor() *Config {
	c := &Config{Stderr: os.Stderr}
	if logx.UserLevel <= slog.LevelDebug {
		c.Stdout = os.Stdout
		c.Commands = os.Stdout
	}
	return c
}
