// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

package exec

import (
	"fmt"
	"os/exec"
	"strings"
)

// Exec runs the command with the given arguments, sending its output
// to the config writers.
//
// Ran reports whether the command started at all, as opposed to not
// being found or not being executable. If err is nil, ran is true.
func (c *Config) Exec(cmd string, args ...string) (ran bool, err error) {
	cm := exec.Command(cmd, args...)
	cm.Stdout = c.Stdout
	cm.Stderr = c.Stderr
	line := strings.TrimSpace(cmd + " " + strings.Join(args, " "))
	if c.Commands != nil {
		fmt.Fprintln(c.Commands, line)
	}
	err = cm.Run()
	if err == nil {
		return true, nil
	}
	return CmdRan(err), fmt.Errorf("failed to run %q: %w", line, err)
}

// CmdRan reports whether the given error from running a command means
// that the command ran, even if it exited with a non-zero status.
// It is true for a nil error and false when the command could not start.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	ee, ok := err.(*exec.ExitError)
	if ok {
		return ee.Exited()
	}
	return false
}

// LookPath searches for an executable named file in the
// directories named by the PATH environment variable.
// It is a re-export of [exec.LookPath].
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
