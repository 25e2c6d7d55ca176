// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Output runs the command and returns the text from its standard output,
// without the trailing newline. The output is still copied to
// [Config.Stdout] if that is set.
func (c *Config) Output(cmd string, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	oc := *c
	oc.Stdout = buf
	if c.Stdout != nil {
		oc.Stdout = io.MultiWriter(buf, c.Stdout)
	}
	_, err := oc.Exec(cmd, args...)
	return strings.TrimSuffix(buf.String(), "\n"), err
}

// SplitArgs returns a string parsed into separate args
// that can be passed into run commands, following shell quoting rules.
func SplitArgs(str string) ([]string, error) {
	return shellwords.Parse(str)
}
