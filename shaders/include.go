// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"cogentcore.org/tumble/base/errors"
)

// IncludeFS processes #include "file" statements in
// the given code string, looking for each included file
// in the given file systems in order. The #include line is
// commented out and followed by the lines of the file.
// Included files are not themselves processed. A malformed or
// unresolved include is an [errors.ErrBuild].
func IncludeFS(code string, fsys ...fs.FS) (string, error) {
	fl := strings.Split(strings.ReplaceAll(code, "\r\n", "\n"), "\n")
	nl := len(fl)
	for li := nl - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			return "", errors.BuildFailure(fmt.Errorf("line %d: malformed #include: no final quote", li+1))
		}
		fname := fn[:qi]
		b, err := readFirst(fname, fsys)
		if err != nil {
			return "", errors.BuildFailure(fmt.Errorf("line %d: could not find include %q", li+1, fname))
		}
		ol := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
		fl[li] = "// " + ln
		fl = slices.Insert(fl, li+1, ol...)
	}
	return strings.Join(fl, "\n"), nil
}

func readFirst(name string, fsys []fs.FS) ([]byte, error) {
	err := fs.ErrNotExist
	for _, f := range fsys {
		if f == nil {
			continue
		}
		var b []byte
		b, err = fs.ReadFile(f, name)
		if err == nil {
			return b, nil
		}
	}
	return nil, err
}
