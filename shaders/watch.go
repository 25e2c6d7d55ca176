// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long [Watch] waits after the last change
// before rebuilding.
var WatchDelay = 100 * time.Millisecond

// Watch calls [Build] once, and then again whenever a file in src or in
// the include directory changes, until ctx is done. The result of each
// build is passed to report. A failed build writes nothing, so the cache
// keeps the results of the last successful build.
func Watch(ctx context.Context, src, out string, comp Compiler, opts *Options, report func([]*Asset, error)) error {
	if opts == nil {
		opts = &Options{}
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(src); err != nil {
		return err
	}
	if opts.IncludeDir != "" {
		if st, err := os.Stat(opts.IncludeDir); err == nil && st.IsDir() {
			if err := w.Add(opts.IncludeDir); err != nil {
				return err
			}
		}
	}
	outAbs, _ := filepath.Abs(out)

	report(Build(src, out, comp, opts))
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev, outAbs) {
				continue
			}
			slog.Debug("shader source changed", "file", ev.Name, "op", ev.Op)
			pending = time.After(WatchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching shaders", "err", err)
		case <-pending:
			pending = nil
			report(Build(src, out, comp, opts))
		}
	}
}

// relevant returns whether the event should trigger a rebuild:
// hidden files (such as editor swap files and cache temp files) and
// anything written to the output directory are ignored.
func relevant(ev fsnotify.Event, outAbs string) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}
	if abs, err := filepath.Abs(ev.Name); err == nil && outAbs != "" {
		if abs == outAbs || strings.HasPrefix(abs, outAbs+string(filepath.Separator)) {
			return false
		}
	}
	return true
}
