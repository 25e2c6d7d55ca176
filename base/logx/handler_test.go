// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	lg := slog.New(NewHandler(buf, slog.LevelInfo))

	lg.Debug("this is debug")
	assert.Empty(t, buf.String())

	lg.Info("window created", "width", 400, "title", "Tumble demo")
	assert.Equal(t, "INFO window created width=400 title=\"Tumble demo\"\n", buf.String())

	buf.Reset()
	lg.With("backend", "vulkan").WithGroup("mode").Warn("fallback", "w", 800, "h", 600)
	assert.Equal(t, "WARN fallback backend=vulkan mode.w=800 mode.h=600\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
	UserLevel = slog.LevelError
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
