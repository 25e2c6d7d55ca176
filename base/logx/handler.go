// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record in the form
//
//	LEVEL message key=value key=value
//
// with the level name colored when the writer is a terminal.
type Handler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	prefix string // preformatted attrs from WithAttrs
	group  string // dotted group prefix from WithGroup
}

// NewHandler returns a new [Handler] writing to w, showing records at or
// above the given level.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{mu: &sync.Mutex{}, out: termenv.NewOutput(w), level: level}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := &bytes.Buffer{}
	buf.WriteString(h.LevelColor(r.Level, r.Level.String()))
	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	buf := &bytes.Buffer{}
	buf.WriteString(h.prefix)
	for _, a := range attrs {
		writeAttr(buf, h.group, a)
	}
	nh.prefix = buf.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

// LevelColor applies the color associated with the given level to the
// given string. Nothing is applied if the output does not support color.
func (h *Handler) LevelColor(level slog.Level, str string) string {
	var c termenv.Color
	switch {
	case level >= slog.LevelError:
		c = h.out.Color("1") // red
	case level >= slog.LevelWarn:
		c = h.out.Color("3") // yellow
	case level >= slog.LevelInfo:
		c = h.out.Color("6") // cyan
	default:
		c = h.out.Color("5") // magenta
	}
	return h.out.String(str).Foreground(c).Bold().String()
}

func writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := group
		if a.Key != "" {
			sub += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(buf, sub, ga)
		}
		return
	}
	val := a.Value.String()
	if strings.ContainsAny(val, " \t\"=") {
		val = fmt.Sprintf("%q", val)
	}
	buf.WriteByte(' ')
	buf.WriteString(group + a.Key)
	buf.WriteByte('=')
	buf.WriteString(val)
}
