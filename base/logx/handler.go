// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record, with the
// level colored according to the terminal profile of the output.
type Handler struct {
	level  slog.Leveler
	out    *termenv.Output
	attrs  []slog.Attr
	prefix string
	mu     *sync.Mutex
}

// NewHandler returns a new [Handler] writing to w at the given level.
// Colors are only emitted when w is a terminal that supports them.
func NewHandler(w io.Writer, level slog.Leveler) *Handler {
	return &Handler{
		level: level,
		out:   termenv.NewOutput(w),
		mu:    &sync.Mutex{},
	}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) levelColor(l slog.Level) termenv.Color {
	switch {
	case l >= slog.LevelError:
		return h.out.Color("#ff5555")
	case l >= slog.LevelWarn:
		return h.out.Color("#ffaa00")
	case l >= slog.LevelInfo:
		return h.out.Color("#55aaff")
	default:
		return h.out.Color("#888888")
	}
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.out.String(r.Level.String()).Foreground(h.levelColor(r.Level)).Bold().String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	write := func(prefix string, a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		b.WriteByte(' ')
		b.WriteString(h.out.String(prefix + a.Key).Faint().String())
		b.WriteByte('=')
		b.WriteString(fmt.Sprint(a.Value.Resolve().Any()))
	}
	for _, a := range h.attrs {
		write("", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		write(h.prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a handler that adds the attributes to every record,
// qualified by the groups opened so far.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}
