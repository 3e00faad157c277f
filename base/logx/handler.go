// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// handler is a minimal slog handler that writes one line per record
// with a colored level label when the output is a terminal.
type handler struct {
	mu     *sync.Mutex
	w      io.Writer
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
}

func newHandler(w io.Writer) *handler {
	return &handler{mu: &sync.Mutex{}, w: w, out: termenv.NewOutput(w)}
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *handler) label(level slog.Level) string {
	var name, color string
	switch {
	case level >= slog.LevelError:
		name, color = "ERROR", "9"
	case level >= slog.LevelWarn:
		name, color = "WARN", "11"
	case level >= slog.LevelInfo:
		name, color = "INFO", "12"
	default:
		name, color = "DEBUG", "8"
	}
	return h.out.String(name).Foreground(h.out.Color(color)).String()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.label(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		// pre-qualified in WithAttrs
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&sb, " %s=%v", key, a.Value)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := &handler{mu: h.mu, w: h.w, out: h.out, groups: h.groups}
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return nh
}

func (h *handler) WithGroup(name string) slog.Handler {
	nh := &handler{mu: h.mu, w: h.w, out: h.out, attrs: h.attrs}
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}
