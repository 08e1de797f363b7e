package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
)

// CompactHandler writes one readable line per record:
//
//	[LEVEL] HH:MM:SS message | key=value key=value
//
// Attributes added through WithAttrs come first; a group prefixes the keys
// of later attributes with "group.".
type CompactHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	out    io.Writer
	attrs  []slog.Attr
	prefix string
}

// NewCompactHandler returns a CompactHandler writing to w.
func NewCompactHandler(w io.Writer, opts *slog.HandlerOptions) *CompactHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &CompactHandler{opts: *opts, mu: &sync.Mutex{}, out: w}
}

func (h *CompactHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *CompactHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	switch r.Level {
	case slog.LevelDebug:
		buf = append(buf, "[DEBUG] "...)
	case slog.LevelInfo:
		buf = append(buf, "[INFO]  "...)
	case slog.LevelWarn:
		buf = append(buf, "[WARN]  "...)
	case slog.LevelError:
		buf = append(buf, "[ERROR] "...)
	default:
		buf = append(buf, fmt.Sprintf("[%-5s] ", r.Level.String())...)
	}
	if !r.Time.IsZero() {
		buf = r.Time.AppendFormat(buf, "15:04:05")
		buf = append(buf, ' ')
	}
	buf = append(buf, r.Message...)

	first := true
	sep := func() {
		if first {
			buf = append(buf, " |"...)
			first = false
		}
		buf = append(buf, ' ')
	}
	for _, a := range h.attrs {
		sep()
		buf = appendAttr(buf, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if a.Equal(slog.Attr{}) {
			return true
		}
		sep()
		buf = appendAttr(buf, h.prefix, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)

	return err
}

func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		c.attrs = append(c.attrs, a)
	}

	return &c
}

func (h *CompactHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	key := prefix + a.Key

	switch {
	case a.Key == RequestIDKey:
		// Eight characters of a UUID are enough to tell requests apart.
		if s := a.Value.String(); len(s) > 8 {
			return append(buf, "req="+s[:8]...)
		}
	case a.Key == "error":
		return append(buf, fmt.Sprintf("error=%q", a.Value.Any())...)
	case a.Value.Kind() == slog.KindGroup:
		for i, ga := range a.Value.Group() {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = appendAttr(buf, key+".", ga)
		}
		return buf
	}

	buf = append(buf, key...)
	buf = append(buf, '=')
	v := a.Value
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"=") {
			return append(buf, fmt.Sprintf("%q", s)...)
		}
		return append(buf, s...)
	case slog.KindTime:
		return v.Time().AppendFormat(buf, time.RFC3339)
	default:
		return append(buf, v.String()...)
	}
}
