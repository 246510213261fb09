package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const consoleTimeFormat = "15:04:05.000"

// consoleHandler writes one line per record:
//
//	15:04:05.000 INF organizer: file moved [organizer.go:88] destination=Docs/a.pdf
//
// The component attribute becomes the prefix. Attributes added through
// WithAttrs are rendered once and reused for every record.
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Leveler
	addSource bool

	component string
	prefix    string
	preformat []byte
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	buf := bytes.NewBuffer(make([]byte, 0, 160))
	buf.WriteString(ts.Format(consoleTimeFormat))
	buf.WriteByte(' ')
	buf.WriteString(levelTag(r.Level))
	buf.WriteByte(' ')

	component := h.component
	var attrs []byte
	r.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && a.Key == FieldComponent && component == "" {
			component = a.Value.Resolve().String()
			return true
		}
		attrs = appendAttr(attrs, h.prefix, a)
		return true
	})
	if component != "" {
		buf.WriteString(component)
		buf.WriteString(": ")
	}

	msg := strings.TrimSpace(r.Message)
	if msg == "" {
		msg = "(no message)"
	}
	buf.WriteString(msg)

	if h.addSource && r.PC != 0 {
		if src := r.Source(); src != nil && src.File != "" {
			fmt.Fprintf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	buf.Write(h.preformat)
	buf.Write(attrs)
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.preformat = append([]byte(nil), h.preformat...)
	for _, a := range attrs {
		if h.prefix == "" && a.Key == FieldComponent {
			next.component = a.Value.Resolve().String()
			continue
		}
		next.preformat = appendAttr(next.preformat, h.prefix, a)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// appendAttr renders a as " key=value", flattening groups into dotted keys.
func appendAttr(dst []byte, prefix string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, inner, ga)
		}
		return dst
	}
	dst = append(dst, ' ')
	dst = append(dst, prefix...)
	dst = append(dst, a.Key...)
	dst = append(dst, '=')
	return append(dst, consoleValue(a.Value)...)
}

func consoleValue(v slog.Value) string {
	var s string
	switch v.Kind() {
	case slog.KindString:
		s = v.String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			s = err.Error()
		} else {
			s = fmt.Sprint(v.Any())
		}
	default:
		// Numbers, bools and durations never need quoting.
		return v.String()
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERR"
	case level >= slog.LevelWarn:
		return "WRN"
	case level >= slog.LevelInfo:
		return "INF"
	default:
		return "DBG"
	}
}
