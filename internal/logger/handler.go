package logger

import (
	"context"
	"fmt"
	"go/build"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Options struct {
	Level  slog.Level
	Format string
	// RootPath is stripped from source file paths.
	RootPath string
	// RequestIdKey is the context key holding the request id, if any.
	RequestIdKey any
}

// New builds a logger writing to out in the given format. Source locations are
// reported relative to RootPath (or GOPATH for dependencies).
func New(out io.Writer, o Options) (*slog.Logger, error) {
	ho := slog.HandlerOptions{
		Level: o.Level,
	}

	var h slog.Handler
	switch o.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(out, &ho)
	case FormatText:
		h = slog.NewTextHandler(out, &ho)
	default:
		return nil, fmt.Errorf("log format must be %s or %s, got %q", FormatJSON, FormatText, o.Format)
	}

	gopath := os.Getenv("GOPATH")
	if gopath == "" {
		gopath = build.Default.GOPATH
	}

	return slog.New(&handler{
		baseHandler:  h,
		rootPath:     strings.TrimSuffix(o.RootPath, "/") + "/",
		goPath:       strings.TrimSuffix(gopath, "/") + "/",
		requestIdKey: o.RequestIdKey,
	}), nil
}

// SetupSLog installs a logger writing to stderr as the slog default.
func SetupSLog(o Options) (*slog.Logger, error) {
	l, err := New(os.Stderr, o)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)
	return l, nil
}

type handler struct {
	baseHandler  slog.Handler
	rootPath     string
	goPath       string
	requestIdKey any
}

func (e *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return e.baseHandler.Enabled(ctx, level)
}

func (e *handler) Handle(ctx context.Context, record slog.Record) error {
	record = record.Clone()

	if record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := fs.Next()
		file := f.File
		if strings.HasPrefix(file, e.rootPath) {
			file = file[len(e.rootPath):]
		} else if strings.HasPrefix(file, e.goPath) {
			file = file[len(e.goPath):]
		}
		record.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     file,
			Line:     f.Line,
		}))
	}

	if e.requestIdKey != nil {
		if requestId, ok := ctx.Value(e.requestIdKey).(string); ok && requestId != "" {
			record.AddAttrs(slog.String("request_id", requestId))
		}
	}

	return e.baseHandler.Handle(ctx, record)
}

func (e *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return e.with(e.baseHandler.WithAttrs(attrs))
}

func (e *handler) WithGroup(name string) slog.Handler {
	return e.with(e.baseHandler.WithGroup(name))
}

func (e *handler) with(base slog.Handler) *handler {
	return &handler{
		baseHandler:  base,
		rootPath:     e.rootPath,
		goPath:       e.goPath,
		requestIdKey: e.requestIdKey,
	}
}
