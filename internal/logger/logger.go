package logger

import (
	"log/slog"
	"os"
	"sync/atomic"
)

// singleton is accessed atomically so the facade is safe to use from
// any goroutine, including before Init for early failures.
var singleton atomic.Pointer[slog.Logger]

func init() {
	singleton.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

func Init() {
	l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	singleton.Store(l)
	slog.SetDefault(l)
	l.Info("logger initialized")
}

// Set replaces the singleton logger. Intended for tests that capture
// log output.
func Set(l *slog.Logger) {
	singleton.Store(l)
}

func Info(msg string, fields map[string]any) {
	singleton.Load().Info(msg, args(fields)...)
}

func Warn(msg string, fields map[string]any) {
	singleton.Load().Warn(msg, args(fields)...)
}

func Error(msg string, fields map[string]any) {
	singleton.Load().Error(msg, args(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	singleton.Load().Error(msg, args(fields)...)
	os.Exit(1)
}

func args(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
