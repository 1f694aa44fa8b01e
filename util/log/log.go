package log

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"
)

/*
log implements context-tagged logging on top of slog. Tags added to a context
with AddTags are attached to every record logged with that context or its
descendants. The compiler uses this to label all output for a schema with the
schema's name.

The "f" functions take a format string; the "w" functions take a message and an
even-length list of key-value pairs.
*/

////////////////////////////////////////////////////////////////////////////////

type contextKey int

const (
	logTagKey contextKey = iota
)

// AddTags returns a context carrying the supplied key-value pairs in addition
// to any tags already present.
func AddTags(ctx context.Context, kvs ...any) context.Context {
	if len(kvs)%2 != 0 {
		panic("log: AddTags requires an even number of arguments")
	}
	existing := Tags(ctx)
	tags := make([]any, 0, len(existing)+len(kvs))
	tags = append(tags, existing...)
	tags = append(tags, kvs...)
	return context.WithValue(ctx, logTagKey, tags)
}

// Tags returns the tags carried by ctx.
func Tags(ctx context.Context) []any {
	tags, _ := ctx.Value(logTagKey).([]any)
	return tags
}

func emit(ctx context.Context, level slog.Level, msg string, keyvals []any) {
	handler := slog.Default().Handler()
	if !handler.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	addPairs(&r, keyvals)
	addPairs(&r, Tags(ctx))
	if err := handler.Handle(ctx, r); err != nil {
		slog.ErrorContext(ctx, "error handling log record", "error", err)
	}
}

func addPairs(r *slog.Record, kvs []any) {
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprint(kvs[i])
		}
		r.Add(key, kvs[i+1])
	}
}

// Debugf logs a formatted debug message.
func Debugf(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelDebug, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted message.
func Infof(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelInfo, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning.
func Warnf(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelWarn, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error.
func Errorf(ctx context.Context, format string, args ...any) {
	emit(ctx, slog.LevelError, fmt.Sprintf(format, args...), nil)
}

// Debugw logs a debug message with key-value pairs.
func Debugw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelDebug, msg, keyvals)
}

// Infow logs a message with key-value pairs.
func Infow(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelInfo, msg, keyvals)
}

// Warnw logs a warning with key-value pairs.
func Warnw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelWarn, msg, keyvals)
}

// Errorw logs an error with key-value pairs.
func Errorw(ctx context.Context, msg string, keyvals ...any) {
	emit(ctx, slog.LevelError, msg, keyvals)
}
