// Package logstream carries a trace writer through a context so the effect
// engine can report progress without knowing where output goes.
package logstream

import (
	"context"
	"fmt"
	"io"
)

type ctxKey struct{}

// Writer returns an io.Writer from context for trace output.
// Returns nil if no writer is set (caller should handle gracefully).
func Writer(ctx context.Context) io.Writer {
	w, _ := ctx.Value(ctxKey{}).(io.Writer)
	return w
}

// WithWriter returns a context with the given writer attached.
func WithWriter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, w)
}

// Log writes a message to the context's writer if present.
// If no writer is present in the context, the message is silently dropped.
func Log(ctx context.Context, msg string) {
	if w := Writer(ctx); w != nil {
		if len(msg) == 0 || msg[len(msg)-1] != '\n' {
			msg += "\n"
		}
		_, _ = io.WriteString(w, msg)
	}
}

// Logf formats a message and passes it to Log.
func Logf(ctx context.Context, format string, args ...any) {
	if Writer(ctx) == nil {
		return
	}
	Log(ctx, fmt.Sprintf(format, args...))
}
