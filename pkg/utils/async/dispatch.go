package async

import (
	"context"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs the handler on its own goroutine so the caller (typically a
// lifecycle hook endpoint) can acknowledge immediately. The handler gets a
// fresh background context that keeps the caller's logger but not its
// cancellation: the CI runner closing the connection must not abort an
// in-flight Bitbucket call.
//
// Panics are recovered, reported to Sentry and logged with a stack trace;
// handler errors are reported and logged. Nothing propagates back to the
// caller.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				sentry.CurrentHub().Recover(r)
				logger := ctxlog.From(newCtx)
				logger.Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
			}
		}()

		if err := handler(newCtx); err != nil {
			sentry.CaptureException(err)
			logger := ctxlog.From(newCtx)
			logger.Error("error in async handler", "error", err)
		}
	}()
}

// newBackgroundContext returns a context.Background() carrying the logger of
// the original context.
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx))
	return newCtx
}
