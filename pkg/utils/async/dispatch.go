package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

type requestIDKey struct{}

// WithRequestID stores the id of the request that triggered background work
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored by WithRequestID
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Dispatch runs handler in a new goroutine detached from the caller's
// cancellation. The logger and request id of ctx are carried over and panics
// are recovered and logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler", "error", err)
		}
	}()
}

func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))

	if id := RequestID(ctx); id != "" {
		newCtx = WithRequestID(newCtx, id)
	}

	return newCtx
}
