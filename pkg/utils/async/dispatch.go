package async

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
)

// DefaultTimeout bounds a dispatched handler unless overridden
const DefaultTimeout = 2 * time.Minute

type options struct {
	timeout time.Duration
}

// Option configures a dispatch
type Option func(*options)

// WithTimeout overrides the deadline of the dispatched handler. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Dispatch executes a handler function asynchronously with panic recovery.
// The handler gets a fresh context that outlives the request but keeps its
// logger and request ID.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error, opts ...Option) {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	newCtx := newBackgroundContext(ctx)

	go func() {
		runCtx := newCtx
		if o.timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(newCtx, o.timeout)
			defer cancel()
		}

		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(stack),
				)
			}
		}()

		if err := handler(runCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"error", err,
			)
		}
	}()
}

// newBackgroundContext creates a new background context preserving important values
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		newCtx = context.WithValue(newCtx, middleware.RequestIDKey, reqID)
	}

	return newCtx
}
