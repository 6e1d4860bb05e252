package wrap

import (
	"context"
)

type (
	// LogCtx holds contextual information for logging
	LogCtx struct {
		Action    string
		RequestID string
		Session   string
		Driver    string
	}

	// logCtxKeyStruct is an unexported type for context keys defined in this package.
	logCtxKeyStruct struct{}
)

// logCtxKey is the key for log context values
var LogCtxKey = &logCtxKeyStruct{}

// WithLogCtx returns a new context with the provided LogCtx
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	// Check if there's an existing LogCtx and merge values
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		if newLc.Action == "" {
			newLc.Action = lc.Action
		}
		if newLc.RequestID == "" {
			newLc.RequestID = lc.RequestID
		}
		if newLc.Session == "" {
			newLc.Session = lc.Session
		}
		if newLc.Driver == "" {
			newLc.Driver = lc.Driver
		}
		return context.WithValue(ctx, LogCtxKey, newLc)
	}
	return context.WithValue(ctx, LogCtxKey, newLc)
}

// FromContext returns the LogCtx stored in ctx, or an empty one.
func FromContext(ctx context.Context) LogCtx {
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		return lc
	}
	return LogCtx{}
}

// WithRequestID adds or updates the RequestID in the LogCtx within the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc := FromContext(ctx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithSession adds or updates the session key ("2024/5/Q") in the LogCtx within the context
func WithSession(ctx context.Context, session string) context.Context {
	lc := FromContext(ctx)
	lc.Session = session
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithDriver adds or updates the Driver code in the LogCtx within the context
func WithDriver(ctx context.Context, driver string) context.Context {
	lc := FromContext(ctx)
	lc.Driver = driver
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithAction adds or updates the Action in the LogCtx within the context
func WithAction(ctx context.Context, action string) context.Context {
	lc := FromContext(ctx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}
