package wrap

import (
	"context"
)

// Error wraps an error with the current LogCtx from the context.
// Wrapping an already wrapped error keeps the chain and refreshes the log context.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: FromContext(ctx),
	}
}
