package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
)

// DefaultOperationTimeout bounds a command when the handler is built with a zero timeout.
const DefaultOperationTimeout = 5 * time.Second

func operationContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultOperationTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// classify turns a deadline hit into a transient error and leaves domain errors alone.
func classify(operation string, err error) error {
	if err == nil || errors.Is(err, errs.ErrTransient) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTransientError(operation, err)
	}
	return err
}

// infra marks a transaction-control failure (begin, commit) as transient.
func infra(operation string, err error) error {
	if err == nil || errors.Is(err, errs.ErrTransient) {
		return err
	}
	return errs.NewTransientError(operation, err)
}
