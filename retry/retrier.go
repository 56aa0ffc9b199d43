// Package retry provides a pluggable retry mechanism for network operations.
//
// A Retrier decides which errors are worth another attempt, how long to wait
// between attempts and how many attempts are allowed in total. Do and DoVoid
// drive an operation with a Retrier:
//
//	retrier := retry.NewImmediateRetrier(3, isConnectTimeout)
//	err := retry.DoVoid(ctx, retrier, func(attempt int) error {
//	    return download(ctx)
//	})
//
// Custom retriers can be implemented by implementing the Retrier interface.
package retry

import (
	"context"
	"errors"
	"fmt"
)

// Retrier defines the interface for retry behavior.
// Implementations determine when to retry and how long to wait between attempts.
type Retrier interface {
	// ShouldRetry determines if an error should be retried.
	// attempt is the current attempt number (1-indexed).
	ShouldRetry(ctx context.Context, err error, attempt int) bool

	// Wait waits before the next retry attempt.
	// Returns an error if the context was cancelled during the wait.
	Wait(ctx context.Context, attempt int) error

	// MaxAttempts returns the maximum number of attempts (including the initial attempt).
	MaxAttempts() int
}

// NoopRetrier is a retrier that never retries.
type NoopRetrier struct{}

// ShouldRetry always returns false for NoopRetrier.
func (r *NoopRetrier) ShouldRetry(ctx context.Context, err error, attempt int) bool {
	return false
}

// Wait is a no-op for NoopRetrier.
func (r *NoopRetrier) Wait(ctx context.Context, attempt int) error {
	return nil
}

// MaxAttempts returns 1 for NoopRetrier (no retries).
func (r *NoopRetrier) MaxAttempts() int {
	return 1
}

// ImmediateRetrier reissues an operation straight away, without any delay,
// as long as the retry budget lasts and the error is accepted by Retryable.
type ImmediateRetrier struct {
	// Retries is the number of retries after the initial attempt.
	Retries int

	// Retryable selects the errors that may be retried. A nil Retryable
	// retries nothing.
	Retryable func(err error) bool
}

// NewImmediateRetrier creates an ImmediateRetrier allowing retries additional
// attempts for the errors accepted by retryable.
func NewImmediateRetrier(retries int, retryable func(err error) bool) *ImmediateRetrier {
	return &ImmediateRetrier{
		Retries:   retries,
		Retryable: retryable,
	}
}

// ShouldRetry reports whether err is retryable. Context cancellation is never retried.
func (r *ImmediateRetrier) ShouldRetry(ctx context.Context, err error, attempt int) bool {
	if err == nil || r.Retryable == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	return r.Retryable(err)
}

// Wait returns immediately unless the context is already done.
func (r *ImmediateRetrier) Wait(ctx context.Context, attempt int) error {
	return ctx.Err()
}

// MaxAttempts returns Retries+1. A negative budget still allows the initial attempt.
func (r *ImmediateRetrier) MaxAttempts() int {
	if r.Retries < 0 {
		return 1
	}
	return r.Retries + 1
}

// ExhaustedError is returned by Do when every allowed attempt failed with a
// retryable error. Err is the error of the last attempt.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("max retry attempts (%d) reached: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Do runs fn until it succeeds, returns a non-retryable error or the
// retrier's attempt budget is spent. fn receives the 1-indexed attempt number.
// A nil retrier behaves like NoopRetrier.
func Do[T any](ctx context.Context, retrier Retrier, fn func(attempt int) (T, error)) (T, error) {
	var zero T
	if retrier == nil {
		retrier = &NoopRetrier{}
	}

	maxAttempts := retrier.MaxAttempts()
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn(attempt)
		if err == nil {
			return result, nil
		}

		if !retrier.ShouldRetry(ctx, err, attempt) {
			return zero, err
		}

		if attempt >= maxAttempts {
			return zero, &ExhaustedError{Attempts: maxAttempts, Err: err}
		}

		if waitErr := retrier.Wait(ctx, attempt); waitErr != nil {
			return zero, fmt.Errorf("context cancelled during retry wait: %w", waitErr)
		}
	}
}

// DoVoid is Do for operations without a result.
func DoVoid(ctx context.Context, retrier Retrier, fn func(attempt int) error) error {
	_, err := Do(ctx, retrier, func(attempt int) (struct{}, error) {
		return struct{}{}, fn(attempt)
	})
	return err
}
