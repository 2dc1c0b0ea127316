package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks a backend failure that may succeed on retry (connection
// refused, timeout, server loading).
var ErrNetwork = errors.New("cache backend unavailable")

// RetryableError wraps an error to indicate it should trigger a retry.
type RetryableError struct{ Err error }

// Retryable wraps err as a RetryableError. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is wrapped with Retryable.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryAttempts and retryDelay bound RetryWithBackoff. The delay doubles
// after each failed attempt.
var (
	retryAttempts = 3
	retryDelay    = 200 * time.Millisecond
)

// RetryWithBackoff calls fn until it succeeds, returns an error not wrapped
// with Retryable, or the attempts run out. It returns ctx.Err() if ctx is
// done while waiting.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	var lastErr error

	for i := range retryAttempts {
		err := fn()
		if err == nil {
			return nil
		}
		if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < retryAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
