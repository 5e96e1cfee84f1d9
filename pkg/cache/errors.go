package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks backend failures caused by the connection rather than
// the request (timeouts, refused or reset connections).
var ErrNetwork = errors.New("network error")

const retryAttempts = 3

// retryDelay is the first backoff interval; it doubles per attempt.
var retryDelay = 100 * time.Millisecond

// RetryableError marks an error as worth another attempt.
type RetryableError struct{ Err error }

// Retryable wraps err in a RetryableError. nil stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err (or anything it wraps) is a RetryableError.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff calls fn until it succeeds, returns a non-retryable
// error, or has been tried retryAttempts times. It returns ctx.Err() if
// the context ends while waiting between attempts.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	delay := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt == retryAttempts {
			return err
		}

		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}
